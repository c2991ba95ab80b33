package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/okn1ce/VoidBJ/internal/game"
	voidmcp "github.com/okn1ce/VoidBJ/internal/mcp"
	"github.com/okn1ce/VoidBJ/internal/persist"
)

func main() {
	dataDir := flag.String("data", "voidbj_data", "path to save data directory")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	catalog := flag.String("catalog", "", "optional catalog overlay YAML file")
	flag.Parse()

	if *catalog != "" {
		if err := game.LoadCatalogFile(*catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := persist.NewFileStore(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := game.New(game.Config{Seed: *seed, Store: store})
	voidmcp.SetEngine(engine)

	s := server.NewMCPServer("voidbj", "1.0.0")
	voidmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
