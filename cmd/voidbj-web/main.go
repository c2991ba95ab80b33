package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/okn1ce/VoidBJ/internal/game"
	"github.com/okn1ce/VoidBJ/internal/persist"
	"github.com/okn1ce/VoidBJ/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
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
	srv := web.NewServer(engine)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("voidbj listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
