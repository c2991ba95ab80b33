package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okn1ce/VoidBJ/internal/game"
	gamelog "github.com/okn1ce/VoidBJ/internal/log"
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

	engine := game.New(game.Config{
		Seed:   *seed,
		Logger: gamelog.NewTextLogger(os.Stdout),
		Store:  store,
	})

	if engine.InProgress() {
		fmt.Println("Resuming saved run.")
	} else {
		engine.StartRun()
	}

	repl(engine)
}

func repl(e *game.Engine) {
	reader := bufio.NewReader(os.Stdin)
	renderState(e)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
			continue
		case "start":
			e.StartRun()
		case "bet":
			e.PlaceBet(argInt(parts, 1))
		case "hit":
			e.Hit()
		case "stand":
			e.Stand()
		case "double":
			e.DoubleDown()
		case "use":
			e.UseConsumable(argInt(parts, 1) - 1)
		case "forge":
			e.EnterForge()
		case "leave":
			e.LeaveForge()
		case "buy":
			handleBuy(e, parts[1:])
		case "purge":
			e.PurgeCard(argStr(parts, 1))
		case "pick":
			e.SelectUpgrade(argStr(parts, 1))
		case "meta":
			e.BuyMetaUpgrade(argStr(parts, 1))
		case "deck":
			renderDeck(e)
			continue
		case "shop":
			renderShop(e)
			continue
		case "log":
			fmt.Print(gamelog.FormatAll(e.Events()))
			continue
		default:
			fmt.Println("Unknown command. Type 'help' for commands.")
			continue
		}

		e.AdvanceUntilResolved()
		renderState(e)
	}
}

func handleBuy(e *game.Engine, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: buy upgrade <id> <card-id> | buy item <id> | buy boon <id>")
		return
	}
	switch args[0] {
	case "upgrade":
		if len(args) < 3 {
			fmt.Println("Usage: buy upgrade <id> <card-id>")
			return
		}
		e.BuyUpgrade(args[1], args[2])
	case "item":
		e.BuyConsumable(args[1])
	case "boon":
		e.BuyPassive(args[1])
	default:
		fmt.Println("Usage: buy upgrade <id> <card-id> | buy item <id> | buy boon <id>")
	}
}

func argInt(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

func argStr(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

func renderState(e *game.Engine) {
	r := e.Run
	g := e.Global

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  HOUSE LV %-2d  corruption %d/%d", r.HouseLevel, r.Corruption, r.Threshold)
	if r.BossRound() {
		fmt.Print("  [BOSS]")
	}
	fmt.Println()

	fmt.Printf("║  Dealer: %s\n", formatHand(r.DealerHand, r.HoleRevealed))
	fmt.Printf("║  You:    %s  (score %d)\n", formatHand(r.PlayerHand, true), game.Score(r.PlayerHand))
	fmt.Println("║──────────────────────────────────────────────────────")
	fmt.Printf("║  Credits: %-5d Essence: %-5d Bet: %-5d Deck: %d\n",
		r.Credits, r.Essence, r.Bet, len(r.DrawPile))
	if len(r.Inventory) > 0 {
		fmt.Printf("║  Items:   ")
		for i, c := range r.Inventory {
			fmt.Printf("[%d] %s  ", i+1, c.Name)
		}
		fmt.Println()
	}
	if len(r.Passives) > 0 {
		var names []string
		for _, id := range r.Passives {
			p, ok := game.Passives[id]
			if !ok {
				continue
			}
			name := p.Name
			if p.Curse {
				name += " (curse)"
			}
			names = append(names, name)
		}
		fmt.Printf("║  Passives: %s\n", strings.Join(names, ", "))
	}
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	fmt.Printf("Round %d | %s | Fragments: %d\n", r.Round, r.Phase, g.Fragments)

	if len(r.Offered) > 0 {
		fmt.Printf("\nChoose an unlock with 'pick <id>':\n")
		for _, id := range r.Offered {
			u := game.Upgrades[id]
			fmt.Printf("  %s — %s (%d essence)\n", u.ID, u.Text, u.Cost)
		}
	}
	if r.Status != "" {
		fmt.Printf("\n%s\n", r.Status)
	}
}

func formatHand(hand []*game.Card, revealed bool) string {
	if len(hand) == 0 {
		return "—"
	}
	labels := make([]string, len(hand))
	for i, c := range hand {
		if i == 1 && !revealed {
			labels[i] = "[??]"
			continue
		}
		label := c.String()
		if len(c.Upgrades) > 0 {
			label += "*"
		}
		labels[i] = "[" + label + "]"
	}
	return strings.Join(labels, " ")
}

func renderDeck(e *game.Engine) {
	fmt.Println("\nMaster deck:")
	for _, c := range e.Run.MasterDeck {
		line := fmt.Sprintf("  %-4s %s", c.String(), c.ID[:8])
		for _, u := range c.Upgrades {
			line += "  +" + u.Name
		}
		fmt.Println(line)
	}
	fmt.Printf("Purge cost: %d essence\n", e.Run.PurgeCost())
}

func renderShop(e *game.Engine) {
	r := e.Run
	fmt.Println("\nUpgrades (buy upgrade <id> <card-id>):")
	for _, id := range game.UpgradeOrder {
		if !r.IsUnlocked(id) {
			continue
		}
		u := game.Upgrades[id]
		fmt.Printf("  %-16s %4d es  %s\n", u.ID, e.Price(u.Cost, true), u.Text)
	}
	fmt.Println("Consumables (buy item <id>):")
	for id, c := range game.Consumables {
		fmt.Printf("  %-16s %4d es  %s\n", id, e.Price(c.Cost, false), c.Text)
	}
	fmt.Println("Boons (buy boon <id>):")
	for id, p := range game.Passives {
		if p.Curse {
			continue
		}
		fmt.Printf("  %-16s %4d es  %s\n", id, e.Price(p.Cost, false), p.Text)
	}
	fmt.Println("Hacks (meta <id>, costs fragments):")
	for _, id := range game.MetaOrder {
		m := game.MetaUpgrades[id]
		owned := ""
		if e.Global.HasHack(id) {
			owned = " (owned)"
		}
		fmt.Printf("  %-16s %4d fr  %s%s\n", m.ID, m.Cost, m.Text, owned)
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  bet <n>                    stake credits and deal")
	fmt.Println("  hit | stand | double       play your hand")
	fmt.Println("  use <slot>                 use an inventory item")
	fmt.Println("  forge | leave              open/close the forge")
	fmt.Println("  buy upgrade <id> <card>    forge an upgrade onto a card")
	fmt.Println("  buy item <id>              buy a consumable")
	fmt.Println("  buy boon <id>              buy a passive boon")
	fmt.Println("  purge <card>               remove a card from the deck")
	fmt.Println("  pick <id>                  choose an offered unlock")
	fmt.Println("  meta <id>                  spend fragments on a hack")
	fmt.Println("  deck | shop | log          inspect the deck, the shop, or the event log")
	fmt.Println("  start                      abandon the run and start over")
	fmt.Println("  quit")
}
