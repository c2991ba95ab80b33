package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/okn1ce/VoidBJ/internal/game"
	gamelog "github.com/okn1ce/VoidBJ/internal/log"
	"github.com/okn1ce/VoidBJ/internal/web"
)

// activeEngine is the singleton engine (one per stdio process).
var activeEngine *game.Engine

// eventPos tracks how many log events have already been reported, so every
// tool response carries exactly the events it caused.
var eventPos int

// SetEngine installs the engine the tools operate on.
func SetEngine(e *game.Engine) {
	activeEngine = e
	eventPos = len(e.Events())
}

// RegisterTools adds all run tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(simpleTool("start_run",
		"Start a new run. Applies unlocked permanent hacks to the starting resources. "+
			"Overwrites any run in progress."), handleSimple((*game.Engine).StartRun))
	s.AddTool(mcp.NewTool("place_bet",
		mcp.WithDescription("Place a bet and deal the opening hands. Valid between rounds. "+
			"The dealer then plays out automatically when the round reaches its turn."),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Credits to stake; must not exceed your credits")),
	), handlePlaceBet)
	s.AddTool(simpleTool("hit", "Draw one card into your hand. Valid while playing."), handleSimple((*game.Engine).Hit))
	s.AddTool(simpleTool("stand", "End your turn; the dealer plays out. Valid while playing."), handleSimple((*game.Engine).Stand))
	s.AddTool(simpleTool("double_down",
		"Double the bet, draw exactly one card, then the dealer plays out. "+
			"Only on your first two cards, with enough credits to cover the raise."), handleSimple((*game.Engine).DoubleDown))
	s.AddTool(mcp.NewTool("use_consumable",
		mcp.WithDescription("Use the inventory item in the given slot."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based inventory slot")),
	), handleUseConsumable)
	s.AddTool(simpleTool("enter_forge", "Open the forge (shop). Valid between rounds."), handleSimple((*game.Engine).EnterForge))
	s.AddTool(simpleTool("leave_forge", "Close the forge and return to the table."), handleSimple((*game.Engine).LeaveForge))
	s.AddTool(mcp.NewTool("buy_upgrade",
		mcp.WithDescription("Forge an unlocked upgrade onto a card in your deck. Card ids are in the state's deck list."),
		mcp.WithString("upgrade_id", mcp.Required(), mcp.Description("Upgrade catalog id")),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Target card id from the deck list")),
	), handleBuyUpgrade)
	s.AddTool(idTool("buy_consumable", "Buy a consumable into your inventory (max 3 slots)."), handleID((*game.Engine).BuyConsumable))
	s.AddTool(idTool("buy_passive", "Buy a boon. Curses cannot be bought."), handleID((*game.Engine).BuyPassive))
	s.AddTool(mcp.NewTool("purge_card",
		mcp.WithDescription("Permanently remove a card from your deck. Gets pricier as the deck shrinks."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Card id from the deck list")),
	), handlePurgeCard)
	s.AddTool(idTool("select_upgrade", "Pick one of the offered upgrade unlocks after a level-up."), handleID((*game.Engine).SelectUpgrade))
	s.AddTool(idTool("buy_meta_upgrade", "Spend fragments on a permanent hack for future runs."), handleID((*game.Engine).BuyMetaUpgrade))
	s.AddTool(simpleTool("get_state", "Get the current run and meta state without acting. Read-only."), handleGetState)
}

func simpleTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name, mcp.WithDescription(desc))
}

func idTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		mcp.WithString("id", mcp.Required(), mcp.Description("Catalog id")),
	)
}

// ToolResponse is the JSON payload returned by every tool.
type ToolResponse struct {
	State  web.StateView `json:"state"`
	Events []string      `json:"events,omitempty"`
}

// respond settles any pending dealer turn and serializes the resulting state
// with the events this call produced. Agents never pace the dealer; stepwise
// play is a presentation concern.
func respond() *mcp.CallToolResult {
	activeEngine.AdvanceUntilResolved()

	all := activeEngine.Events()
	var lines []string
	for _, e := range all[eventPos:] {
		lines = append(lines, gamelog.FormatEvent(e))
	}
	eventPos = len(all)

	resp := ToolResponse{State: web.BuildStateView(activeEngine), Events: lines}
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return mcp.NewToolResultErrorf("marshal state: %v", err)
	}
	return mcp.NewToolResultText(string(data))
}

func handleSimple(action func(*game.Engine)) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if activeEngine == nil {
			return mcp.NewToolResultError("No engine configured."), nil
		}
		action(activeEngine)
		return respond(), nil
	}
}

func handleID(action func(*game.Engine, string)) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if activeEngine == nil {
			return mcp.NewToolResultError("No engine configured."), nil
		}
		id := request.GetString("id", "")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		action(activeEngine, id)
		return respond(), nil
	}
}

func handlePlaceBet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeEngine == nil {
		return mcp.NewToolResultError("No engine configured."), nil
	}
	amount := request.GetInt("amount", 0)
	if amount <= 0 {
		return mcp.NewToolResultError("amount must be a positive number"), nil
	}
	activeEngine.PlaceBet(amount)
	return respond(), nil
}

func handleUseConsumable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeEngine == nil {
		return mcp.NewToolResultError("No engine configured."), nil
	}
	activeEngine.UseConsumable(request.GetInt("index", -1))
	return respond(), nil
}

func handleBuyUpgrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeEngine == nil {
		return mcp.NewToolResultError("No engine configured."), nil
	}
	activeEngine.BuyUpgrade(request.GetString("upgrade_id", ""), request.GetString("card_id", ""))
	return respond(), nil
}

func handlePurgeCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeEngine == nil {
		return mcp.NewToolResultError("No engine configured."), nil
	}
	activeEngine.PurgeCard(request.GetString("card_id", ""))
	return respond(), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeEngine == nil {
		return mcp.NewToolResultError("No engine configured."), nil
	}
	return respond(), nil
}
