package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/okn1ce/VoidBJ/internal/game"
)

// ActionMessage is a client request over the WebSocket. Type selects the
// engine action; the remaining fields carry its arguments.
type ActionMessage struct {
	Type   string `json:"type"`
	Amount int    `json:"amount,omitempty"`
	Index  int    `json:"index,omitempty"`
	ID     string `json:"id,omitempty"`
	CardID string `json:"card_id,omitempty"`
}

// CatalogUpgradeView is one shop upgrade for /api/catalog.
type CatalogUpgradeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
	Cost int    `json:"cost"`
}

// CatalogView is the static rule data served to clients.
type CatalogView struct {
	Upgrades    []CatalogUpgradeView `json:"upgrades"`
	Consumables []*game.Consumable   `json:"consumables"`
	Passives    []*game.Passive      `json:"passives"`
	Metas       []*game.MetaUpgrade  `json:"metas"`
	Debuffs     map[int]string       `json:"debuffs"`
}

// Server exposes the engine over HTTP: JSON snapshots plus a WebSocket
// action endpoint. All engine access is serialized through a single mutex;
// the engine itself is a turn-based state machine with no internal locking.
type Server struct {
	mu     sync.Mutex
	engine *game.Engine
	mux    *http.ServeMux
}

// NewServer wraps an engine.
func NewServer(engine *game.Engine) *Server {
	s := &Server{engine: engine, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/state", s.handleState)
	s.mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := BuildStateView(s.engine)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := CatalogView{Debuffs: game.HouseDebuffs}
	for _, id := range game.UpgradeOrder {
		u := game.Upgrades[id]
		catalog.Upgrades = append(catalog.Upgrades, CatalogUpgradeView{
			ID: u.ID, Name: u.Name, Text: u.Text, Cost: u.Cost,
		})
	}
	for _, c := range game.Consumables {
		catalog.Consumables = append(catalog.Consumables, c)
	}
	for _, p := range game.Passives {
		catalog.Passives = append(catalog.Passives, p)
	}
	for _, id := range game.MetaOrder {
		catalog.Metas = append(catalog.Metas, game.MetaUpgrades[id])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	// Initial snapshot on connect.
	if err := s.writeState(ctx, conn); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ActionMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			conn.Close(websocket.StatusPolicyViolation, "malformed action message")
			return
		}

		s.mu.Lock()
		s.dispatch(msg)
		s.mu.Unlock()

		if err := s.writeState(ctx, conn); err != nil {
			return
		}
	}
}

// dispatch maps an action message onto the engine surface. Unknown types are
// ignored; the snapshot reply carries whatever status the engine set.
func (s *Server) dispatch(msg ActionMessage) {
	e := s.engine
	switch msg.Type {
	case "start_run":
		e.StartRun()
	case "bet":
		e.PlaceBet(msg.Amount)
	case "hit":
		e.Hit()
	case "stand":
		e.Stand()
	case "double":
		e.DoubleDown()
	case "advance":
		e.Advance()
	case "use":
		e.UseConsumable(msg.Index)
	case "enter_forge":
		e.EnterForge()
	case "leave_forge":
		e.LeaveForge()
	case "buy_upgrade":
		e.BuyUpgrade(msg.ID, msg.CardID)
	case "buy_consumable":
		e.BuyConsumable(msg.ID)
	case "buy_passive":
		e.BuyPassive(msg.ID)
	case "purge":
		e.PurgeCard(msg.CardID)
	case "select_upgrade":
		e.SelectUpgrade(msg.ID)
	case "buy_meta":
		e.BuyMetaUpgrade(msg.ID)
	case "state":
		// snapshot-only request
	}
}

func (s *Server) writeState(ctx context.Context, conn *websocket.Conn) error {
	s.mu.Lock()
	view := BuildStateView(s.engine)
	s.mu.Unlock()

	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}
