package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"rlcsim/internal/logging"
	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
)

// poleRequest is one slider movement from the client: a circuit, its fixed
// parameters, and the new value of the dragged component.
type poleRequest struct {
	CircuitID string             `json:"circuitId"`
	Params    map[string]float64 `json:"params"`
	Param     string             `json:"param"`
	Value     float64            `json:"value"`
}

// poleFrame is the recomputed pole set broadcast to every connected client.
type poleFrame struct {
	CircuitID string             `json:"circuitId"`
	Param     string             `json:"param"`
	Value     float64            `json:"value"`
	Poles     []analysis.Complex `json:"poles"`
	Zeros     []analysis.Complex `json:"zeros"`
	Stability analysis.Stability `json:"stability"`
}

type hub struct {
	log       *logging.Logger
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte
}

func newHub(log *logging.Logger) *hub {
	h := &hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, 16),
	}
	go h.run()
	return h
}

func (h *hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
		case conn := <-h.remove:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.log.Warnf("failed to send frame to websocket client: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

func (h *hub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("websocket upgrade failed: %v", err)
		return
	}

	h.register <- conn

	go func() {
		defer func() { h.remove <- conn }()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Warnf("websocket error: %v", err)
				}
				break
			}

			var req poleRequest
			if err := json.Unmarshal(message, &req); err != nil {
				continue
			}
			if frame := h.computeFrame(&req); frame != nil {
				h.broadcastFrame(frame)
			}
		}
	}()
}

func (h *hub) computeFrame(req *poleRequest) *poleFrame {
	topo, err := circuit.Lookup(req.CircuitID)
	if err != nil || topo.Order < 2 {
		return nil
	}

	p := make(circuit.Params, len(req.Params)+1)
	for k, v := range req.Params {
		p[k] = v
	}
	p[req.Param] = req.Value

	poles, zeros, stab, err := analysis.PoleZero(topo, p)
	if err != nil {
		return nil
	}
	return &poleFrame{
		CircuitID: req.CircuitID,
		Param:     req.Param,
		Value:     req.Value,
		Poles:     poles,
		Zeros:     zeros,
		Stability: stab,
	}
}

func (h *hub) broadcastFrame(frame *poleFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.log.Errorf("failed to marshal pole frame: %v", err)
		return
	}
	h.broadcast <- data
}
