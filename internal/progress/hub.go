// Package progress broadcasts assign.SlotEvent updates to subscribed HTTP
// clients over WebSocket, mirroring the shape of the teacher's
// internal/websocket.Hub (client registry, buffered broadcast channel,
// register/unregister channels, one goroutine owning the maps). It is the
// Go-native analogue of the distillation's out-of-scope "progress display":
// an ambient concern of the API layer, never of the core solver itself.
package progress

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/fm-teamselect/internal/assign"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one subscribed WebSocket connection watching a single run.
type Client struct {
	RunID string
	Conn  *websocket.Conn
	Send  chan []byte
	hub   *Hub
}

// Hub fans SlotEvents for a run out to every client subscribed to it.
type Hub struct {
	clients     map[*Client]bool
	runClients  map[string][]*Client
	broadcast   chan runMessage
	register    chan *Client
	unregister  chan *Client
	logger      *logrus.Logger
	mutex       sync.RWMutex
}

type runMessage struct {
	runID   string
	payload []byte
}

// NewHub creates a Hub. Call Run in its own goroutine before use.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		runClients: make(map[string][]*Client),
		broadcast:  make(chan runMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run owns the Hub's internal maps; it must run in its own goroutine for
// the lifetime of the process.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c] = true
			h.runClients[c.RunID] = append(h.runClients[c.RunID], c)
			h.mutex.Unlock()

		case c := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				peers := h.runClients[c.RunID]
				for i, other := range peers {
					if other == c {
						h.runClients[c.RunID] = append(peers[:i], peers[i+1:]...)
						break
					}
				}
			}
			h.mutex.Unlock()

		case msg := <-h.broadcast:
			// Lock (not RLock): a full send buffer prunes the dead client
			// from h.clients below, a write that must not race register/
			// unregister.
			h.mutex.Lock()
			for _, c := range h.runClients[msg.runID] {
				select {
				case c.Send <- msg.payload:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Serve upgrades r into a WebSocket subscriber watching runID.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, runID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := &Client{RunID: runID, Conn: conn, Send: make(chan []byte, 32), hub: h}
	h.register <- client
	go client.writePump()
	return nil
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.hub.unregister <- c
			return
		}
	}
}

// Observer returns an assign.SlotEvent callback that JSON-encodes each
// event and broadcasts it to clients subscribed to runID.
func (h *Hub) Observer(runID string) func(assign.SlotEvent) {
	return func(ev assign.SlotEvent) {
		payload, err := json.Marshal(ev)
		if err != nil {
			if h.logger != nil {
				h.logger.WithError(err).Warn("progress: failed to marshal slot event")
			}
			return
		}
		select {
		case h.broadcast <- runMessage{runID: runID, payload: payload}:
		default:
			if h.logger != nil {
				h.logger.Warn("progress: broadcast channel full, dropping slot event")
			}
		}
	}
}
