package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/neonauction/auction-server/internal/auction"
)

// Hub fans room events out to websocket subscribers. It satisfies
// auction.EventSink; Publish is called under room locks so it never blocks,
// it only pushes onto per-client buffered channels and drops what does not
// fit.
type Hub struct {
	log zerolog.Logger

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:   log,
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[c.code]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[c.code] = clients
	}
	clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[c.code]
	if !ok {
		return
	}
	if _, registered := clients[c]; !registered {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, c.code)
	}
}

// Publish implements auction.EventSink. A client whose buffer is full is
// dropped rather than slowing the room down.
func (h *Hub) Publish(code string, ev auction.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Str("code", code).Msg("marshal event")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.rooms[code]
	for c := range clients {
		select {
		case c.send <- payload:
		default:
			delete(clients, c)
			close(c.send)
		}
	}
	if len(clients) == 0 {
		delete(h.rooms, code)
	}
}
