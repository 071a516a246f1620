package ws

import (
	"sync"

	"github.com/moundworks/diceball/internal/models"
)

// Hub tracks which clients are in which session room. It implements
// presence.Notifier so grace-period forfeits reach the surviving player.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: map[string]map[*Client]struct{}{},
	}
}

func (h *Hub) add(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		room = map[*Client]struct{}{}
		h.rooms[sessionID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) remove(sessionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, sessionID)
	}
}

// broadcast queues a frame for every client in the room. A client whose
// send buffer is full is skipped; its write pump is already wedged and
// the read deadline will reap it.
func (h *Hub) broadcast(sessionID string, frame []byte) {
	h.broadcastExcept(sessionID, nil, frame)
}

func (h *Hub) broadcastExcept(sessionID string, except *Client, frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[sessionID] {
		if c == except {
			continue
		}
		select {
		case c.send <- frame:
		default:
		}
	}
}

// SessionForfeited implements presence.Notifier. It fires after a
// disconnect grace period expired and the session was forfeited.
func (h *Hub) SessionForfeited(sess *models.Session) {
	h.broadcast(sess.ID, marshalEvent(EventEnded, EndedData{
		Session:      sess,
		WinnerUserID: sess.WinnerUserID,
		Reason:       ReasonDisconnect,
	}))
}
