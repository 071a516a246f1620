package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is how long a single write may take
	writeWait = 10 * time.Second

	// pongWait is how long to wait for the next pong
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound frames; client events are tiny
	maxMessageSize = 4096

	// sendBuffer is the per-client outbound queue depth
	sendBuffer = 16
)

// Client is one websocket connection bound to a verified user. A client
// belongs to at most one session room at a time.
type Client struct {
	handler *Handler
	conn    *websocket.Conn
	send    chan []byte

	userID string

	// sessionID is set once the client is attached to a room. It is
	// only written from the read pump goroutine.
	sessionID string
}

func newClient(handler *Handler, conn *websocket.Conn, userID string) *Client {
	return &Client{
		handler: handler,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		userID:  userID,
	}
}

// enqueue queues one frame for the client, dropping it if the write
// pump has fallen too far behind.
func (c *Client) enqueue(frame []byte) {
	select {
	case c.send <- frame:
	default:
	}
}

func (c *Client) sendEvent(eventType string, data any) {
	c.enqueue(marshalEvent(eventType, data))
}

// readPump relays inbound events to the handler. It runs on the
// connection's request goroutine and owns all reads.
func (c *Client) readPump() {
	defer func() {
		c.handler.disconnect(c)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read error for user %s: %v", c.userID, err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.sendEvent(EventError, ErrorData{Code: "bad_envelope", Message: "malformed event"})
			continue
		}
		c.handler.handleEvent(c, &env)
	}
}

// writePump owns all writes on the connection, including pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
