// Package ws is the realtime transport: one websocket per player, JSON
// event envelopes, rooms keyed by session ID.
package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/moundworks/diceball/internal/services/identity"
	"github.com/moundworks/diceball/internal/services/presence"
	"github.com/moundworks/diceball/internal/services/session"
)

// Config holds configuration for the websocket handler
type Config struct {
	// Service dependencies
	SessionService  session.Service
	PresenceService presence.Service
	Identity        identity.Verifier
}

// Handler upgrades connections and routes client events to the session
// and presence services.
type Handler struct {
	cfg      *Config
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *Config, hub *Hub) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}
	if cfg.PresenceService == nil {
		return nil, ErrNilPresenceService
	}
	if cfg.Identity == nil {
		return nil, ErrNilVerifier
	}
	if hub == nil {
		hub = NewHub()
	}

	return &Handler{
		cfg: cfg,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Hub returns the handler's room registry, for wiring as the presence
// notifier.
func (h *Handler) Hub() *Hub {
	return h.hub
}

// ServeHTTP verifies the credential, upgrades the connection and runs
// the client pumps. A session_id query parameter attaches the client to
// its existing session immediately; otherwise the client sends a join
// event.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := h.cfg.Identity.Verify(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for user %s: %v", userID, err)
		return
	}

	c := newClient(h, conn, userID)
	go c.writePump()

	if sessionID := r.URL.Query().Get("session_id"); sessionID != "" {
		if err := h.attach(r.Context(), c, sessionID); err != nil {
			c.sendEvent(EventError, errorData(err))
		}
	}

	c.readPump()
}

// attach puts a verified participant into their session's room, resends
// the current state and tells the opponent they are back.
func (h *Handler) attach(ctx context.Context, c *Client, sessionID string) error {
	output, err := h.cfg.SessionService.GetSession(ctx, &session.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}
	sess := output.Session
	if !sess.Participant(c.userID) {
		return session.ErrNotParticipant
	}

	c.sessionID = sessionID
	h.hub.add(sessionID, c)

	connOutput, err := h.cfg.PresenceService.HandleConnect(ctx, &presence.HandleConnectInput{
		SessionID: sessionID,
		UserID:    c.userID,
	})
	if err != nil {
		log.Printf("ws: presence connect failed for user %s: %v", c.userID, err)
	} else {
		sess = connOutput.Session
	}

	c.sendEvent(EventState, StateData{Session: sess})
	h.hub.broadcastExcept(sessionID, c, marshalEvent(EventOpponentConnected, PresenceData{
		UserID: c.userID,
	}))
	return nil
}

// handleEvent dispatches one inbound client event. It runs on the
// client's read pump goroutine.
func (h *Handler) handleEvent(c *Client, env *Envelope) {
	ctx := context.Background()

	switch env.Type {
	case EventJoin:
		h.handleJoin(ctx, c, env.Data)
	case EventRoll:
		h.handleRoll(ctx, c)
	case EventForfeit:
		h.handleForfeit(ctx, c)
	default:
		c.sendEvent(EventError, ErrorData{Code: "unknown_event", Message: "unknown event type: " + env.Type})
	}
}

func (h *Handler) handleJoin(ctx context.Context, c *Client, raw json.RawMessage) {
	if c.sessionID != "" {
		c.sendEvent(EventError, ErrorData{Code: "already_in_session", Message: "connection is already attached to a session"})
		return
	}

	var data JoinData
	if err := json.Unmarshal(raw, &data); err != nil {
		c.sendEvent(EventError, ErrorData{Code: "bad_payload", Message: "malformed join payload"})
		return
	}

	output, err := h.cfg.SessionService.JoinSession(ctx, &session.JoinSessionInput{
		SessionID: data.SessionID,
		JoinCode:  data.JoinCode,
		UserID:    c.userID,
		RosterID:  data.RosterID,
	})
	if err != nil {
		c.sendEvent(EventError, errorData(err))
		return
	}

	sess := output.Session
	c.sessionID = sess.ID
	h.hub.add(sess.ID, c)

	if _, err := h.cfg.PresenceService.HandleConnect(ctx, &presence.HandleConnectInput{
		SessionID: sess.ID,
		UserID:    c.userID,
	}); err != nil {
		log.Printf("ws: presence connect failed for user %s: %v", c.userID, err)
	}

	// both players see the game start
	h.hub.broadcast(sess.ID, marshalEvent(EventState, StateData{Session: sess}))
}

func (h *Handler) handleRoll(ctx context.Context, c *Client) {
	if c.sessionID == "" {
		c.sendEvent(EventError, ErrorData{Code: "no_session", Message: "connection is not attached to a session"})
		return
	}

	output, err := h.cfg.SessionService.ApplyMove(ctx, &session.ApplyMoveInput{
		SessionID: c.sessionID,
		UserID:    c.userID,
	})
	if err != nil {
		c.sendEvent(EventError, errorData(err))
		return
	}

	h.hub.broadcast(c.sessionID, marshalEvent(EventRollResult, RollResultData{
		Move:    output.Move,
		Session: output.Session,
	}))

	if output.Session.Status.Terminal() {
		h.hub.broadcast(c.sessionID, marshalEvent(EventEnded, EndedData{
			Session:      output.Session,
			WinnerUserID: output.Session.WinnerUserID,
			Reason:       ReasonCompleted,
		}))
	}
}

func (h *Handler) handleForfeit(ctx context.Context, c *Client) {
	if c.sessionID == "" {
		c.sendEvent(EventError, ErrorData{Code: "no_session", Message: "connection is not attached to a session"})
		return
	}

	output, err := h.cfg.SessionService.Forfeit(ctx, &session.ForfeitInput{
		SessionID: c.sessionID,
		UserID:    c.userID,
	})
	if err != nil {
		c.sendEvent(EventError, errorData(err))
		return
	}

	h.hub.broadcast(c.sessionID, marshalEvent(EventEnded, EndedData{
		Session:      output.Session,
		WinnerUserID: output.Session.WinnerUserID,
		Reason:       ReasonForfeit,
	}))
}

// disconnect runs when a client's read pump exits. It tells presence
// the player is gone and the opponent that the seat went dark.
func (h *Handler) disconnect(c *Client) {
	if c.sessionID == "" {
		return
	}

	h.hub.remove(c.sessionID, c)

	if _, err := h.cfg.PresenceService.HandleDisconnect(context.Background(), &presence.HandleDisconnectInput{
		SessionID: c.sessionID,
		UserID:    c.userID,
	}); err != nil {
		log.Printf("ws: presence disconnect failed for user %s: %v", c.userID, err)
	}

	h.hub.broadcast(c.sessionID, marshalEvent(EventOpponentDisconnected, PresenceData{
		UserID:         c.userID,
		TimeoutSeconds: int(h.cfg.PresenceService.Grace().Seconds()),
	}))
}
