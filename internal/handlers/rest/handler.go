// Package rest is the synchronous fallback transport for clients that
// cannot hold a websocket open. It exposes the same session operations
// over plain request/response JSON.
package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/moundworks/diceball/internal/services/identity"
	"github.com/moundworks/diceball/internal/services/session"
)

// HandlerError is a custom error type for REST handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         HandlerError = "config cannot be nil"
	ErrNilSessionService HandlerError = "session service cannot be nil"
	ErrNilVerifier       HandlerError = "identity verifier cannot be nil"
)

// Config holds configuration for the REST handler
type Config struct {
	// Service dependencies
	SessionService session.Service
	Identity       identity.Verifier
}

// Handler serves the session API over HTTP.
type Handler struct {
	cfg *Config
	mux *http.ServeMux
}

// NewHandler creates a new REST handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Identity == nil {
		return nil, ErrNilVerifier
	}

	h := &Handler{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("POST /sessions/{id}/join", h.joinSession)
	mux.HandleFunc("POST /sessions/join", h.joinByCode)
	mux.HandleFunc("POST /sessions/{id}/roll", h.roll)
	mux.HandleFunc("POST /sessions/{id}/forfeit", h.forfeit)
	mux.HandleFunc("DELETE /sessions/{id}", h.cancelSession)
	mux.HandleFunc("GET /sessions/{id}", h.getSession)
	h.mux = mux

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// authenticate resolves the bearer token to a user ID, writing the 401
// itself on failure.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	credential := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	userID, err := h.cfg.Identity.Verify(r.Context(), credential)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing or invalid credential")
		return "", false
	}
	return userID, true
}

type createSessionRequest struct {
	RosterID string `json:"roster_id"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}

	output, err := h.cfg.SessionService.CreateSession(r.Context(), &session.CreateSessionInput{
		UserID:   userID,
		RosterID: req.RosterID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Session)
}

type joinSessionRequest struct {
	JoinCode string `json:"join_code,omitempty"`
	RosterID string `json:"roster_id"`
}

func (h *Handler) joinSession(w http.ResponseWriter, r *http.Request) {
	h.join(w, r, r.PathValue("id"))
}

func (h *Handler) joinByCode(w http.ResponseWriter, r *http.Request) {
	h.join(w, r, "")
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request, sessionID string) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "malformed request body")
		return
	}
	if sessionID == "" && req.JoinCode == "" {
		respondError(w, http.StatusBadRequest, "bad_request", "a session id or join code is required")
		return
	}

	output, err := h.cfg.SessionService.JoinSession(r.Context(), &session.JoinSessionInput{
		SessionID: sessionID,
		JoinCode:  req.JoinCode,
		UserID:    userID,
		RosterID:  req.RosterID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) roll(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	output, err := h.cfg.SessionService.ApplyMove(r.Context(), &session.ApplyMoveInput{
		SessionID: r.PathValue("id"),
		UserID:    userID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"move":    output.Move,
		"session": output.Session,
	})
}

func (h *Handler) forfeit(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	output, err := h.cfg.SessionService.Forfeit(r.Context(), &session.ForfeitInput{
		SessionID: r.PathValue("id"),
		UserID:    userID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) cancelSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	output, err := h.cfg.SessionService.CancelSession(r.Context(), &session.CancelSessionInput{
		SessionID: r.PathValue("id"),
		UserID:    userID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	output, err := h.cfg.SessionService.GetSession(r.Context(), &session.GetSessionInput{
		SessionID: r.PathValue("id"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !output.Session.Participant(userID) {
		respondServiceError(w, session.ErrNotParticipant)
		return
	}

	respondJSON(w, http.StatusOK, output.Session)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("rest: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]errorBody{
		"error": {Code: code, Message: message},
	})
}

// respondServiceError translates the session error taxonomy to HTTP.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, session.ErrNotYourTurn):
		respondError(w, http.StatusConflict, "not_your_turn", err.Error())
	case errors.Is(err, session.ErrMoveConflict):
		respondError(w, http.StatusConflict, "move_conflict", err.Error())
	case errors.Is(err, session.ErrInvalidSessionState):
		respondError(w, http.StatusConflict, "invalid_session_state", err.Error())
	case errors.Is(err, session.ErrActiveSessionExists):
		respondError(w, http.StatusConflict, "active_session_exists", err.Error())
	case errors.Is(err, session.ErrSelfJoin):
		respondError(w, http.StatusConflict, "self_join", err.Error())
	case errors.Is(err, session.ErrNotParticipant):
		respondError(w, http.StatusForbidden, "not_participant", err.Error())
	case errors.Is(err, session.ErrNotCreator):
		respondError(w, http.StatusForbidden, "not_creator", err.Error())
	case errors.Is(err, session.ErrRosterNotOwned):
		respondError(w, http.StatusForbidden, "roster_not_owned", err.Error())
	case errors.Is(err, session.ErrRosterIncomplete):
		respondError(w, http.StatusUnprocessableEntity, "roster_incomplete", err.Error())
	default:
		log.Printf("rest: internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal", "something went wrong")
	}
}
