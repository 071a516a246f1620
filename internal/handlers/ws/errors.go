package ws

import (
	"errors"

	"github.com/moundworks/diceball/internal/services/identity"
	"github.com/moundworks/diceball/internal/services/session"
)

// HandlerError is a custom error type for websocket handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          HandlerError = "config cannot be nil"
	ErrNilSessionService  HandlerError = "session service cannot be nil"
	ErrNilPresenceService HandlerError = "presence service cannot be nil"
	ErrNilVerifier        HandlerError = "identity verifier cannot be nil"
)

// errorData maps a service error onto the wire taxonomy. Infrastructure
// errors are reported without their internals.
func errorData(err error) ErrorData {
	code := "internal"
	message := "something went wrong"

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		code, message = "session_not_found", err.Error()
	case errors.Is(err, session.ErrNotYourTurn):
		code, message = "not_your_turn", err.Error()
	case errors.Is(err, session.ErrMoveConflict):
		code, message = "move_conflict", err.Error()
	case errors.Is(err, session.ErrNotParticipant):
		code, message = "not_participant", err.Error()
	case errors.Is(err, session.ErrInvalidSessionState):
		code, message = "invalid_session_state", err.Error()
	case errors.Is(err, session.ErrSelfJoin):
		code, message = "self_join", err.Error()
	case errors.Is(err, session.ErrActiveSessionExists):
		code, message = "active_session_exists", err.Error()
	case errors.Is(err, session.ErrRosterNotOwned):
		code, message = "roster_not_owned", err.Error()
	case errors.Is(err, session.ErrRosterIncomplete):
		code, message = "roster_incomplete", err.Error()
	case errors.Is(err, session.ErrNotCreator):
		code, message = "not_creator", err.Error()
	case errors.Is(err, identity.ErrUnauthenticated):
		code, message = "unauthenticated", err.Error()
	}

	return ErrorData{Code: code, Message: message}
}
