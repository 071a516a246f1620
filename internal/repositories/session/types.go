package session

import (
	"github.com/moundworks/diceball/internal/models"
)

// SaveSessionInput contains parameters for persisting a session
type SaveSessionInput struct {
	// Session is the session to persist
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// GetSessionByJoinCodeInput contains parameters for the join code lookup
type GetSessionByJoinCodeInput struct {
	// JoinCode is the short shareable code
	JoinCode string
}

// GetOpenSessionByUserInput contains parameters for the per-user lookup
type GetOpenSessionByUserInput struct {
	// UserID is the participant to look up
	UserID string
}

// DeleteSessionInput contains parameters for removing a session
type DeleteSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}
