package session

import (
	"github.com/moundworks/diceball/internal/common/clock"
	"github.com/moundworks/diceball/internal/common/joincode"
	"github.com/moundworks/diceball/internal/common/uuid"
	"github.com/moundworks/diceball/internal/dice"
	"github.com/moundworks/diceball/internal/engine/outcome"
	"github.com/moundworks/diceball/internal/models"
	sessionRepo "github.com/moundworks/diceball/internal/repositories/session"
	"github.com/moundworks/diceball/internal/services/roster"
)

// defaultJoinCodeAttempts bounds collision retries during creation.
const defaultJoinCodeAttempts = 5

// Config holds configuration for the session service
type Config struct {
	// JoinCodeAttempts bounds join code collision retries;
	// defaultJoinCodeAttempts when zero
	JoinCodeAttempts int

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	RosterService roster.Service
	Engine        *outcome.Engine
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	JoinCodes     joincode.Generator
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// UserID is the creator; they play as the home team
	UserID string

	// RosterID is the roster the creator plays with
	RosterID string
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// Session is the newly created waiting session
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a session. Exactly
// one of SessionID or JoinCode must be set.
type JoinSessionInput struct {
	// SessionID addresses the session directly
	SessionID string

	// JoinCode addresses a waiting session by its shareable code
	JoinCode string

	// UserID is the joining player; they play as the away team
	UserID string

	// RosterID is the roster the joiner plays with
	RosterID string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	// Session is the now-active session
	Session *models.Session
}

// ApplyMoveInput contains parameters for resolving one at-bat
type ApplyMoveInput struct {
	// SessionID is the session to move in
	SessionID string

	// UserID is the player requesting the roll
	UserID string
}

// ApplyMoveOutput contains the result of a resolved at-bat
type ApplyMoveOutput struct {
	// Move is the appended move record, including the state snapshot
	Move *models.Move

	// Session is the session after the move
	Session *models.Session
}

// ForfeitInput contains parameters for conceding a session
type ForfeitInput struct {
	// SessionID is the session to concede
	SessionID string

	// UserID is the conceding participant
	UserID string
}

// ForfeitOutput contains the result of a forfeit
type ForfeitOutput struct {
	// Session is the terminal session; the winner is the opponent
	Session *models.Session
}

// CompleteSessionInput contains parameters for completing a session
type CompleteSessionInput struct {
	// SessionID is the session to complete
	SessionID string

	// WinnerUserID is the winning participant
	WinnerUserID string
}

// CompleteSessionOutput contains the result of completing a session
type CompleteSessionOutput struct {
	// Session is the terminal session
	Session *models.Session
}

// CancelSessionInput contains parameters for cancelling a waiting session
type CancelSessionInput struct {
	// SessionID is the session to cancel
	SessionID string

	// UserID must be the creator
	UserID string
}

// CancelSessionOutput contains the result of cancelling a session
type CancelSessionOutput struct {
	// Session is the abandoned session
	Session *models.Session
}

// SetConnectedInput contains parameters for a liveness change
type SetConnectedInput struct {
	// SessionID is the session the participant belongs to
	SessionID string

	// UserID is the participant whose liveness changed
	UserID string

	// Connected is the new liveness flag
	Connected bool
}

// SetConnectedOutput contains the result of a liveness change
type SetConnectedOutput struct {
	// Session is the session after the update
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	// Session is the retrieved session
	Session *models.Session
}
