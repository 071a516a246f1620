package presence

import (
	"time"

	"github.com/moundworks/diceball/internal/models"
	"github.com/moundworks/diceball/internal/services/session"
)

// DefaultGrace is how long a disconnected player has to return before
// the session is forfeited on their behalf.
const DefaultGrace = 60 * time.Second

// Notifier receives the outcome of a grace expiry so the transport can
// tell the surviving player. Implementations must not block.
type Notifier interface {
	// SessionForfeited fires after a disconnect grace period expired
	// and the session was forfeited
	SessionForfeited(sess *models.Session)
}

// Config holds configuration for the presence service
type Config struct {
	// Grace is the disconnect grace period; DefaultGrace when zero
	Grace time.Duration

	// Service dependencies
	SessionService session.Service

	// Notifier is told about grace expiries; optional
	Notifier Notifier
}

// HandleConnectInput contains parameters for a connect event
type HandleConnectInput struct {
	// SessionID is the session the connection belongs to
	SessionID string

	// UserID is the participant who connected
	UserID string
}

// HandleConnectOutput contains the result of a connect event
type HandleConnectOutput struct {
	// Session is the session after the liveness update
	Session *models.Session
}

// HandleDisconnectInput contains parameters for a disconnect event
type HandleDisconnectInput struct {
	// SessionID is the session the connection belonged to
	SessionID string

	// UserID is the participant who disconnected
	UserID string
}

// HandleDisconnectOutput contains the result of a disconnect event
type HandleDisconnectOutput struct {
	// Session is the session after the liveness update
	Session *models.Session
}
