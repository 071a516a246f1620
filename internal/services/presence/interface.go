package presence

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/moundworks/diceball/internal/services/presence Service

// Service tracks participant liveness and forfeits sessions whose
// player never returns within the grace period.
type Service interface {
	// HandleConnect records a participant coming online and cancels any
	// pending grace timer for them
	HandleConnect(ctx context.Context, input *HandleConnectInput) (*HandleConnectOutput, error)

	// HandleDisconnect records a participant going offline and arms the
	// grace timer
	HandleDisconnect(ctx context.Context, input *HandleDisconnectInput) (*HandleDisconnectOutput, error)

	// Grace returns the disconnect grace period, so transports can tell
	// the surviving player how long the clock runs
	Grace() time.Duration

	// Stop cancels all pending grace timers
	Stop()
}
