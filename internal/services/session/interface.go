package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/moundworks/diceball/internal/services/session Service

// Service defines the interface for session coordination
type Service interface {
	// CreateSession opens a new game room with the caller as the home player
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession seats the caller as the away player and starts the game
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// ApplyMove resolves one at-bat for the player on the clock
	ApplyMove(ctx context.Context, input *ApplyMoveInput) (*ApplyMoveOutput, error)

	// Forfeit concedes an active session; the opponent wins
	Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error)

	// CompleteSession marks an active session finished with the given winner
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// CancelSession abandons a waiting session; only the creator may cancel
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// SetConnected records a participant's liveness change
	SetConnected(ctx context.Context, input *SetConnectedInput) (*SetConnectedOutput, error)

	// GetSession retrieves a session by ID for a participant
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}
