package session

import (
	"context"

	"github.com/moundworks/diceball/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/moundworks/diceball/internal/repositories/session Repository

// Repository defines the persistence contract for game sessions
type Repository interface {
	// SaveSession persists a session and maintains its secondary indexes
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByJoinCode retrieves the waiting session holding a join code
	GetSessionByJoinCode(ctx context.Context, input *GetSessionByJoinCodeInput) (*models.Session, error)

	// GetOpenSessionByUser retrieves the user's waiting or active session
	GetOpenSessionByUser(ctx context.Context, input *GetOpenSessionByUserInput) (*models.Session, error)

	// DeleteSession removes a session and its indexes
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
