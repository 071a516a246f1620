// Package roster is the contract for the external roster collaborator.
// Roster CRUD, player catalogs and stat ingestion live outside this
// service; the game core only needs ownership checks, completeness
// checks and per-at-bat stat snapshots.
package roster

import (
	"context"

	"github.com/moundworks/diceball/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/moundworks/diceball/internal/services/roster Service

// Service is implemented by the roster collaborator.
type Service interface {
	// IsOwnedBy reports whether the user owns the roster
	IsOwnedBy(ctx context.Context, userID, rosterID string) (bool, error)

	// IsComplete reports whether the roster fields a full lineup, and
	// returns the roster's display name
	IsComplete(ctx context.Context, rosterID string) (bool, string, error)

	// GetBatter returns the batting profile for a lineup slot. The
	// collaborator wraps the index into its lineup, so callers may pass
	// a monotonically increasing counter.
	GetBatter(ctx context.Context, rosterID string, lineupIndex int) (models.BattingProfile, error)

	// GetPitcher returns the roster's current pitcher profile
	GetPitcher(ctx context.Context, rosterID string) (models.PitchingProfile, error)
}
