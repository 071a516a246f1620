package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/moundworks/diceball/internal/models"
)

// ErrRosterNotFound is returned for an unknown roster ID.
var ErrRosterNotFound = errors.New("roster not found")

// StaticRoster is one roster entry in the static table.
type StaticRoster struct {
	// OwnerUserID is the user the roster belongs to; empty means anyone
	// may play it
	OwnerUserID string

	// Name is the roster's display name
	Name string

	// Lineup is the batting order; GetBatter wraps around it
	Lineup []models.BattingProfile

	// Pitcher is the roster's pitcher
	Pitcher models.PitchingProfile
}

// Static is a development roster source backed by an in-memory table.
// Production deployments wire the real roster collaborator instead.
type Static struct {
	rosters map[string]StaticRoster
}

// NewStatic creates a static roster source. A nil table starts empty.
func NewStatic(rosters map[string]StaticRoster) *Static {
	if rosters == nil {
		rosters = map[string]StaticRoster{}
	}
	return &Static{rosters: rosters}
}

// IsOwnedBy reports whether the user owns the roster
func (s *Static) IsOwnedBy(_ context.Context, userID, rosterID string) (bool, error) {
	roster, ok := s.rosters[rosterID]
	if !ok {
		return false, nil
	}
	return roster.OwnerUserID == "" || roster.OwnerUserID == userID, nil
}

// IsComplete reports whether the roster fields a full lineup, and
// returns the roster's display name
func (s *Static) IsComplete(_ context.Context, rosterID string) (bool, string, error) {
	roster, ok := s.rosters[rosterID]
	if !ok {
		return false, "", ErrRosterNotFound
	}
	if len(roster.Lineup) == 0 || roster.Pitcher.PlayerRef == "" {
		return false, roster.Name, nil
	}
	return true, roster.Name, nil
}

// GetBatter returns the batting profile for a lineup slot, wrapping the
// index into the lineup
func (s *Static) GetBatter(_ context.Context, rosterID string, lineupIndex int) (models.BattingProfile, error) {
	roster, ok := s.rosters[rosterID]
	if !ok {
		return models.BattingProfile{}, ErrRosterNotFound
	}
	if len(roster.Lineup) == 0 {
		return models.BattingProfile{}, fmt.Errorf("roster %s has no lineup", rosterID)
	}
	return roster.Lineup[lineupIndex%len(roster.Lineup)], nil
}

// GetPitcher returns the roster's current pitcher profile
func (s *Static) GetPitcher(_ context.Context, rosterID string) (models.PitchingProfile, error) {
	roster, ok := s.rosters[rosterID]
	if !ok {
		return models.PitchingProfile{}, ErrRosterNotFound
	}
	return roster.Pitcher, nil
}
