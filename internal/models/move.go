package models

import (
	"time"
)

// Move is one resolved at-bat. Moves are append-only: once created they
// are never mutated.
type Move struct {
	// ID is the unique identifier for the move
	ID string `json:"id"`

	// SessionID is the session the move belongs to
	SessionID string `json:"session_id"`

	// UserID is the batter's owner (the player who rolled)
	UserID string `json:"user_id"`

	// Die1 and Die2 are the dice values rolled
	Die1 int `json:"die1"`
	Die2 int `json:"die2"`

	// Outcome is the resolved at-bat outcome kind
	Outcome string `json:"outcome"`

	// RunsScored is how many runs the outcome plated
	RunsScored int `json:"runs_scored"`

	// OutsRecorded is how many outs the outcome added (0 or 1)
	OutsRecorded int `json:"outs_recorded"`

	// BatterRef identifies the batter within the rolling player's roster
	BatterRef string `json:"batter_ref"`

	// PitcherRef identifies the opposing pitcher
	PitcherRef string `json:"pitcher_ref"`

	// Description is the human-readable play call
	Description string `json:"description"`

	// StateAfter is a snapshot of the game state after the move
	StateAfter *GameState `json:"state_after"`

	// Timestamp is when the move was applied
	Timestamp time.Time `json:"timestamp"`
}
