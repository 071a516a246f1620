package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a game session.
// Transitions are monotonic: waiting -> active -> a terminal status.
type SessionStatus string

const (
	// SessionStatusWaiting indicates the creator is waiting for an opponent
	SessionStatusWaiting SessionStatus = "waiting"

	// SessionStatusActive indicates the game is in progress
	SessionStatusActive SessionStatus = "active"

	// SessionStatusCompleted indicates the game reached its natural end
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusForfeit indicates one side conceded, explicitly or by
	// disconnect timeout
	SessionStatusForfeit SessionStatus = "forfeit"

	// SessionStatusAbandoned indicates the creator cancelled before anyone joined
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// Terminal reports whether the status can never change again.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusForfeit || s == SessionStatusAbandoned
}

// PlayerSlot holds one participant's seat in a session.
type PlayerSlot struct {
	// UserID is the opaque identity of the participant
	UserID string `json:"user_id"`

	// RosterID references the roster the participant plays with
	RosterID string `json:"roster_id"`

	// RosterName is the display name of the roster
	RosterName string `json:"roster_name"`

	// Connected tracks websocket liveness
	Connected bool `json:"connected"`

	// LastActiveAt is the last time the participant acted or reconnected
	LastActiveAt time.Time `json:"last_active_at"`
}

// Session is one two-player game room.
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// JoinCode is the short shareable code used to join while waiting
	JoinCode string `json:"join_code"`

	// HomePlayer is the creator's slot; bats in the bottom half
	HomePlayer *PlayerSlot `json:"home_player"`

	// AwayPlayer is the joiner's slot; bats in the top half
	AwayPlayer *PlayerSlot `json:"away_player,omitempty"`

	// Status is the lifecycle state
	Status SessionStatus `json:"status"`

	// State is the authoritative game state
	State *GameState `json:"state"`

	// Moves is the append-only move log, oldest first
	Moves []*Move `json:"moves"`

	// WinnerUserID is set when the session reaches a terminal status with
	// a decided result
	WinnerUserID string `json:"winner_user_id,omitempty"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// StartedAt is when the second player joined
	StartedAt time.Time `json:"started_at,omitzero"`

	// EndedAt is when the session reached a terminal status
	EndedAt time.Time `json:"ended_at,omitzero"`

	// UpdatedAt is when the session was last persisted
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant reports whether the user occupies either slot.
func (s *Session) Participant(userID string) bool {
	if s.HomePlayer != nil && s.HomePlayer.UserID == userID {
		return true
	}
	if s.AwayPlayer != nil && s.AwayPlayer.UserID == userID {
		return true
	}
	return false
}

// Opponent returns the other participant's user ID, or "" if the user
// is not a participant or the other seat is empty.
func (s *Session) Opponent(userID string) string {
	if s.HomePlayer != nil && s.HomePlayer.UserID == userID {
		if s.AwayPlayer != nil {
			return s.AwayPlayer.UserID
		}
		return ""
	}
	if s.AwayPlayer != nil && s.AwayPlayer.UserID == userID && s.HomePlayer != nil {
		return s.HomePlayer.UserID
	}
	return ""
}

// Slot returns the participant's slot, or nil for a non-participant.
func (s *Session) Slot(userID string) *PlayerSlot {
	if s.HomePlayer != nil && s.HomePlayer.UserID == userID {
		return s.HomePlayer
	}
	if s.AwayPlayer != nil && s.AwayPlayer.UserID == userID {
		return s.AwayPlayer
	}
	return nil
}

// OnTheClock returns the user whose turn it is to roll. The visiting
// player bats in the top half, the home player in the bottom half.
func (s *Session) OnTheClock() string {
	if s.Status != SessionStatusActive || s.State == nil || s.State.GameOver {
		return ""
	}
	if s.State.Half == HalfTop {
		if s.AwayPlayer == nil {
			return ""
		}
		return s.AwayPlayer.UserID
	}
	if s.HomePlayer == nil {
		return ""
	}
	return s.HomePlayer.UserID
}
