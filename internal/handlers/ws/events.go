package ws

import (
	"encoding/json"

	"github.com/moundworks/diceball/internal/models"
)

// Client event types.
const (
	EventJoin    = "join"
	EventRoll    = "roll"
	EventForfeit = "forfeit"
)

// Server event types.
const (
	EventState                = "state"
	EventRollResult           = "rollResult"
	EventEnded                = "ended"
	EventOpponentConnected    = "opponentConnected"
	EventOpponentDisconnected = "opponentDisconnected"
	EventError                = "error"
)

// Envelope is the wire frame for every event in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// JoinData is the payload of a client join event. Exactly one of
// SessionID or JoinCode must be set.
type JoinData struct {
	SessionID string `json:"session_id,omitempty"`
	JoinCode  string `json:"join_code,omitempty"`
	RosterID  string `json:"roster_id"`
}

// StateData is the payload of a state event.
type StateData struct {
	Session *models.Session `json:"session"`
}

// RollResultData is the payload of a rollResult event.
type RollResultData struct {
	Move    *models.Move    `json:"move"`
	Session *models.Session `json:"session"`
}

// EndedData is the payload of an ended event.
type EndedData struct {
	Session      *models.Session `json:"session"`
	WinnerUserID string          `json:"winner_user_id,omitempty"`
	Reason       string          `json:"reason"`
}

// Ended event reasons.
const (
	ReasonCompleted  = "completed"
	ReasonForfeit    = "forfeit"
	ReasonDisconnect = "disconnect_timeout"
	ReasonAbandoned  = "abandoned"
)

// PresenceData is the payload of opponentConnected and
// opponentDisconnected events. TimeoutSeconds is set on disconnects
// and carries the grace window before the absent player forfeits.
type PresenceData struct {
	UserID         string `json:"user_id"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// ErrorData is the payload of an error event.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// marshalEvent renders a typed payload into an envelope frame. Encoding
// failures surface as an error event so the connection stays usable.
func marshalEvent(eventType string, data any) []byte {
	payload, err := json.Marshal(data)
	if err != nil {
		fallback, _ := json.Marshal(Envelope{Type: EventError})
		return fallback
	}
	frame, err := json.Marshal(Envelope{Type: eventType, Data: payload})
	if err != nil {
		fallback, _ := json.Marshal(Envelope{Type: EventError})
		return fallback
	}
	return frame
}
