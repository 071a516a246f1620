package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitingSessionFixture() *Session {
	return &Session{
		ID:       "session-1",
		JoinCode: "ABC234",
		HomePlayer: &PlayerSlot{
			UserID:   "user-home",
			RosterID: "roster-home",
		},
		Status:    SessionStatusWaiting,
		State:     NewGameState(),
		Moves:     []*Move{},
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSessionJSONOmitsUnsetTimestamps(t *testing.T) {
	raw, err := json.Marshal(waitingSessionFixture())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "created_at")
	assert.NotContains(t, fields, "started_at")
	assert.NotContains(t, fields, "ended_at")
}

func TestSessionJSONCarriesTimestampsOnceSet(t *testing.T) {
	sess := waitingSessionFixture()
	sess.Status = SessionStatusCompleted
	sess.StartedAt = time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC)
	sess.EndedAt = time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	raw, err := json.Marshal(sess)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "started_at")
	assert.Contains(t, fields, "ended_at")
}
