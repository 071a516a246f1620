package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     SessionError = "session not found"
	ErrActiveSessionExists SessionError = "user already has an open session"
	ErrRosterNotOwned      SessionError = "roster is not owned by the user"
	ErrRosterIncomplete    SessionError = "roster is incomplete"
	ErrSelfJoin            SessionError = "cannot join your own session"
	ErrInvalidSessionState SessionError = "invalid session state"
	ErrNotParticipant      SessionError = "user is not a participant in this session"
	ErrNotYourTurn         SessionError = "not your turn to roll"
	ErrMoveConflict        SessionError = "move conflicted with a concurrent update, try again"
	ErrNotCreator          SessionError = "only the creator can cancel a session"
	ErrJoinCodeExhausted   SessionError = "could not allocate a unique join code"
	ErrNilConfig           SessionError = "config cannot be nil"
	ErrNilRepository       SessionError = "session repository cannot be nil"
	ErrNilRosterService    SessionError = "roster service cannot be nil"
	ErrNilEngine           SessionError = "outcome engine cannot be nil"
	ErrNilDiceRoller       SessionError = "dice roller cannot be nil"
	ErrNilClock            SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator    SessionError = "UUID generator cannot be nil"
	ErrNilCodeGenerator    SessionError = "join code generator cannot be nil"
)
