package presence

// PresenceError is a custom error type for presence-related errors
type PresenceError string

// Error implements the error interface
func (e PresenceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         PresenceError = "config cannot be nil"
	ErrNilSessionService PresenceError = "session service cannot be nil"
)
