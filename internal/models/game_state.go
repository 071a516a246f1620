package models

// Half identifies which half of the inning is being played.
type Half string

const (
	// HalfTop is the visiting team's at-bat
	HalfTop Half = "top"

	// HalfBottom is the home team's at-bat
	HalfBottom Half = "bottom"
)

// BaseState holds the three base occupancy flags. The zero value is
// bases empty.
type BaseState struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
	Third  bool `json:"third"`
}

// Runners returns how many bases are occupied.
func (b BaseState) Runners() int {
	count := 0
	if b.First {
		count++
	}
	if b.Second {
		count++
	}
	if b.Third {
		count++
	}
	return count
}

// Loaded reports whether all three bases are occupied.
func (b BaseState) Loaded() bool {
	return b.First && b.Second && b.Third
}

// GameState is the authoritative scoreboard for a session. It is owned
// by the session coordinator and mutated only through move application.
type GameState struct {
	// Inning is the current inning number, starting at 1
	Inning int `json:"inning"`

	// Half is which half of the inning is being played
	Half Half `json:"half"`

	// Outs is the number of outs in the current half-inning (0-2 while live)
	Outs int `json:"outs"`

	// AwayScore is the visiting (joining) team's run total
	AwayScore int `json:"away_score"`

	// HomeScore is the home (creating) team's run total
	HomeScore int `json:"home_score"`

	// Bases is the current base occupancy
	Bases BaseState `json:"bases"`

	// AwayBatterIndex is the next lineup slot due up for the visiting team
	AwayBatterIndex int `json:"away_batter_index"`

	// HomeBatterIndex is the next lineup slot due up for the home team
	HomeBatterIndex int `json:"home_batter_index"`

	// GameOver is set once a terminal condition has been reached
	GameOver bool `json:"game_over"`

	// WinnerUserID is the winning participant, set only when GameOver is true
	WinnerUserID string `json:"winner_user_id,omitempty"`
}

// NewGameState returns the state for the start of a game: top of the
// first, nobody on, nobody out.
func NewGameState() *GameState {
	return &GameState{
		Inning: 1,
		Half:   HalfTop,
	}
}

// Clone returns a deep copy of the state. Move records snapshot the
// state via Clone so later mutation cannot reach back into the log.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	copied := *g
	return &copied
}
