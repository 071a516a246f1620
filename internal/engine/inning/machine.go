// Package inning owns the half-inning state machine. Apply is the
// single transition function: every move, no matter the outcome, flows
// through it, so turn structure and game-over conditions live in one
// place.
package inning

import (
	"github.com/moundworks/diceball/internal/models"
)

// finalInning is the inning from which a decided game can end; play
// continues past it only while tied.
const finalInning = 9

// Result reports where the game stands after a transition.
type Result int

const (
	// ResultLive means the game continues
	ResultLive Result = iota

	// ResultHomeWin means the game is over with the home team ahead
	ResultHomeWin

	// ResultAwayWin means the game is over with the away team ahead
	ResultAwayWin
)

// Apply credits the batting team's runs, records the outs, and
// evaluates half-inning flips, extra innings and game-over conditions.
// It is the only function that mutates inning structure.
func Apply(state *models.GameState, runs, outs int) Result {
	if state.GameOver {
		return terminalResult(state)
	}

	if state.Half == models.HalfTop {
		state.AwayScore += runs
	} else {
		state.HomeScore += runs
	}

	// Walk-off: a home lead any time from the bottom of the 9th on ends
	// the game immediately, without waiting for the third out.
	if state.Half == models.HalfBottom && state.Inning >= finalInning && state.HomeScore > state.AwayScore {
		state.GameOver = true
		return ResultHomeWin
	}

	state.Outs += outs
	if state.Outs < 3 {
		return ResultLive
	}

	// side retired
	state.Outs = 0
	state.Bases = models.BaseState{}

	if state.Half == models.HalfTop {
		state.Half = models.HalfBottom
		return ResultLive
	}

	if state.Inning >= finalInning && state.HomeScore != state.AwayScore {
		state.GameOver = true
		return terminalResult(state)
	}

	// next inning; ties keep extending the game
	state.Inning++
	state.Half = models.HalfTop
	return ResultLive
}

func terminalResult(state *models.GameState) Result {
	switch {
	case state.HomeScore > state.AwayScore:
		return ResultHomeWin
	case state.AwayScore > state.HomeScore:
		return ResultAwayWin
	default:
		return ResultLive
	}
}
