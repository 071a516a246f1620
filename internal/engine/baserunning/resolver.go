// Package baserunning holds the per-outcome base transition functions.
// Each function is pure: (occupancy before) -> (occupancy after, runs
// scored). The outcome registry binds one of these to every outcome
// kind, so the resolver never dispatches on the outcome itself.
package baserunning

import (
	"github.com/moundworks/diceball/internal/models"
)

// Transition advances runners for one resolved at-bat.
type Transition func(models.BaseState) (models.BaseState, int)

// HomeRun scores every runner plus the batter and clears the bases.
func HomeRun(b models.BaseState) (models.BaseState, int) {
	return models.BaseState{}, b.Runners() + 1
}

// Triple scores every runner; the batter stands on third.
func Triple(b models.BaseState) (models.BaseState, int) {
	return models.BaseState{Third: true}, b.Runners()
}

// Double scores runners from second and third, sends a runner on first
// to third, and puts the batter on second.
func Double(b models.BaseState) (models.BaseState, int) {
	runs := 0
	if b.Second {
		runs++
	}
	if b.Third {
		runs++
	}
	return models.BaseState{Second: true, Third: b.First}, runs
}

// Single scores a runner from third and moves everyone else up one
// base; the batter reaches first.
func Single(b models.BaseState) (models.BaseState, int) {
	runs := 0
	if b.Third {
		runs++
	}
	return models.BaseState{First: true, Second: b.First, Third: b.Second}, runs
}

// Walk puts the batter on first and advances only forced runners. A
// run scores only with the bases loaded.
func Walk(b models.BaseState) (models.BaseState, int) {
	if b.Loaded() {
		return b, 1
	}
	next := b
	if b.First {
		if b.Second {
			// second is forced to third; third must be empty here
			next.Third = true
		}
		next.Second = true
	}
	next.First = true
	return next, 0
}

// Hold leaves the runners where they are. Strikeouts and routine outs
// use it: no double plays, no sacrifice advancement in this model.
func Hold(b models.BaseState) (models.BaseState, int) {
	return b, 0
}
