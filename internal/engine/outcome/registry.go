// Package outcome resolves one at-bat: two stat profiles plus a dice
// roll in, one outcome kind out. The registry is the single source of
// truth for every outcome's probability, stat sensitivity, base
// transition and play-call phrasings; adding an outcome means adding
// one entry here.
package outcome

import (
	"github.com/moundworks/diceball/internal/engine/baserunning"
	"github.com/moundworks/diceball/internal/models"
)

// Kind identifies one at-bat outcome.
type Kind string

const (
	KindSingle    Kind = "single"
	KindDouble    Kind = "double"
	KindTriple    Kind = "triple"
	KindHomeRun   Kind = "home_run"
	KindWalk      Kind = "walk"
	KindStrikeout Kind = "strikeout"
	KindGroundOut Kind = "ground_out"
	KindFlyOut    Kind = "fly_out"
)

// Kinds returns every outcome in registry order. Iteration over the
// registry always uses this order so that identical inputs land on
// identical outcomes.
func Kinds() []Kind {
	return []Kind{
		KindSingle,
		KindDouble,
		KindTriple,
		KindHomeRun,
		KindWalk,
		KindStrikeout,
		KindGroundOut,
		KindFlyOut,
	}
}

// Definition is one registry entry.
type Definition struct {
	// BaseProb is the outcome's share of a league-average matchup.
	// The BaseProbs of all registered outcomes sum to exactly 1.
	BaseProb float64

	// HelpsBatter marks outcomes the batter wants; they scale up with
	// batter quality and down with pitcher quality
	HelpsBatter bool

	// BatterMod rates the batter for this outcome, 1.0 at league average
	BatterMod func(models.BattingProfile) float64

	// PitcherMod rates the pitcher for this outcome, 1.0 at league average
	PitcherMod func(models.PitchingProfile) float64

	// Advance is the base-running transition applied on this outcome
	Advance baserunning.Transition

	// Outs is how many outs the outcome records
	Outs int

	// Descriptions are the play-call templates; each takes the batter name
	Descriptions []string
}

var registry = map[Kind]Definition{
	KindSingle: {
		BaseProb:    0.150,
		HelpsBatter: true,
		BatterMod:   contactBatterMod,
		PitcherMod:  contactPitcherMod,
		Advance:     baserunning.Single,
		Descriptions: []string{
			"%s lines a single into center field",
			"%s slaps a base hit through the right side",
			"%s drops a soft single into shallow left",
		},
	},
	KindDouble: {
		BaseProb:    0.080,
		HelpsBatter: true,
		BatterMod:   gapBatterMod,
		PitcherMod:  gapPitcherMod,
		Advance:     baserunning.Double,
		Descriptions: []string{
			"%s rips a double into the gap",
			"%s hooks one down the line for a stand-up double",
			"%s bounces a double off the wall",
		},
	},
	KindTriple: {
		BaseProb:    0.020,
		HelpsBatter: true,
		BatterMod:   powerBatterMod,
		PitcherMod:  gapPitcherMod,
		Advance:     baserunning.Triple,
		Descriptions: []string{
			"%s laces a triple into the corner",
			"%s flies around the bases with a triple to deep center",
		},
	},
	KindHomeRun: {
		BaseProb:    0.060,
		HelpsBatter: true,
		BatterMod:   homeRunBatterMod,
		PitcherMod:  homeRunPitcherMod,
		Advance:     baserunning.HomeRun,
		Descriptions: []string{
			"%s crushes one over the left field wall",
			"%s launches a no-doubter into the second deck",
			"%s golfs it out to dead center",
		},
	},
	KindWalk: {
		BaseProb:    0.090,
		HelpsBatter: true,
		BatterMod:   walkBatterMod,
		PitcherMod:  walkPitcherMod,
		Advance:     baserunning.Walk,
		Descriptions: []string{
			"%s lays off ball four and takes the walk",
			"%s works a full count and draws the free pass",
		},
	},
	KindStrikeout: {
		BaseProb:  0.220,
		BatterMod: strikeoutBatterMod,
		PitcherMod: strikeoutPitcherMod,
		Advance:   baserunning.Hold,
		Outs:      1,
		Descriptions: []string{
			"%s goes down swinging",
			"%s is frozen for strike three",
			"%s chases one in the dirt, strike three",
		},
	},
	KindGroundOut: {
		BaseProb:  0.200,
		BatterMod: outBatterMod,
		PitcherMod: outPitcherMod,
		Advance:   baserunning.Hold,
		Outs:      1,
		Descriptions: []string{
			"%s chops a grounder to short, thrown out at first",
			"%s rolls one over to second for the out",
		},
	},
	KindFlyOut: {
		BaseProb:  0.180,
		BatterMod: outBatterMod,
		PitcherMod: flyOutPitcherMod,
		Advance:   baserunning.Hold,
		Outs:      1,
		Descriptions: []string{
			"%s lofts a lazy fly ball to left",
			"%s skies one to center, hauled in on the track",
		},
	},
}

// Lookup returns the registry entry for a kind.
func Lookup(k Kind) (Definition, bool) {
	def, ok := registry[k]
	return def, ok
}

// Advance applies the kind's base-running transition.
func Advance(k Kind, bases models.BaseState) (models.BaseState, int) {
	def, ok := registry[k]
	if !ok {
		return bases, 0
	}
	return def.Advance(bases)
}

// Outs returns how many outs the kind records.
func Outs(k Kind) int {
	return registry[k].Outs
}
