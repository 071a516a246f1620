package outcome

import (
	"errors"

	"github.com/moundworks/diceball/internal/models"
)

// minProb is the floor applied to every outcome before the final
// renormalization, so no outcome is ever unreachable.
const minProb = 0.001

// DefaultBiasShift is the fraction of total probability mass moved
// between the out group and the hit group at the maximum dice bias.
// Reasonable values live in the 0.05-0.15 range.
const DefaultBiasShift = 0.15

// Config for the outcome engine
type Config struct {
	// BiasShift scales how strongly the dice total tilts the
	// distribution; DefaultBiasShift when zero
	BiasShift float64
}

// Engine converts a matchup plus a dice roll into an outcome.
type Engine struct {
	biasShift float64
}

// New creates an outcome engine.
func New(cfg *Config) (*Engine, error) {
	biasShift := DefaultBiasShift
	if cfg != nil && cfg.BiasShift != 0 {
		if cfg.BiasShift < 0 || cfg.BiasShift > 1 {
			return nil, errors.New("bias shift must be in (0, 1]")
		}
		biasShift = cfg.BiasShift
	}
	return &Engine{biasShift: biasShift}, nil
}

// Resolve picks one outcome for the at-bat. draw must be uniform in
// [0, 1); identical profiles, dice and draw always resolve to the same
// kind.
func (e *Engine) Resolve(batter models.BattingProfile, pitcher models.PitchingProfile, die1, die2 int, draw float64) Kind {
	kinds := Kinds()
	probs := e.Distribution(batter, pitcher, die1+die2)

	cumulative := 0.0
	for i, k := range kinds {
		cumulative += probs[i]
		if draw < cumulative {
			return k
		}
	}
	// draw landed inside accumulated floating-point error
	return kinds[len(kinds)-1]
}

// Distribution returns the adjusted outcome probabilities in registry
// order. The result always sums to 1 within floating-point tolerance.
func (e *Engine) Distribution(batter models.BattingProfile, pitcher models.PitchingProfile, diceTotal int) []float64 {
	kinds := Kinds()
	probs := make([]float64, len(kinds))

	// Stat adjustment: outcomes the batter wants scale with batter
	// quality over pitcher quality, outcomes the pitcher wants scale
	// the other way.
	for i, k := range kinds {
		def := registry[k]
		bm := def.BatterMod(batter)
		pm := def.PitcherMod(pitcher)
		if def.HelpsBatter {
			probs[i] = def.BaseProb * bm / pm
		} else {
			probs[i] = def.BaseProb * pm / bm
		}
	}
	normalize(probs)

	e.applyDiceBias(kinds, probs, diceTotal)

	for i := range probs {
		if probs[i] < minProb {
			probs[i] = minProb
		}
	}
	normalize(probs)

	return probs
}

// applyDiceBias shifts probability mass between the batter-helping and
// batter-hurting groups according to the dice total. A 7 is neutral;
// the shift grows linearly to biasShift*0.5 of total mass at 2 or 12.
func (e *Engine) applyDiceBias(kinds []Kind, probs []float64, diceTotal int) {
	bias := float64(diceTotal-7) / 10.0
	if bias == 0 {
		return
	}

	shift := bias * e.biasShift
	fromHelping := shift < 0
	if fromHelping {
		shift = -shift
	}

	var donorTotal float64
	for i, k := range kinds {
		if registry[k].HelpsBatter == fromHelping {
			donorTotal += probs[i]
		}
	}
	if donorTotal <= 0 {
		return
	}
	// never drain more than half of the donor group
	if shift > donorTotal/2 {
		shift = donorTotal / 2
	}

	var receiverTotal float64
	for i, k := range kinds {
		if registry[k].HelpsBatter != fromHelping {
			receiverTotal += probs[i]
		}
	}
	if receiverTotal <= 0 {
		return
	}

	// take and give proportionally within each group
	for i, k := range kinds {
		if registry[k].HelpsBatter == fromHelping {
			probs[i] -= shift * probs[i] / donorTotal
		} else {
			probs[i] += shift * probs[i] / receiverTotal
		}
	}
}

func normalize(probs []float64) {
	var total float64
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return
	}
	for i := range probs {
		probs[i] /= total
	}
}
