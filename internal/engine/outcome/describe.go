package outcome

import (
	"fmt"
)

// Describe renders the play call for a resolved at-bat. draw in [0, 1)
// picks among the kind's phrasings; the suffix reflects how many runs
// the play scored.
func Describe(k Kind, batterName string, runs int, draw float64) string {
	def, ok := registry[k]
	if !ok || len(def.Descriptions) == 0 {
		return fmt.Sprintf("%s puts the ball in play", batterName)
	}

	idx := int(draw * float64(len(def.Descriptions)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(def.Descriptions) {
		idx = len(def.Descriptions) - 1
	}

	call := fmt.Sprintf(def.Descriptions[idx], batterName)
	switch {
	case runs == 1:
		call += " -- a run scores!"
	case runs > 1:
		call += fmt.Sprintf(" -- %d runs score!", runs)
	}
	return call
}
