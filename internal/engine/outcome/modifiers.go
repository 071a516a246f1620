package outcome

import (
	"github.com/moundworks/diceball/internal/models"
)

// League-average reference rates. Modifier functions are weighted
// blends of stat-to-average ratios, so a profile sitting exactly on
// these numbers always yields a modifier of 1.0.
const (
	LeagueOPS            = 0.720
	LeagueSlugging       = 0.410
	LeagueWalkRate       = 0.085
	LeagueStrikeoutRate  = 0.220
	LeagueWHIP           = 1.30
	LeagueStrikeoutsPer9 = 8.5
	LeagueWalksPer9      = 3.2
	LeagueHomeRunsPer9   = 1.2
)

// ratio guards against zero/negative inputs from sparse stat lines.
func ratio(value, average float64) float64 {
	if value <= 0 || average <= 0 {
		return 1
	}
	return value / average
}

// inverseRatio is the pitcher-side ratio for stats where lower is
// better (WHIP, walks, home runs allowed).
func inverseRatio(value, average float64) float64 {
	if value <= 0 || average <= 0 {
		return 1
	}
	return average / value
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// batter stat ratios

func opsRatio(b models.BattingProfile) float64 {
	return ratio(b.OPS, LeagueOPS)
}

func slugRatio(b models.BattingProfile) float64 {
	return ratio(b.Slugging, LeagueSlugging)
}

// eyeRatio compares the batter's walk-to-strikeout ratio against the
// league's.
func eyeRatio(b models.BattingProfile) float64 {
	if b.StrikeoutRate <= 0 {
		return 1
	}
	return ratio(b.WalkRate/b.StrikeoutRate, LeagueWalkRate/LeagueStrikeoutRate)
}

// pitcher stat factors, all > 1 for a better-than-average pitcher

func whipFactor(p models.PitchingProfile) float64 {
	return inverseRatio(p.WHIP, LeagueWHIP)
}

func strikeoutFactor(p models.PitchingProfile) float64 {
	return ratio(p.StrikeoutsPer9, LeagueStrikeoutsPer9)
}

func walkFactor(p models.PitchingProfile) float64 {
	return inverseRatio(p.WalksPer9, LeagueWalksPer9)
}

func homeRunFactor(p models.PitchingProfile) float64 {
	return inverseRatio(p.HomeRunsPer9, LeagueHomeRunsPer9)
}

// Per-outcome modifier functions. Clamp bands differ per outcome:
// the rarer and more stat-sensitive the outcome, the wider the band.

func contactBatterMod(b models.BattingProfile) float64 {
	return clamp(0.6*opsRatio(b)+0.4*eyeRatio(b), 0.6, 1.8)
}

func gapBatterMod(b models.BattingProfile) float64 {
	return clamp(0.4*opsRatio(b)+0.6*slugRatio(b), 0.5, 2.0)
}

func powerBatterMod(b models.BattingProfile) float64 {
	return clamp(slugRatio(b), 0.5, 2.0)
}

func homeRunBatterMod(b models.BattingProfile) float64 {
	return clamp(0.8*slugRatio(b)+0.2*opsRatio(b), 0.4, 2.5)
}

func walkBatterMod(b models.BattingProfile) float64 {
	return clamp(0.7*eyeRatio(b)+0.3*opsRatio(b), 0.5, 2.2)
}

func strikeoutBatterMod(b models.BattingProfile) float64 {
	// contact skill suppresses strikeouts; the engine inverts this for
	// outcomes that hurt the batter
	return clamp(0.5*eyeRatio(b)+0.5*opsRatio(b), 0.6, 1.6)
}

func outBatterMod(b models.BattingProfile) float64 {
	return clamp(opsRatio(b), 0.7, 1.4)
}

func contactPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.8*whipFactor(p)+0.2*strikeoutFactor(p), 0.6, 1.8)
}

func gapPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.7*whipFactor(p)+0.3*homeRunFactor(p), 0.6, 1.8)
}

func homeRunPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.8*homeRunFactor(p)+0.2*whipFactor(p), 0.4, 2.5)
}

func walkPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.8*walkFactor(p)+0.2*whipFactor(p), 0.5, 2.2)
}

func strikeoutPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.9*strikeoutFactor(p)+0.1*whipFactor(p), 0.6, 1.8)
}

func outPitcherMod(p models.PitchingProfile) float64 {
	return clamp(whipFactor(p), 0.7, 1.4)
}

func flyOutPitcherMod(p models.PitchingProfile) float64 {
	return clamp(0.7*whipFactor(p)+0.3*homeRunFactor(p), 0.7, 1.4)
}
