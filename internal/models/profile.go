package models

// BattingProfile is an immutable snapshot of a batter's rate stats,
// supplied by the roster collaborator for a single at-bat.
type BattingProfile struct {
	// PlayerRef identifies the player within the roster
	PlayerRef string

	// Name is the player's display name
	Name string

	// OPS is on-base-plus-slugging
	OPS float64

	// Slugging is total bases per at-bat
	Slugging float64

	// WalkRate is walks per plate appearance
	WalkRate float64

	// StrikeoutRate is strikeouts per plate appearance
	StrikeoutRate float64

	// PlateAppearances backs the rate stats
	PlateAppearances int
}

// PitchingProfile is an immutable snapshot of a pitcher's rate stats.
type PitchingProfile struct {
	// PlayerRef identifies the player within the roster
	PlayerRef string

	// Name is the player's display name
	Name string

	// WHIP is walks-plus-hits per inning pitched
	WHIP float64

	// StrikeoutsPer9 is strikeouts per nine innings
	StrikeoutsPer9 float64

	// WalksPer9 is walks per nine innings
	WalksPer9 float64

	// HomeRunsPer9 is home runs allowed per nine innings
	HomeRunsPer9 float64
}
