package roster

import "github.com/moundworks/diceball/internal/models"

// DemoRosters returns two playable rosters for development servers.
// Stats hover around league average with a few hot and cold bats so
// games feel uneven in believable ways.
func DemoRosters() map[string]StaticRoster {
	return map[string]StaticRoster{
		"demo-harbor-cats": {
			Name: "Harbor Cats",
			Lineup: []models.BattingProfile{
				{PlayerRef: "hc-1", Name: "Vasquez", OPS: 0.780, Slugging: 0.445, WalkRate: 0.102, StrikeoutRate: 0.185},
				{PlayerRef: "hc-2", Name: "Okafor", OPS: 0.735, Slugging: 0.410, WalkRate: 0.088, StrikeoutRate: 0.210},
				{PlayerRef: "hc-3", Name: "Brandt", OPS: 0.865, Slugging: 0.520, WalkRate: 0.115, StrikeoutRate: 0.240},
				{PlayerRef: "hc-4", Name: "Castillo", OPS: 0.820, Slugging: 0.495, WalkRate: 0.072, StrikeoutRate: 0.265},
				{PlayerRef: "hc-5", Name: "Nakamura", OPS: 0.710, Slugging: 0.395, WalkRate: 0.081, StrikeoutRate: 0.195},
				{PlayerRef: "hc-6", Name: "Pryor", OPS: 0.690, Slugging: 0.380, WalkRate: 0.079, StrikeoutRate: 0.230},
				{PlayerRef: "hc-7", Name: "Diallo", OPS: 0.665, Slugging: 0.360, WalkRate: 0.065, StrikeoutRate: 0.255},
				{PlayerRef: "hc-8", Name: "Shen", OPS: 0.700, Slugging: 0.385, WalkRate: 0.094, StrikeoutRate: 0.200},
				{PlayerRef: "hc-9", Name: "Mercer", OPS: 0.620, Slugging: 0.330, WalkRate: 0.058, StrikeoutRate: 0.280},
			},
			Pitcher: models.PitchingProfile{
				PlayerRef: "hc-p", Name: "Alvarado", WHIP: 1.18, StrikeoutsPer9: 9.4, WalksPer9: 2.6, HomeRunsPer9: 1.0,
			},
		},
		"demo-river-hawks": {
			Name: "River Hawks",
			Lineup: []models.BattingProfile{
				{PlayerRef: "rh-1", Name: "Whitfield", OPS: 0.755, Slugging: 0.420, WalkRate: 0.096, StrikeoutRate: 0.175},
				{PlayerRef: "rh-2", Name: "Arroyo", OPS: 0.728, Slugging: 0.405, WalkRate: 0.084, StrikeoutRate: 0.215},
				{PlayerRef: "rh-3", Name: "Kowalski", OPS: 0.845, Slugging: 0.510, WalkRate: 0.108, StrikeoutRate: 0.250},
				{PlayerRef: "rh-4", Name: "Tanaka", OPS: 0.800, Slugging: 0.480, WalkRate: 0.090, StrikeoutRate: 0.225},
				{PlayerRef: "rh-5", Name: "Beaumont", OPS: 0.705, Slugging: 0.390, WalkRate: 0.077, StrikeoutRate: 0.205},
				{PlayerRef: "rh-6", Name: "Iverson", OPS: 0.680, Slugging: 0.375, WalkRate: 0.070, StrikeoutRate: 0.245},
				{PlayerRef: "rh-7", Name: "Delacruz", OPS: 0.660, Slugging: 0.355, WalkRate: 0.062, StrikeoutRate: 0.260},
				{PlayerRef: "rh-8", Name: "Moreau", OPS: 0.695, Slugging: 0.380, WalkRate: 0.089, StrikeoutRate: 0.190},
				{PlayerRef: "rh-9", Name: "Hutchins", OPS: 0.615, Slugging: 0.325, WalkRate: 0.055, StrikeoutRate: 0.290},
			},
			Pitcher: models.PitchingProfile{
				PlayerRef: "rh-p", Name: "Sorensen", WHIP: 1.35, StrikeoutsPer9: 7.8, WalksPer9: 3.5, HomeRunsPer9: 1.3,
			},
		},
	}
}
