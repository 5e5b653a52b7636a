package systems

import (
	cfg "github.com/automoto/toothfall/config"
)

// TierFor returns the first tier whose Min the score reaches. Tiers are
// ordered highest Min first; a score below every tier gets the last one.
func TierFor(tiers []cfg.Tier, score float64) cfg.Tier {
	for _, t := range tiers {
		if score >= t.Min {
			return t
		}
	}
	if len(tiers) == 0 {
		return cfg.Tier{Color: cfg.White}
	}
	return tiers[len(tiers)-1]
}

// GradeFor returns the results-screen grade for a final score.
func GradeFor(score int) cfg.Tier {
	return TierFor(cfg.Results.Grades, float64(score))
}

// TeethShadeFor returns the tooth colour and caption for a live score.
func TeethShadeFor(score float64) cfg.Tier {
	return TierFor(cfg.Results.TeethShades, score)
}

// ScoreColorFor returns the HUD colour for a live score.
func ScoreColorFor(score float64) cfg.Tier {
	return TierFor(cfg.Results.ScoreColors, score)
}
