package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// ScoreData is the cleanliness score. Apply is the only way it changes.
type ScoreData struct {
	Value float64
	Min   float64
	Max   float64
}

// Apply adds delta and clamps the result into [Min, Max].
func (s *ScoreData) Apply(delta float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, s.Value+delta))
}

// Rounded returns the score rounded to the nearest integer.
func (s *ScoreData) Rounded() int {
	return int(math.Round(s.Value))
}

// This is a singleton component - one score per round.
var Score = donburi.NewComponentType[ScoreData]()
