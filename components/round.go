package components

import (
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the phase state machine and clocks for one round.
// This is a singleton component - only one round exists per world.
type RoundData struct {
	Phase          cfg.PhaseID
	PhaseRemaining int // seconds left in Instructions or Countdown
	TimeRemaining  int // seconds left in Playing
	Elapsed        int // seconds since Playing began

	HazardsDropped map[int]bool // elapsed seconds already used by a hazard
	FinalScore     int
	Reported       bool // OnEnded has been delivered
}

var Round = donburi.NewComponentType[RoundData]()

// PlayAreaData is the drop zone as measured by the presentation layer.
type PlayAreaData struct {
	Width  float64
	Height float64
}

// Measured reports whether both dimensions are usable.
func (p *PlayAreaData) Measured() bool {
	return p.Width > 0 && p.Height > 0
}

var PlayArea = donburi.NewComponentType[PlayAreaData]()
