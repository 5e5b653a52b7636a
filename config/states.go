package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = 0

// PhaseID identifies a round phase
type PhaseID int

const (
	PhaseInstructions PhaseID = iota
	PhaseCountdown
	PhasePlaying
	PhaseEnded
)

var phaseNames = [...]string{"instructions", "countdown", "playing", "ended"}

func (p PhaseID) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// KindID identifies what a falling entity is
type KindID int

const (
	KindHarmful KindID = iota
	KindBeneficial
	KindHazard

	KindCount
)

var kindNames = [...]string{"harmful", "beneficial", "hazard"}

func (k KindID) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// EffectID identifies a transient visual effect
type EffectID int

const (
	EffectPop EffectID = iota
	EffectSparkle
	EffectExplosion
	EffectCount
)

var effectNames = [...]string{"pop", "sparkle", "explosion"}

func (e EffectID) String() string {
	if e < 0 || e >= EffectCount {
		return "unknown"
	}
	return effectNames[e]
}
