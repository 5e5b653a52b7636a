package components

import (
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi"
)

// EntityID is the round-unique, monotonically increasing identity of a falling entity.
type EntityID int

// FallingData is one falling object. Kind and Velocity never change after spawn.
type FallingData struct {
	ID       EntityID
	Kind     cfg.KindID
	Variant  int // sprite variant, render only
	X, Y     float64
	Velocity float64 // units per second, downward

	// Visual only
	Rotation     float64 // degrees
	RotationRate float64 // degrees per motion step
	Size         float64
}

var Falling = donburi.NewComponentType[FallingData]()
