package components

import (
	cfg "github.com/automoto/toothfall/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a short-lived visual effect. It carries nothing back into the round.
type EffectData struct {
	Kind  cfg.EffectID
	X, Y  float64
	Scale float64
	Alpha float64
	Fade  *gween.Tween
}

var Effect = donburi.NewComponentType[EffectData]()
