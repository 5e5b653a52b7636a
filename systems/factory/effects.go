package factory

import (
	"github.com/automoto/toothfall/archetypes"
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var effectScales = map[cfg.EffectID]*float64{
	cfg.EffectPop:       &cfg.Effects.PopScale,
	cfg.EffectSparkle:   &cfg.Effects.SparkleScale,
	cfg.EffectExplosion: &cfg.Effects.ExplosionScale,
}

// SpawnEffect creates a visual effect entity that fades out over the configured lifetime.
func SpawnEffect(ecs *ecs.ECS, x, y float64, kind cfg.EffectID) *donburi.Entry {
	scale := 1.0
	if s, ok := effectScales[kind]; ok {
		scale = *s
	}

	entry := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(entry, components.EffectData{
		Kind:  kind,
		X:     x,
		Y:     y,
		Scale: scale,
		Alpha: 1,
		Fade:  gween.New(1, 0, cfg.Effects.Lifetime, ease.OutQuad),
	})
	return entry
}
