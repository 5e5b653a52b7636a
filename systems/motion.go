package systems

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CrossingDelta returns the score change for an entity reaching the bottom edge.
func CrossingDelta(scoring cfg.ScoringConfig, kind cfg.KindID) float64 {
	switch kind {
	case cfg.KindHarmful:
		return scoring.HarmfulCross
	case cfg.KindBeneficial:
		return scoring.BeneficialCross
	case cfg.KindHazard:
		return scoring.HazardCross
	}
	return 0
}

// UpdateMotion advances every falling entity by one step, then destroys and
// scores the ones past the bottom edge. All movement finishes before any
// crossing is scored.
func UpdateMotion(ecs *ecs.ECS) {
	entry, ok := sessionEntry(ecs)
	if !ok || !IsPlaying(ecs) {
		return
	}
	area := components.PlayArea.Get(entry)
	if !area.Measured() {
		return
	}
	tuning := components.Tuning.Get(entry)
	steps := float64(tuning.Round.TicksPerSecond)

	var crossed []components.EntityID
	components.Falling.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		f.Y += f.Velocity / steps
		f.Rotation += f.RotationRate

		obj := components.Object.Get(e)
		if obj.Object != nil {
			obj.X = f.X - tuning.TouchMargin
			obj.Y = f.Y - tuning.TouchMargin
			if obj.Space != nil {
				obj.Update()
			}
		}

		if f.Y > area.Height {
			crossed = append(crossed, f.ID)
		}
	})

	stats := components.Stats.Get(entry)
	for _, id := range crossed {
		f, ok := Destroy(ecs, id)
		if !ok {
			continue
		}
		stats.Crossed[f.Kind]++
		ApplyScore(ecs, CrossingDelta(tuning.Scoring, f.Kind))
		if f.Kind == cfg.KindBeneficial {
			requestEffect(ecs, cfg.EffectSparkle, f.X, area.Height-cfg.Effects.SparkleOffsetY)
		}
	}
}
