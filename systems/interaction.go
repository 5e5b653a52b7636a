package systems

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems/factory"
	"github.com/automoto/toothfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TapDelta returns the score change for tapping an entity of the given kind.
func TapDelta(scoring cfg.ScoringConfig, kind cfg.KindID) float64 {
	switch kind {
	case cfg.KindHarmful:
		return scoring.HarmfulTap
	case cfg.KindBeneficial:
		return scoring.BeneficialTap
	case cfg.KindHazard:
		return scoring.HazardTap
	}
	return 0
}

// Tap resolves a player tap on one entity. Returns false when the id is not
// live (already tapped, already crossed, never existed) or the round is not
// playing; nothing changes in that case.
func Tap(ecs *ecs.ECS, id components.EntityID) bool {
	entry, ok := sessionEntry(ecs)
	if !ok || !IsPlaying(ecs) {
		return false
	}
	f, ok := Destroy(ecs, id)
	if !ok {
		return false
	}

	tuning := components.Tuning.Get(entry)
	stats := components.Stats.Get(entry)
	stats.Tapped[f.Kind]++
	ApplyScore(ecs, TapDelta(tuning.Scoring, f.Kind))

	switch f.Kind {
	case cfg.KindHarmful:
		requestEffect(ecs, cfg.EffectPop, f.X, f.Y)
	case cfg.KindHazard:
		stats.Cleared += ClearBeneficial(ecs)
		ActivateBlock(ecs)
		requestEffect(ecs, cfg.EffectExplosion, f.X, f.Y)
	}
	return true
}

// ClearBeneficial destroys every live beneficial entity without scoring and
// returns how many were removed.
func ClearBeneficial(ecs *ecs.ECS) int {
	var ids []components.EntityID
	tags.Beneficial.Each(ecs.World, func(e *donburi.Entry) {
		ids = append(ids, components.Falling.Get(e).ID)
	})

	cleared := 0
	for _, id := range ids {
		if _, ok := Destroy(ecs, id); ok {
			cleared++
		}
	}
	return cleared
}

// HitTest returns the topmost live entity whose touch area contains the point.
// Later spawns draw on top, so the highest id wins.
func HitTest(ecs *ecs.ECS, x, y float64) (components.EntityID, bool) {
	space, ok := factory.ActiveSpace(ecs)
	if !ok {
		return 0, false
	}

	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvFalling)
	if check == nil {
		return 0, false
	}

	var best components.EntityID
	found := false
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		touch := components.Object.Get(e)
		if !touch.Contains(x, y) {
			continue
		}
		id := components.Falling.Get(e).ID
		if !found || id > best {
			best = id
			found = true
		}
	}
	return best, found
}

// TapAt taps whatever entity is under the point, if any.
func TapAt(ecs *ecs.ECS, x, y float64) bool {
	if !IsPlaying(ecs) {
		return false
	}
	id, ok := HitTest(ecs, x, y)
	if !ok {
		return false
	}
	return Tap(ecs, id)
}
