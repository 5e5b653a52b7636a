package factory

import (
	"github.com/automoto/toothfall/archetypes"
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FallingSpec describes a new falling entity before it gets an id.
type FallingSpec struct {
	Kind         cfg.KindID
	Variant      int
	X, Y         float64
	Velocity     float64
	RotationRate float64
	Size         float64
}

var kindResolvTags = [cfg.KindCount]string{
	cfg.KindHarmful:    tags.ResolvHarmful,
	cfg.KindBeneficial: tags.ResolvBeneficial,
	cfg.KindHazard:     tags.ResolvHazard,
}

// CreateFalling spawns a falling entity, assigns the next id and registers it
// in the round index and the touch space.
func CreateFalling(ecs *ecs.ECS, spec FallingSpec, margin float64) *donburi.Entry {
	session, ok := tags.Session.First(ecs.World)
	if !ok {
		return nil
	}
	index := components.Index.Get(session)

	entry := archetypes.ForKind(spec.Kind).Spawn(ecs)
	id := index.Next
	index.Next++
	index.Live[id] = entry.Entity()

	components.Falling.SetValue(entry, components.FallingData{
		ID:           id,
		Kind:         spec.Kind,
		Variant:      spec.Variant,
		X:            spec.X,
		Y:            spec.Y,
		Velocity:     spec.Velocity,
		RotationRate: spec.RotationRate,
		Size:         spec.Size,
	})

	obj := resolv.NewObject(spec.X-margin, spec.Y-margin, spec.Size+2*margin, spec.Size+2*margin,
		tags.ResolvFalling, kindResolvTags[spec.Kind])
	obj.Data = entry
	if space, ok := ActiveSpace(ecs); ok {
		space.Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	stats := components.Stats.Get(session)
	stats.Spawned[spec.Kind]++

	return entry
}
