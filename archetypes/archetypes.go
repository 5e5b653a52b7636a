package archetypes

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Harmful = newArchetype(
		tags.Harmful,
		components.Falling,
		components.Object,
	)
	Beneficial = newArchetype(
		tags.Beneficial,
		components.Falling,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Falling,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Session = newArchetype(
		tags.Session,
		components.Round,
		components.Score,
		components.Block,
		components.PlayArea,
		components.Index,
		components.Random,
		components.Tuning,
		components.Stats,
	)
	Space = newArchetype(
		components.Space,
	)
)

// ForKind returns the falling archetype for an entity kind.
func ForKind(kind cfg.KindID) *archetype {
	switch kind {
	case cfg.KindBeneficial:
		return Beneficial
	case cfg.KindHazard:
		return Hazard
	default:
		return Harmful
	}
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
