package factory

import (
	"github.com/automoto/toothfall/archetypes"
	"github.com/automoto/toothfall/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cell size of the touch space. Entities are 60-160 units wide.
const spaceCell = 32

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// RebuildSpace replaces the touch space with one covering width x height,
// re-adding every live touch object. Returns nil for an unmeasured area.
func RebuildSpace(ecs *ecs.ECS, width, height float64) *resolv.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		old := components.Space.Get(entry)
		old.Remove(old.Objects()...)
		ecs.World.Remove(entry.Entity())
	}

	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		return nil
	}

	// Round up so the last partial row and column still get cells.
	space := components.Space.Get(CreateSpace(ecs, w+spaceCell, h+spaceCell, spaceCell, spaceCell))
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		space.Add(components.Object.Get(e).Object)
	})
	return space
}

// ActiveSpace returns the current touch space, if one exists.
func ActiveSpace(ecs *ecs.ECS) (*resolv.Space, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}
