package systems

import (
	"log"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi/ecs"
)

// Destroy removes a live falling entity by id and returns its final state.
// The first caller wins; any later call for the same id returns false and the
// caller must not apply a score delta.
func Destroy(e *ecs.ECS, id components.EntityID) (components.FallingData, bool) {
	entry, ok := sessionEntry(e)
	if !ok {
		return components.FallingData{}, false
	}
	index := components.Index.Get(entry)

	entity, ok := index.Live[id]
	if !ok {
		return components.FallingData{}, false
	}
	delete(index.Live, id)

	if !e.World.Valid(entity) {
		return components.FallingData{}, false
	}
	target := e.World.Entry(entity)
	data := *components.Falling.Get(target)

	obj := components.Object.Get(target)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	target.Remove()

	if cfg.Debug.Trace {
		log.Printf("destroy %s #%d at (%.0f, %.0f)", data.Kind, data.ID, data.X, data.Y)
	}
	return data, true
}

// LiveCount returns how many falling entities are alive.
func LiveCount(e *ecs.ECS) int {
	entry, ok := sessionEntry(e)
	if !ok {
		return 0
	}
	return len(components.Index.Get(entry).Live)
}

// IsLive reports whether an id still refers to a live entity.
func IsLive(e *ecs.ECS, id components.EntityID) bool {
	entry, ok := sessionEntry(e)
	if !ok {
		return false
	}
	_, live := components.Index.Get(entry).Live[id]
	return live
}
