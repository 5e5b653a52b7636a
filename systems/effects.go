package systems

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeEffects turns effect requests into fading effect entities.
func SubscribeEffects(e *ecs.ECS) {
	EffectRequested.Subscribe(e.World, func(w donburi.World, evt EffectEvent) {
		factory.SpawnEffect(e, evt.X, evt.Y, evt.Kind)
	})
}

// UpdateEffects advances effect fades and removes finished effects.
func UpdateEffects(ecs *ecs.ECS) {
	rate := cfg.Round.TicksPerSecond
	if entry, ok := sessionEntry(ecs); ok {
		rate = components.Tuning.Get(entry).Round.TicksPerSecond
	}
	dt := float32(1) / float32(rate)
	var toDestroy []*donburi.Entry

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		alpha, done := fx.Fade.Update(dt)
		fx.Alpha = float64(alpha)
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

func requestEffect(ecs *ecs.ECS, kind cfg.EffectID, x, y float64) {
	EffectRequested.Publish(ecs.World, EffectEvent{Kind: kind, X: x, Y: y})
}
