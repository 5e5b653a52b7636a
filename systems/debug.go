package systems

import (
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every touch area in the space when hitbox debugging is on.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}
	space, ok := factory.ActiveSpace(ecs)
	if !ok {
		return
	}
	zone := DropZone(screen.Bounds().Dx(), screen.Bounds().Dy())
	dst := screen.SubImage(zone).(*ebiten.Image)
	ox, oy := float32(zone.Min.X), float32(zone.Min.Y)

	for _, obj := range space.Objects() {
		vector.StrokeRect(dst, ox+float32(obj.X), oy+float32(obj.Y), float32(obj.W), float32(obj.H), 1, cfg.Render.HitboxColor, false)
	}
}
