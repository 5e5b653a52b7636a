package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames to avoid allocations
var drawOrder []*components.FallingData

// DrawFalling renders every falling entity inside the drop zone. Later spawns
// draw on top, matching hit testing.
func DrawFalling(ecs *ecs.ECS, screen *ebiten.Image) {
	zone := DropZone(screen.Bounds().Dx(), screen.Bounds().Dy())
	dst := screen.SubImage(zone).(*ebiten.Image)
	ox, oy := float32(zone.Min.X), float32(zone.Min.Y)

	vector.FillRect(dst, ox, oy, float32(zone.Dx()), float32(zone.Dy()), cfg.Render.DropZone, false)

	drawOrder = drawOrder[:0]
	components.Falling.Each(ecs.World, func(e *donburi.Entry) {
		drawOrder = append(drawOrder, components.Falling.Get(e))
	})
	sort.Slice(drawOrder, func(i, j int) bool { return drawOrder[i].ID < drawOrder[j].ID })

	for _, f := range drawOrder {
		r := float32(f.Size / 2)
		cx := ox + float32(f.X) + r
		cy := oy + float32(f.Y) + r
		clr := kindColor(f.Kind, f.Variant)
		rot := f.Rotation * math.Pi / 180

		switch f.Kind {
		case cfg.KindHarmful:
			drawGerm(dst, cx, cy, r, rot, clr)
		case cfg.KindBeneficial:
			drawPaste(dst, cx, cy, r, clr)
		case cfg.KindHazard:
			drawCandy(dst, cx, cy, r, rot, clr)
		}
	}
}

func kindColor(kind cfg.KindID, variant int) color.RGBA {
	palette := cfg.Render.KindColors[kind]
	if len(palette) == 0 {
		return cfg.White
	}
	return palette[variant%len(palette)]
}

func drawGerm(dst *ebiten.Image, cx, cy, r float32, rot float64, clr color.RGBA) {
	for i := 0; i < 6; i++ {
		a := rot + float64(i)*math.Pi/3
		dx, dy := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(dst, cx+dx*r*0.5, cy+dy*r*0.5, cx+dx*r, cy+dy*r, r*0.18, clr, true)
	}
	vector.FillCircle(dst, cx, cy, r*0.65, clr, true)
	// eyes
	vector.FillCircle(dst, cx-r*0.22, cy-r*0.1, r*0.12, cfg.White, true)
	vector.FillCircle(dst, cx+r*0.22, cy-r*0.1, r*0.12, cfg.White, true)
}

func drawPaste(dst *ebiten.Image, cx, cy, r float32, clr color.RGBA) {
	vector.FillCircle(dst, cx, cy, r*0.8, clr, true)
	vector.FillCircle(dst, cx-r*0.25, cy-r*0.25, r*0.2, cfg.White, true)
}

func drawCandy(dst *ebiten.Image, cx, cy, r float32, rot float64, clr color.RGBA) {
	dx, dy := float32(math.Cos(rot)), float32(math.Sin(rot))
	// wrapper ends
	vector.FillCircle(dst, cx+dx*r*0.75, cy+dy*r*0.75, r*0.25, clr, true)
	vector.FillCircle(dst, cx-dx*r*0.75, cy-dy*r*0.75, r*0.25, clr, true)
	vector.FillCircle(dst, cx, cy, r*0.55, clr, true)
	vector.StrokeLine(dst, cx-dy*r*0.5, cy+dx*r*0.5, cx+dy*r*0.5, cy-dx*r*0.5, r*0.12, cfg.White, true)
}

// DrawEffects renders the fading pop, sparkle and explosion effects.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	zone := DropZone(screen.Bounds().Dx(), screen.Bounds().Dy())
	dst := screen.SubImage(zone).(*ebiten.Image)
	ox, oy := float32(zone.Min.X), float32(zone.Min.Y)

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		clr := withAlpha(cfg.Render.EffectColors[fx.Kind], fx.Alpha)
		x, y := ox+float32(fx.X), oy+float32(fx.Y)
		grow := float32(1 + (1-fx.Alpha)*0.8)
		size := float32(24 * fx.Scale)

		switch fx.Kind {
		case cfg.EffectPop:
			vector.StrokeCircle(dst, x+size, y+size, size*grow, 4, clr, true)
		case cfg.EffectSparkle:
			for i := 0; i < 5; i++ {
				a := float64(i) * 2 * math.Pi / 5
				d := size * grow
				vector.FillCircle(dst, x+size+d*float32(math.Cos(a)), y+d*float32(math.Sin(a)), 4, clr, true)
			}
		case cfg.EffectExplosion:
			vector.FillCircle(dst, x+size, y+size, size*grow*1.5, clr, true)
		}
	})
}

// withAlpha scales a colour for premultiplied alpha blending.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
