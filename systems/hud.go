package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 16

var instructionLines = []string{
	"Tap the germs: +1",
	"Let toothpaste reach the teeth: +7",
	"Tapping toothpaste: -3",
	"Tapping candy: -10 and no toothpaste for 5s",
}

// DrawHUD renders the header, teeth strip, block banner and phase overlays.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(ecs)
	score := GetScore(ecs)
	if round == nil || score == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawHeader(screen, width, height, round.TimeRemaining, score.Value)
	drawTeeth(screen, width, height, score.Value)
	if IsBlocked(ecs) {
		drawBlockBanner(ecs, screen, width, height)
	}

	switch round.Phase {
	case cfg.PhaseInstructions:
		drawInstructions(screen, width, height, round.PhaseRemaining)
	case cfg.PhaseCountdown:
		drawCountdown(screen, width, height, round.PhaseRemaining)
	}
}

// FormatClock renders whole seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func drawHeader(screen *ebiten.Image, width, height, remaining int, score float64) {
	bar := HeaderBar(width, height)
	vector.FillRect(screen, 0, 0, float32(bar.Dx()), float32(bar.Dy()), cfg.BlackOverlay, false)

	face := fonts.Bold.Get()
	baseline := bar.Dy()/2 + 8

	timerColor := cfg.White
	if remaining <= 10 {
		timerColor = cfg.LightRed
	}
	text.Draw(screen, FormatClock(remaining), face, hudMargin, baseline, timerColor)

	scoreStr := fmt.Sprintf("Clean %d%%", int(math.Round(score)))
	bounds := text.BoundString(face, scoreStr)
	text.Draw(screen, scoreStr, face, width-hudMargin-bounds.Dx(), baseline, ScoreColorFor(score).Color)
}

func drawTeeth(screen *ebiten.Image, width, height int, score float64) {
	strip := TeethStrip(width, height)
	vector.FillRect(screen, 0, float32(strip.Min.Y), float32(strip.Dx()), float32(strip.Dy()), cfg.Gum, false)

	shade := TeethShadeFor(score)
	n := cfg.Layout.TeethCount
	if n <= 0 {
		return
	}
	slot := float32(strip.Dx()) / float32(n)
	toothH := float32(strip.Dy()) * 0.55
	for i := 0; i < n; i++ {
		x := float32(i)*slot + slot*0.1
		w := slot * 0.8
		y := float32(strip.Min.Y) + 6
		vector.FillRect(screen, x, y, w, toothH, shade.Color, true)
		vector.FillCircle(screen, x+w/4, y+toothH, w/4, shade.Color, true)
		vector.FillCircle(screen, x+3*w/4, y+toothH, w/4, shade.Color, true)
	}

	drawCentered(screen, shade.Label, fonts.Small.Get(), width/2, strip.Max.Y-10, cfg.Charcoal)
}

func drawBlockBanner(ecs *ecs.ECS, screen *ebiten.Image, width, height int) {
	zone := DropZone(width, height)
	vector.FillRect(screen, 0, float32(zone.Min.Y), float32(width), 32, color.RGBA{R: 153, G: 27, B: 27, A: 220}, false)

	msg := cfg.Effects.BlockBannerText
	if entry, ok := sessionEntry(ecs); ok {
		block := components.Block.Get(entry)
		tps := components.Tuning.Get(entry).Round.TicksPerSecond
		left := (block.RemainingTicks() + tps - 1) / tps
		msg = fmt.Sprintf("%s (%ds)", msg, left)
	}
	drawCentered(screen, msg, fonts.Regular.Get(), width/2, zone.Min.Y+22, cfg.White)
}

func drawInstructions(screen *ebiten.Image, width, height, remaining int) {
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	y := height / 3
	drawCentered(screen, "Keep the teeth clean!", fonts.Bold.Get(), width/2, y, cfg.BrightYellow)
	y += 48
	for _, line := range instructionLines {
		drawCentered(screen, line, fonts.Regular.Get(), width/2, y, cfg.White)
		y += 30
	}
	y += 30
	drawCentered(screen, fmt.Sprintf("Starting in %d", remaining), fonts.Regular.Get(), width/2, y, cfg.SkyBlue)
}

func drawCountdown(screen *ebiten.Image, width, height, remaining int) {
	vector.FillRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 120}, false)

	countStr := fmt.Sprintf("%d", remaining)
	textColor := cfg.BrightOrange
	if remaining <= 1 {
		textColor = cfg.BrightGreen
	}
	drawCentered(screen, countStr, fonts.Title.Get(), width/2, height/2, textColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, baseline int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, baseline, clr)
}
