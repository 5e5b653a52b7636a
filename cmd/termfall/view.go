package main

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/round"
	"github.com/automoto/toothfall/systems"
	"github.com/gdamore/tcell/v2"
)

// Play area units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 10.0
	cellH = 20.0

	headerRows = 1
	teethRows  = 2
)

var glyphs = [cfg.KindCount]rune{
	cfg.KindHarmful:    '*',
	cfg.KindBeneficial: 'o',
	cfg.KindHazard:     '@',
}

// grid maps between terminal cells and play area units.
type grid struct {
	cols, rows int // whole terminal
}

func (g grid) playRows() int {
	return max(0, g.rows-headerRows-teethRows)
}

// area is the play area handed to the round for this terminal size.
func (g grid) area() (width, height float64) {
	return float64(g.cols) * cellW, float64(g.playRows()) * cellH
}

// toPlayArea converts a clicked cell into the centre of that cell in play
// area units. Clicks outside the drop zone are rejected.
func (g grid) toPlayArea(col, row int) (x, y float64, ok bool) {
	r := row - headerRows
	if col < 0 || col >= g.cols || r < 0 || r >= g.playRows() {
		return 0, 0, false
	}
	return (float64(col) + 0.5) * cellW, (float64(r) + 0.5) * cellH, true
}

// cellSpan returns the first and last cell covering [from, from+size).
func cellSpan(from, size, unit float64) (first, last int) {
	first = int(math.Floor(from / unit))
	last = int(math.Ceil((from+size)/unit)) - 1
	return first, max(first, last)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, col, row int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(col+i, row, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, g grid, row int, style tcell.Style, str string) {
	drawText(s, (g.cols-len([]rune(str)))/2, row, style, str)
}

func draw(s tcell.Screen, g grid, session *round.Session) {
	s.Clear()
	base := tcell.StyleDefault.Background(rgb(cfg.Render.DropZone)).Foreground(rgb(cfg.White))

	for row := headerRows; row < headerRows+g.playRows(); row++ {
		for col := 0; col < g.cols; col++ {
			s.SetContent(col, row, ' ', nil, base)
		}
	}

	for _, v := range session.Entities() {
		c0, c1 := cellSpan(v.X, v.Size, cellW)
		r0, r1 := cellSpan(v.Y, v.Size, cellH)
		style := base.Foreground(rgb(cfg.Render.KindColors[v.Kind][v.Variant%len(cfg.Render.KindColors[v.Kind])]))
		for r := max(r0, 0); r <= min(r1, g.playRows()-1); r++ {
			for c := max(c0, 0); c <= min(c1, g.cols-1); c++ {
				s.SetContent(c, r+headerRows, glyphs[v.Kind], nil, style)
			}
		}
	}

	drawHeader(s, g, session)
	drawTeeth(s, g, session.Score())

	mid := headerRows + g.playRows()/2
	switch session.Phase() {
	case cfg.PhaseInstructions:
		drawCentered(s, g, mid-2, base.Foreground(rgb(cfg.BrightYellow)), "Keep the teeth clean!")
		drawCentered(s, g, mid, base, "click * germs, let o toothpaste fall, never click @ candy")
		drawCentered(s, g, mid+2, base.Foreground(rgb(cfg.SkyBlue)), fmt.Sprintf("Starting in %d", session.PhaseRemaining()))
	case cfg.PhaseCountdown:
		drawCentered(s, g, mid, base.Foreground(rgb(cfg.BrightOrange)), fmt.Sprintf("%d", session.PhaseRemaining()))
	case cfg.PhaseEnded:
		final, _ := session.FinalScore()
		grade := systems.GradeFor(final)
		drawCentered(s, g, mid-1, base.Foreground(rgb(grade.Color)), grade.Label)
		drawCentered(s, g, mid+1, base, fmt.Sprintf("Cleanliness %d%%  -  r to play again, q to quit", final))
	}
	s.Show()
}

func drawHeader(s tcell.Screen, g grid, session *round.Session) {
	style := tcell.StyleDefault.Background(rgb(cfg.Charcoal)).Foreground(rgb(cfg.White))
	for col := 0; col < g.cols; col++ {
		s.SetContent(col, 0, ' ', nil, style)
	}
	drawText(s, 1, 0, style, systems.FormatClock(session.TimeRemaining()))

	score := session.Score()
	scoreStr := fmt.Sprintf("Clean %d%%", int(math.Round(score)))
	drawText(s, g.cols-len(scoreStr)-1, 0, style.Foreground(rgb(systems.ScoreColorFor(score).Color)), scoreStr)

	if session.BlockActive() {
		banner := fmt.Sprintf("%s (%.0fs)", cfg.Effects.BlockBannerText, math.Ceil(session.BlockRemaining().Seconds()))
		drawCentered(s, g, 0, style.Foreground(rgb(cfg.LightRed)), banner)
	}
}

func drawTeeth(s tcell.Screen, g grid, score float64) {
	shade := systems.TeethShadeFor(score)
	gum := tcell.StyleDefault.Background(rgb(cfg.Gum)).Foreground(rgb(shade.Color))
	top := headerRows + g.playRows()
	for row := top; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			r := ' '
			if row == top && col%4 != 3 {
				r = '█'
			}
			s.SetContent(col, row, r, nil, gum)
		}
	}
	drawCentered(s, g, g.rows-1, gum.Foreground(rgb(cfg.Charcoal)), shade.Label)
}
