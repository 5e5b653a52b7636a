package ui

import (
	"fmt"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Result is what the results screen shows about a finished round.
type Result struct {
	Score int
	Grade cfg.Tier
	Stats components.StatsData
}

// ResultsUI shows the final score, grade and round counters.
type ResultsUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnMenu      func()

	returnLabel *widget.Label
	faces       faces
}

// NewResultsUI creates the results screen for a finished round.
func NewResultsUI(result Result, onPlayAgain, onMenu func()) *ResultsUI {
	rui := &ResultsUI{
		OnPlayAgain: onPlayAgain,
		OnMenu:      onMenu,
		faces:       loadFaces(),
	}
	rui.buildUI(result)
	return rui
}

func (rui *ResultsUI) buildUI(result Result) {
	root := rootContainer()
	content := centeredColumn(10)

	content.AddChild(newLabel(result.Grade.Label, &rui.faces.title, result.Grade.Color))
	content.AddChild(newLabel(result.Grade.Subtitle, &rui.faces.normal, cfg.White))
	content.AddChild(newLabel(fmt.Sprintf("Cleanliness: %d%%", result.Score), &rui.faces.normal, cfg.BrightYellow))

	for _, line := range StatLines(result.Stats) {
		content.AddChild(newLabel(line, &rui.faces.small, subtleText))
	}

	content.AddChild(newButton("PLAY AGAIN", &rui.faces.normal, func() {
		if rui.OnPlayAgain != nil {
			rui.OnPlayAgain()
		}
	}))
	content.AddChild(newButton("MENU", &rui.faces.normal, func() {
		if rui.OnMenu != nil {
			rui.OnMenu()
		}
	}))

	rui.returnLabel = newLabel("", &rui.faces.small, subtleText)
	content.AddChild(rui.returnLabel)

	root.AddChild(content)
	rui.UI = &ebitenui.UI{Container: root}
}

// StatLines summarizes the round counters for display.
func StatLines(s components.StatsData) []string {
	return []string{
		fmt.Sprintf("Germs tapped: %d of %d", s.Tapped[cfg.KindHarmful], s.Spawned[cfg.KindHarmful]),
		fmt.Sprintf("Toothpaste saved: %d", s.Crossed[cfg.KindBeneficial]),
		fmt.Sprintf("Candy tapped: %d", s.Tapped[cfg.KindHazard]),
	}
}

// SetReturnIn updates the auto-return hint.
func (rui *ResultsUI) SetReturnIn(seconds int) {
	rui.returnLabel.Label = fmt.Sprintf("Back to menu in %ds", seconds)
}

func (rui *ResultsUI) Update() {
	rui.UI.Update()
}

func (rui *ResultsUI) Draw(screen *ebiten.Image) {
	rui.UI.Draw(screen)
}
