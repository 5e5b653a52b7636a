package ui

import (
	"image/color"

	cfg "github.com/automoto/toothfall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuUI is the attract screen: title, start button and display settings.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart      func()
	OnFullscreen func()
	OnResolution func()

	resolutionButton *widget.Button
	faces            faces
}

// NewMenuUI creates the attract screen. resolution is the label of the
// current window size.
func NewMenuUI(resolution string, onStart, onFullscreen, onResolution func()) *MenuUI {
	mui := &MenuUI{
		OnStart:      onStart,
		OnFullscreen: onFullscreen,
		OnResolution: onResolution,
		faces:        loadFaces(),
	}
	mui.buildUI(resolution)
	return mui
}

func (mui *MenuUI) buildUI(resolution string) {
	root := rootContainer()
	content := centeredColumn(14)

	content.AddChild(newLabel("TOOTH FALL", &mui.faces.title, cfg.BrightYellow))
	content.AddChild(newLabel("Tap the germs. Save the toothpaste.", &mui.faces.small, color.RGBA{186, 230, 253, 255}))
	content.AddChild(newButton("START", &mui.faces.normal, func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))
	content.AddChild(newButton("FULLSCREEN", &mui.faces.small, func() {
		if mui.OnFullscreen != nil {
			mui.OnFullscreen()
		}
	}))

	mui.resolutionButton = newButton(resolution, &mui.faces.small, func() {
		if mui.OnResolution != nil {
			mui.OnResolution()
		}
	})
	content.AddChild(mui.resolutionButton)
	content.AddChild(newLabel("Enter or Space to start", &mui.faces.small, subtleText))

	root.AddChild(content)
	mui.UI = &ebitenui.UI{Container: root}
}

// SetResolution updates the resolution button label.
func (mui *MenuUI) SetResolution(label string) {
	if textWidget := mui.resolutionButton.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
