package scenes

import (
	"sync"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems"
	"github.com/automoto/toothfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the attract screen
type MenuScene struct {
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene. settings may be nil when
// persistence is unavailable.
func NewMenuScene(sc SceneChanger, settings *systems.SavedSettings) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ms.shouldStart = true
	}
	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, ms.settings))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		ms.resolutionLabel(),
		func() { ms.shouldStart = true },
		func() { systems.ToggleFullscreen(ms.settings) },
		func() {
			systems.CycleResolution(ms.settings)
			ms.menuUI.SetResolution(ms.resolutionLabel())
		},
	)
}

func (ms *MenuScene) resolutionLabel() string {
	index := cfg.Settings.DefaultResolutionIndex
	if ms.settings != nil {
		index = ms.settings.ResolutionIndex
	}
	return cfg.Settings.Resolutions[index].Label
}
