package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/fonts"
	"github.com/automoto/toothfall/scenes"
	"github.com/automoto/toothfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	settings *systems.SavedSettings
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(settings *systems.SavedSettings) *Game {
	if err := fonts.LoadAll(goregular.TTF); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds:   image.Rectangle{},
		settings: settings,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, settings)
	} else {
		g.scene = scenes.NewMenuScene(g, settings)
	}

	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		systems.ToggleFullscreen(g.settings)
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "Random seed for every round (0 = time based)")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	skipMenu := flag.Bool("skip-menu", false, "Skip the attract screen")
	trace := flag.Bool("trace", false, "Log every spawn and destroy")
	hitboxes := flag.Bool("hitboxes", false, "Outline touch areas")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Trace = *trace
	config.Debug.Hitboxes = *hitboxes

	ebiten.SetWindowTitle("Tooth Fall")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Round.TicksPerSecond)

	// Initialize persistence and load saved settings
	settings := &systems.SavedSettings{ResolutionIndex: config.Settings.DefaultResolutionIndex}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings = saved
	}
	if *fullscreen {
		settings.Fullscreen = true
	}
	systems.ApplySettings(settings)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
