package scenes

import (
	"image"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/round"
	"github.com/automoto/toothfall/systems"
	"github.com/automoto/toothfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene hosts one round: instructions, countdown and play.
type GameScene struct {
	session      *round.Session
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	once         sync.Once
	taps         []image.Point

	ended      bool
	finalScore int
}

// NewGameScene creates a new round scene
func NewGameScene(sc SceneChanger, settings *systems.SavedSettings) *GameScene {
	return &GameScene{sceneChanger: sc, settings: settings}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.session.Close()
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.settings))
		return
	}

	width, height := cfg.C.Width, cfg.C.Height
	zone := systems.DropZone(width, height)
	gs.session.SetPlayArea(float64(zone.Dx()), float64(zone.Dy()))

	gs.taps = systems.AppendTaps(gs.taps[:0])
	for _, p := range gs.taps {
		if x, y, ok := systems.ToPlayArea(p, width, height); ok {
			gs.session.TapAt(x, y)
		}
	}

	gs.session.Step()

	if gs.ended {
		result := ui.Result{
			Score: gs.finalScore,
			Grade: systems.GradeFor(gs.finalScore),
			Stats: gs.session.Stats(),
		}
		gs.session.Close()
		gs.sceneChanger.ChangeScene(NewResultsScene(gs.sceneChanger, gs.settings, result))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if gs.session == nil {
		return
	}
	gs.session.ECS().Draw(screen)
}

func (gs *GameScene) configure() {
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	zone := systems.DropZone(cfg.C.Width, cfg.C.Height)

	gs.session = round.NewSession(round.Options{
		Seed:   seed,
		Width:  float64(zone.Dx()),
		Height: float64(zone.Dy()),
		OnEnded: func(score int) {
			gs.ended = true
			gs.finalScore = score
		},
	})
	log.Printf("round: seed %d", seed)

	// Renderers, in draw order
	e := gs.session.ECS()
	e.AddRenderer(cfg.Default, systems.DrawFalling)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
}
