package scenes

import (
	"sync"

	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/schedule"
	"github.com/automoto/toothfall/systems"
	"github.com/automoto/toothfall/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResultsScene shows the final score and returns to the menu on its own
// after a while.
type ResultsScene struct {
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	result       ui.Result
	resultsUI    *ui.ResultsUI
	sched        *schedule.Scheduler
	autoReturn   *schedule.Task
	once         sync.Once
	next         interface{}
}

// NewResultsScene creates the results screen for a finished round
func NewResultsScene(sc SceneChanger, settings *systems.SavedSettings, result ui.Result) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, settings: settings, result: result}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)

	rs.sched.Advance()
	rs.resultsUI.SetReturnIn(rs.secondsLeft())
	rs.resultsUI.Update()

	if rs.next != nil {
		rs.autoReturn.Stop()
		rs.sceneChanger.ChangeScene(rs.next)
	}
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	if rs.resultsUI == nil {
		return
	}
	rs.resultsUI.Draw(screen)
}

func (rs *ResultsScene) configure() {
	rs.sched = schedule.New()
	rs.autoReturn = rs.sched.Timer("auto-return", rs.toMenu)
	rs.autoReturn.Reset(schedule.Ticks(cfg.Results.AutoReturn, cfg.Round.TicksPerSecond))

	rs.resultsUI = ui.NewResultsUI(
		rs.result,
		func() { rs.next = NewGameScene(rs.sceneChanger, rs.settings) },
		rs.toMenu,
	)
}

func (rs *ResultsScene) toMenu() {
	rs.next = NewMenuScene(rs.sceneChanger, rs.settings)
}

func (rs *ResultsScene) secondsLeft() int {
	tps := cfg.Round.TicksPerSecond
	return (rs.autoReturn.Remaining() + tps - 1) / tps
}
