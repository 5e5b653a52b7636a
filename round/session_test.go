package round

import (
	"math"
	"testing"
	"time"

	cfg "github.com/automoto/toothfall/config"
)

const (
	width  = 480.0
	height = 560.0

	// 5s instructions plus 3s countdown at 60 ticks per second.
	playingStart = 480
	roundEnd     = playingStart + 60*60
)

func stepN(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// hazardOnlyTuning drops a single hazard at second 10 and nothing else.
func hazardOnlyTuning() *cfg.Tuning {
	tuning := cfg.DefaultTuning()
	for i := range tuning.Spawn.Brackets {
		tuning.Spawn.Brackets[i].Batch = 0
	}
	tuning.Spawn.BeneficialChance = 0
	tuning.Spawn.HazardSeconds = []int{10}
	return &tuning
}

func TestPhaseOrderAndTiming(t *testing.T) {
	var phases []cfg.PhaseID
	var at []int
	var s *Session
	s = NewSession(Options{
		Seed:   1,
		Width:  width,
		Height: height,
		OnPhase: func(p cfg.PhaseID) {
			phases = append(phases, p)
			at = append(at, s.Now())
		},
	})

	if s.Phase() != cfg.PhaseInstructions || s.PhaseRemaining() != 5 {
		t.Fatalf("start: phase %s remaining %d", s.Phase(), s.PhaseRemaining())
	}

	stepN(s, roundEnd+120)

	want := []cfg.PhaseID{cfg.PhaseCountdown, cfg.PhasePlaying, cfg.PhaseEnded}
	wantAt := []int{300, playingStart, roundEnd}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] || at[i] != wantAt[i] {
			t.Errorf("transition %d = %s at %d, want %s at %d", i, phases[i], at[i], want[i], wantAt[i])
		}
	}
}

func TestNothingSpawnsBeforePlaying(t *testing.T) {
	s := NewSession(Options{Seed: 3, Width: width, Height: height})

	stepN(s, playingStart-1)
	if n := len(s.Entities()); n != 0 {
		t.Fatalf("%d entities before Playing", n)
	}
	if s.Score() != 100 {
		t.Errorf("score = %v before Playing", s.Score())
	}

	s.Step()
	if s.Phase() != cfg.PhasePlaying {
		t.Fatalf("phase = %s at tick %d", s.Phase(), s.Now())
	}
	if n := len(s.Entities()); n == 0 {
		t.Error("no immediate spawn when Playing started")
	}
}

func TestHazardTapScenario(t *testing.T) {
	var ended []int
	s := NewSession(Options{
		Seed:    11,
		Width:   width,
		Height:  height,
		Tuning:  hazardOnlyTuning(),
		OnEnded: func(score int) { ended = append(ended, score) },
	})

	stepN(s, playingStart+600)
	if s.Elapsed() != 10 {
		t.Fatalf("elapsed = %d, want 10", s.Elapsed())
	}
	views := s.Entities()
	if len(views) != 1 || views[0].Kind != cfg.KindHazard {
		t.Fatalf("entities at 10s = %+v, want one hazard", views)
	}

	if !s.Tap(views[0].ID) {
		t.Fatal("hazard tap rejected")
	}
	if s.Score() != 90 {
		t.Errorf("score after hazard tap = %v, want 90", s.Score())
	}
	if !s.BlockActive() {
		t.Fatal("block not active after hazard tap")
	}
	if got := s.BlockRemaining(); got != 5*time.Second {
		t.Errorf("block remaining = %v, want 5s", got)
	}

	stepN(s, 299)
	if !s.BlockActive() {
		t.Error("block expired early")
	}
	s.Step()
	if s.BlockActive() {
		t.Errorf("block still active at elapsed %d", s.Elapsed())
	}

	stepN(s, roundEnd)
	if len(ended) != 1 || ended[0] != 90 {
		t.Fatalf("OnEnded calls = %v, want [90]", ended)
	}
	if got, ok := s.FinalScore(); !ok || got != 90 {
		t.Errorf("FinalScore = (%d, %v), want (90, true)", got, ok)
	}
}

func TestEndedReportedOnce(t *testing.T) {
	calls := 0
	s := NewSession(Options{
		Seed:    5,
		Width:   width,
		Height:  height,
		OnEnded: func(int) { calls++ },
	})

	stepN(s, roundEnd-1)
	if calls != 0 {
		t.Fatalf("OnEnded called %d times before the round finished", calls)
	}
	if _, ok := s.FinalScore(); ok {
		t.Fatal("final score available before the round finished")
	}

	s.Step()
	if calls != 1 {
		t.Fatalf("OnEnded calls = %d, want 1", calls)
	}

	score := s.Score()
	entities := len(s.Entities())
	stepN(s, 600)
	if calls != 1 {
		t.Errorf("OnEnded called again: %d", calls)
	}
	if s.Score() != score {
		t.Errorf("score changed after Ended: %v -> %v", score, s.Score())
	}
	if n := len(s.Entities()); n != entities {
		t.Errorf("entities changed after Ended: %d -> %d", entities, n)
	}
	got, _ := s.FinalScore()
	if got < 0 || got > 100 || got != int(math.Round(score)) {
		t.Errorf("final score %d does not match %v", got, score)
	}
}

func TestEveryHazardSecondDropsOnce(t *testing.T) {
	s := NewSession(Options{Seed: 9, Width: width, Height: height})
	stepN(s, roundEnd)

	stats := s.Stats()
	if got := stats.Spawned[cfg.KindHazard]; got != len(cfg.Spawn.HazardSeconds) {
		t.Errorf("hazards spawned = %d, want %d", got, len(cfg.Spawn.HazardSeconds))
	}
}

func TestSpawnCadenceFollowsBrackets(t *testing.T) {
	s := NewSession(Options{Seed: 2, Width: width, Height: height})

	tests := []struct {
		elapsed int
		want    int
	}{
		{0, 72}, {19, 72}, {20, 54}, {39, 54}, {40, 36}, {59, 36},
	}
	for _, tt := range tests {
		stepN(s, playingStart+tt.elapsed*60-s.Now())
		if s.Elapsed() != tt.elapsed {
			t.Fatalf("elapsed = %d, want %d", s.Elapsed(), tt.elapsed)
		}
		if got := s.spawn.Interval(); got != tt.want {
			t.Errorf("spawn interval at %ds = %d ticks, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestSpawnStopsWhenPlayingEnds(t *testing.T) {
	s := NewSession(Options{Seed: 4, Width: width, Height: height})
	stepN(s, roundEnd)

	if s.Phase() != cfg.PhaseEnded {
		t.Fatalf("phase = %s", s.Phase())
	}
	for _, task := range []string{TaskPhase, TaskSpawn, TaskMotion, TaskBlock} {
		if s.sched.Task(task).Active() {
			t.Errorf("task %s still active after Ended", task)
		}
	}
	if s.Tap(1) || s.TapAt(100, 100) {
		t.Error("tap accepted after Ended")
	}
}

func TestCloseDuringCountdown(t *testing.T) {
	ended := false
	s := NewSession(Options{
		Seed:    6,
		Width:   width,
		Height:  height,
		OnEnded: func(int) { ended = true },
	})
	stepN(s, 350)
	if s.Phase() != cfg.PhaseCountdown {
		t.Fatalf("phase = %s, want countdown", s.Phase())
	}

	s.Close()
	now := s.Now()
	stepN(s, roundEnd)

	if s.Now() != now {
		t.Errorf("clock advanced after Close: %d -> %d", now, s.Now())
	}
	if s.Phase() != cfg.PhaseCountdown {
		t.Errorf("phase changed after Close: %s", s.Phase())
	}
	if ended {
		t.Error("OnEnded fired for a closed session")
	}
	if len(s.Entities()) != 0 {
		t.Error("closed session spawned entities")
	}
}

func TestUnmeasuredAreaDefersSpawning(t *testing.T) {
	s := NewSession(Options{Seed: 8})
	stepN(s, playingStart+120)
	if n := len(s.Entities()); n != 0 {
		t.Fatalf("%d entities spawned without a play area", n)
	}

	s.SetPlayArea(width, height)
	stepN(s, 72)
	if len(s.Entities()) == 0 {
		t.Error("no spawns after the play area was measured")
	}
}

func TestSameSeedSameRound(t *testing.T) {
	a := NewSession(Options{Seed: 1234, Width: width, Height: height})
	b := NewSession(Options{Seed: 1234, Width: width, Height: height})

	for i := 0; i < roundEnd; i++ {
		a.Step()
		b.Step()
		if i%300 != 0 {
			continue
		}
		va, vb := a.Entities(), b.Entities()
		if len(va) != len(vb) {
			t.Fatalf("tick %d: %d vs %d entities", i, len(va), len(vb))
		}
		for j := range va {
			if va[j] != vb[j] {
				t.Fatalf("tick %d: entity %d differs: %+v vs %+v", i, j, va[j], vb[j])
			}
		}
		// tap the newest entity in both to exercise scoring paths
		if len(va) > 0 {
			a.Tap(va[len(va)-1].ID)
			b.Tap(vb[len(vb)-1].ID)
		}
	}
	if a.Score() != b.Score() {
		t.Errorf("scores diverged: %v vs %v", a.Score(), b.Score())
	}
}

func TestTapAtTopmost(t *testing.T) {
	s := NewSession(Options{Seed: 21, Width: width, Height: height})
	stepN(s, playingStart+60)

	views := s.Entities()
	var target *EntityView
	for i := range views {
		if views[i].Y > 0 {
			target = &views[i]
		}
	}
	if target == nil {
		t.Skip("no entity on screen yet")
	}
	cx, cy := target.X+target.Size/2, target.Y+target.Size/2
	if !s.TapAt(cx, cy) {
		t.Fatalf("TapAt(%v, %v) missed", cx, cy)
	}
	if s.Stats().Tapped[target.Kind] != 1 {
		t.Errorf("tapped counters = %v", s.Stats().Tapped)
	}
}

func TestBeneficialSpawnsOnBlockExpiryTick(t *testing.T) {
	tuning := hazardOnlyTuning()
	tuning.Spawn.BeneficialChance = 1
	s := NewSession(Options{Seed: 13, Width: width, Height: height, Tuning: tuning})

	// 36 ticks after the 10 s hazard; tap+300 then lands on a spawn tick
	const tapAt = 1116
	const expiry = tapAt + 300
	if (expiry-playingStart)%72 != 0 {
		t.Fatalf("tick %d is not a spawn tick", expiry)
	}

	stepN(s, tapAt)
	var hazard *EntityView
	views := s.Entities()
	for i := range views {
		if views[i].Kind == cfg.KindHazard {
			hazard = &views[i]
		}
	}
	if hazard == nil {
		t.Fatal("hazard not on screen")
	}
	if !s.Tap(hazard.ID) {
		t.Fatal("hazard tap rejected")
	}

	stepN(s, expiry-1-s.Now())
	before := s.Stats().Spawned[cfg.KindBeneficial]
	if !s.BlockActive() {
		t.Fatal("block expired early")
	}

	s.Step()
	if s.BlockActive() {
		t.Fatal("block still active 5 s after the tap")
	}
	if got := s.Stats().Spawned[cfg.KindBeneficial] - before; got != 1 {
		t.Errorf("beneficial spawned on the expiry tick = %d, want 1", got)
	}
}
