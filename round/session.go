// Package round owns one play-through: the ECS world, the tick scheduler and
// the phase state machine. A new Session is built for every round; nothing is
// shared between rounds.
package round

import (
	"log"
	"sort"
	"time"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/schedule"
	"github.com/automoto/toothfall/systems"
	"github.com/automoto/toothfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Scheduler task names
const (
	TaskPhase  = "phase"
	TaskSpawn  = "spawn"
	TaskMotion = "motion"
	TaskBlock  = "block-expiry"
)

// Options configures a new Session.
type Options struct {
	Seed          int64
	Width, Height float64     // play area; may be set later with SetPlayArea
	Tuning        *cfg.Tuning // nil uses cfg.DefaultTuning()
	OnPhase       func(cfg.PhaseID)
	OnEnded       func(finalScore int) // called exactly once, when Playing runs out
}

// EntityView is what the renderer needs to draw one falling entity.
type EntityView struct {
	ID       components.EntityID
	Kind     cfg.KindID
	Variant  int
	X, Y     float64
	Rotation float64
	Size     float64
}

// Session is one round from instructions to the final score.
type Session struct {
	ecs    *ecs.ECS
	sched  *schedule.Scheduler
	entry  *donburi.Entry
	tuning cfg.Tuning

	phase  *schedule.Task
	spawn  *schedule.Task
	motion *schedule.Task
	block  *schedule.Task

	onPhase func(cfg.PhaseID)
	onEnded func(int)
	closed  bool
}

// NewSession builds a fresh round in the Instructions phase.
func NewSession(opts Options) *Session {
	tuning := cfg.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	s := &Session{
		ecs:     ecs.NewECS(donburi.NewWorld()),
		sched:   schedule.New(),
		tuning:  tuning,
		onPhase: opts.OnPhase,
		onEnded: opts.OnEnded,
	}

	// Registration order is firing order within a tick: the phase clock runs
	// first so a round that just ended never spawns or moves, and the block
	// expires before a spawn tick due on the same tick.
	s.phase = s.sched.Repeating(TaskPhase, s.onPhaseTick)
	s.block = s.sched.Timer(TaskBlock, func() { systems.ExpireBlock(s.ecs) })
	s.spawn = s.sched.Repeating(TaskSpawn, s.onSpawnTick)
	s.motion = s.sched.Repeating(TaskMotion, s.onMotionTick)

	s.entry = factory.CreateSession(s.ecs, tuning, opts.Seed, s.block)
	systems.SubscribeEffects(s.ecs)
	s.SetPlayArea(opts.Width, opts.Height)

	s.phase.Reset(s.ticks(tuning.Round.PhaseTickInterval))
	return s
}

func (s *Session) ticks(d time.Duration) int {
	return schedule.Ticks(d, s.tuning.Round.TicksPerSecond)
}

// Step advances the round by one simulation tick and delivers queued events.
// After Close or Ended it does nothing.
func (s *Session) Step() {
	if s.closed {
		return
	}
	s.sched.Advance()
	events.ProcessAllEvents(s.ecs.World)
}

// StepFor advances the round by d of simulated time.
func (s *Session) StepFor(d time.Duration) {
	n := int(d * time.Duration(s.tuning.Round.TicksPerSecond) / time.Second)
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Close stops every task. The session is inert afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.sched.StopAll()
	s.closed = true
}

func (s *Session) onPhaseTick() {
	if !systems.TickPhaseClock(s.ecs) {
		if s.Phase() == cfg.PhasePlaying {
			systems.SpawnScheduledHazard(s.ecs)
			s.rearmSpawn()
		}
		return
	}
	s.enter(systems.NextPhase(s.Phase()))
}

func (s *Session) onSpawnTick() {
	systems.SpawnWave(s.ecs)
}

func (s *Session) onMotionTick() {
	systems.UpdateMotion(s.ecs)
	systems.UpdateEffects(s.ecs)
}

// rearmSpawn switches the spawn cadence when elapsed crosses a bracket edge.
func (s *Session) rearmSpawn() {
	want := s.ticks(systems.SpawnInterval(s.tuning.Spawn, s.Elapsed()))
	if s.spawn.Active() && s.spawn.Interval() != want {
		s.spawn.Reset(want)
	}
}

// enter stops the old phase's tasks before anything of the new phase starts.
func (s *Session) enter(p cfg.PhaseID) {
	s.phase.Stop()
	prev := systems.EnterPhase(s.ecs, p)
	log.Printf("round: %s -> %s", prev, p)

	switch p {
	case cfg.PhaseCountdown:
		s.phase.Reset(s.ticks(s.tuning.Round.PhaseTickInterval))
	case cfg.PhasePlaying:
		s.phase.Reset(s.ticks(s.tuning.Round.PhaseTickInterval))
		s.spawn.Reset(s.ticks(systems.SpawnInterval(s.tuning.Spawn, 0)))
		s.motion.Reset(s.ticks(s.tuning.Round.MotionInterval))
		systems.SpawnWave(s.ecs)
	case cfg.PhaseEnded:
		s.sched.StopAll()
	}

	if s.onPhase != nil {
		s.onPhase(p)
	}
	if p == cfg.PhaseEnded {
		s.report()
	}
}

func (s *Session) report() {
	round := components.Round.Get(s.entry)
	if round.Reported {
		return
	}
	round.Reported = true
	systems.RoundEnded.Publish(s.ecs.World, systems.RoundEndedEvent{FinalScore: round.FinalScore})
	log.Printf("round: final score %d", round.FinalScore)
	if s.onEnded != nil {
		s.onEnded(round.FinalScore)
	}
}

// SetPlayArea records the measured drop zone and resizes the touch space.
func (s *Session) SetPlayArea(width, height float64) {
	area := components.PlayArea.Get(s.entry)
	if area.Width == width && area.Height == height {
		return
	}
	area.Width, area.Height = width, height
	factory.RebuildSpace(s.ecs, width, height)
}

// Tap resolves a tap on a specific entity. See systems.Tap.
func (s *Session) Tap(id components.EntityID) bool {
	if s.closed {
		return false
	}
	return systems.Tap(s.ecs, id)
}

// TapAt taps the topmost entity under a play-area point.
func (s *Session) TapAt(x, y float64) bool {
	if s.closed {
		return false
	}
	return systems.TapAt(s.ecs, x, y)
}

// ECS exposes the world for renderers and event subscribers.
func (s *Session) ECS() *ecs.ECS { return s.ecs }

// Tuning returns the session's tuning copy.
func (s *Session) Tuning() cfg.Tuning { return s.tuning }

// Now returns the number of ticks stepped so far.
func (s *Session) Now() int { return s.sched.Now() }

func (s *Session) round() *components.RoundData { return components.Round.Get(s.entry) }

// Phase returns the current round phase.
func (s *Session) Phase() cfg.PhaseID { return s.round().Phase }

// Elapsed returns whole seconds since Playing started.
func (s *Session) Elapsed() int { return s.round().Elapsed }

// TimeRemaining returns whole seconds left in Playing.
func (s *Session) TimeRemaining() int { return s.round().TimeRemaining }

// PhaseRemaining returns whole seconds left in the current phase.
func (s *Session) PhaseRemaining() int { return systems.GetPhaseRemaining(s.ecs) }

// Score returns the current cleanliness.
func (s *Session) Score() float64 { return components.Score.Get(s.entry).Value }

// FinalScore returns the rounded final score and whether the round has ended.
func (s *Session) FinalScore() (int, bool) {
	r := s.round()
	return r.FinalScore, r.Reported
}

// BlockActive reports whether beneficial spawns are suppressed.
func (s *Session) BlockActive() bool { return systems.IsBlocked(s.ecs) }

// BlockRemaining returns how long the block modifier has left.
func (s *Session) BlockRemaining() time.Duration {
	ticks := components.Block.Get(s.entry).RemainingTicks()
	return time.Duration(ticks) * time.Second / time.Duration(s.tuning.Round.TicksPerSecond)
}

// Stats returns a copy of the round counters.
func (s *Session) Stats() components.StatsData { return *components.Stats.Get(s.entry) }

// Seed returns the random seed the session was built with.
func (s *Session) Seed() int64 { return components.Random.Get(s.entry).Seed }

// Entities returns the live falling entities ordered by id.
func (s *Session) Entities() []EntityView {
	var views []EntityView
	components.Falling.Each(s.ecs.World, func(e *donburi.Entry) {
		f := components.Falling.Get(e)
		views = append(views, EntityView{
			ID:       f.ID,
			Kind:     f.Kind,
			Variant:  f.Variant,
			X:        f.X,
			Y:        f.Y,
			Rotation: f.Rotation,
			Size:     f.Size,
		})
	})
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}
