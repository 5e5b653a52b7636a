package systems

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi/ecs"
)

// NextPhase returns the phase that follows p. Ended has no successor.
func NextPhase(p cfg.PhaseID) cfg.PhaseID {
	switch p {
	case cfg.PhaseInstructions:
		return cfg.PhaseCountdown
	case cfg.PhaseCountdown:
		return cfg.PhasePlaying
	default:
		return cfg.PhaseEnded
	}
}

// TickPhaseClock handles one countdown tick for the current phase and reports
// whether the phase is over. It never changes the phase itself.
func TickPhaseClock(ecs *ecs.ECS) bool {
	round := GetRound(ecs)
	if round == nil {
		return false
	}

	switch round.Phase {
	case cfg.PhaseInstructions, cfg.PhaseCountdown:
		if round.PhaseRemaining > 0 {
			round.PhaseRemaining--
		}
		return round.PhaseRemaining <= 0

	case cfg.PhasePlaying:
		if round.TimeRemaining > 0 {
			round.TimeRemaining--
			round.Elapsed++
		}
		return round.TimeRemaining <= 0
	}
	return false
}

// EnterPhase moves the round into p and resets the phase clock. It returns the
// previous phase. Entering Ended latches the final score once.
func EnterPhase(ecs *ecs.ECS, p cfg.PhaseID) cfg.PhaseID {
	entry, ok := sessionEntry(ecs)
	if !ok {
		return p
	}
	round := components.Round.Get(entry)
	tuning := components.Tuning.Get(entry)
	prev := round.Phase
	round.Phase = p

	switch p {
	case cfg.PhaseInstructions:
		round.PhaseRemaining = int(tuning.Round.InstructionsDuration.Seconds())
	case cfg.PhaseCountdown:
		round.PhaseRemaining = int(tuning.Round.CountdownDuration.Seconds())
	case cfg.PhasePlaying:
		round.PhaseRemaining = 0
		round.TimeRemaining = int(tuning.Round.PlayDuration.Seconds())
		round.Elapsed = 0
	case cfg.PhaseEnded:
		round.PhaseRemaining = 0
		if !round.Reported {
			round.FinalScore = components.Score.Get(entry).Rounded()
		}
	}

	PhaseChanged.Publish(ecs.World, PhaseEvent{From: prev, To: p})
	return prev
}

// GetPhaseRemaining returns the seconds left in the current phase.
func GetPhaseRemaining(ecs *ecs.ECS) int {
	round := GetRound(ecs)
	if round == nil {
		return 0
	}
	if round.Phase == cfg.PhasePlaying {
		return round.TimeRemaining
	}
	return round.PhaseRemaining
}
