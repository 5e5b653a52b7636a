package systems

import (
	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi/features/events"
)

// EffectEvent asks the presentation layer for a transient effect at a point.
type EffectEvent struct {
	Kind cfg.EffectID
	X, Y float64
}

// PhaseEvent is published on every round phase transition.
type PhaseEvent struct {
	From, To cfg.PhaseID
}

// RoundEndedEvent is published once when Playing reaches zero.
type RoundEndedEvent struct {
	FinalScore int
}

var (
	EffectRequested = events.NewEventType[EffectEvent]()
	PhaseChanged    = events.NewEventType[PhaseEvent]()
	RoundEnded      = events.NewEventType[RoundEndedEvent]()
)
