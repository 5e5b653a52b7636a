package systems

import (
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sessionEntry returns the round singleton, if the world has one.
func sessionEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Session.First(e.World)
}

// GetRound returns the round state, or nil outside a session.
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// GetScore returns the score accumulator, or nil outside a session.
func GetScore(e *ecs.ECS) *components.ScoreData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}

// GetBlock returns the block modifier, or nil outside a session.
func GetBlock(e *ecs.ECS) *components.BlockData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Block.Get(entry)
}

// GetPlayArea returns the measured drop zone, or nil outside a session.
func GetPlayArea(e *ecs.ECS) *components.PlayAreaData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.PlayArea.Get(entry)
}

// GetStats returns the round counters, or nil outside a session.
func GetStats(e *ecs.ECS) *components.StatsData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Stats.Get(entry)
}

// IsPlaying returns true while falling entities may move, spawn or be tapped.
func IsPlaying(e *ecs.ECS) bool {
	round := GetRound(e)
	return round != nil && round.Phase == cfg.PhasePlaying
}
