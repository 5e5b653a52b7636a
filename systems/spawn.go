package systems

import (
	"log"
	"time"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBracketFor returns the spawn table row in effect at elapsed seconds.
func SpawnBracketFor(spawn cfg.SpawnConfig, elapsed int) cfg.SpawnBracket {
	for _, b := range spawn.Brackets {
		if elapsed < b.Until {
			return b
		}
	}
	if n := len(spawn.Brackets); n > 0 {
		return spawn.Brackets[n-1]
	}
	return cfg.SpawnBracket{}
}

// HarmfulBatchSize is the number of harmful entities per spawn tick at elapsed seconds.
func HarmfulBatchSize(spawn cfg.SpawnConfig, elapsed int) int {
	return SpawnBracketFor(spawn, elapsed).Batch
}

// SpawnInterval is the time between spawn ticks at elapsed seconds.
func SpawnInterval(spawn cfg.SpawnConfig, elapsed int) time.Duration {
	return SpawnBracketFor(spawn, elapsed).Interval
}

// IsHazardSecond reports whether a hazard is scheduled at elapsed seconds.
func IsHazardSecond(spawn cfg.SpawnConfig, elapsed int) bool {
	for _, s := range spawn.HazardSeconds {
		if s == elapsed {
			return true
		}
	}
	return false
}

// SpawnWave runs one spawn tick: a harmful batch sized by elapsed time, plus
// at most one beneficial unless the block modifier is active.
func SpawnWave(ecs *ecs.ECS) {
	entry, ok := sessionEntry(ecs)
	if !ok || !IsPlaying(ecs) {
		return
	}
	area := components.PlayArea.Get(entry)
	if !area.Measured() {
		return
	}
	tuning := components.Tuning.Get(entry)
	round := components.Round.Get(entry)
	rng := components.Random.Get(entry)

	batch := HarmfulBatchSize(tuning.Spawn, round.Elapsed)
	for i := 0; i < batch; i++ {
		spawnKind(ecs, cfg.KindHarmful, tuning, area, rng)
	}

	// The draw happens even while blocked so the random stream does not depend
	// on block timing.
	roll := rng.Float64()
	if !IsBlocked(ecs) && roll < tuning.Spawn.BeneficialChance {
		spawnKind(ecs, cfg.KindBeneficial, tuning, area, rng)
	}
}

// SpawnScheduledHazard drops the hazard for the current elapsed second, at
// most once per scheduled second.
func SpawnScheduledHazard(ecs *ecs.ECS) bool {
	entry, ok := sessionEntry(ecs)
	if !ok || !IsPlaying(ecs) {
		return false
	}
	area := components.PlayArea.Get(entry)
	if !area.Measured() {
		return false
	}
	tuning := components.Tuning.Get(entry)
	round := components.Round.Get(entry)
	if !IsHazardSecond(tuning.Spawn, round.Elapsed) || round.HazardsDropped[round.Elapsed] {
		return false
	}
	round.HazardsDropped[round.Elapsed] = true
	spawnKind(ecs, cfg.KindHazard, tuning, area, components.Random.Get(entry))
	return true
}

func spawnKind(ecs *ecs.ECS, kind cfg.KindID, tuning *components.TuningData, area *components.PlayAreaData, rng *components.RandomData) {
	k := tuning.Kinds[kind]

	x := 0.0
	if span := area.Width - k.Margin; span > 0 {
		x = rng.Float64() * span
	}
	spec := factory.FallingSpec{
		Kind:         kind,
		X:            x,
		Y:            k.StartY,
		Velocity:     k.SpeedMin + rng.Float64()*k.SpeedSpread,
		RotationRate: (rng.Float64() - 0.5) * k.RotationSpread,
		Size:         k.SizeMin + rng.Float64()*k.SizeSpread,
	}
	if k.Variants > 1 {
		spec.Variant = rng.Intn(k.Variants)
	}

	entry := factory.CreateFalling(ecs, spec, tuning.TouchMargin)
	if entry != nil && cfg.Debug.Trace {
		f := components.Falling.Get(entry)
		log.Printf("spawn %s #%d x=%.0f v=%.0f", f.Kind, f.ID, f.X, f.Velocity)
	}
}
