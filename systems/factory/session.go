package factory

import (
	"math/rand"

	"github.com/automoto/toothfall/archetypes"
	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"github.com/automoto/toothfall/schedule"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession builds the round singleton with a full score, an idle block
// modifier and an empty entity index.
func CreateSession(ecs *ecs.ECS, tuning cfg.Tuning, seed int64, blockExpiry *schedule.Task) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Round.SetValue(session, components.RoundData{
		Phase:          cfg.PhaseInstructions,
		PhaseRemaining: seconds(tuning.Round.InstructionsDuration.Seconds()),
		TimeRemaining:  seconds(tuning.Round.PlayDuration.Seconds()),
		HazardsDropped: make(map[int]bool),
	})
	components.Score.SetValue(session, components.ScoreData{
		Value: tuning.Scoring.Initial,
		Min:   tuning.Scoring.Min,
		Max:   tuning.Scoring.Max,
	})
	components.Block.SetValue(session, components.BlockData{
		Duration: schedule.Ticks(tuning.Round.BlockDuration, tuning.Round.TicksPerSecond),
		Expiry:   blockExpiry,
	})
	components.Index.SetValue(session, components.IndexData{
		Live: make(map[components.EntityID]donburi.Entity),
	})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
		Seed: seed,
	})
	components.Tuning.SetValue(session, components.TuningData{Tuning: tuning})

	return session
}

func seconds(s float64) int {
	return int(s + 0.5)
}
