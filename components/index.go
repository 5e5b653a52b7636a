package components

import (
	"math/rand"

	cfg "github.com/automoto/toothfall/config"
	"github.com/yohamta/donburi"
)

// IndexData maps live entity ids to world entities. Removing an id is the
// single point where an entity is destroyed.
type IndexData struct {
	Next EntityID
	Live map[EntityID]donburi.Entity
}

var Index = donburi.NewComponentType[IndexData]()

// RandomData is the round's seedable random source.
type RandomData struct {
	*rand.Rand
	Seed int64
}

var Random = donburi.NewComponentType[RandomData]()

// TuningData is the round's copy of the game tuning.
type TuningData struct {
	cfg.Tuning
}

var Tuning = donburi.NewComponentType[TuningData]()

// StatsData counts what happened in a round, for reports and debug output.
type StatsData struct {
	Spawned [cfg.KindCount]int
	Tapped  [cfg.KindCount]int
	Crossed [cfg.KindCount]int
	Cleared int // beneficial entities removed by a hazard tap
}

var Stats = donburi.NewComponentType[StatsData]()
