package main

import (
	"io"
	"math"

	"github.com/automoto/toothfall/components"
	cfg "github.com/automoto/toothfall/config"
	"gopkg.in/yaml.v3"
)

// Report is the YAML document written after a batch of simulated rounds.
type Report struct {
	Seed    int64         `yaml:"seed"`
	Skill   float64       `yaml:"skill"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Rounds  []RoundReport `yaml:"rounds"`
	Summary Summary       `yaml:"summary"`
}

// RoundReport describes one finished round.
type RoundReport struct {
	Seed       int64          `yaml:"seed"`
	FinalScore int            `yaml:"final_score"`
	Grade      string         `yaml:"grade"`
	Spawned    map[string]int `yaml:"spawned"`
	Tapped     map[string]int `yaml:"tapped"`
	Crossed    map[string]int `yaml:"crossed"`
	Cleared    int            `yaml:"cleared"`
}

// Summary aggregates final scores across rounds.
type Summary struct {
	Mean   float64        `yaml:"mean"`
	Min    int            `yaml:"min"`
	Max    int            `yaml:"max"`
	Grades map[string]int `yaml:"grades"`
}

func perKind(counts [cfg.KindCount]int) map[string]int {
	m := make(map[string]int, cfg.KindCount)
	for k := cfg.KindID(0); k < cfg.KindCount; k++ {
		m[k.String()] = counts[k]
	}
	return m
}

func newRoundReport(seed int64, score int, grade string, stats components.StatsData) RoundReport {
	return RoundReport{
		Seed:       seed,
		FinalScore: score,
		Grade:      grade,
		Spawned:    perKind(stats.Spawned),
		Tapped:     perKind(stats.Tapped),
		Crossed:    perKind(stats.Crossed),
		Cleared:    stats.Cleared,
	}
}

func summarize(rounds []RoundReport) Summary {
	s := Summary{Grades: map[string]int{}}
	if len(rounds) == 0 {
		return s
	}
	s.Min, s.Max = math.MaxInt, math.MinInt
	total := 0
	for _, r := range rounds {
		total += r.FinalScore
		s.Min = min(s.Min, r.FinalScore)
		s.Max = max(s.Max, r.FinalScore)
		s.Grades[r.Grade]++
	}
	s.Mean = float64(total) / float64(len(rounds))
	return s
}

// Write encodes the report as YAML.
func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
