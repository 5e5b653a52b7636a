// Command simulate plays rounds headlessly with a scripted player and writes
// a YAML report of the results.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/automoto/toothfall/round"
	"github.com/automoto/toothfall/systems"
)

func main() {
	rounds := flag.Int("rounds", 10, "Number of rounds to play")
	seed := flag.Int64("seed", 1, "Seed for the first round; later rounds add 1")
	width := flag.Float64("width", 480, "Play area width")
	height := flag.Float64("height", 560, "Play area height")
	skill := flag.Float64("skill", 0.6, "Chance the bot taps a visible germ when it looks")
	out := flag.String("out", "", "Report file (default stdout)")
	verbose := flag.Bool("v", false, "Log round transitions")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *rounds < 1 {
		fmt.Fprintln(os.Stderr, "simulate: -rounds must be at least 1")
		os.Exit(2)
	}

	report := run(*rounds, *seed, *width, *height, *skill)

	var err error
	if *out == "" {
		err = report.Write(os.Stdout)
	} else {
		err = writeReportFile(*out, report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: write report: %v\n", err)
		os.Exit(1)
	}
}

// writeReportFile writes the report to path. A failed close is reported so a
// short write is never silent.
func writeReportFile(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(rounds int, seed int64, width, height, skill float64) *Report {
	report := &Report{Seed: seed, Skill: skill, Width: width, Height: height}

	for i := 0; i < rounds; i++ {
		roundSeed := seed + int64(i)
		report.Rounds = append(report.Rounds, playRound(roundSeed, width, height, skill))
	}
	report.Summary = summarize(report.Rounds)
	return report
}

func playRound(seed int64, width, height, skill float64) RoundReport {
	done := false
	final := 0
	s := round.NewSession(round.Options{
		Seed:   seed,
		Width:  width,
		Height: height,
		OnEnded: func(score int) {
			done = true
			final = score
		},
	})
	defer s.Close()

	b := newBot(seed, skill)
	for !done {
		b.act(s)
		s.Step()
	}
	return newRoundReport(seed, final, systems.GradeFor(final).Label, s.Stats())
}
