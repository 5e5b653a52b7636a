package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRunIsDeterministic(t *testing.T) {
	a := run(2, 7, 480, 560, 0.7)
	b := run(2, 7, 480, 560, 0.7)
	for i := range a.Rounds {
		if a.Rounds[i].FinalScore != b.Rounds[i].FinalScore {
			t.Errorf("round %d: %d vs %d", i, a.Rounds[i].FinalScore, b.Rounds[i].FinalScore)
		}
	}
}

func TestRunReport(t *testing.T) {
	report := run(3, 1, 480, 560, 0.9)

	if len(report.Rounds) != 3 {
		t.Fatalf("rounds = %d", len(report.Rounds))
	}
	for i, r := range report.Rounds {
		if r.Seed != int64(1+i) {
			t.Errorf("round %d seed = %d", i, r.Seed)
		}
		if r.FinalScore < 0 || r.FinalScore > 100 {
			t.Errorf("round %d score %d out of range", i, r.FinalScore)
		}
		if r.Spawned["hazard"] != 8 {
			t.Errorf("round %d hazards = %d, want 8", i, r.Spawned["hazard"])
		}
		if r.Tapped["harmful"] == 0 {
			t.Errorf("round %d: bot never tapped a germ", i)
		}
	}
	if report.Summary.Min > report.Summary.Max {
		t.Errorf("summary min %d > max %d", report.Summary.Min, report.Summary.Max)
	}
}

func TestReportWritesYAML(t *testing.T) {
	report := &Report{
		Seed:   3,
		Rounds: []RoundReport{{Seed: 3, FinalScore: 88, Grade: "GREAT WORK!"}},
	}
	report.Summary = summarize(report.Rounds)

	var buf bytes.Buffer
	if err := report.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "final_score: 88") {
		t.Errorf("missing final_score in:\n%s", buf.String())
	}

	var back Report
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Summary.Mean != 88 || back.Summary.Grades["GREAT WORK!"] != 1 {
		t.Errorf("summary = %+v", back.Summary)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil)
	if s.Mean != 0 || s.Min != 0 || s.Max != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	report := run(1, 3, 480, 560, 0.5)
	if err := writeReportFile(path, report); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Rounds) != 1 || got.Rounds[0].FinalScore != report.Rounds[0].FinalScore {
		t.Errorf("read back %+v", got.Rounds)
	}
}

func TestWriteReportFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.yaml")
	if err := writeReportFile(path, &Report{}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
