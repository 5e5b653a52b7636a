package systems

import (
	"testing"

	cfg "github.com/automoto/toothfall/config"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "EXCELLENT!"},
		{90, "EXCELLENT!"},
		{89, "GREAT WORK!"},
		{70, "GREAT WORK!"},
		{69, "GOOD EFFORT!"},
		{50, "GOOD EFFORT!"},
		{49, "NICE TRY!"},
		{0, "NICE TRY!"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score).Label; got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTeethShadeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Very clean!"},
		{80, "Very clean!"},
		{79.9, "Clean"},
		{60, "Clean"},
		{45, "Average"},
		{20, "Dirty"},
		{19, "Very dirty!"},
	}
	for _, tt := range tests {
		if got := TeethShadeFor(tt.score).Label; got != tt.want {
			t.Errorf("TeethShadeFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreColorFor(t *testing.T) {
	if got := ScoreColorFor(70).Color; got != cfg.LightGreen {
		t.Errorf("70 -> %v, want green", got)
	}
	if got := ScoreColorFor(69).Color; got != cfg.BrightYellow {
		t.Errorf("69 -> %v, want yellow", got)
	}
	if got := ScoreColorFor(39).Color; got != cfg.LightRed {
		t.Errorf("39 -> %v, want red", got)
	}
}

func TestTierForEmpty(t *testing.T) {
	if got := TierFor(nil, 50); got.Color != cfg.White {
		t.Errorf("empty tiers = %+v", got)
	}
}

func TestDropZone(t *testing.T) {
	zone := DropZone(480, 800)
	if zone.Min.Y != 80 || zone.Max.Y != 640 || zone.Dx() != 480 {
		t.Errorf("DropZone(480, 800) = %v", zone)
	}
	teeth := TeethStrip(480, 800)
	if teeth.Min.Y != 640 || teeth.Max.Y != 800 {
		t.Errorf("TeethStrip(480, 800) = %v", teeth)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{60, "1:00"}, {59, "0:59"}, {5, "0:05"}, {0, "0:00"}, {-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
