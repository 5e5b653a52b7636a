package schedule

import (
	"testing"
	"time"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{1200 * time.Millisecond, 72},
		{900 * time.Millisecond, 54},
		{600 * time.Millisecond, 36},
		{time.Second, 60},
		{time.Second / 60, 1},
		{5 * time.Second, 300},
		{0, 1},
	}
	for _, tt := range tests {
		if got := Ticks(tt.d, 60); got != tt.want {
			t.Errorf("Ticks(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestEveryFiresOnInterval(t *testing.T) {
	s := New()
	var fired []int
	s.Every("tick", 3, func() { fired = append(fired, s.Now()) })

	for i := 0; i < 10; i++ {
		s.Advance()
	}

	want := []int{3, 6, 9}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %d, want %d", i, fired[i], want[i])
		}
	}
}

func TestTimerIdleUntilReset(t *testing.T) {
	s := New()
	count := 0
	timer := s.Timer("expiry", func() { count++ })

	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if count != 0 {
		t.Fatalf("idle timer fired %d times", count)
	}

	timer.Reset(2)
	s.Advance()
	if !timer.Active() || timer.Remaining() != 1 {
		t.Fatalf("active=%v remaining=%d, want active with 1 left", timer.Active(), timer.Remaining())
	}
	s.Advance()
	s.Advance()
	s.Advance()
	if count != 1 {
		t.Errorf("one-shot fired %d times, want 1", count)
	}
	if timer.Active() {
		t.Error("one-shot still active after firing")
	}
}

func TestResetRestartsWithoutStacking(t *testing.T) {
	s := New()
	count := 0
	timer := s.Timer("expiry", func() { count++ })

	timer.Reset(5)
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	timer.Reset(5)
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	if count != 0 {
		t.Fatalf("re-armed timer fired early: %d", count)
	}
	s.Advance()
	if count != 1 {
		t.Fatalf("count = %d after full window, want 1", count)
	}
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if count != 1 {
		t.Errorf("timer fired again without re-arm: %d", count)
	}
}

func TestStopInsideCallbackCancelsLaterTask(t *testing.T) {
	s := New()
	var other *Task
	otherRuns := 0
	s.Every("first", 1, func() { other.Stop() })
	other = s.Every("second", 1, func() { otherRuns++ })

	s.Advance()
	s.Advance()
	if otherRuns != 0 {
		t.Errorf("stopped task ran %d times", otherRuns)
	}
}

func TestResetInsideCallbackChangesCadence(t *testing.T) {
	s := New()
	var task *Task
	var fired []int
	task = s.Every("spawn", 2, func() {
		fired = append(fired, s.Now())
		if s.Now() == 4 {
			task.Reset(5)
		}
	})
	for i := 0; i < 12; i++ {
		s.Advance()
	}
	want := []int{2, 4, 9}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %d, want %d", i, fired[i], want[i])
		}
	}
}

func TestStopAll(t *testing.T) {
	s := New()
	runs := 0
	s.Every("a", 1, func() { runs++ })
	b := s.Timer("b", func() { runs++ })
	b.Reset(1)

	s.StopAll()
	for i := 0; i < 3; i++ {
		s.Advance()
	}
	if runs != 0 {
		t.Errorf("runs = %d after StopAll", runs)
	}
	if s.Task("b") != b {
		t.Error("Task lookup lost the timer")
	}
}

func TestRepeatingIdleUntilReset(t *testing.T) {
	s := New()
	runs := 0
	task := s.Repeating("phase", func() { runs++ })

	s.Advance()
	if runs != 0 || task.Active() {
		t.Fatalf("idle repeating task ran: runs=%d active=%v", runs, task.Active())
	}

	task.Reset(2)
	for i := 0; i < 6; i++ {
		s.Advance()
	}
	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
}
