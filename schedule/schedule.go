// Package schedule is a tick-driven task scheduler. Time only moves when Advance
// is called, so a round can be replayed exactly from a seed and a tick count.
package schedule

import "time"

// Task is a named periodic or one-shot callback owned by a Scheduler.
type Task struct {
	name     string
	interval int
	next     int
	repeat   bool
	active   bool
	gen      int
	fn       func()
	s        *Scheduler
}

// Scheduler fires tasks in registration order on each tick.
type Scheduler struct {
	now   int
	tasks []*Task
}

// New returns a scheduler at tick 0.
func New() *Scheduler {
	return &Scheduler{}
}

// Ticks converts a duration to whole ticks at the given rate, never less than one.
func Ticks(d time.Duration, perSecond int) int {
	n := int(d * time.Duration(perSecond) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// Now returns the number of ticks advanced so far.
func (s *Scheduler) Now() int {
	return s.now
}

// Every registers a repeating task whose first run is interval ticks from now.
func (s *Scheduler) Every(name string, interval int, fn func()) *Task {
	t := s.add(name, true, fn)
	t.Reset(interval)
	return t
}

// Repeating registers an idle repeating task. Reset arms it and sets its interval.
func (s *Scheduler) Repeating(name string, fn func()) *Task {
	return s.add(name, true, fn)
}

// Timer registers an idle one-shot task. It does nothing until Reset arms it.
func (s *Scheduler) Timer(name string, fn func()) *Task {
	return s.add(name, false, fn)
}

func (s *Scheduler) add(name string, repeat bool, fn func()) *Task {
	t := &Task{name: name, repeat: repeat, fn: fn, s: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Task returns the most recently registered task with the given name.
func (s *Scheduler) Task(name string) *Task {
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].name == name {
			return s.tasks[i]
		}
	}
	return nil
}

// Advance moves time forward one tick and runs every task that is due.
// A task stopped or re-armed by an earlier callback in the same tick is
// evaluated with its new state.
func (s *Scheduler) Advance() {
	s.now++
	for i := 0; i < len(s.tasks); i++ {
		t := s.tasks[i]
		if !t.active || t.next > s.now {
			continue
		}
		gen := t.gen
		if !t.repeat {
			t.active = false
		}
		t.fn()
		if t.repeat && t.active && t.gen == gen {
			t.next += t.interval
		}
	}
}

// StopAll cancels every task.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		t.Stop()
	}
}

// Interval returns the current interval in ticks.
func (t *Task) Interval() int {
	return t.interval
}

// Active reports whether the task will fire again.
func (t *Task) Active() bool {
	return t.active
}

// Remaining returns ticks until the next run, or 0 when idle.
func (t *Task) Remaining() int {
	if !t.active {
		return 0
	}
	return t.next - t.s.now
}

// Reset re-arms the task so it next fires interval ticks from now. Pending runs
// are discarded, so resetting never stacks.
func (t *Task) Reset(interval int) {
	if interval < 1 {
		interval = 1
	}
	t.gen++
	t.interval = interval
	t.next = t.s.now + interval
	t.active = true
}

// Stop cancels the task. Stopping twice is harmless.
func (t *Task) Stop() {
	t.gen++
	t.active = false
}
