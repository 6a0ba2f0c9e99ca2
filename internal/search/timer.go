package search

import "time"

// TimerKind identifies one of the controller's delayed actions.
type TimerKind int

const (
	// FilterTimer runs the debounced filter pass for the latest query.
	FilterTimer TimerKind = iota
	// HoverTimer applies the debounced pointer highlight.
	HoverTimer
)

func (k TimerKind) String() string {
	switch k {
	case FilterTimer:
		return "filter"
	case HoverTimer:
		return "hover"
	default:
		return "unknown"
	}
}

// Timer is a request for a single delayed callback. The scheduler hands it
// back to Controller.Fire once Delay has elapsed.
type Timer struct {
	Kind  TimerKind
	Gen   uint64
	Delay time.Duration
}

// Scheduler arranges for a Timer to be delivered after its delay.
type Scheduler interface {
	Schedule(t Timer)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(t Timer)

// Schedule calls f(t).
func (f SchedulerFunc) Schedule(t Timer) {
	f(t)
}

// slot holds at most one outstanding timer of a kind. Arming replaces the
// previous request; only the most recent generation may fire.
type slot struct {
	gen   uint64
	armed bool
}

func (s *slot) arm() uint64 {
	s.gen++
	s.armed = true
	return s.gen
}

func (s *slot) cancel() {
	s.armed = false
}

func (s *slot) fire(gen uint64) bool {
	if !s.armed || gen != s.gen {
		return false
	}
	s.armed = false
	return true
}

func (s *slot) pending() bool {
	return s.armed
}
