package clock

import (
	"cmp"
	"slices"
	"time"
)

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler is a pumped frame clock. The host calls Advance once per
// repaint; frame callbacks and deferred timers run on that call.
//
// Not safe for concurrent use: every method must be called from the
// goroutine that calls Advance.
type Scheduler struct {
	provider Provider

	nextID   uint64
	frames   map[FrameID]func()
	timers   []*Timer
	timerSeq uint64
	passes   uint64
}

// Timer is a one-shot deferred callback created by AfterFunc.
type Timer struct {
	s        *Scheduler
	deadline time.Time
	seq      uint64
	fn       func()
	active   bool
}

// NewScheduler creates a scheduler measuring timers against p.
func NewScheduler(p Provider) *Scheduler {
	return &Scheduler{
		provider: p,
		frames:   make(map[FrameID]func()),
	}
}

// Now returns the provider's time.
func (s *Scheduler) Now() time.Time {
	return s.provider.Now()
}

// Passes returns how many times Advance has run.
func (s *Scheduler) Passes() uint64 {
	return s.passes
}

// RequestFrame schedules fn to run once on the next Advance.
func (s *Scheduler) RequestFrame(fn func()) FrameID {
	s.nextID++
	id := FrameID(s.nextID)
	s.frames[id] = fn
	return id
}

// CancelFrame drops a pending frame request. Unknown or already fired ids
// are ignored.
func (s *Scheduler) CancelFrame(id FrameID) {
	delete(s.frames, id)
}

// AfterFunc schedules fn to run on the first Advance at or after d from now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	s.timerSeq++
	t := &Timer{
		s:        s,
		deadline: s.provider.Now().Add(d),
		seq:      s.timerSeq,
		fn:       fn,
		active:   true,
	}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer. It returns false if the timer already fired or
// was stopped.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	t.s.removeTimer(t)
	return true
}

// Deadline returns when the timer is due.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

func (s *Scheduler) removeTimer(t *Timer) {
	s.timers = slices.DeleteFunc(s.timers, func(x *Timer) bool { return x == t })
}

// Advance runs one pass: timers that are due, earliest deadline first, then
// the frame callbacks that were pending when the pass started. Anything
// scheduled during the pass waits for the next one. Returns the number of
// callbacks run.
func (s *Scheduler) Advance() int {
	s.passes++
	now := s.provider.Now()
	ran := 0

	// Frames requested from here on, timers included, wait for the next pass
	ids := make([]FrameID, 0, len(s.frames))
	for id := range s.frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var due []*Timer
	s.timers = slices.DeleteFunc(s.timers, func(t *Timer) bool {
		if t.deadline.After(now) {
			return false
		}
		due = append(due, t)
		return true
	})
	slices.SortFunc(due, func(a, b *Timer) int {
		if c := a.deadline.Compare(b.deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, t := range due {
		// An earlier callback may have stopped it
		if !t.active {
			continue
		}
		t.active = false
		t.fn()
		ran++
	}

	for _, id := range ids {
		fn, ok := s.frames[id]
		if !ok {
			continue
		}
		delete(s.frames, id)
		fn()
		ran++
	}

	return ran
}

// Pending returns the number of outstanding frame requests and timers.
func (s *Scheduler) Pending() int {
	return len(s.frames) + len(s.timers)
}
