package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRequestFrame_RunsOnce(t *testing.T) {
	s := NewScheduler(NewMock(epoch))
	calls := 0
	s.RequestFrame(func() { calls++ })

	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending, got %d", s.Pending())
	}

	s.Advance()
	s.Advance()

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", s.Pending())
	}
}

func TestRequestFrame_DuringPassRunsNextPass(t *testing.T) {
	s := NewScheduler(NewMock(epoch))
	calls := 0
	var loop func()
	loop = func() {
		calls++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	for i := 0; i < 10; i++ {
		if ran := s.Advance(); ran != 1 {
			t.Fatalf("pass %d: expected 1 callback, got %d", i, ran)
		}
	}
	if calls != 10 {
		t.Errorf("expected 10 calls, got %d", calls)
	}
}

func TestCancelFrame(t *testing.T) {
	s := NewScheduler(NewMock(epoch))
	called := false
	id := s.RequestFrame(func() { called = true })

	// Repeated and unknown ids are ignored
	s.CancelFrame(id)
	s.CancelFrame(id)
	s.CancelFrame(FrameID(999))
	s.Advance()

	if called {
		t.Error("cancelled frame ran")
	}
}

func TestCancelFrame_WithinPass(t *testing.T) {
	s := NewScheduler(NewMock(epoch))
	called := false
	var second FrameID
	s.RequestFrame(func() { s.CancelFrame(second) })
	second = s.RequestFrame(func() { called = true })

	s.Advance()

	if called {
		t.Error("frame cancelled earlier in the same pass still ran")
	}
}

func TestAfterFunc_FiresAtDeadline(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	fired := false
	s.AfterFunc(3*time.Second, func() { fired = true })

	mock.Advance(2999 * time.Millisecond)
	s.Advance()
	if fired {
		t.Fatal("timer fired early")
	}

	mock.Advance(time.Millisecond)
	s.Advance()
	if !fired {
		t.Fatal("timer did not fire at deadline")
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", s.Pending())
	}
}

func TestAfterFunc_Order(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	var order []int
	s.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	s.AfterFunc(time.Second, func() { order = append(order, 1) })
	s.AfterFunc(2*time.Second, func() { order = append(order, 3) })

	mock.Advance(5 * time.Second)
	s.Advance()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %v, got %v", want, order)
			break
		}
	}
}

func TestAfterFunc_TimersBeforeFrames(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	var order []string
	s.RequestFrame(func() { order = append(order, "frame") })
	s.AfterFunc(0, func() { order = append(order, "timer") })

	s.Advance()

	if len(order) != 2 || order[0] != "timer" || order[1] != "frame" {
		t.Errorf("expected [timer frame], got %v", order)
	}
}

func TestAfterFunc_FrameRequestedByTimerWaits(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	ran := 0
	s.AfterFunc(0, func() {
		s.RequestFrame(func() { ran++ })
	})

	if n := s.Advance(); n != 1 {
		t.Errorf("expected only the timer to run, got %d callbacks", n)
	}
	if ran != 0 {
		t.Fatal("frame requested by a timer ran in the same pass")
	}

	s.Advance()
	if ran != 1 {
		t.Errorf("expected the frame on the next pass, ran %d times", ran)
	}
}

func TestTimerStop(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("expected first Stop to report true")
	}
	if timer.Stop() {
		t.Error("expected second Stop to report false")
	}

	mock.Advance(2 * time.Second)
	s.Advance()
	if fired {
		t.Error("stopped timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", s.Pending())
	}
}

func TestTimerStop_AfterFire(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	timer := s.AfterFunc(0, func() {})
	s.Advance()

	if timer.Stop() {
		t.Error("Stop after firing should report false")
	}
}

func TestTimerStop_ByEarlierTimer(t *testing.T) {
	mock := NewMock(epoch)
	s := NewScheduler(mock)
	fired := false
	var later *Timer
	s.AfterFunc(time.Second, func() { later.Stop() })
	later = s.AfterFunc(2*time.Second, func() { fired = true })

	mock.Advance(3 * time.Second)
	s.Advance()

	if fired {
		t.Error("timer stopped by an earlier callback in the same pass still fired")
	}
}

func TestMock(t *testing.T) {
	m := NewMock(epoch)
	m.Advance(time.Minute)
	if got := m.Now(); !got.Equal(epoch.Add(time.Minute)) {
		t.Errorf("expected %v, got %v", epoch.Add(time.Minute), got)
	}
	m.Set(epoch)
	if got := m.Now(); !got.Equal(epoch) {
		t.Errorf("expected %v after Set, got %v", epoch, got)
	}
}
