package notify

import (
	"sync"
	"testing"
	"time"
)

// recorder captures published states in order.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) sink(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) last() (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return State{}, false
	}
	return r.states[len(r.states)-1], true
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func TestNoOpBeforeRegister(t *testing.T) {
	t.Parallel()

	s := NewService()
	s.ShowError("nobody listening")
	s.ShowTemporary("still nobody", KindSuccess, time.Millisecond)
	s.Hide()

	if got := s.Current(); got.Visible || got.Message != "" {
		t.Errorf("state changed with no sink registered: %+v", got)
	}
}

func TestShowPublishesToSink(t *testing.T) {
	t.Parallel()

	s := NewService()
	rec := &recorder{}
	s.Register(rec.sink)

	s.ShowLoading("Loading vehicles")
	last, ok := rec.last()
	if !ok {
		t.Fatal("sink received nothing")
	}
	if !last.Visible || last.Kind != KindLoading || last.Message != "Loading vehicles" {
		t.Errorf("published state: %+v", last)
	}

	s.Hide()
	last, _ = rec.last()
	if last.Visible {
		t.Errorf("hide not published: %+v", last)
	}
}

func TestShowTemporaryAutoHides(t *testing.T) {
	t.Parallel()

	s := NewService()
	rec := &recorder{}
	s.Register(rec.sink)

	s.ShowTemporary("Saved", KindSuccess, 10*time.Millisecond)
	if got := s.Current(); !got.Visible || got.Message != "Saved" {
		t.Fatalf("state right after show: %+v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !s.Current().Visible {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("temporary notification never auto-hid")
}

func TestNewTemporarySupersedesTimer(t *testing.T) {
	t.Parallel()

	s := NewService()
	rec := &recorder{}
	s.Register(rec.sink)

	s.ShowTemporary("first", KindWarning, time.Hour)
	s.ShowTemporary("second", KindSuccess, time.Hour)

	if got := s.Current(); got.Message != "second" {
		t.Errorf("current = %+v, want the newer message", got)
	}
	if rec.count() != 2 {
		t.Errorf("sink saw %d states, want 2", rec.count())
	}
}

func TestDeregisterSilencesService(t *testing.T) {
	t.Parallel()

	s := NewService()
	rec := &recorder{}
	s.Register(rec.sink)
	s.ShowSuccess("before")

	s.Deregister()
	s.ShowError("after")

	last, _ := rec.last()
	if last.Message != "before" {
		t.Errorf("sink received %+v after deregister", last)
	}
}
