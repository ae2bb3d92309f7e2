package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindLoading Kind = "loading"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// State is what the overlay provider renders: a blocking overlay or a
// transient toast, depending on Kind.
type State struct {
	Visible bool
	Message string
	Kind    Kind
}

// Sink receives every state change. Exactly one provider registers it.
type Sink func(State)

// Service is the overlay/notification store. It is constructed once and
// handed to the view tree by reference; there is no package-level instance.
// Every method is a no-op until a provider has registered a sink, which is
// graceful degradation rather than an error.
type Service struct {
	mu    sync.Mutex
	sink  Sink
	state State
	timer *time.Timer
}

func NewService() *Service {
	return &Service{}
}

// Register installs the provider's sink. Replaces any previous one.
func (s *Service) Register(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Deregister detaches the provider, typically on unmount. Pending
// auto-hide timers are cancelled.
func (s *Service) Deregister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = nil
	s.stopTimerLocked()
}

func (s *Service) Show(message string, kind Kind) {
	s.set(State{Visible: true, Message: message, Kind: kind})
}

func (s *Service) Hide() {
	s.set(State{})
}

func (s *Service) Toggle(visible bool, message string, kind Kind) {
	s.set(State{Visible: visible, Message: message, Kind: kind})
}

func (s *Service) ShowLoading(message string) {
	s.Show(message, KindLoading)
}

func (s *Service) ShowSuccess(message string) {
	s.Show(message, KindSuccess)
}

func (s *Service) ShowError(message string) {
	s.Show(message, KindError)
}

func (s *Service) ShowWarning(message string) {
	s.Show(message, KindWarning)
}

// ShowTemporary shows a message then auto-hides it after duration. A newer
// call supersedes the previous timer.
func (s *Service) ShowTemporary(message string, kind Kind, duration time.Duration) {
	s.mu.Lock()
	if s.sink == nil {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	s.state = State{Visible: true, Message: message, Kind: kind}
	sink := s.sink
	state := s.state
	s.timer = time.AfterFunc(duration, s.Hide)
	s.mu.Unlock()

	sink(state)
}

// Current returns the last published state.
func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) set(state State) {
	s.mu.Lock()
	if s.sink == nil {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	s.state = state
	sink := s.sink
	s.mu.Unlock()

	sink(state)
}

func (s *Service) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
