package testutil

import (
	"sync"
	"time"
)

// FakeSleeper records requested waits instead of sleeping.
type FakeSleeper struct {
	mu     sync.Mutex
	waits  []time.Duration
	events *[]string
}

// NewFakeSleeper returns a sleeper that also appends "Wait(d)" entries to events when non-nil.
func NewFakeSleeper(events *[]string) *FakeSleeper {
	return &FakeSleeper{events: events}
}

// Sleep records the duration and returns immediately.
func (s *FakeSleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	if s.events != nil {
		*s.events = append(*s.events, "Wait("+d.String()+")")
	}
}

// Waits returns a copy of the recorded durations.
func (s *FakeSleeper) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.waits))
	copy(out, s.waits)
	return out
}

// BlockingSleeper parks every Sleep call until Release is called.
type BlockingSleeper struct {
	entered chan time.Duration
	release chan struct{}
	once    sync.Once
}

// NewBlockingSleeper returns a sleeper that blocks until released.
func NewBlockingSleeper() *BlockingSleeper {
	return &BlockingSleeper{
		entered: make(chan time.Duration, 64),
		release: make(chan struct{}),
	}
}

// Sleep signals entry and blocks until Release.
func (s *BlockingSleeper) Sleep(d time.Duration) {
	select {
	case s.entered <- d:
	default:
	}
	<-s.release
}

// Entered reports each duration as Sleep is entered.
func (s *BlockingSleeper) Entered() <-chan time.Duration {
	return s.entered
}

// Release unblocks all current and future Sleep calls.
func (s *BlockingSleeper) Release() {
	s.once.Do(func() { close(s.release) })
}
