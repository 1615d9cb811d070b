// Package notify provides latest-value broadcast streams. A subscriber
// immediately receives the most recently published value (if any) and then
// every later publication. Publishing never blocks: a slow subscriber's
// pending value is replaced, so each subscriber always converges on the
// latest state.
package notify

import (
	"sync"

	"github.com/rkuiper/tunesync/internal/profile"
)

// Stream is a latest-value broadcast channel for values of type T.
type Stream[T any] struct {
	mu     sync.Mutex
	latest T
	set    bool
	subs   map[int]chan T
	nextID int
}

// NewStream returns an empty stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{subs: make(map[int]chan T)}
}

// Publish stores v as the latest value and re-emits it to every
// subscriber, even if v equals the previous value.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = v
	s.set = true
	for _, ch := range s.subs {
		deliver(ch, v)
	}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. If a value has been published before, it is replayed
// immediately.
func (s *Stream[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan T, 1)
	s.subs[id] = ch
	if s.set {
		deliver(ch, s.latest)
	}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Latest returns the most recently published value, if any.
func (s *Stream[T]) Latest() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.set
}

// deliver replaces a pending value instead of blocking. Only Publish sends
// on subscriber channels and it holds the stream lock, so the drain-then-send
// below cannot race another sender.
func deliver[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Hub bundles the process-wide observable state: the mirrored settings and
// the edit session's draft profile (nil while idle).
type Hub struct {
	Settings *Stream[profile.Settings]
	Draft    *Stream[*profile.Profile]
}

// NewHub returns a hub with empty streams.
func NewHub() *Hub {
	return &Hub{
		Settings: NewStream[profile.Settings](),
		Draft:    NewStream[*profile.Profile](),
	}
}
