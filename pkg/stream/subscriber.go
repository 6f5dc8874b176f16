package stream

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSubscriberClosed is returned by Next once a subscriber has been closed
// and its queue fully drained. The consumer must unregister on seeing it.
var ErrSubscriberClosed = errors.New("subscriber closed")

// Subscriber is one consumer attached to a hub. It receives a replay of
// events persisted before attach, then live events, strictly once each and
// in sequence order. Subscribers are never shared across consumers.
type Subscriber struct {
	id string

	// replay is served before the live queue. Written once during
	// Hub.Subscribe, then touched only by the consuming goroutine.
	replay []*Envelope

	// minSeq is the hub high-water at attach time. Live offers at or below
	// it are duplicates of the replay and are dropped.
	minSeq int64

	ch   chan *Envelope
	done chan struct{}
	once sync.Once

	mu       sync.Mutex
	sentinel *Envelope
}

func newSubscriber(id string, buffer int, minSeq int64) *Subscriber {
	return &Subscriber{
		id:     id,
		minSeq: minSeq,
		ch:     make(chan *Envelope, buffer),
		done:   make(chan struct{}),
	}
}

// ID returns the subscriber's unique id.
func (s *Subscriber) ID() string { return s.id }

// offer enqueues a live event without blocking. It reports false when the
// queue is full; the hub then drops this subscriber as a slow consumer.
func (s *Subscriber) offer(ev *Envelope) bool {
	if ev.Sequence <= s.minSeq {
		return true // covered by replay
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Next returns the next event. It blocks until an event is available, the
// subscriber is closed (ErrSubscriberClosed after the queue drains), or the
// context ends.
func (s *Subscriber) Next(ctx context.Context) (*Envelope, error) {
	if len(s.replay) > 0 {
		ev := s.replay[0]
		s.replay = s.replay[1:]
		return ev, nil
	}

	// Buffered events are delivered even after close.
	select {
	case ev := <-s.ch:
		return ev, nil
	default:
	}

	select {
	case ev := <-s.ch:
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		select {
		case ev := <-s.ch:
			return ev, nil
		default:
		}
		if ev := s.takeSentinel(); ev != nil {
			return ev, nil
		}
		return nil, ErrSubscriberClosed
	}
}

// Close terminates the subscriber. It is idempotent and safe to call from
// any goroutine.
func (s *Subscriber) Close() {
	s.once.Do(func() { close(s.done) })
}

// closeSlow closes the subscriber with a system.warning slow_consumer
// sentinel as its final event.
func (s *Subscriber) closeSlow(runID string) {
	s.mu.Lock()
	if s.sentinel == nil {
		s.sentinel = &Envelope{
			RunID:     runID,
			Timestamp: time.Now(),
			Category:  CategorySystem,
			Action:    ActionWarning,
			Data: map[string]any{
				"reason":  "slow_consumer",
				"message": "subscriber queue overflowed; stream closed",
			},
		}
	}
	s.mu.Unlock()
	s.Close()
}

func (s *Subscriber) takeSentinel() *Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev := s.sentinel
	s.sentinel = nil
	return ev
}
