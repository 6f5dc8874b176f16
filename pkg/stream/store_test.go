package stream

import (
	"context"
	"sync"
)

// memStore is an in-memory Store used by the hub and sink tests.
type memStore struct {
	mu        sync.Mutex
	events    map[string][]*Envelope
	insertErr error // next Insert fails with this error, then resets
}

func newMemStore() *memStore {
	return &memStore{events: make(map[string][]*Envelope)}
}

func (s *memStore) Insert(_ context.Context, ev *Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		err := s.insertErr
		s.insertErr = nil
		return err
	}
	clone := *ev
	s.events[ev.RunID] = append(s.events[ev.RunID], &clone)
	return nil
}

func (s *memStore) MaxSequence(_ context.Context, runID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	evs := s.events[runID]
	if len(evs) == 0 {
		return 0, nil
	}
	return evs[len(evs)-1].Sequence, nil
}

func (s *memStore) ListByRun(_ context.Context, runID string) ([]*Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Envelope, len(s.events[runID]))
	copy(out, s.events[runID])
	return out, nil
}

func (s *memStore) failNextInsert(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertErr = err
}

func (s *memStore) count(runID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events[runID])
}
