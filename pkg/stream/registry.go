package stream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultSubscriberBuffer is the bounded subscriber queue size.
const DefaultSubscriberBuffer = 256

// Registry is the process-wide mapping from run id to its broadcast hub.
// A hub is opened by StartRun before the executor wakes and closed by the
// executor's guaranteed-final step, so the registry contains a hub for a run
// iff the run is live (running, or pending inside that pre-open window).
type Registry struct {
	store  Store
	buffer int

	mu   sync.RWMutex
	hubs map[string]*Hub
}

// NewRegistry creates a registry. buffer ≤ 0 selects DefaultSubscriberBuffer.
func NewRegistry(store Store, buffer int) *Registry {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Registry{
		store:  store,
		buffer: buffer,
		hubs:   make(map[string]*Hub),
	}
}

// Open creates the hub for a run. The sequence counter resumes from the
// store's max(sequence)+1 so recovery after a restart never reuses a
// sequence. Fails if a hub already exists for the run.
func (r *Registry) Open(ctx context.Context, runID string) (*Hub, error) {
	maxSeq, err := r.store.MaxSequence(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read max sequence for run %s: %w", runID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.hubs[runID]; exists {
		return nil, fmt.Errorf("hub already open for run %s", runID)
	}
	hub := newHub(runID, r.store, r.buffer, maxSeq+1)
	r.hubs[runID] = hub
	return hub, nil
}

// Get returns the hub for a run, or nil if the run is not live.
func (r *Registry) Get(runID string) *Hub {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hubs[runID]
}

// Close closes all subscribers of the run's hub and removes the mapping.
// Idempotent: closing an unknown run is a no-op.
func (r *Registry) Close(runID string) {
	r.mu.Lock()
	hub, ok := r.hubs[runID]
	delete(r.hubs, runID)
	r.mu.Unlock()

	if ok {
		hub.close()
		slog.Debug("Hub closed", "run_id", runID)
	}
}

// Active returns the number of open hubs.
func (r *Registry) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hubs)
}
