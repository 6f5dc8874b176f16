package stream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sink sequences, persists, and publishes run events. It holds no mutable
// state of its own; per-run ordering lives in each hub's emit lock. Safe for
// concurrent use by any number of executors.
type Sink struct {
	store    Store
	registry *Registry
}

// NewSink creates a sink over the given store and registry.
func NewSink(store Store, registry *Registry) *Sink {
	return &Sink{store: store, registry: registry}
}

// Emit assigns the next sequence for the run, stamps the timestamp, persists
// the event, and publishes it to the run's hub. Publishers observe the same
// order as persistence. A persistence error fails the emit and is fatal for
// the run; publication problems are contained inside the hub (slow
// subscribers are dropped, never surfaced here).
func (s *Sink) Emit(ctx context.Context, runID string, ev *Envelope) (int64, error) {
	if hub := s.registry.Get(runID); hub != nil {
		return hub.emit(ctx, ev)
	}

	// No hub: the run is no longer live. Persist read-through from the
	// stored high sequence so history stays gapless. Recovery path only.
	maxSeq, err := s.store.MaxSequence(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("failed to read max sequence for run %s: %w", runID, err)
	}
	ev.ID = uuid.New().String()
	ev.RunID = runID
	ev.Sequence = maxSeq + 1
	ev.Timestamp = time.Now()
	if err := s.store.Insert(ctx, ev); err != nil {
		return 0, fmt.Errorf("failed to persist event %s seq %d: %w", ev.Name(), ev.Sequence, err)
	}
	slog.Warn("Event emitted without a live hub", "run_id", runID, "event", ev.Name(), "sequence", ev.Sequence)
	return ev.Sequence, nil
}
