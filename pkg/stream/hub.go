package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrHubClosed is returned by Subscribe after the hub's run has terminated.
var ErrHubClosed = errors.New("hub closed")

// Store persists event envelopes. Implemented by services.EventService.
type Store interface {
	// Insert writes one envelope as a durable row.
	Insert(ctx context.Context, ev *Envelope) error
	// MaxSequence returns the highest persisted sequence for a run, 0 if none.
	MaxSequence(ctx context.Context, runID string) (int64, error)
	// ListByRun returns all persisted envelopes for a run in sequence order.
	ListByRun(ctx context.Context, runID string) ([]*Envelope, error)
}

// Hub is the in-memory broadcast point for a single run's live events. It
// owns the run's sequence counter and the set of attached subscribers. A hub
// exists only between executor start and the run's terminal event.
type Hub struct {
	runID  string
	store  Store
	buffer int

	// emitMu serializes sequence allocation, persistence, and publication
	// for this run. Held across the store write so persisted order equals
	// emission order.
	emitMu sync.Mutex
	next   int64 // next sequence to allocate

	mu        sync.Mutex
	subs      map[string]*Subscriber
	highWater int64 // last published sequence
	closed    bool
}

func newHub(runID string, store Store, buffer int, next int64) *Hub {
	return &Hub{
		runID:  runID,
		store:  store,
		buffer: buffer,
		next:   next,
		subs:   make(map[string]*Subscriber),
	}
}

// RunID returns the run this hub broadcasts for.
func (h *Hub) RunID() string { return h.runID }

// HighWater returns the sequence of the last published event.
func (h *Hub) HighWater() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.highWater
}

// emit assigns the next sequence, stamps and persists the envelope, then
// publishes it to subscribers. The sequence is consumed only if persistence
// succeeds, so a failed emit leaves no gap.
func (h *Hub) emit(ctx context.Context, ev *Envelope) (int64, error) {
	h.emitMu.Lock()
	defer h.emitMu.Unlock()

	ev.ID = uuid.New().String()
	ev.RunID = h.runID
	ev.Sequence = h.next
	ev.Timestamp = time.Now()

	if err := h.store.Insert(ctx, ev); err != nil {
		return 0, fmt.Errorf("failed to persist event %s seq %d: %w", ev.Name(), ev.Sequence, err)
	}
	h.next++

	h.publish(ev)
	return ev.Sequence, nil
}

// publish delivers a persisted event to all subscribers. Slow subscribers
// (full queue) are dropped with a slow_consumer sentinel so publication
// never blocks the emit path.
func (h *Hub) publish(ev *Envelope) {
	h.mu.Lock()
	h.highWater = ev.Sequence
	var slow []*Subscriber
	for id, sub := range h.subs {
		if !sub.offer(ev) {
			slow = append(slow, sub)
			delete(h.subs, id)
		}
	}
	h.mu.Unlock()

	for _, sub := range slow {
		slog.Warn("Dropping slow subscriber",
			"run_id", h.runID, "subscriber_id", sub.ID(), "sequence", ev.Sequence)
		sub.closeSlow(h.runID)
	}
}

// Subscribe attaches a new subscriber. The subscriber first receives a
// replay of every event persisted up to the hub's high-water mark, then live
// events, with no duplicates and no gaps: registration happens under the hub
// lock at high-water H, live events (all > H) queue behind the replay, and
// the replay covers everything ≤ H.
func (h *Hub) Subscribe(ctx context.Context) (*Subscriber, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}
	sub := newSubscriber(uuid.New().String(), h.buffer, h.highWater)
	h.subs[sub.id] = sub
	high := h.highWater
	h.mu.Unlock()

	if high > 0 {
		persisted, err := h.store.ListByRun(ctx, h.runID)
		if err != nil {
			h.Unsubscribe(sub)
			return nil, fmt.Errorf("failed to replay events for run %s: %w", h.runID, err)
		}
		for _, ev := range persisted {
			if ev.Sequence <= high {
				sub.replay = append(sub.replay, ev)
			}
		}
	}
	return sub, nil
}

// Unsubscribe detaches and closes a subscriber. Safe to call after the hub
// has closed.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()
	sub.Close()
}

// close terminates all subscribers. Buffered events (including the terminal
// lifecycle event) are still drained by consumers after close.
func (h *Hub) close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	subs := make([]*Subscriber, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.subs = make(map[string]*Subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

// subscriberCount reports attached subscribers. Used by tests.
func (h *Hub) subscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
