package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(cat Category, act Action) *Envelope {
	return &Envelope{Category: cat, Action: act}
}

func TestEmitAssignsContiguousSequences(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 8)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		seq, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	persisted, err := store.ListByRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, persisted, 3)
	for i, ev := range persisted {
		assert.Equal(t, int64(i+1), ev.Sequence)
		assert.Equal(t, "run-1", ev.RunID)
		assert.NotEmpty(t, ev.ID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestEmitFailureLeavesNoGap(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 8)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	_, err = hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
	require.NoError(t, err)

	store.failNextInsert(errors.New("db down"))
	_, err = hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
	require.Error(t, err)

	// The failed emit must not consume sequence 2.
	seq, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestSubscribeReplaysThenLive(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 8)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
		require.NoError(t, err)
	}

	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)
	defer hub.Unsubscribe(sub)

	for i := 0; i < 2; i++ {
		_, err := hub.emit(ctx, testEvent(CategoryLLM, ActionReasoning))
		require.NoError(t, err)
	}

	for want := int64(1); want <= 4; want++ {
		ev, err := sub.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, ev.Sequence)
	}
}

func TestConcurrentSubscribeSeesEveryEventOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 256)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	const total = 200
	emitted := make(chan struct{})
	go func() {
		defer close(emitted)
		for i := 0; i < total; i++ {
			if _, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream)); err != nil {
				return
			}
		}
	}()

	// Attach mid-run; replay plus live must still be 1..total with no
	// duplicates and no gaps.
	time.Sleep(time.Millisecond)
	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)
	defer hub.Unsubscribe(sub)

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for want := int64(1); want <= total; want++ {
		ev, err := sub.Next(waitCtx)
		require.NoError(t, err)
		require.Equal(t, want, ev.Sequence)
	}
	<-emitted
}

func TestSlowSubscriberDroppedWithSentinel(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 2)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	// Two events fill the queue; the third overflows and drops the
	// subscriber.
	for i := 0; i < 3; i++ {
		_, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, hub.subscriberCount())

	// Buffered events drain first, then the sentinel, then closure.
	ev, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ev.Sequence)
	ev, err = sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ev.Sequence)

	sentinel, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, CategorySystem, sentinel.Category)
	assert.Equal(t, ActionWarning, sentinel.Action)
	assert.Equal(t, "slow_consumer", sentinel.Data["reason"])

	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, ErrSubscriberClosed)

	// Persistence is unaffected by the drop.
	assert.Equal(t, 3, store.count("run-1"))
}

func TestHubCloseDrainsBufferedEvents(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 8)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	_, err = hub.emit(ctx, testEvent(CategoryLifecycle, ActionCompleted))
	require.NoError(t, err)
	reg.Close("run-1")

	// The terminal event was buffered before close and is still delivered.
	ev, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActionCompleted, ev.Action)

	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, ErrSubscriberClosed)

	_, err = hub.Subscribe(ctx)
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestRegistryResumesSequenceFromStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.events["run-1"] = []*Envelope{
		{RunID: "run-1", Sequence: 4, Category: CategoryLLM, Action: ActionStream},
		{RunID: "run-1", Sequence: 5, Category: CategoryLLM, Action: ActionStream},
	}
	reg := NewRegistry(store, 8)

	hub, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	seq, err := hub.emit(ctx, testEvent(CategoryLLM, ActionStream))
	require.NoError(t, err)
	assert.Equal(t, int64(6), seq)
}

func TestRegistryOpenTwiceFails(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(newMemStore(), 8)

	_, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)
	_, err = reg.Open(ctx, "run-1")
	assert.Error(t, err)

	reg.Close("run-1")
	reg.Close("run-1") // idempotent
	assert.Equal(t, 0, reg.Active())
}

func TestSinkEmitsThroughHub(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistry(store, 8)
	sink := NewSink(store, reg)

	_, err := reg.Open(ctx, "run-1")
	require.NoError(t, err)

	seq, err := sink.Emit(ctx, "run-1", testEvent(CategoryLifecycle, ActionStarted))
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}

func TestSinkFallsBackWithoutHub(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.events["run-1"] = []*Envelope{
		{RunID: "run-1", Sequence: 3, Category: CategoryLLM, Action: ActionStream},
	}
	sink := NewSink(store, NewRegistry(store, 8))

	seq, err := sink.Emit(ctx, "run-1", testEvent(CategoryLifecycle, ActionCancelled))
	require.NoError(t, err)
	assert.Equal(t, int64(4), seq)
	assert.Equal(t, 2, store.count("run-1"))
}
