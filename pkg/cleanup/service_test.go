package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/config"
)

type fakePruner struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (f *fakePruner) DeleteOldRuns(_ context.Context, retentionDays int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, retentionDays)
	if f.err != nil {
		return 0, f.err
	}
	return 2, nil
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestServiceRunsImmediatelyAndOnTicks(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(&config.RetentionConfig{
		RunRetentionDays: 30,
		CleanupInterval:  10 * time.Millisecond,
	}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	// One pass fires on start, further passes on the ticker.
	require.Eventually(t, func() bool {
		return pruner.callCount() >= 3
	}, 5*time.Second, 5*time.Millisecond)

	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	assert.Equal(t, 30, pruner.calls[0])
}

func TestServiceSurvivesPrunerErrors(t *testing.T) {
	pruner := &fakePruner{err: errors.New("db down")}
	svc := NewService(&config.RetentionConfig{
		RunRetentionDays: 30,
		CleanupInterval:  10 * time.Millisecond,
	}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	// The loop keeps ticking despite failures.
	require.Eventually(t, func() bool {
		return pruner.callCount() >= 2
	}, 5*time.Second, 5*time.Millisecond)
}

func TestServiceStopIsIdempotent(t *testing.T) {
	svc := NewService(&config.RetentionConfig{
		RunRetentionDays: 30,
		CleanupInterval:  time.Hour,
	}, &fakePruner{})

	// Stop before Start is a no-op.
	svc.Stop()

	svc.Start(context.Background())
	// Duplicate Start is ignored.
	svc.Start(context.Background())
	svc.Stop()
}
