package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"company-pulse-be/internal/entity"

	"github.com/stretchr/testify/require"
)

type fakeSignalTypeRepo struct {
	calls   int32
	options []*entity.SignalTypeOption
	err     error
}

func (r *fakeSignalTypeRepo) FindAllowed(ctx context.Context) ([]*entity.SignalTypeOption, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.err != nil {
		return nil, r.err
	}
	return r.options, nil
}

func allowedOptions() []*entity.SignalTypeOption {
	return []*entity.SignalTypeOption{
		{Id: 1, Name: "Momentum Spike"},
		{Id: 2, Name: "Risk Cluster"},
	}
}

func TestGetAllowed_CachedWithinTTL(t *testing.T) {
	repo := &fakeSignalTypeRepo{options: allowedOptions()}
	c := NewSignalTypeCache(repo, &fakeLogger{}, time.Hour)

	first, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, second, 2)

	require.EqualValues(t, 1, atomic.LoadInt32(&repo.calls), "second read must hit the cache")
}

func TestGetAllowed_ForceRefresh(t *testing.T) {
	repo := &fakeSignalTypeRepo{options: allowedOptions()}
	c := NewSignalTypeCache(repo, &fakeLogger{}, time.Hour)

	_, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)

	_, err = c.GetAllowed(context.Background(), true)
	require.NoError(t, err)

	require.EqualValues(t, 2, atomic.LoadInt32(&repo.calls), "forceRefresh always queries the store")
}

func TestGetAllowed_InvalidateRebuildsBeforeTTL(t *testing.T) {
	repo := &fakeSignalTypeRepo{options: allowedOptions()}
	c := NewSignalTypeCache(repo, &fakeLogger{}, time.Hour)

	_, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)

	c.Invalidate()

	_, err = c.GetAllowed(context.Background(), false)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&repo.calls))
}

func TestGetAllowed_ExpiryRebuilds(t *testing.T) {
	repo := &fakeSignalTypeRepo{options: allowedOptions()}
	c := NewSignalTypeCache(repo, &fakeLogger{}, 20*time.Millisecond)

	_, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = c.GetAllowed(context.Background(), false)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&repo.calls))
}

func TestGetAllowed_StoreFailurePropagates(t *testing.T) {
	repo := &fakeSignalTypeRepo{err: errors.New("connection refused")}
	c := NewSignalTypeCache(repo, &fakeLogger{}, time.Hour)

	_, err := c.GetAllowed(context.Background(), false)
	require.Error(t, err)

	// Failure is not cached: the next read retries.
	repo.err = nil
	repo.options = allowedOptions()
	got, err := c.GetAllowed(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
