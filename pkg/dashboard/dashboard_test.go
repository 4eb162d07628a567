package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tgsurvey/pkg/dashboard/mocks"
	"github.com/umputun/tgsurvey/pkg/domain"
)

// storeWith returns a mock store over total generated responses, newest first
func storeWith(total int) *mocks.StoreMock {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	all := make([]domain.SurveyResponse, total)
	for i := range all {
		all[i] = domain.SurveyResponse{
			ID:                fmt.Sprintf("id-%02d", i),
			AgeGroup:          "18-24",
			UsageDuration:     "1-3 years",
			UsageReason:       []string{"Using bots"},
			ContentPreference: []string{"🎮 Gaming"},
			RecommendTelegram: "Yes",
			SubmittedAt:       base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return &mocks.StoreMock{
		CountFunc: func(ctx context.Context) (int, error) { return total, nil },
		SelectRangeFunc: func(ctx context.Context, from, to int) ([]domain.SurveyResponse, error) {
			if from >= len(all) {
				return []domain.SurveyResponse{}, nil
			}
			return all[from:min(to+1, len(all))], nil
		},
	}
}

func TestDashboard_Mount(t *testing.T) {
	store := storeWith(15)
	d := New(store)
	assert.IsType(t, Idle{}, d.State())

	st := d.Mount(context.Background())
	ready, ok := st.(Ready)
	require.True(t, ok, "expected ready state, got %T", st)
	assert.Equal(t, 1, ready.Snapshot.Page)
	assert.Equal(t, 15, ready.Snapshot.Total)
	assert.Len(t, ready.Snapshot.Responses, 10)
	assert.Equal(t, 2, ready.Snapshot.TotalPages())

	require.Len(t, store.CountCalls(), 1)
	require.Len(t, store.SelectRangeCalls(), 1)
	assert.Equal(t, 0, store.SelectRangeCalls()[0].From)
	assert.Equal(t, 9, store.SelectRangeCalls()[0].To)
}

func TestDashboard_SetPage(t *testing.T) {
	store := storeWith(15)
	d := New(store)
	d.Mount(context.Background())

	assert.True(t, d.SetPage(context.Background(), 2))
	assert.Equal(t, 2, d.Page())
	require.Len(t, store.SelectRangeCalls(), 2)
	assert.Equal(t, 10, store.SelectRangeCalls()[1].From)
	assert.Equal(t, 14, store.SelectRangeCalls()[1].To)

	snap := d.Snapshot()
	assert.Len(t, snap.Responses, 5)
	assert.Equal(t, "id-10", snap.Responses[0].ID)
	assert.IsType(t, Ready{}, d.State())
}

func TestDashboard_SetPageOutOfRange(t *testing.T) {
	store := storeWith(25)
	d := New(store)
	d.Mount(context.Background())
	assert.Equal(t, 3, d.Snapshot().TotalPages())

	for _, page := range []int{-1, 0, 1, 4, 100} {
		assert.False(t, d.SetPage(context.Background(), page), "page %d", page)
	}
	assert.Equal(t, 1, d.Page())
	assert.Len(t, store.SelectRangeCalls(), 1, "no fetch for ignored pages")
	assert.Len(t, store.CountCalls(), 1)

	assert.True(t, d.SetPage(context.Background(), 3))
	last := store.SelectRangeCalls()[1]
	assert.Equal(t, 20, last.From)
	assert.Equal(t, 24, last.To)
	assert.Len(t, d.Snapshot().Responses, 5)
}

func TestDashboard_Empty(t *testing.T) {
	d := New(storeWith(0))
	st := d.Mount(context.Background())
	ready, ok := st.(Ready)
	require.True(t, ok)
	assert.True(t, ready.Snapshot.Empty())
	assert.Equal(t, 0, ready.Snapshot.TotalPages())
	assert.True(t, ready.Snapshot.Charts().Empty())
	assert.False(t, d.SetPage(context.Background(), 1))
}

func TestDashboard_FailureKeepsData(t *testing.T) {
	t.Run("count fails", func(t *testing.T) {
		store := storeWith(15)
		d := New(store)
		d.Mount(context.Background())

		store.CountFunc = func(ctx context.Context) (int, error) { return 0, errors.New("store unavailable") }
		assert.True(t, d.SetPage(context.Background(), 2))

		failed, ok := d.State().(Failed)
		require.True(t, ok, "expected failed state, got %T", d.State())
		assert.Equal(t, NoticeLoadFailed, failed.Reason)
		require.EqualError(t, failed.Err, "store unavailable")

		snap := d.Snapshot()
		assert.Equal(t, 15, snap.Total, "previous total kept")
		assert.Len(t, snap.Responses, 5, "page data applied on its own")
		assert.Equal(t, 2, snap.Page)
	})

	t.Run("range fails", func(t *testing.T) {
		store := storeWith(15)
		d := New(store)
		d.Mount(context.Background())
		first := d.Snapshot().Responses

		store.CountFunc = func(ctx context.Context) (int, error) { return 16, nil }
		store.SelectRangeFunc = func(ctx context.Context, from, to int) ([]domain.SurveyResponse, error) {
			return nil, errors.New("timeout")
		}
		assert.True(t, d.SetPage(context.Background(), 2))

		assert.IsType(t, Failed{}, d.State())
		snap := d.Snapshot()
		assert.Equal(t, 16, snap.Total, "count applied on its own")
		assert.Equal(t, 1, snap.Page, "displayed page unchanged")
		assert.Equal(t, first, snap.Responses)
		assert.Equal(t, 2, d.Page())
	})

	t.Run("same page retried after failure", func(t *testing.T) {
		store := storeWith(15)
		d := New(store)
		d.Mount(context.Background())

		working := store.SelectRangeFunc
		store.SelectRangeFunc = func(ctx context.Context, from, to int) ([]domain.SurveyResponse, error) {
			return nil, errors.New("timeout")
		}
		assert.True(t, d.SetPage(context.Background(), 2))
		assert.IsType(t, Failed{}, d.State())
		assert.Equal(t, 1, d.Snapshot().Page)

		store.SelectRangeFunc = working
		assert.True(t, d.SetPage(context.Background(), 2), "retry allowed after failure")
		assert.IsType(t, Ready{}, d.State())
		assert.Equal(t, 2, d.Snapshot().Page)
		assert.Len(t, d.Snapshot().Responses, 5)
		assert.Len(t, store.SelectRangeCalls(), 3)

		assert.False(t, d.SetPage(context.Background(), 2), "no refetch once loaded")
	})
}

func TestRestore(t *testing.T) {
	store := storeWith(25)
	d := Restore(store, 2, 25)
	assert.Equal(t, 2, d.Page())
	assert.IsType(t, Idle{}, d.State())
	assert.Empty(t, store.CountCalls())

	assert.False(t, d.SetPage(context.Background(), 2), "same page")
	assert.False(t, d.SetPage(context.Background(), 4))
	assert.True(t, d.SetPage(context.Background(), 3))
	assert.Len(t, d.Snapshot().Responses, 5)

	d = Restore(store, -3, -1)
	assert.Equal(t, 1, d.Page())
	assert.Equal(t, 0, d.Snapshot().Total)
}
