//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowRooms blocks AllRooms until release is closed so concurrent misses overlap.
type slowRooms struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *slowRooms) AvailableRooms(context.Context, room.SearchCriteria) ([]queries.Row, error) {
	return nil, nil
}

func (s *slowRooms) CombinedRooms(context.Context, room.SearchCriteria) ([]queries.CombinationOption, error) {
	return nil, nil
}

func (s *slowRooms) AllRooms(context.Context) ([]queries.Row, error) {
	s.calls.Add(1)
	<-s.release
	return []queries.Row{{"name": "Suite"}}, nil
}

func (s *slowRooms) DynamicPrice(context.Context, int64, string) (float64, error) {
	return 0, nil
}

func TestListRoomsReadThroughRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := &slowRooms{release: make(chan struct{})}
	q := queries.NewRoomQueries(store, cache.NewRedisCache(client, "", observability.NewMetrics()),
		config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]queries.Row, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows, err := q.ListRooms(context.Background())
			assert.NoError(t, err)
			results[i] = rows
		}(i)
	}

	require.Eventually(t, func() bool { return store.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	wg.Wait()

	assert.Equal(t, int32(1), store.calls.Load())
	for _, rows := range results {
		require.Len(t, rows, 1)
		assert.Equal(t, "Suite", rows[0]["name"])
	}
	assert.True(t, mr.Exists("rooms:all"))

	rows, err := q.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Suite", rows[0]["name"])
	assert.Equal(t, int32(1), store.calls.Load())
}
