//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

type RoomQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockRoomReadStore
	cache     *memCache
	q         queries.RoomQueries
	criteria  room.SearchCriteria
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockRoomReadStore(s.mockCtrl)
	s.cache = newMemCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.q = queries.NewRoomQueries(s.mockStore, s.cache, config.NewTestConfig(), logger)

	c, err := room.NewSearchCriteria(room.SearchInput{
		CheckIn: "2025-06-01", CheckOut: "2025-06-04", Adults: "3", Children: "1", Rooms: "2",
	}, builder.Today)
	s.Require().NoError(err)
	s.criteria = c
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) TestSearchRoomsAddsImageURLs() {
	s.mockStore.EXPECT().AvailableRooms(gomock.Any(), s.criteria).Return([]queries.Row{
		{"id": int32(1), "images": []any{map[string]any{"image_url": "/a.jpg"}, map[string]any{"image_url": "/b.jpg"}}},
		{"id": int32(2), "images": []any{}},
		{"id": int32(3)},
	}, nil).Times(1)

	res, err := s.q.SearchRooms(context.Background(), s.criteria)

	s.Require().NoError(err)
	s.Require().Len(res.Rooms, 3)
	s.Equal([]string{"/a.jpg", "/b.jpg"}, res.Rooms[0]["image_urls"])
	s.Equal([]string{room.DefaultImageURL}, res.Rooms[1]["image_urls"])
	s.Equal([]string{room.DefaultImageURL}, res.Rooms[2]["image_urls"])
	s.Equal(queries.SearchParameters{
		CheckIn: "2025-06-01", CheckOut: "2025-06-04", Adults: 3, Children: 1, Rooms: 2, TotalGuests: 4,
	}, res.SearchParameters)
}

func (s *RoomQueriesTestSuite) TestSearchRoomsStoreFailure() {
	s.mockStore.EXPECT().AvailableRooms(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("get_available_rooms_full", errors.New("boom"))).Times(1)

	_, err := s.q.SearchRooms(context.Background(), s.criteria)

	s.True(errs.Is(err, errs.ErrStoreUnavailable))
}

func (s *RoomQueriesTestSuite) TestSearchCombinationsSummary() {
	s.mockStore.EXPECT().CombinedRooms(gomock.Any(), s.criteria).Return([]queries.CombinationOption{
		{CombinationRoomIDs: []int64{1, 2}, PricePerNight: 150, TotalPrice: 450},
		{CombinationRoomIDs: []int64{3, 4}, PricePerNight: 90, TotalPrice: 270},
	}, nil).Times(1)

	res, err := s.q.SearchCombinations(context.Background(), s.criteria)

	s.Require().NoError(err)
	s.Equal(2, res.Summary.TotalCombinations)
	s.Equal(&queries.PriceRange{Min: 270, Max: 450}, res.Summary.PriceRange)
	s.Equal(0, res.Summary.AlternativeRoomsAvailable)
	s.Empty(res.Rooms)
	s.Require().NotNil(res.SearchParameters.Nights)
	s.Equal(3, *res.SearchParameters.Nights)
}

func (s *RoomQueriesTestSuite) TestSearchCombinationsFallsBackToSingleRooms() {
	s.mockStore.EXPECT().CombinedRooms(gomock.Any(), s.criteria).Return(nil, nil).Times(1)
	s.mockStore.EXPECT().AvailableRooms(gomock.Any(), s.criteria.WithRooms(1)).
		Return([]queries.Row{{"id": int32(7)}}, nil).Times(1)

	res, err := s.q.SearchCombinations(context.Background(), s.criteria)

	s.Require().NoError(err)
	s.NotNil(res.Combinations)
	s.Empty(res.Combinations)
	s.Nil(res.Summary.PriceRange)
	s.Equal(1, res.Summary.AlternativeRoomsAvailable)
	s.Equal([]string{room.DefaultImageURL}, res.Rooms[0]["image_urls"])
	s.Equal(2, res.SearchParameters.Rooms)
}

func (s *RoomQueriesTestSuite) TestSearchCombinationsIgnoresFallbackFailure() {
	s.mockStore.EXPECT().CombinedRooms(gomock.Any(), gomock.Any()).Return([]queries.CombinationOption{}, nil).Times(1)
	s.mockStore.EXPECT().AvailableRooms(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	res, err := s.q.SearchCombinations(context.Background(), s.criteria)

	s.Require().NoError(err)
	s.Empty(res.Rooms)
	s.Equal(0, res.Summary.AlternativeRoomsAvailable)
}

func (s *RoomQueriesTestSuite) TestListRoomsIsCached() {
	s.mockStore.EXPECT().AllRooms(gomock.Any()).Return([]queries.Row{{"name": "Deluxe"}}, nil).Times(1)

	first, err := s.q.ListRooms(context.Background())
	s.Require().NoError(err)
	second, err := s.q.ListRooms(context.Background())
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal("Deluxe", second[0]["name"])
}

func (s *RoomQueriesTestSuite) TestDynamicPriceIsCachedPerRoomAndDate() {
	s.mockStore.EXPECT().DynamicPrice(gomock.Any(), int64(4), "2025-06-01").Return(129.5, nil).Times(1)
	s.mockStore.EXPECT().DynamicPrice(gomock.Any(), int64(4), "2025-06-02").Return(99.0, nil).Times(1)

	for i := 0; i < 2; i++ {
		p, err := s.q.DynamicPrice(context.Background(), 4, "2025-06-01")
		s.Require().NoError(err)
		s.Equal(129.5, p.Price)
	}
	p, err := s.q.DynamicPrice(context.Background(), 4, "2025-06-02")
	s.Require().NoError(err)
	s.Equal(99.0, p.Price)
}

func (s *RoomQueriesTestSuite) TestDynamicPriceNotFound() {
	s.mockStore.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0.0, infra.NewRepoErr(infra.KindNotFound, "no price")).Times(1)

	_, err := s.q.DynamicPrice(context.Background(), 4, "2025-06-01")

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *RoomQueriesTestSuite) TestCacheFailureFallsBackToStore() {
	ctrl := gomock.NewController(s.T())
	cache := queriesmock.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "rooms:all").Return(nil, false, errors.New("redis down")).Times(1)
	cache.EXPECT().Set(gomock.Any(), "rooms:all", gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)
	s.mockStore.EXPECT().AllRooms(gomock.Any()).Return(nil, nil).Times(1)

	q := queries.NewRoomQueries(s.mockStore, cache, config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	rooms, err := q.ListRooms(context.Background())

	s.Require().NoError(err)
	s.NotNil(rooms)
	s.Empty(rooms)
}
