//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRooms        *queriesmock.MockRoomQueries
	mockCombinations *queriesmock.MockCombinationQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockCombinations = queriesmock.NewMockCombinationQueries(s.mockCtrl)
	h := api.NewRoomHandler(
		s.mockRooms,
		s.mockCombinations,
		httperr.NewFormatterWithDetails(false),
		clock.NewMockClock(builder.Today),
		config.NewTestConfig(),
	)

	s.router.GET("/rooms/search", h.SearchRooms)
	s.router.GET("/rooms/search-combinations", h.SearchCombinations)
	s.router.GET("/rooms/all", h.ListRooms)
	s.router.GET("/rooms/dynamic-price", h.DynamicPrice)
	s.router.GET("/rooms/combinations", h.ListCombinations)
	s.router.GET("/rooms/combination/:combinationId", h.CombinationDetails)
	s.router.GET("/rooms/combination/:combinationId/booking", h.CombinationBooking)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

const searchQuery = "?check_in=2025-06-01&check_out=2025-06-04&adults=2&children=1"

func (s *RoomHandlerTestSuite) TestSearchRooms() {
	s.Run("success: passes parsed criteria and wraps the result", func() {
		want, err := room.NewSearchCriteria(room.SearchInput{
			CheckIn: "2025-06-01", CheckOut: "2025-06-04", Adults: "2", Children: "1",
		}, builder.Today)
		s.Require().NoError(err)

		s.mockRooms.EXPECT().SearchRooms(gomock.Any(), want).Return(&queries.RoomSearchResult{
			Rooms: []queries.Row{{"id": float64(3), "image_urls": []string{"/default-room.jpg"}}},
			SearchParameters: queries.SearchParameters{
				CheckIn: "2025-06-01", CheckOut: "2025-06-04", Adults: 2, Children: 1, Rooms: 1, TotalGuests: 3,
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/search"+searchQuery, nil, "")

		var data queries.RoomSearchResult
		httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
		s.Len(data.Rooms, 1)
		s.Equal(3, data.SearchParameters.TotalGuests)
	})

	cases := []struct {
		name       string
		query      string
		expectCode int
		expectMsg  string
	}{
		{"missing adults", "?check_in=2025-06-01&check_out=2025-06-04", http.StatusBadRequest, "Missing required parameters: check_in, check_out, and adults are required."},
		{"bad date", "?check_in=06/01/2025&check_out=2025-06-04&adults=2", http.StatusBadRequest, "Invalid date format."},
		{"check-in in the past", "?check_in=2025-05-19&check_out=2025-06-04&adults=2", http.StatusBadRequest, "Invalid check-in/check-out range."},
		{"check-out before check-in", "?check_in=2025-06-04&check_out=2025-06-01&adults=2", http.StatusBadRequest, "Invalid check-in/check-out range."},
		{"non numeric adults", "?check_in=2025-06-01&check_out=2025-06-04&adults=two", http.StatusBadRequest, "Adults, children, and room count must be numbers."},
		{"zero rooms", "?check_in=2025-06-01&check_out=2025-06-04&adults=2&number_of_rooms=0", http.StatusBadRequest, "Invalid guest or room count values."},
	}
	for _, tc := range cases {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/search"+tc.query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("store failure: generic 500", func() {
		s.mockRooms.EXPECT().SearchRooms(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection refused"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/search"+searchQuery, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, httperr.MsgInternal)
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *RoomHandlerTestSuite) TestSearchCombinations() {
	s.Run("success", func() {
		s.mockRooms.EXPECT().SearchCombinations(gomock.Any(), gomock.Any()).Return(&queries.CombinationSearchResult{
			Combinations: []queries.CombinationOption{},
			Rooms:        []queries.Row{},
			Summary:      queries.CombinationSummary{},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/search-combinations"+searchQuery, nil, "")

		var data map[string]any
		httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
		summary := data["summary"].(map[string]any)
		s.Nil(summary["price_range"])
		s.Equal(float64(0), summary["total_combinations"])
	})

	s.Run("store failure", func() {
		s.mockRooms.EXPECT().SearchCombinations(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("boom"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/search-combinations"+searchQuery, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "searching room combinations")
	})
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: bare array", func() {
		s.mockRooms.EXPECT().ListRooms(gomock.Any()).Return([]queries.Row{{"id": 1}, {"id": 2}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/all", nil, "")

		var rooms []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Len(rooms, 2)
	})

	s.Run("store failure", func() {
		s.mockRooms.EXPECT().ListRooms(gomock.Any()).
			Return(nil, errs.Mark(errors.New("boom"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/all", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestDynamicPrice() {
	s.Run("success", func() {
		s.mockRooms.EXPECT().DynamicPrice(gomock.Any(), int64(7), "2025-06-01").
			Return(&queries.PriceView{Price: 120.5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/dynamic-price?roomId=7&checkIn=2025-06-01", nil, "")

		var data queries.PriceView
		httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
		s.InDelta(120.5, data.Price, 0.0001)
	})

	s.Run("missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/dynamic-price?roomId=7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required parameters: roomId and checkIn are required.")
	})

	s.Run("invalid room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/dynamic-price?roomId=abc&checkIn=2025-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "RoomId must be a positive integer")
	})

	s.Run("no price for the date", func() {
		s.mockRooms.EXPECT().DynamicPrice(gomock.Any(), int64(7), "2025-06-01").
			Return(nil, errs.Mark(errors.New("null price"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/dynamic-price?roomId=7&checkIn=2025-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No price available")
	})
}

func (s *RoomHandlerTestSuite) TestCombinationDetails() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCombinations.EXPECT().Details(gomock.Any(), id).Return(&queries.CombinationDetailsView{
			Combination: json.RawMessage(`{"id":"x"}`),
			Rooms:       json.RawMessage(`[]`),
			Guests:      json.RawMessage(`[]`),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/"+id.String(), nil, "")

		var data map[string]any
		httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
		s.Equal([]any{}, data["rooms"])
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid combination ID format")
	})

	s.Run("not found", func() {
		s.mockCombinations.EXPECT().Details(gomock.Any(), id).Return(nil, queries.ErrCombinationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No combination found with this ID")
	})

	s.Run("store failure", func() {
		s.mockCombinations.EXPECT().Details(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("boom"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch combination details")
	})
}

func (s *RoomHandlerTestSuite) TestCombinationBooking() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCombinations.EXPECT().Booking(gomock.Any(), id).Return(&queries.CombinationBookingView{
			CombinationID: id.String(),
			Rooms:         []queries.CombinationBookedRoom{},
			TotalRooms:    2,
			TotalGuests:   4,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/"+id.String()+"/booking", nil, "")

		var data map[string]any
		httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
		s.Equal(float64(4), data["total_guests"])
	})

	s.Run("not found", func() {
		s.mockCombinations.EXPECT().Booking(gomock.Any(), id).Return(nil, queries.ErrCombinationBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combination/"+id.String()+"/booking", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No combination booking found with this ID")
	})
}

func (s *RoomHandlerTestSuite) TestListCombinations() {
	s.mockCombinations.EXPECT().List(gomock.Any()).Return([]queries.CombinationListItem{
		{ID: uuid.New(), TotalRooms: 2, TotalGuests: 3, TotalPrice: 300},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/combinations", nil, "")

	var data []map[string]any
	httptest.AssertEnvelopeData(s.T(), rec, http.StatusOK, &data)
	s.Require().Len(data, 1)
	s.Equal(float64(300), data[0]["total_price"])
}
