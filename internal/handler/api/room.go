package api

import (
	"net/http"
	"time"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	combinations queries.CombinationQueries
	formatter    *httperr.Formatter
	clock        clock.Clock
	location     *time.Location
}

func NewRoomHandler(
	rooms queries.RoomQueries,
	combinations queries.CombinationQueries,
	formatter *httperr.Formatter,
	clk clock.Clock,
	cfg config.Config,
) *RoomHandler {
	return &RoomHandler{
		rooms:        rooms,
		combinations: combinations,
		formatter:    formatter,
		clock:        clk,
		location:     cfg.App.Location(),
	}
}

// @Summary Search available rooms
// @Description Rooms free for the whole stay that fit the party
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query int true "Adults"
// @Param children query int false "Children"
// @Param number_of_rooms query int false "Rooms"
// @Success 200 {object} resdto.DataResponse{data=queries.RoomSearchResult}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/search [get]
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		return
	}

	result, err := h.rooms.SearchRooms(c.Request.Context(), criteria)
	if err != nil {
		h.formatter.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(result))
}

// @Summary Search room combinations
// @Description Multi-room combinations for the party, with single rooms as a fallback
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query int true "Adults"
// @Param children query int false "Children"
// @Param number_of_rooms query int false "Rooms"
// @Success 200 {object} resdto.DataResponse{data=queries.CombinationSearchResult}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/search-combinations [get]
func (h *RoomHandler) SearchCombinations(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		return
	}

	result, err := h.rooms.SearchCombinations(c.Request.Context(), criteria)
	if err != nil {
		h.formatter.Abort(c, err, "An unexpected error occurred while searching room combinations.")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(result))
}

// @Summary List all rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/all [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		h.formatter.Abort(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Dynamic nightly price
// @Tags rooms
// @Produce json
// @Param roomId query int true "Room ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DataResponse{data=queries.PriceView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/dynamic-price [get]
func (h *RoomHandler) DynamicPrice(c *gin.Context) {
	var q reqdto.DynamicPriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.formatter.Abort(c, invalidBody(err), msgInvalidBody)
		return
	}

	roomID, checkIn, err := room.ParsePriceQuery(q.RoomID, q.CheckIn)
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, ""))
		return
	}

	price, err := h.rooms.DynamicPrice(c.Request.Context(), roomID, checkIn)
	if err != nil {
		fallback := httperr.MsgInternal
		if errs.Is(err, errs.ErrNotFound) {
			fallback = "No price available for this room and date"
		}
		h.formatter.Abort(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(price))
}

// @Summary Combination details
// @Tags combinations
// @Produce json
// @Param combinationId path string true "Combination ID (UUID)"
// @Success 200 {object} resdto.DataResponse{data=queries.CombinationDetailsView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/combination/{combinationId} [get]
func (h *RoomHandler) CombinationDetails(c *gin.Context) {
	id, err := room.ParseCombinationID(c.Param("combinationId"))
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, ""))
		return
	}

	view, err := h.combinations.Details(c.Request.Context(), id)
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, "Failed to fetch combination details"))
		return
	}
	c.JSON(http.StatusOK, resdto.OK(view))
}

// @Summary Combination booking details
// @Description Booking info, booked rooms and totals of a combination booking
// @Tags combinations
// @Produce json
// @Param combinationId path string true "Combination ID (UUID)"
// @Success 200 {object} resdto.DataResponse{data=queries.CombinationBookingView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/combination/{combinationId}/booking [get]
func (h *RoomHandler) CombinationBooking(c *gin.Context) {
	id, err := room.ParseCombinationID(c.Param("combinationId"))
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, ""))
		return
	}

	view, err := h.combinations.Booking(c.Request.Context(), id)
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, "Failed to fetch combination booking details"))
		return
	}
	c.JSON(http.StatusOK, resdto.OK(view))
}

// @Summary List combinations
// @Description Newest first
// @Tags combinations
// @Produce json
// @Success 200 {object} resdto.DataResponse{data=[]queries.CombinationListItem}
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/combinations [get]
func (h *RoomHandler) ListCombinations(c *gin.Context) {
	items, err := h.combinations.List(c.Request.Context())
	if err != nil {
		h.formatter.Abort(c, err, "Failed to fetch combinations")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(items))
}

func (h *RoomHandler) bindCriteria(c *gin.Context) (room.SearchCriteria, bool) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.formatter.Abort(c, invalidBody(err), msgInvalidBody)
		return room.SearchCriteria{}, false
	}

	criteria, err := q.ToCriteria(clock.Today(h.clock, h.location))
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, ""))
		return room.SearchCriteria{}, false
	}
	return criteria, true
}
