package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings  commands.BookingCommands
	checkout  commands.CheckoutCommands
	formatter *httperr.Formatter
}

func NewBookingHandler(bookings commands.BookingCommands, checkout commands.CheckoutCommands, formatter *httperr.Formatter) *BookingHandler {
	return &BookingHandler{
		bookings:  bookings,
		checkout:  checkout,
		formatter: formatter,
	}
}

// @Summary Create booking
// @Description Records a booking without charging it
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.DataResponse{data=resdto.BookingCreatedResponse}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.formatter.Abort(c, invalidBody(err), msgInvalidBody)
		return
	}

	result, err := h.bookings.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, "Failed to create booking"))
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromCreateBookingResult(result)))
}

// @Summary Book and pay
// @Description Creates a pending booking, charges the payment method and records the outcome
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Booking request with payment method"
// @Success 200 {object} resdto.DataResponse{data=resdto.CheckoutResponse}
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.formatter.Abort(c, invalidBody(err), msgInvalidBody)
		return
	}

	confirmation, err := h.checkout.HandleBookingAndPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		h.formatter.Abort(c, err, publicMessage(err, "Failed to create booking"))
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPaymentConfirmation(confirmation)))
}
