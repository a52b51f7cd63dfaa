package api

import (
	"net/http"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin     queries.AdminQueries
	formatter *httperr.Formatter
}

func NewAdminHandler(admin queries.AdminQueries, formatter *httperr.Formatter) *AdminHandler {
	return &AdminHandler{admin: admin, formatter: formatter}
}

// @Summary All reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DataResponse{data=[]object}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/admin/reservations [get]
func (h *AdminHandler) Reservations(c *gin.Context) {
	rows, err := h.admin.Reservations(c.Request.Context())
	if err != nil {
		h.formatter.Abort(c, err, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(rows))
}

// @Summary All contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DataResponse{data=[]object}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/admin/messages [get]
func (h *AdminHandler) Messages(c *gin.Context) {
	rows, err := h.admin.Messages(c.Request.Context())
	if err != nil {
		h.formatter.Abort(c, err, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(rows))
}
