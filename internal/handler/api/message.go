package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages  commands.MessageCommands
	formatter *httperr.Formatter
}

func NewMessageHandler(messages commands.MessageCommands, formatter *httperr.Formatter) *MessageHandler {
	return &MessageHandler{messages: messages, formatter: formatter}
}

// @Summary Contact form
// @Tags messages
// @Accept json
// @Produce json
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/contact [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.formatter.Abort(c, invalidBody(err), msgInvalidBody)
		return
	}

	if err := h.messages.SendMessage(c.Request.Context(), req.FullName, req.Email, req.Message); err != nil {
		h.formatter.Abort(c, err, publicMessage(err, "Message delivery failed"))
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Message sent successfully."})
}
