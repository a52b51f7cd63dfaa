package httperr

import (
	"errors"
	"net/http"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternal        = "An unexpected error occurred."
	MsgPaymentDeclined = "Payment failed"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Details: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Formatter maps error classes to statuses. Store fault messages reach the
// client only when exposeDetails is set (APP_ENV=development).
type Formatter struct {
	exposeDetails bool
}

func NewFormatter(cfg config.Config) *Formatter {
	return &Formatter{exposeDetails: cfg.App.IsDevelopment()}
}

func NewFormatterWithDetails(expose bool) *Formatter {
	return &Formatter{exposeDetails: expose}
}

func StatusOf(err error) int {
	var pe *commands.PaymentError
	switch {
	case errors.As(err, &pe), errs.Is(err, errs.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes the failure envelope. msg is the public message for client errors
// and store faults; internal errors always get a generic message.
func (f *Formatter) Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	var detail any

	switch {
	case status == http.StatusPaymentRequired:
		// the gateway's reason is the public message
		msg = MsgPaymentDeclined
		var pe *commands.PaymentError
		if errors.As(err, &pe) {
			if pe.Reason != "" {
				msg = pe.Reason
			}
			detail = gin.H{"bookingId": pe.BookingNumber, "code": pe.Code}
		}
	case status < http.StatusInternalServerError:
	case errs.Is(err, errs.ErrInternal):
		msg = MsgInternal
	case f.exposeDetails:
		detail = err.Error()
	}

	if msg == "" {
		msg = MsgInternal
	}
	AbortWithError(c, status, err, msg, detail)
}
