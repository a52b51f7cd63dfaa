//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", booking.ErrMissingFields, http.StatusBadRequest},
		{"wrapped validation", errs.Wrap(booking.ErrInvalidDate, "parse"), http.StatusBadRequest},
		{"not found", errs.NotFound("gone"), http.StatusNotFound},
		{"declined", &commands.PaymentError{BookingNumber: "BK", Code: "c", Reason: "r"}, http.StatusPaymentRequired},
		{"store", errs.Mark(errors.New("x"), errs.ErrStoreUnavailable), http.StatusInternalServerError},
		{"internal", errs.Mark(errors.New("x"), errs.ErrInternal), http.StatusInternalServerError},
		{"unclassified", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func abort(f *httperr.Formatter, err error, msg string) (int, map[string]any) {
	gin.SetMode(gin.TestMode)
	w := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	f.Abort(c, err, msg)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestFormatterAbort(t *testing.T) {
	storeErr := errs.Mark(errors.New("relation does not exist"), errs.ErrStoreUnavailable)
	internalErr := errs.Mark(errors.New("charge timeout"), errs.ErrInternal)

	tests := []struct {
		name       string
		expose     bool
		err        error
		msg        string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "client error keeps the message", err: booking.ErrMissingFields, msg: "Missing",
			wantStatus: 400, wantBody: map[string]any{"success": false, "error": "Missing"},
		},
		{
			name: "store fault hides details in production", err: storeErr, msg: "Failed to create booking",
			wantStatus: 500, wantBody: map[string]any{"success": false, "error": "Failed to create booking"},
		},
		{
			name: "store fault shows details in development", expose: true, err: storeErr, msg: "Failed to create booking",
			wantStatus: 500, wantBody: map[string]any{"success": false, "error": "Failed to create booking", "details": "relation does not exist"},
		},
		{
			name: "internal is always generic", expose: true, err: internalErr, msg: "Failed to create booking",
			wantStatus: 500, wantBody: map[string]any{"success": false, "error": httperr.MsgInternal},
		},
		{
			name: "empty message falls back", err: errors.New("x"), msg: "",
			wantStatus: 500, wantBody: map[string]any{"success": false, "error": httperr.MsgInternal},
		},
		{
			name: "declined reports the gateway reason", err: &commands.PaymentError{BookingNumber: "BK-9", Code: "stolen_card", Reason: "card reported stolen"},
			wantStatus: 402, wantBody: map[string]any{
				"success": false, "error": "card reported stolen",
				"details": map[string]any{"bookingId": "BK-9", "code": "stolen_card"},
			},
		},
		{
			name: "declined without a reason uses the generic text", err: &commands.PaymentError{BookingNumber: "BK-9", Code: "failed_processing"},
			wantStatus: 402, wantBody: map[string]any{
				"success": false, "error": httperr.MsgPaymentDeclined,
				"details": map[string]any{"bookingId": "BK-9", "code": "failed_processing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := abort(httperr.NewFormatterWithDetails(tt.expose), tt.err, tt.msg)
			assert.Equal(t, tt.wantStatus, status)
			if diff := cmp.Diff(tt.wantBody, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAbortWithErrorPanicsOnNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
	assert.Panics(t, func() { httperr.AbortWithError(c, 500, nil, "x", nil) })
}
