package api

import (
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

const msgInvalidBody = "Invalid request format"

// invalidBody classifies binding failures as client errors.
func invalidBody(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// publicMessages holds the wording clients have always received for known failures.
var publicMessages = []struct {
	err error
	msg string
}{
	{booking.ErrMissingFields, "Missing required booking information."},
	{commands.ErrBookingCreationFailed, "Booking creation failed. No booking number returned."},
	{commands.ErrMessageFieldsRequired, "Full name, email, and message are required."},
	{room.ErrMissingSearchParams, "Missing required parameters: check_in, check_out, and adults are required."},
	{room.ErrInvalidDateFormat, "Invalid date format."},
	{room.ErrInvalidStayRange, "Invalid check-in/check-out range."},
	{room.ErrNotNumeric, "Adults, children, and room count must be numbers."},
	{room.ErrInvalidCounts, "Invalid guest or room count values."},
	{room.ErrMissingPriceParams, "Missing required parameters: roomId and checkIn are required."},
	{room.ErrCombinationIDRequired, "Combination ID is required"},
	{room.ErrInvalidCombinationIDFmt, "Invalid combination ID format"},
	{queries.ErrCombinationNotFound, "No combination found with this ID"},
	{queries.ErrCombinationBookingNotFound, "No combination booking found with this ID"},
}

// publicMessage picks the client-facing text for err. Unlisted validation
// errors speak for themselves; everything else gets fallback.
func publicMessage(err error, fallback string) string {
	for _, m := range publicMessages {
		if errs.Is(err, m.err) {
			return m.msg
		}
	}

	var tooLong *booking.FieldTooLongError
	if errors.As(err, &tooLong) {
		return tooLong.Error()
	}
	if errs.Is(err, errs.ErrValidation) {
		return capitalize(err.Error())
	}
	return fallback
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
