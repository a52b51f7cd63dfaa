package room

import (
	"strconv"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingPriceParams      = errs.Validation("missing required parameters: roomId and checkIn are required")
	ErrInvalidRoomID           = errs.Validation("roomId must be a positive integer")
	ErrCombinationIDRequired   = errs.Validation("combination ID is required")
	ErrInvalidCombinationIDFmt = errs.Validation("invalid combination ID format")
)

// ParsePriceQuery validates the inputs of a dynamic price lookup.
func ParsePriceQuery(roomID, checkIn string) (int64, string, error) {
	roomID = strings.TrimSpace(roomID)
	checkIn = strings.TrimSpace(checkIn)
	if roomID == "" || checkIn == "" {
		return 0, "", ErrMissingPriceParams
	}
	id, err := strconv.ParseInt(roomID, 10, 64)
	if err != nil || id <= 0 || id > booking.MaxStoreInt {
		return 0, "", ErrInvalidRoomID
	}
	date, err := booking.ParseDate(checkIn)
	if err != nil {
		return 0, "", err
	}
	return id, date.Format("2006-01-02"), nil
}

// ParseCombinationID accepts RFC 4122 UUIDs of versions 1 through 5.
func ParseCombinationID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrCombinationIDRequired
	}
	if len(raw) != 36 {
		return uuid.Nil, ErrInvalidCombinationIDFmt
	}
	id, err := uuid.Parse(raw)
	if err != nil || id.Variant() != uuid.RFC4122 || id.Version() < 1 || id.Version() > 5 {
		return uuid.Nil, ErrInvalidCombinationIDFmt
	}
	return id, nil
}
