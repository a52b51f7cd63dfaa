package room

import (
	"strconv"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
)

const DefaultImageURL = "/default-room.jpg"

var (
	ErrMissingSearchParams = errs.Validation("missing required parameters: check_in, check_out, and adults are required")
	ErrInvalidDateFormat   = errs.Validation("invalid date format")
	ErrInvalidStayRange    = errs.Validation("invalid check-in/check-out range")
	ErrNotNumeric          = errs.Validation("adults, children, and room count must be numbers")
	ErrInvalidCounts       = errs.Validation("invalid guest or room count values")
)

// SearchInput carries raw query values; empty children and rooms take defaults.
type SearchInput struct {
	CheckIn  string
	CheckOut string
	Adults   string
	Children string
	Rooms    string
}

type SearchCriteria struct {
	stay     booking.Stay
	adults   int
	children int
	rooms    int
}

func NewSearchCriteria(in SearchInput, today time.Time) (SearchCriteria, error) {
	if strings.TrimSpace(in.CheckIn) == "" || strings.TrimSpace(in.CheckOut) == "" || strings.TrimSpace(in.Adults) == "" {
		return SearchCriteria{}, ErrMissingSearchParams
	}

	stay, err := booking.NewStay(in.CheckIn, in.CheckOut, today)
	switch {
	case errs.Is(err, booking.ErrInvalidDate):
		return SearchCriteria{}, ErrInvalidDateFormat
	case err != nil:
		return SearchCriteria{}, ErrInvalidStayRange
	}

	adults, err := parseCount(in.Adults, 0)
	if err != nil {
		return SearchCriteria{}, err
	}
	children, err := parseCount(in.Children, 0)
	if err != nil {
		return SearchCriteria{}, err
	}
	rooms, err := parseCount(in.Rooms, 1)
	if err != nil {
		return SearchCriteria{}, err
	}

	if adults < 0 || children < 0 || rooms < 1 ||
		adults > booking.MaxStoreInt || children > booking.MaxStoreInt || rooms > booking.MaxStoreInt {
		return SearchCriteria{}, ErrInvalidCounts
	}

	return SearchCriteria{stay: stay, adults: adults, children: children, rooms: rooms}, nil
}

func parseCount(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return n, nil
}

func (c SearchCriteria) Stay() booking.Stay { return c.stay }
func (c SearchCriteria) Adults() int        { return c.adults }
func (c SearchCriteria) Children() int      { return c.children }
func (c SearchCriteria) Rooms() int         { return c.rooms }
func (c SearchCriteria) TotalGuests() int   { return c.adults + c.children }

// WithRooms returns a copy asking for n rooms.
func (c SearchCriteria) WithRooms(n int) SearchCriteria {
	c.rooms = n
	return c
}
