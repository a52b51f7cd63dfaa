package booking

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxEmailLength         = 100
	MaxPhoneLength         = 20
	MaxPaymentMethodLength = 100
	MaxPaymentStatusLength = 50

	// MaxStoreInt is the largest id or count the store's integer columns hold.
	MaxStoreInt = math.MaxInt32

	dateLayout = "2006-01-02"
)

// FieldTooLongError names the offending field and its limit.
type FieldTooLongError struct {
	Field string
	Limit int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d characters", e.Field, e.Limit)
}

func (e *FieldTooLongError) Unwrap() error {
	return ErrFieldTooLong
}

func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return &FieldTooLongError{Field: field, Limit: limit}
	}
	return nil
}

// Stay is a check-in/check-out pair of calendar dates.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// NewStay compares dates only; today is expected at midnight of the hotel's zone.
func NewStay(checkIn, checkOut string, today time.Time) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(todayDate) || !out.After(in) {
		return Stay{}, ErrInvalidDateRange
	}

	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(math.Ceil(s.checkOut.Sub(s.checkIn).Hours() / 24))
}

func (s Stay) CheckInString() string  { return s.checkIn.Format(dateLayout) }
func (s Stay) CheckOutString() string { return s.checkOut.Format(dateLayout) }

type Guest struct {
	firstName string
	lastName  string
	age       int
	isPrimary bool
}

type GuestInput struct {
	FirstName string
	LastName  string
	Age       string
	IsPrimary *bool
}

func NewGuest(in GuestInput) (Guest, error) {
	age, err := parseAge(in.Age)
	if err != nil {
		return Guest{}, err
	}
	primary := false
	if in.IsPrimary != nil {
		primary = *in.IsPrimary
	}
	return Guest{
		firstName: strings.TrimSpace(in.FirstName),
		lastName:  strings.TrimSpace(in.LastName),
		age:       age,
		isPrimary: primary,
	}, nil
}

// parseAge accepts integers and numeric strings; fractions are truncated.
func parseAge(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidGuestData
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, ErrInvalidGuestData
		}
		age = int(f)
	}
	if age < 0 {
		return 0, ErrInvalidGuestData
	}
	return age, nil
}

func (g Guest) FirstName() string { return g.firstName }
func (g Guest) LastName() string  { return g.lastName }
func (g Guest) Age() int          { return g.age }
func (g Guest) IsPrimary() bool   { return g.isPrimary }

type guestJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	IsPrimary bool   `json:"isPrimary"`
}

func (g Guest) MarshalJSON() ([]byte, error) {
	return json.Marshal(guestJSON{
		FirstName: g.firstName,
		LastName:  g.lastName,
		Age:       g.age,
		IsPrimary: g.isPrimary,
	})
}

// RoomTarget is either one room or an ordered combination led by its first room.
type RoomTarget struct {
	roomID      int64
	combination []int64
}

func NewRoomTarget(roomID *int64, combination []int64) (RoomTarget, error) {
	if len(combination) > 0 {
		ids := make([]int64, len(combination))
		for i, id := range combination {
			if id <= 0 || id > MaxStoreInt {
				return RoomTarget{}, ErrInvalidRoom
			}
			ids[i] = id
		}
		return RoomTarget{roomID: ids[0], combination: ids}, nil
	}
	if roomID == nil {
		return RoomTarget{}, ErrMissingFields
	}
	if *roomID <= 0 || *roomID > MaxStoreInt {
		return RoomTarget{}, ErrInvalidRoom
	}
	return RoomTarget{roomID: *roomID}, nil
}

func (r RoomTarget) RoomID() int64       { return r.roomID }
func (r RoomTarget) IsCombination() bool { return len(r.combination) > 0 }

func (r RoomTarget) CombinationRoomIDs() []int64 {
	if len(r.combination) == 0 {
		return nil
	}
	ids := make([]int64, len(r.combination))
	copy(ids, r.combination)
	return ids
}

func (r RoomTarget) RoomCount() int {
	if len(r.combination) > 0 {
		return len(r.combination)
	}
	return 1
}

func (r RoomTarget) Type() Type {
	if r.IsCombination() {
		return TypeCombination
	}
	return TypeSingle
}
