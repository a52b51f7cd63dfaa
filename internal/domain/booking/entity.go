package booking

import (
	"encoding/json"
	"strings"
	"time"

	"hotel-booking/internal/pkg/errs"
)

var (
	ErrMissingFields     = errs.Validation("missing required fields")
	ErrFieldTooLong      = errs.Validation("field exceeds maximum length")
	ErrInvalidGuestData  = errs.Validation("invalid guest data")
	ErrInvalidDate       = errs.Validation("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange  = errs.Validation("check-out must be after check-in and check-in cannot be in the past")
	ErrInvalidGuestCount = errs.Validation("guest counts must be non-negative and within range")
	ErrInvalidRoom       = errs.Validation("room ids must be positive and in range")
	ErrInvalidStatus     = errs.Validation("invalid booking status")
)

// Input is the raw booking request as received from callers.
type Input struct {
	Email              string
	Phone              string
	CheckIn            string
	CheckOut           string
	Guests             int
	Adults             int
	Children           int
	RoomID             *int64
	CombinationRoomIDs []int64
	GuestList          []GuestInput
	PaymentStatus      string
	PaymentMethod      *string
	SpecialRequests    *string
	BookingType        string
}

type Booking struct {
	email           string
	phone           string
	stay            Stay
	guests          int
	adults          int
	children        int
	room            RoomTarget
	guestList       []Guest
	status          Status
	paymentMethod   *string
	specialRequests *string
}

// NewBooking validates in against today (midnight in the hotel's zone).
func NewBooking(in Input, today time.Time) (*Booking, error) {
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if email == "" || phone == "" ||
		strings.TrimSpace(in.CheckIn) == "" || strings.TrimSpace(in.CheckOut) == "" ||
		in.Guests == 0 || len(in.GuestList) == 0 {
		return nil, ErrMissingFields
	}

	status := StatusUnpaid
	if in.PaymentStatus != "" {
		status = Status(in.PaymentStatus)
	}

	if err := checkLength("Email", email, MaxEmailLength); err != nil {
		return nil, err
	}
	if err := checkLength("Phone", phone, MaxPhoneLength); err != nil {
		return nil, err
	}
	if err := checkLength("Payment status", status.String(), MaxPaymentStatusLength); err != nil {
		return nil, err
	}
	if in.PaymentMethod != nil {
		if err := checkLength("Payment method", *in.PaymentMethod, MaxPaymentMethodLength); err != nil {
			return nil, err
		}
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	stay, err := NewStay(in.CheckIn, in.CheckOut, today)
	if err != nil {
		return nil, err
	}

	if in.Guests < 0 || in.Adults < 0 || in.Children < 0 ||
		in.Guests > MaxStoreInt || in.Adults > MaxStoreInt || in.Children > MaxStoreInt {
		return nil, ErrInvalidGuestCount
	}

	guests := make([]Guest, 0, len(in.GuestList))
	for _, g := range in.GuestList {
		guest, err := NewGuest(g)
		if err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	room, err := NewRoomTarget(in.RoomID, in.CombinationRoomIDs)
	if err != nil {
		return nil, err
	}

	return &Booking{
		email:           email,
		phone:           phone,
		stay:            stay,
		guests:          in.Guests,
		adults:          in.Adults,
		children:        in.Children,
		room:            room,
		guestList:       guests,
		status:          status,
		paymentMethod:   in.PaymentMethod,
		specialRequests: in.SpecialRequests,
	}, nil
}

func (b *Booking) Email() string            { return b.email }
func (b *Booking) Phone() string            { return b.phone }
func (b *Booking) Stay() Stay               { return b.stay }
func (b *Booking) Guests() int              { return b.guests }
func (b *Booking) Adults() int              { return b.adults }
func (b *Booking) Children() int            { return b.children }
func (b *Booking) Room() RoomTarget         { return b.room }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PaymentMethod() *string   { return b.paymentMethod }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) GuestList() []Guest {
	out := make([]Guest, len(b.guestList))
	copy(out, b.guestList)
	return out
}

// PrimaryGuest returns the guest flagged primary, or the first guest.
func (b *Booking) PrimaryGuest() Guest {
	for _, g := range b.guestList {
		if g.isPrimary {
			return g
		}
	}
	return b.guestList[0]
}

// GuestsJSON is the canonical serialized guest list sent to the store.
func (b *Booking) GuestsJSON() (string, error) {
	raw, err := json.Marshal(b.guestList)
	if err != nil {
		return "", errs.Wrap(err, "failed to serialize guest list")
	}
	return string(raw), nil
}

// ValidateSettlement checks a status change requested after a payment attempt.
func ValidateSettlement(bookingNumber string, status Status) error {
	if strings.TrimSpace(bookingNumber) == "" {
		return ErrMissingFields
	}
	if !status.IsSettlement() {
		return ErrInvalidStatus
	}
	return nil
}
