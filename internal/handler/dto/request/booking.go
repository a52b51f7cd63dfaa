package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/commands"
)

// NumericText accepts a JSON number or string and keeps its textual form.
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumericText(num.String())
	return nil
}

type GuestRequest struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Age       NumericText `json:"age"`
	IsPrimary *bool       `json:"isPrimary,omitempty"`
}

type CreateBookingRequest struct {
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	CheckIn            string         `json:"checkIn"`
	CheckOut           string         `json:"checkOut"`
	Guests             int            `json:"guests"`
	Adults             int            `json:"adults"`
	Children           int            `json:"children"`
	RoomID             *int64         `json:"roomId,omitempty"`
	GuestList          []GuestRequest `json:"guestList"`
	PaymentStatus      string         `json:"paymentStatus,omitempty"`
	PaymentMethod      *string        `json:"paymentMethod,omitempty"`
	SpecialRequests    *string        `json:"specialRequests,omitempty"`
	BookingType        string         `json:"bookingType,omitempty"`
	CombinationRoomIDs []int64        `json:"combinationRoomIds,omitempty"`
}

func (r CreateBookingRequest) ToInput() booking.Input {
	guests := make([]booking.GuestInput, 0, len(r.GuestList))
	for _, g := range r.GuestList {
		guests = append(guests, booking.GuestInput{
			FirstName: g.FirstName,
			LastName:  g.LastName,
			Age:       string(g.Age),
			IsPrimary: g.IsPrimary,
		})
	}
	if r.GuestList == nil {
		guests = nil
	}

	bookingType := r.BookingType
	if bookingType == "" {
		bookingType = string(booking.TypeSingle)
	}

	return booking.Input{
		Email:              r.Email,
		Phone:              r.Phone,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		Guests:             r.Guests,
		Adults:             r.Adults,
		Children:           r.Children,
		RoomID:             r.RoomID,
		CombinationRoomIDs: r.CombinationRoomIDs,
		GuestList:          guests,
		PaymentStatus:      strings.TrimSpace(r.PaymentStatus),
		PaymentMethod:      r.PaymentMethod,
		SpecialRequests:    r.SpecialRequests,
		BookingType:        bookingType,
	}
}

// CheckoutRequest is a booking request plus what the gateway needs to charge it.
type CheckoutRequest struct {
	CreateBookingRequest
	PaymentMethodID string `json:"paymentMethodId"`
	Currency        string `json:"currency,omitempty"`
}

func (r CheckoutRequest) ToInput() commands.CheckoutInput {
	return commands.CheckoutInput{
		Booking:   r.CreateBookingRequest.ToInput(),
		MethodRef: strings.TrimSpace(r.PaymentMethodID),
		Currency:  strings.ToLower(strings.TrimSpace(r.Currency)),
	}
}
