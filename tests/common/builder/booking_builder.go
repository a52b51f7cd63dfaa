//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/ptr"
)

// Today is the fixed "today" used by booking fixtures.
var Today = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

type GuestFixture struct {
	FirstName string
	LastName  string
	Age       string
	IsPrimary *bool
}

type BookingBuilder struct {
	Email              string
	Phone              string
	CheckIn            string
	CheckOut           string
	Guests             int
	Adults             int
	Children           int
	RoomID             *int64
	CombinationRoomIDs []int64
	GuestList          []GuestFixture
	PaymentStatus      string
	PaymentMethod      *string
	SpecialRequests    *string
	PaymentMethodID    string
	Currency           string
}

// NewBookingBuilder starts from the two-guest single-room request used throughout the tests.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Email:    "a@b.com",
		Phone:    "123",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
		Guests:   2,
		Adults:   2,
		RoomID:   ptr.Of(int64(10)),
		GuestList: []GuestFixture{
			{FirstName: "A", LastName: "B", Age: "30", IsPrimary: ptr.Of(true)},
			{FirstName: "C", LastName: "D", Age: "28"},
		},
		PaymentMethodID: "tokn_test_5086xl7c9k5rnx35qba",
		Currency:        "eur",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildInput() booking.Input {
	var guests []booking.GuestInput
	if b.GuestList != nil {
		guests = make([]booking.GuestInput, 0, len(b.GuestList))
		for _, g := range b.GuestList {
			guests = append(guests, booking.GuestInput{
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Age:       g.Age,
				IsPrimary: g.IsPrimary,
			})
		}
	}
	return booking.Input{
		Email:              b.Email,
		Phone:              b.Phone,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		Adults:             b.Adults,
		Children:           b.Children,
		RoomID:             b.RoomID,
		CombinationRoomIDs: b.CombinationRoomIDs,
		GuestList:          guests,
		PaymentStatus:      b.PaymentStatus,
		PaymentMethod:      b.PaymentMethod,
		SpecialRequests:    b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.BuildInput(), Today)
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.CreateBookingRequest {
	var guests []reqdto.GuestRequest
	if b.GuestList != nil {
		guests = make([]reqdto.GuestRequest, 0, len(b.GuestList))
		for _, g := range b.GuestList {
			guests = append(guests, reqdto.GuestRequest{
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Age:       reqdto.NumericText(g.Age),
				IsPrimary: g.IsPrimary,
			})
		}
	}
	return reqdto.CreateBookingRequest{
		Email:              b.Email,
		Phone:              b.Phone,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		Adults:             b.Adults,
		Children:           b.Children,
		RoomID:             b.RoomID,
		GuestList:          guests,
		PaymentStatus:      b.PaymentStatus,
		PaymentMethod:      b.PaymentMethod,
		SpecialRequests:    b.SpecialRequests,
		CombinationRoomIDs: b.CombinationRoomIDs,
	}
}

func (b *BookingBuilder) BuildCheckoutDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		CreateBookingRequest: b.BuildRequestDTO(),
		PaymentMethodID:      b.PaymentMethodID,
		Currency:             b.Currency,
	}
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithGuestList(guests ...GuestFixture) *BookingBuilder {
	b.GuestList = guests
	return b
}

func (b *BookingBuilder) WithCombination(ids ...int64) *BookingBuilder {
	b.CombinationRoomIDs = ids
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method string) *BookingBuilder {
	b.PaymentMethod = &method
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status string) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) AsPending() *BookingBuilder {
	b.PaymentStatus = string(booking.StatusPending)
	return b
}
