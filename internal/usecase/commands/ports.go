package commands

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/checkout"
	"hotel-booking/internal/domain/payment"
)

// BookingStore owns booking rows; the store arbitrates room inventory.
type BookingStore interface {
	// CreateBooking returns an empty number when the store produced none.
	CreateBooking(ctx context.Context, b *booking.Booking) (string, error)
	UpdateBookingStatus(ctx context.Context, bookingNumber string, status booking.Status) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error)
}

type PriceQuoter interface {
	DynamicPrice(ctx context.Context, roomID int64, checkIn string) (float64, error)
}

type SettlementPublisher interface {
	PublishSettlement(ctx context.Context, ev checkout.Event) error
}

type MessageStore interface {
	SendMessage(ctx context.Context, fullName, email, message string) error
}

type CheckoutRecorder interface {
	RecordCheckout(state checkout.State)
	RecordPublish(routingKey string, err error)
}
