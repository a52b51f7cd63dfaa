package response

import (
	"hotel-booking/internal/usecase/commands"
)

type BookingCreatedResponse struct {
	BookingNumber string `json:"bookingNumber"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) BookingCreatedResponse {
	return BookingCreatedResponse{BookingNumber: r.BookingNumber}
}

type CheckoutResponse struct {
	BookingID      string `json:"bookingId"`
	PaymentStatus  string `json:"paymentStatus"`
	ConfirmationID string `json:"confirmationId"`
	// Amount is in minor currency units, as charged.
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func FromPaymentConfirmation(c *commands.PaymentConfirmation) CheckoutResponse {
	return CheckoutResponse{
		BookingID:      c.BookingNumber,
		PaymentStatus:  c.PaymentStatus.String(),
		ConfirmationID: c.ConfirmationID,
		Amount:         c.AmountCents,
		Currency:       c.Currency,
	}
}
