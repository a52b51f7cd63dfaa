package checkout

import "time"

const (
	RoutingKeyPaid          = "booking.paid"
	RoutingKeyPaymentFailed = "booking.payment_failed"
)

// Event is published once a booking reaches a settlement status.
type Event struct {
	BookingNumber  string    `json:"booking_number"`
	Outcome        State     `json:"outcome"`
	ConfirmationID string    `json:"confirmation_id,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	Code           string    `json:"code,omitempty"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewEvent(c Created, o Outcome, at time.Time) (Event, bool) {
	ev := Event{
		BookingNumber: c.BookingNumber,
		Outcome:       o.State(),
		AmountCents:   c.AmountCents,
		Currency:      c.Currency,
		OccurredAt:    at,
	}
	switch v := o.(type) {
	case Settled:
		ev.ConfirmationID = v.ConfirmationID
	case PaymentFailed:
		ev.Reason = v.Reason
		ev.Code = v.Code
	default:
		return Event{}, false
	}
	return ev, true
}

func (e Event) RoutingKey() string {
	if e.Outcome == StateSettled {
		return RoutingKeyPaid
	}
	return RoutingKeyPaymentFailed
}
