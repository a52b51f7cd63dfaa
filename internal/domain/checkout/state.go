package checkout

import (
	"errors"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
)

type State string

const (
	StateBookingCreated State = "booking_created"
	StateBookingFailed  State = "booking_failed"
	StatePaymentFailed  State = "payment_failed"
	StateSettled        State = "settled"
)

const defaultDeclineReason = "payment was declined"

var ErrNoChargeResult = errors.New("gateway returned no charge result")

// Outcome is one of BookingFailed, PaymentFailed or Settled.
type Outcome interface {
	State() State
}

type BookingFailed struct {
	Err error
}

// PaymentFailed carries Fault when the attempt broke rather than being declined.
type PaymentFailed struct {
	BookingNumber string
	Reason        string
	Code          string
	Fault         error
}

type Settled struct {
	BookingNumber  string
	ConfirmationID string
	AmountCents    int64
	Currency       string
}

func (BookingFailed) State() State { return StateBookingFailed }
func (PaymentFailed) State() State { return StatePaymentFailed }
func (Settled) State() State       { return StateSettled }

// Created is the only non-terminal state the flow passes through.
type Created struct {
	BookingNumber string
	AmountCents   int64
	Currency      string
}

func AfterBooking(bookingNumber string, err error) (Created, Outcome) {
	if err != nil {
		return Created{}, BookingFailed{Err: err}
	}
	return Created{BookingNumber: bookingNumber}, nil
}

// AfterQuote records the amount to charge; a quote fault ends the flow as a failed payment.
func AfterQuote(c Created, amountCents int64, currency string, err error) (Created, Outcome) {
	if err != nil {
		return c, PaymentFailed{BookingNumber: c.BookingNumber, Reason: "unable to price booking", Fault: err}
	}
	c.AmountCents = amountCents
	c.Currency = currency
	return c, nil
}

func AfterCharge(c Created, res *payment.ChargeResult, err error) Outcome {
	if err != nil {
		return PaymentFailed{BookingNumber: c.BookingNumber, Reason: "payment processing failed", Fault: err}
	}
	if res == nil {
		return PaymentFailed{BookingNumber: c.BookingNumber, Reason: "payment processing failed", Fault: ErrNoChargeResult}
	}
	if res.Succeeded() {
		return Settled{
			BookingNumber:  c.BookingNumber,
			ConfirmationID: res.ConfirmationID,
			AmountCents:    c.AmountCents,
			Currency:       c.Currency,
		}
	}
	reason := res.Reason
	if reason == "" {
		reason = defaultDeclineReason
	}
	return PaymentFailed{BookingNumber: c.BookingNumber, Reason: reason, Code: res.Code}
}

// TargetStatus is the settlement status to persist; false when nothing is written.
func TargetStatus(o Outcome) (booking.Status, bool) {
	switch o.(type) {
	case Settled:
		return booking.StatusPaid, true
	case PaymentFailed:
		return booking.StatusPaymentFailed, true
	default:
		return "", false
	}
}
