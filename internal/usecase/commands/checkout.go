package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/checkout"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PaymentError is a charge the gateway refused. The booking is already marked payment failed.
type PaymentError struct {
	BookingNumber string
	Code          string
	Reason        string
}

func (e *PaymentError) Error() string {
	return e.Reason
}

func (e *PaymentError) Unwrap() error {
	return errs.ErrPaymentDeclined
}

const TracerName = "hotel-booking/checkout"

type CheckoutInput struct {
	Booking   booking.Input
	MethodRef string
	Currency  string
}

type PaymentConfirmation struct {
	BookingNumber  string
	PaymentStatus  booking.Status
	ConfirmationID string
	AmountCents    int64
	Currency       string
}

type CheckoutCommands interface {
	HandleBookingAndPayment(ctx context.Context, in CheckoutInput) (*PaymentConfirmation, error)
}

type checkoutCommandsImpl struct {
	bookings  BookingCommands
	gateway   PaymentGateway
	quoter    PriceQuoter
	publisher SettlementPublisher
	recorder  CheckoutRecorder
	clock     clock.Clock
	cfg       config.PaymentConfig
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewCheckoutCommands(
	bookings BookingCommands,
	gateway PaymentGateway,
	quoter PriceQuoter,
	publisher SettlementPublisher,
	recorder CheckoutRecorder,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	tp trace.TracerProvider,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		bookings:  bookings,
		gateway:   gateway,
		quoter:    quoter,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg.Payment,
		logger:    logger,
		tracer:    tp.Tracer(TracerName),
	}
}

func (s *checkoutCommandsImpl) HandleBookingAndPayment(ctx context.Context, in CheckoutInput) (*PaymentConfirmation, error) {
	ctx, span := s.tracer.Start(ctx, "HandleBookingAndPayment")
	defer span.End()

	methodRef, currency, err := payment.NormalizeMethod(in.MethodRef, in.Currency, s.cfg.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	in.Booking.PaymentStatus = booking.StatusPending.String()
	created, err := s.bookings.CreateBooking(ctx, in.Booking)
	number := ""
	if created != nil {
		number = created.BookingNumber
	}
	state, outcome := checkout.AfterBooking(number, err)
	if outcome != nil {
		s.recorder.RecordCheckout(outcome.State())
		span.SetStatus(codes.Error, "booking failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("booking.number", state.BookingNumber))

	// The caller may go away now; the booking must still reach a settlement status.
	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.SettleTimeout)
	defer cancel()

	return s.settle(settleCtx, span, state, created.Booking, methodRef, currency)
}

func (s *checkoutCommandsImpl) settle(
	ctx context.Context,
	span trace.Span,
	state checkout.Created,
	b *booking.Booking,
	methodRef, currency string,
) (*PaymentConfirmation, error) {
	quoteCtx, quoteSpan := s.tracer.Start(ctx, "checkout.quote")
	amount, err := s.quote(quoteCtx, b)
	endSpan(quoteSpan, err)
	state, outcome := checkout.AfterQuote(state, amount, currency, err)

	if outcome == nil {
		req, reqErr := payment.NewChargeRequest(amount, s.cfg.MinAmount, currency, methodRef, state.BookingNumber, map[string]string{
			"booking_type": string(b.Room().Type()),
			"guest_email":  b.Email(),
		})
		if reqErr != nil {
			outcome = checkout.PaymentFailed{BookingNumber: state.BookingNumber, Reason: fmt.Sprintf("invalid amount, minimum is %d cents", s.cfg.MinAmount), Code: "invalid_amount"}
		} else {
			chargeCtx, chargeSpan := s.tracer.Start(ctx, "checkout.charge", trace.WithAttributes(
				attribute.Int64("payment.amount_cents", req.AmountCents),
				attribute.String("payment.currency", currency),
			))
			res, chargeErr := s.gateway.Charge(chargeCtx, req)
			endSpan(chargeSpan, chargeErr)
			outcome = checkout.AfterCharge(state, res, chargeErr)
		}
	}

	status, _ := checkout.TargetStatus(outcome)
	span.SetAttributes(attribute.String("checkout.outcome", string(outcome.State())))
	updateCtx, updateSpan := s.tracer.Start(ctx, "checkout.update_status", trace.WithAttributes(
		attribute.String("booking.status", status.String()),
	))
	err = s.bookings.UpdateBookingStatus(updateCtx, state.BookingNumber, status)
	endSpan(updateSpan, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record settlement status",
			"booking_number", state.BookingNumber,
			"target_status", status.String(),
			"error", err,
			"stack", errs.ExtractStackLines(err, 8),
		)
		s.recorder.RecordCheckout(outcome.State())
		span.SetStatus(codes.Error, "status update failed")
		return nil, errs.Mark(errs.Wrap(err, "failed to record settlement"), errs.ErrInternal)
	}

	s.publish(ctx, state, outcome)
	s.recorder.RecordCheckout(outcome.State())

	switch o := outcome.(type) {
	case checkout.Settled:
		s.logger.InfoContext(ctx, "booking settled",
			"booking_number", o.BookingNumber,
			"confirmation_id", o.ConfirmationID,
			"amount_cents", o.AmountCents,
		)
		return &PaymentConfirmation{
			BookingNumber:  o.BookingNumber,
			PaymentStatus:  booking.StatusPaid,
			ConfirmationID: o.ConfirmationID,
			AmountCents:    o.AmountCents,
			Currency:       o.Currency,
		}, nil
	case checkout.PaymentFailed:
		span.SetStatus(codes.Error, o.Reason)
		if o.Fault != nil {
			s.logger.ErrorContext(ctx, "payment attempt failed",
				"booking_number", o.BookingNumber,
				"error", o.Fault,
				"stack", errs.ExtractStackLines(o.Fault, 8),
			)
			return nil, errs.Mark(errs.Wrap(o.Fault, "payment processing failed"), errs.ErrInternal)
		}
		s.logger.WarnContext(ctx, "payment declined",
			"booking_number", o.BookingNumber,
			"code", o.Code,
			"reason", o.Reason,
		)
		return nil, &PaymentError{BookingNumber: o.BookingNumber, Code: o.Code, Reason: o.Reason}
	default:
		return nil, errs.Mark(errs.New("unexpected checkout outcome"), errs.ErrInternal)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *checkoutCommandsImpl) quote(ctx context.Context, b *booking.Booking) (int64, error) {
	price, err := s.quoter.DynamicPrice(ctx, b.Room().RoomID(), b.Stay().CheckInString())
	if err != nil {
		return 0, errs.Wrap(err, "failed to get dynamic price")
	}
	return payment.Quote(price, b.Stay().Nights(), b.Room().RoomCount())
}

func (s *checkoutCommandsImpl) publish(ctx context.Context, state checkout.Created, outcome checkout.Outcome) {
	ev, ok := checkout.NewEvent(state, outcome, s.clock.Now())
	if !ok {
		return
	}
	err := s.publisher.PublishSettlement(ctx, ev)
	s.recorder.RecordPublish(ev.RoutingKey(), err)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish settlement event",
			"booking_number", ev.BookingNumber,
			"routing_key", ev.RoutingKey(),
			"error", err,
		)
	}
}
