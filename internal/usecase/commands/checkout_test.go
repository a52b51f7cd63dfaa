//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/checkout"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type CheckoutTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockStore     *commandsmock.MockBookingStore
	mockGateway   *commandsmock.MockPaymentGateway
	mockQuoter    *commandsmock.MockPriceQuoter
	mockPublisher *commandsmock.MockSettlementPublisher
	mockRecorder  *commandsmock.MockCheckoutRecorder
	spans         *tracetest.SpanRecorder
	cmds          commands.CheckoutCommands
}

func (s *CheckoutTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = commandsmock.NewMockBookingStore(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockQuoter = commandsmock.NewMockPriceQuoter(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockSettlementPublisher(s.mockCtrl)
	s.mockRecorder = commandsmock.NewMockCheckoutRecorder(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.App.TimeZone = "UTC"
	clk := clock.NewMockClock(builder.Today.Add(10 * time.Hour))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bookings := commands.NewBookingCommands(s.mockStore, clk, cfg, logger)
	s.spans = tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))
	s.cmds = commands.NewCheckoutCommands(bookings, s.mockGateway, s.mockQuoter, s.mockPublisher, s.mockRecorder, clk, cfg, logger, tp)
}

// endedSpans indexes finished spans by name.
func (s *CheckoutTestSuite) endedSpans() map[string]sdktrace.ReadOnlySpan {
	out := map[string]sdktrace.ReadOnlySpan{}
	for _, sp := range s.spans.Ended() {
		out[sp.Name()] = sp
	}
	return out
}

func hasAttr(sp sdktrace.ReadOnlySpan, kv attribute.KeyValue) bool {
	for _, a := range sp.Attributes() {
		if a == kv {
			return true
		}
	}
	return false
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func checkoutInput() commands.CheckoutInput {
	b := builder.NewBookingBuilder()
	return commands.CheckoutInput{
		Booking:   b.BuildInput(),
		MethodRef: b.PaymentMethodID,
		Currency:  b.Currency,
	}
}

func (s *CheckoutTestSuite) expectCreated(number string) {
	s.mockStore.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *booking.Booking) (string, error) {
			s.Equal(booking.StatusPending, b.Status())
			return number, nil
		}).Times(1)
}

func (s *CheckoutTestSuite) TestGatewaySucceeds() {
	s.expectCreated("BK-100")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), int64(10), "2025-06-01").Return(120.0, nil).Times(1)

	var charged payment.ChargeRequest
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
			charged = req
			return &payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_test_1"}, nil
		}).Times(1)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-100", booking.StatusPaid).Return(nil).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev checkout.Event) error {
			s.Equal(checkout.StateSettled, ev.Outcome)
			s.Equal("chrg_test_1", ev.ConfirmationID)
			return nil
		}).Times(1)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaid, nil).Times(1)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateSettled).Times(1)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Require().NoError(err)
	s.Equal("BK-100", conf.BookingNumber)
	s.Equal(booking.StatusPaid, conf.PaymentStatus)
	s.Equal("chrg_test_1", conf.ConfirmationID)
	s.Equal(int64(24000), conf.AmountCents)
	s.Equal("eur", conf.Currency)

	s.Equal(int64(24000), charged.AmountCents)
	s.Equal("BK-100", charged.BookingNumber)
	s.Equal("a@b.com", charged.Metadata["guest_email"])
	s.Equal("single", charged.Metadata["booking_type"])

	spans := s.endedSpans()
	s.Require().Len(spans, 4)
	root := spans["HandleBookingAndPayment"]
	s.Require().NotNil(root)
	s.True(hasAttr(root, attribute.String("booking.number", "BK-100")))
	s.True(hasAttr(root, attribute.String("checkout.outcome", string(checkout.StateSettled))))
	s.Equal(codes.Unset, root.Status().Code)
	for _, name := range []string{"checkout.quote", "checkout.charge", "checkout.update_status"} {
		child := spans[name]
		s.Require().NotNil(child, name)
		s.Equal(root.SpanContext().SpanID(), child.Parent().SpanID(), name)
	}
	s.True(hasAttr(spans["checkout.charge"], attribute.Int64("payment.amount_cents", 24000)))
	s.True(hasAttr(spans["checkout.update_status"], attribute.String("booking.status", "paid")))
}

func (s *CheckoutTestSuite) TestGatewayDeclines() {
	s.expectCreated("BK-101")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), int64(10), "2025-06-01").Return(120.0, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&payment.ChargeResult{Status: payment.StatusFailed, Reason: "insufficient funds", Code: "insufficient_fund"}, nil).Times(1)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-101", booking.StatusPaymentFailed).Return(nil).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaymentFailed, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StatePaymentFailed).Times(1)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Nil(conf)
	var payErr *commands.PaymentError
	s.Require().ErrorAs(err, &payErr)
	s.Equal("insufficient funds", payErr.Reason)
	s.Equal("insufficient_fund", payErr.Code)
	s.Equal("BK-101", payErr.BookingNumber)
	s.True(errs.Is(err, errs.ErrPaymentDeclined))
	s.False(errs.Is(err, errs.ErrInternal))

	root := s.endedSpans()["HandleBookingAndPayment"]
	s.Require().NotNil(root)
	s.Equal(codes.Error, root.Status().Code)
	s.Equal("insufficient funds", root.Status().Description)
	s.True(hasAttr(root, attribute.String("checkout.outcome", string(checkout.StatePaymentFailed))))
}

func (s *CheckoutTestSuite) TestBookingFailureSkipsGateway() {
	storeErr := errors.New("room not available")
	s.mockStore.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return("", storeErr).Times(1)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateBookingFailed).Times(1)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Nil(conf)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrStoreUnavailable))
	s.ErrorIs(err, storeErr)
}

func (s *CheckoutTestSuite) TestValidationNeverReachesStore() {
	cases := []struct {
		name   string
		mutate func(*commands.CheckoutInput)
		errIs  error
	}{
		{"missing email", func(in *commands.CheckoutInput) { in.Booking.Email = "" }, booking.ErrMissingFields},
		{"phone too long", func(in *commands.CheckoutInput) { in.Booking.Phone = "123456789012345678901" }, booking.ErrFieldTooLong},
		{"check-out before check-in", func(in *commands.CheckoutInput) { in.Booking.CheckOut = "2025-05-30" }, booking.ErrInvalidDateRange},
		{"missing payment method", func(in *commands.CheckoutInput) { in.MethodRef = "" }, payment.ErrMethodRequired},
		{"bad currency", func(in *commands.CheckoutInput) { in.Currency = "euros" }, payment.ErrInvalidCurrency},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			in := checkoutInput()
			tc.mutate(&in)

			if tc.errIs == booking.ErrMissingFields || tc.errIs == booking.ErrFieldTooLong || tc.errIs == booking.ErrInvalidDateRange {
				s.mockRecorder.EXPECT().RecordCheckout(checkout.StateBookingFailed).Times(1)
			}

			conf, err := s.cmds.HandleBookingAndPayment(context.Background(), in)
			s.Nil(conf)
			s.ErrorIs(err, tc.errIs)
			s.True(errs.Is(err, errs.ErrValidation))
		})
	}
}

func (s *CheckoutTestSuite) TestGatewayFaultIsInternal() {
	s.expectCreated("BK-102")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(120.0, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: i/o timeout")).Times(1)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-102", booking.StatusPaymentFailed).Return(nil).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaymentFailed, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StatePaymentFailed)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Nil(conf)
	s.True(errs.Is(err, errs.ErrInternal))
	var payErr *commands.PaymentError
	s.False(errors.As(err, &payErr))
}

func (s *CheckoutTestSuite) TestQuoteFaultMarksPaymentFailed() {
	s.expectCreated("BK-103")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, errors.New("function get_dynamic_price does not exist"))
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-103", booking.StatusPaymentFailed).Return(nil).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaymentFailed, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StatePaymentFailed)

	_, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.True(errs.Is(err, errs.ErrInternal))
}

func (s *CheckoutTestSuite) TestAmountBelowMinimumIsDeclinedWithoutCharge() {
	s.expectCreated("BK-104")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.2, nil)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-104", booking.StatusPaymentFailed).Return(nil).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaymentFailed, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StatePaymentFailed)

	_, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	var payErr *commands.PaymentError
	s.Require().ErrorAs(err, &payErr)
	s.Equal("invalid_amount", payErr.Code)
}

func (s *CheckoutTestSuite) TestStatusUpdateFailureIsInternal() {
	s.expectCreated("BK-105")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(120.0, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_2"}, nil)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-105", booking.StatusPaid).Return(errors.New("connection reset")).Times(1)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateSettled)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Nil(conf)
	s.True(errs.Is(err, errs.ErrInternal))
}

func (s *CheckoutTestSuite) TestPublishFailureDoesNotFailCheckout() {
	s.expectCreated("BK-106")
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(120.0, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_3"}, nil)
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-106", booking.StatusPaid).Return(nil)
	publishErr := errors.New("channel closed")
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(publishErr)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaid, publishErr)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateSettled)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), checkoutInput())

	s.Require().NoError(err)
	s.Equal(booking.StatusPaid, conf.PaymentStatus)
}

func (s *CheckoutTestSuite) TestCallerCancellationAfterBooking() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.mockStore.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *booking.Booking) (string, error) {
			cancel()
			return "BK-107", nil
		})
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ string) (float64, error) {
			s.NoError(ctx.Err())
			return 120.0, nil
		})
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ payment.ChargeRequest) (*payment.ChargeResult, error) {
			s.NoError(ctx.Err())
			return &payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_4"}, nil
		})
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-107", booking.StatusPaid).
		DoAndReturn(func(ctx context.Context, _ string, _ booking.Status) error {
			s.NoError(ctx.Err())
			return nil
		}).Times(1)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaid, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateSettled)

	conf, err := s.cmds.HandleBookingAndPayment(ctx, checkoutInput())

	s.Require().NoError(err)
	s.Equal("chrg_4", conf.ConfirmationID)
}

func (s *CheckoutTestSuite) TestCombinationChargesEveryRoom() {
	in := checkoutInput()
	in.Booking.RoomID = nil
	in.Booking.CombinationRoomIDs = []int64{21, 22}

	s.mockStore.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *booking.Booking) (string, error) {
			s.True(b.Room().IsCombination())
			return "BK-108", nil
		})
	s.mockQuoter.EXPECT().DynamicPrice(gomock.Any(), int64(21), "2025-06-01").Return(100.0, nil)
	s.mockGateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
			s.Equal(int64(40000), req.AmountCents)
			s.Equal("combination", req.Metadata["booking_type"])
			return &payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_5"}, nil
		})
	s.mockStore.EXPECT().UpdateBookingStatus(gomock.Any(), "BK-108", booking.StatusPaid).Return(nil)
	s.mockPublisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRecorder.EXPECT().RecordPublish(checkout.RoutingKeyPaid, nil)
	s.mockRecorder.EXPECT().RecordCheckout(checkout.StateSettled)

	conf, err := s.cmds.HandleBookingAndPayment(context.Background(), in)

	s.Require().NoError(err)
	s.Equal(int64(40000), conf.AmountCents)
}
