package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/config"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"golang.org/x/time/rate"
)

const providerOmise = "omise"

type Observer interface {
	ObserveGateway(provider, outcome string, dur time.Duration)
}

// chargeFunc performs one CreateCharge call; the omise client does not take a context.
type chargeFunc func(op *operations.CreateCharge) (*omise.Charge, error)

type OmiseGateway struct {
	charge   chargeFunc
	limiter  *rate.Limiter
	observer Observer
	logger   *slog.Logger
}

func NewOmiseGateway(cfg config.PaymentConfig, observer Observer, logger *slog.Logger) (*OmiseGateway, error) {
	if cfg.OmiseSecretKey == "" {
		return nil, errors.New("OMISE_SECRET_KEY is required for the omise provider")
	}
	client, err := omise.NewClient(cfg.OmisePublicKey, cfg.OmiseSecretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}
	client.SetDebug(false)

	do := func(op *operations.CreateCharge) (*omise.Charge, error) {
		ch := &omise.Charge{}
		if err := client.Do(ch, op); err != nil {
			return nil, err
		}
		return ch, nil
	}
	return newOmiseGateway(do, cfg.RateLimitRPS, observer, logger), nil
}

func newOmiseGateway(charge chargeFunc, rps int, observer Observer, logger *slog.Logger) *OmiseGateway {
	if rps <= 0 {
		rps = 5
	}
	return &OmiseGateway{
		charge:   charge,
		limiter:  rate.NewLimiter(rate.Limit(rps), rps),
		observer: observer,
		logger:   logger,
	}
}

func (g *OmiseGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for gateway rate limit: %w", err)
	}

	op := createChargeOp(req)
	start := time.Now()
	ch, err := g.charge(op)
	dur := time.Since(start)

	if err != nil {
		var oe *omise.Error
		if errors.As(err, &oe) && oe.StatusCode > 0 && oe.StatusCode < 500 {
			g.observer.ObserveGateway(providerOmise, "declined", dur)
			g.logger.WarnContext(ctx, "omise rejected charge",
				"booking_number", req.BookingNumber,
				"status_code", oe.StatusCode,
				"code", oe.Code,
			)
			return &payment.ChargeResult{Status: payment.StatusFailed, Code: oe.Code, Reason: oe.Message}, nil
		}
		g.observer.ObserveGateway(providerOmise, "error", dur)
		return nil, fmt.Errorf("omise create charge: %w", err)
	}

	res := toChargeResult(ch)
	g.observer.ObserveGateway(providerOmise, string(res.Status), dur)
	return res, nil
}

func createChargeOp(req payment.ChargeRequest) *operations.CreateCharge {
	metadata := make(map[string]interface{}, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	op := &operations.CreateCharge{
		Amount:      req.AmountCents,
		Currency:    req.Currency,
		Description: "Booking " + req.BookingNumber,
		Metadata:    metadata,
	}
	switch {
	case strings.HasPrefix(req.MethodRef, "src_"):
		op.Source = req.MethodRef
	case strings.HasPrefix(req.MethodRef, "cust_"):
		op.Customer = req.MethodRef
	default:
		op.Card = req.MethodRef
	}
	return op
}

// toChargeResult treats anything but a successful charge as declined.
func toChargeResult(ch *omise.Charge) *payment.ChargeResult {
	if ch.Status == omise.ChargeSuccessful {
		return &payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: ch.ID}
	}

	res := &payment.ChargeResult{Status: payment.StatusFailed, ConfirmationID: ch.ID}
	if ch.FailureCode != nil {
		res.Code = *ch.FailureCode
	}
	if ch.FailureMessage != nil {
		res.Reason = *ch.FailureMessage
	}
	if ch.Status != omise.ChargeFailed && res.Code == "" {
		res.Code = "charge_" + string(ch.Status)
		res.Reason = "payment requires further authorization"
	}
	return res
}
