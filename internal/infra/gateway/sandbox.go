package gateway

import (
	"context"

	"hotel-booking/internal/domain/payment"

	"github.com/google/uuid"
)

const providerSandbox = "sandbox"

// SandboxGateway settles locally without network calls.
type SandboxGateway struct {
	decline  bool
	observer Observer
}

func NewSandboxGateway(decline bool, observer Observer) *SandboxGateway {
	return &SandboxGateway{decline: decline, observer: observer}
}

func (g *SandboxGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.decline {
		g.observer.ObserveGateway(providerSandbox, string(payment.StatusFailed), 0)
		return &payment.ChargeResult{
			Status: payment.StatusFailed,
			Code:   "insufficient_fund",
			Reason: "insufficient funds in the account or the card has reached the credit limit",
		}, nil
	}
	g.observer.ObserveGateway(providerSandbox, string(payment.StatusSucceeded), 0)
	return &payment.ChargeResult{
		Status:         payment.StatusSucceeded,
		ConfirmationID: "chrg_sandbox_" + uuid.NewString(),
	}, nil
}
