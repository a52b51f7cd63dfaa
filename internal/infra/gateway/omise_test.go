//go:build unit

package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeRequest(method string) payment.ChargeRequest {
	return payment.ChargeRequest{
		AmountCents:   24000,
		Currency:      "eur",
		MethodRef:     method,
		BookingNumber: "BK-100",
		Metadata:      map[string]string{"booking_number": "BK-100"},
	}
}

func newTestGateway(fn chargeFunc) *OmiseGateway {
	return newOmiseGateway(fn, 100, observability.NewMetrics(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOmiseGateway_Charge(t *testing.T) {
	testCases := []struct {
		name      string
		charge    chargeFunc
		expected  *payment.ChargeResult
		expectErr bool
	}{
		{
			name: "success: successful charge",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return &omise.Charge{Base: omise.Base{ID: "chrg_test_1"}, Status: omise.ChargeSuccessful}, nil
			},
			expected: &payment.ChargeResult{Status: payment.StatusSucceeded, ConfirmationID: "chrg_test_1"},
		},
		{
			name: "declined: failed charge carries failure code",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return &omise.Charge{
					Base:           omise.Base{ID: "chrg_test_2"},
					Status:         omise.ChargeFailed,
					FailureCode:    ptr.Of("insufficient_fund"),
					FailureMessage: ptr.Of("insufficient funds"),
				}, nil
			},
			expected: &payment.ChargeResult{
				Status: payment.StatusFailed, ConfirmationID: "chrg_test_2",
				Code: "insufficient_fund", Reason: "insufficient funds",
			},
		},
		{
			name: "declined: pending charge needs authorization",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return &omise.Charge{Base: omise.Base{ID: "chrg_test_3"}, Status: omise.ChargePending}, nil
			},
			expected: &payment.ChargeResult{
				Status: payment.StatusFailed, ConfirmationID: "chrg_test_3",
				Code: "charge_pending", Reason: "payment requires further authorization",
			},
		},
		{
			name: "declined: client error from api",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return nil, &omise.Error{StatusCode: 400, Code: "used_token", Message: "token was already used"}
			},
			expected: &payment.ChargeResult{Status: payment.StatusFailed, Code: "used_token", Reason: "token was already used"},
		},
		{
			name: "error: server error from api",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return nil, &omise.Error{StatusCode: 503, Code: "service_unavailable"}
			},
			expectErr: true,
		},
		{
			name: "error: transport failure",
			charge: func(op *operations.CreateCharge) (*omise.Charge, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGateway(tc.charge)

			res, err := g.Charge(context.Background(), chargeRequest("tokn_test_1"))

			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, res); diff != "" {
				t.Errorf("Charge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateChargeOp_MethodRouting(t *testing.T) {
	testCases := []struct {
		method                 string
		card, source, customer string
	}{
		{method: "tokn_test_1", card: "tokn_test_1"},
		{method: "src_test_1", source: "src_test_1"},
		{method: "cust_test_1", customer: "cust_test_1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method, func(t *testing.T) {
			op := createChargeOp(chargeRequest(tc.method))

			assert.Equal(t, tc.card, op.Card)
			assert.Equal(t, tc.source, op.Source)
			assert.Equal(t, tc.customer, op.Customer)
			assert.Equal(t, int64(24000), op.Amount)
			assert.Equal(t, "eur", op.Currency)
			assert.Equal(t, "BK-100", op.Metadata["booking_number"])
		})
	}
}

func TestOmiseGateway_CancelledWhileRateLimited(t *testing.T) {
	called := false
	g := newTestGateway(func(op *operations.CreateCharge) (*omise.Charge, error) {
		called = true
		return &omise.Charge{Status: omise.ChargeSuccessful}, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, chargeRequest("tokn_test_1"))

	assert.Error(t, err)
	assert.False(t, called)
}

func TestSandboxGateway(t *testing.T) {
	ok, err := NewSandboxGateway(false, observability.NewMetrics()).Charge(context.Background(), chargeRequest("tokn_test_1"))
	require.NoError(t, err)
	assert.True(t, ok.Succeeded())
	assert.Contains(t, ok.ConfirmationID, "chrg_sandbox_")

	declined, err := NewSandboxGateway(true, observability.NewMetrics()).Charge(context.Background(), chargeRequest("tokn_test_1"))
	require.NoError(t, err)
	assert.False(t, declined.Succeeded())
	assert.Equal(t, "insufficient_fund", declined.Code)
}
