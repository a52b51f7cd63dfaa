package payment

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

type ChargeStatus string

const (
	StatusSucceeded ChargeStatus = "succeeded"
	StatusFailed    ChargeStatus = "failed"
)

var (
	ErrMethodRequired  = errs.Validation("payment method required")
	ErrInvalidCurrency = errs.Validation("currency must be a 3-letter ISO code")
	ErrAmountTooSmall  = errs.New("amount is below the gateway minimum")
	ErrInvalidPrice    = errs.New("quoted price is not a positive number")

	currencyPattern = regexp.MustCompile(`^[a-z]{3}$`)
)

// ChargeRequest is the single payment attempt made for a booking. It is never stored.
type ChargeRequest struct {
	AmountCents   int64
	Currency      string
	MethodRef     string
	BookingNumber string
	Metadata      map[string]string
}

type ChargeResult struct {
	Status         ChargeStatus
	ConfirmationID string
	Reason         string
	Code           string
}

func (r ChargeResult) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// NormalizeMethod checks the fields a checkout needs before any booking is written.
func NormalizeMethod(methodRef, currency, fallbackCurrency string) (string, string, error) {
	methodRef = strings.TrimSpace(methodRef)
	if methodRef == "" {
		return "", "", ErrMethodRequired
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = strings.ToLower(fallbackCurrency)
	}
	if !currencyPattern.MatchString(currency) {
		return "", "", ErrInvalidCurrency
	}
	return methodRef, currency, nil
}

// Quote turns a nightly price into minor units for the whole stay.
func Quote(pricePerNight float64, nights, rooms int) (int64, error) {
	if math.IsNaN(pricePerNight) || math.IsInf(pricePerNight, 0) || pricePerNight <= 0 {
		return 0, ErrInvalidPrice
	}
	if nights < 1 {
		nights = 1
	}
	if rooms < 1 {
		rooms = 1
	}
	perNight := int64(math.Round(pricePerNight * 100))
	return perNight * int64(nights) * int64(rooms), nil
}

func NewChargeRequest(amountCents, minAmount int64, currency, methodRef, bookingNumber string, metadata map[string]string) (ChargeRequest, error) {
	if amountCents < minAmount {
		return ChargeRequest{}, ErrAmountTooSmall
	}
	md := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		md[k] = v
	}
	md["booking_number"] = bookingNumber
	if _, ok := md["total_price"]; !ok {
		md["total_price"] = strconv.FormatFloat(float64(amountCents)/100, 'f', 2, 64)
	}
	return ChargeRequest{
		AmountCents:   amountCents,
		Currency:      currency,
		MethodRef:     methodRef,
		BookingNumber: bookingNumber,
		Metadata:      md,
	}, nil
}
