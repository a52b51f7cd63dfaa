package booking

type Status string

const (
	StatusUnpaid        Status = "unpaid"
	StatusPending       Status = "pending"
	StatusPaid          Status = "paid"
	StatusPaymentFailed Status = "payment failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPending, StatusPaid, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

// IsSettlement reports whether s records the outcome of a payment attempt.
func (s Status) IsSettlement() bool {
	return s == StatusPaid || s == StatusPaymentFailed
}

type Type string

const (
	TypeSingle      Type = "single"
	TypeCombination Type = "combination"
)
