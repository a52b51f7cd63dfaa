package errs

import "errors"

// Error classes shared across layers; handlers map them to HTTP statuses.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("data store unavailable")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrInternal         = errors.New("internal error")
)

// classified is a sentinel that reports its class through Is while staying
// distinct from its siblings. A Mark-based sentinel carries the reference's
// mark and would match every other sentinel of the same class.
type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }

func (e *classified) Is(target error) bool { return target == e.class }

// Validation creates a sentinel that reports as ErrValidation through Is.
func Validation(msg string) error {
	return &classified{msg: msg, class: ErrValidation}
}

// NotFound creates a sentinel that reports as ErrNotFound through Is.
func NotFound(msg string) error {
	return &classified{msg: msg, class: ErrNotFound}
}
