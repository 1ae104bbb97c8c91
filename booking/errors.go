package booking

import "errors"

var (
	// ErrInvalidOffering means the service type, dog count and frequency
	// combination is not in the price table. Fatal to the booking flow.
	ErrInvalidOffering = errors.New("unsupported service offering")

	// ErrIncompleteSelection means the customer picked the wrong number of
	// service days for their plan. Recoverable: the caller should re-prompt.
	ErrIncompleteSelection = errors.New("service day selection does not match plan frequency")

	// ErrInvalidServiceDay means a weekend date reached the selector. The
	// calendar UI is supposed to block these, so this points at an upstream
	// defect rather than user error.
	ErrInvalidServiceDay = errors.New("service days must fall on a weekday")

	// ErrInvalidTransition means a booking status change is not allowed by
	// the state machine.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
