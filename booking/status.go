package booking

import "fmt"

// Status is the lifecycle state of a booking. Pausing is reversible,
// cancellation is terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPaused || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to
// next. No transition leaves cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusPaused || next == StatusCancelled
	case StatusPaused:
		return next == StatusActive || next == StatusCancelled
	default:
		return false
	}
}

// Transition validates a status change, returning ErrInvalidTransition when
// the state machine forbids it.
func Transition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// PaymentStatus tracks payment collection independently of booking status.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (p PaymentStatus) Valid() bool {
	return p == PaymentPending || p == PaymentCompleted || p == PaymentFailed
}
