package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents where an order is in the kitchen.
//
// State transitions:
//
//	Received ──> Preparing ──> Ready ──> Delivered ──┐
//	                                         ^       │
//	                                         └───────┘
//	                                  (advance is a no-op)
//
// There is no way back and no cancellation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of every new order.
	Received

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order waits for pickup or delivery.
	Ready

	// Delivered is the final status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
	}
}

func getNextStatuses() map[Status]Status {
	//nolint:exhaustive // Unknown has no successor
	return map[Status]Status{
		Received:  Preparing,
		Preparing: Ready,
		Ready:     Delivered,
		Delivered: Delivered,
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Received, Preparing, Ready, Delivered}
}

// ParseStatus resolves a status name such as "ready", ignoring case.
func ParseStatus(s string) (Status, error) {
	name := strings.TrimSpace(s)
	for _, status := range Statuses() {
		if strings.EqualFold(status.String(), name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that s is one of Received, Preparing, Ready or Delivered.
func (s Status) Validate() error {
	if _, ok := getNextStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether s is Delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next is the pure transition function of the lifecycle.
//
// Returns:
//   - (successor, true, nil) for Received, Preparing and Ready
//   - (Delivered, false, nil) for Delivered: nothing left to do, not an error
//   - (0, false, error) for invalid statuses
//
// Example:
//
//	next, changed, err := order.Ready.Next() // Delivered, true, nil
func (s Status) Next() (Status, bool, error) {
	if err := s.Validate(); err != nil {
		return 0, false, err
	}

	next := getNextStatuses()[s]
	return next, next != s, nil
}
