package order

import (
	"fmt"

	"taxi/internal/pkg/errs"
)

// Status represents the lifecycle state of a taxi order.
//
// The progress statuses are ordered, and guards compare against that order
// (for example, an order can be canceled only while status <= WaitingCarArrival):
//
//	WaitingForDriver < WaitingCarArrival < InProgress
//
// Finished and Canceled are terminal. No transition leaves them.
//
// State transitions:
//
//	WaitingForDriver ──assign──> WaitingCarArrival ──start──> InProgress ──finish──> Finished
//	       │    ^                       │    │
//	       │    └───────unassign────────┘    │
//	       └──cancel──> Canceled <──cancel───┘
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingForDriver is the initial status. No driver is assigned.
	WaitingForDriver

	// WaitingCarArrival means a driver is assigned and on the way to the client.
	WaitingCarArrival

	// InProgress means the ride has started.
	InProgress

	// Finished is a terminal status reached from InProgress.
	Finished

	// Canceled is a terminal status reached from WaitingForDriver or WaitingCarArrival.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		WaitingForDriver:  "WaitingForDriver",
		WaitingCarArrival: "WaitingCarArrival",
		InProgress:        "InProgress",
		Finished:          "Finished",
		Canceled:          "Canceled",
	}
}

// Validate checks that s is one of the lifecycle statuses. Unknown and any
// other value are invalid.
func (s Status) Validate() error {
	if s < WaitingForDriver || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Canceled
}

// HasDriver reports whether an order in status s must have a driver assigned.
func (s Status) HasDriver() bool {
	return s == WaitingCarArrival || s == InProgress || s == Finished
}

// ValidateCanHaveDriver checks the consistency between status and driver assignment.
//
// Business rules:
//   - WaitingCarArrival, InProgress and Finished orders must have a driver
//   - WaitingForDriver and Canceled orders must not have a driver
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && !s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}

	if !driver && s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}

	return nil
}

// AssignDriver transitions WaitingForDriver to WaitingCarArrival.
func (s Status) AssignDriver() (Status, error) {
	if s != WaitingForDriver {
		return Unknown, errs.NewInvalidStateError("assign driver to order", s.String())
	}
	return WaitingCarArrival, nil
}

// UnassignDriver transitions WaitingCarArrival back to WaitingForDriver.
func (s Status) UnassignDriver() (Status, error) {
	if s != WaitingCarArrival {
		return Unknown, errs.NewInvalidStateError("unassign driver from order", s.String())
	}
	return WaitingForDriver, nil
}

// Cancel transitions to Canceled from any status up to WaitingCarArrival.
func (s Status) Cancel() (Status, error) {
	if s < WaitingForDriver || s > WaitingCarArrival {
		return Unknown, errs.NewInvalidStateError("cancel order", s.String())
	}
	return Canceled, nil
}

// StartRide transitions WaitingCarArrival to InProgress.
func (s Status) StartRide() (Status, error) {
	if s != WaitingCarArrival {
		return Unknown, errs.NewInvalidStateError("start ride of order", s.String())
	}
	return InProgress, nil
}

// FinishRide transitions InProgress to Finished.
func (s Status) FinishRide() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewInvalidStateError("finish ride of order", s.String())
	}
	return Finished, nil
}
