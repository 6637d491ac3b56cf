package booking

import "github.com/BruksfildServices01/hotel-services/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses are the non-terminal states.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
