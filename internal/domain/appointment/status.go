package appointment

import "github.com/serenespa/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

// InitialStatus é o status de toda reserva recém-criada.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanConfirm: only bookings still waiting (pending or rescheduled)
// can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending && current != StatusRescheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: anything not already cancelled can be cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule: cancelled bookings stay cancelled.
func CanReschedule(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
