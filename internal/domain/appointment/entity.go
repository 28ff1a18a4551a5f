package appointment

import (
	"time"

	"github.com/serenespa/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Reschedule moves the booking to a new slot and marks it so the
// client can tell it was moved. The caller persists and handles the
// double-booking constraint on the new slot.
func Reschedule(ap *models.Appointment, date, timeOfDay string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = date
	ap.Time = timeOfDay
	ap.Status = string(StatusRescheduled)
	ap.ConfirmedAt = nil
	return nil
}
