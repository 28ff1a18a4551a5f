package appointment

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/cache"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID string
	Date          string
	Time          string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.Availability
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.Availability,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actor string,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("date_and_time_required")
	}

	date, timeOfDay, err := normalizeSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentWithClient(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldDate := ap.Date

	if err := domain.Reschedule(ap, date, timeOfDay); err != nil {
		return nil, err
	}

	// The partial unique index rejects a move onto a taken slot; the
	// repository translates that into time_conflict.
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"from": oldDate, "to": date + " " + timeOfDay},
	})

	uc.slots.Invalidate(ctx, oldDate, date)

	return ap, nil
}
