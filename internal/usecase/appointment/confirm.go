package appointment

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
	"github.com/serenespa/booking-api/internal/timezone"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actor string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithClient(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
