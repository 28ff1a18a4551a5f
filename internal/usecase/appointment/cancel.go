package appointment

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/cache"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
	"github.com/serenespa/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots *cache.Availability
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.Availability,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		slots: slots,
		tz:    tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithClient(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	// Cancelling frees the slot for other bookings.
	uc.slots.Invalidate(ctx, ap.Date)

	return ap, nil
}
