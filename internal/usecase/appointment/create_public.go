package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/cache"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
	"github.com/serenespa/booking-api/internal/timezone"
	"github.com/serenespa/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicBookingInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceType string
	Date        string
	Time        string
}

// Notifier queues a best-effort notification fan-out for a committed
// appointment.
type Notifier interface {
	Notify(appointmentID string)
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	slots    *cache.Availability
	notifier Notifier
	tz       string
}

func NewCreatePublicBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	slots *cache.Availability,
	notifier Notifier,
	tz string,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:     repo,
		audit:    auditDispatcher,
		slots:    slots,
		notifier: notifier,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreatePublicBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	email := strings.TrimSpace(in.ClientEmail)
	service := strings.TrimSpace(in.ServiceType)

	switch {
	case name == "":
		return nil, httperr.ErrBusiness("name_required")
	case phone == "":
		return nil, httperr.ErrBusiness("phone_required")
	case service == "":
		return nil, httperr.ErrBusiness("service_required")
	case in.Date == "" || in.Time == "":
		return nil, httperr.ErrBusiness("date_and_time_required")
	}

	date, timeOfDay, err := normalizeSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if email != "" && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	// --------------------------------------------------
	// 2. Slot must not be in the past (studio timezone)
	// --------------------------------------------------
	loc := timezone.Location(uc.tz)
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// --------------------------------------------------
	// 3. Advisory availability check (UX only; the partial
	//    unique index is the authoritative guard)
	// --------------------------------------------------
	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	if containsSlot(booked, timeOfDay) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// 4. Client (upsert by phone: last name/email wins)
	// --------------------------------------------------
	client, err := uc.repo.UpsertClientByPhone(ctx, name, phone, email)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Create in pending; a losing race surfaces here
	//    as time_conflict from the constraint
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:    client.ID,
		ServiceType: service,
		Date:        date,
		Time:        timeOfDay,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.Client = *client

	// --------------------------------------------------
	// 6. Side effects: audit, cache, notifications
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	uc.slots.Invalidate(ctx, date)

	if uc.notifier != nil {
		uc.notifier.Notify(ap.ID)
	}

	return ap, nil
}
