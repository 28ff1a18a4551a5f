package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

// ------------------------------
// fakes
// ------------------------------

type fakeRepo struct {
	booked    []string
	bookedErr error

	upserted  *models.Client
	createErr error

	created *models.Appointment
	stored  *models.Appointment
}

func (f *fakeRepo) UpsertClientByPhone(ctx context.Context, name, phone, email string) (*models.Client, error) {
	f.upserted = &models.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
	return f.upserted, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uuid.NewString()
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if f.stored == nil || f.stored.ID != id {
		return nil, errors.New("record not found")
	}
	return f.stored, nil
}

func (f *fakeRepo) GetAppointmentWithClient(ctx context.Context, id string) (*models.Appointment, error) {
	return f.GetAppointment(ctx, id)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.stored = ap
	return nil
}

func (f *fakeRepo) ListBookedTimes(ctx context.Context, date string) ([]string, error) {
	return f.booked, f.bookedErr
}

func (f *fakeRepo) ListAppointments(ctx context.Context, date string) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	ids []string
}

func (f *fakeNotifier) Notify(id string) {
	f.ids = append(f.ids, id)
}

func newCreateUC(repo *fakeRepo, notifier Notifier) *CreatePublicBooking {
	return NewCreatePublicBooking(
		repo,
		audit.NewDispatcher(audit.New(nil)),
		nil,
		notifier,
		"America/Sao_Paulo",
	)
}

func validInput() CreatePublicBookingInput {
	return CreatePublicBookingInput{
		ClientName:  "Jo",
		ClientPhone: "+15551234567",
		ServiceType: "Deep Tissue",
		Date:        "2099-01-05",
		Time:        "10:00",
	}
}

// ------------------------------
// tests
// ------------------------------

func TestCreatePublicBookingValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreatePublicBookingInput)
		code   string
	}{
		{"missing name", func(in *CreatePublicBookingInput) { in.ClientName = "  " }, "name_required"},
		{"missing phone", func(in *CreatePublicBookingInput) { in.ClientPhone = "" }, "phone_required"},
		{"missing service", func(in *CreatePublicBookingInput) { in.ServiceType = "" }, "service_required"},
		{"missing date", func(in *CreatePublicBookingInput) { in.Date = "" }, "date_and_time_required"},
		{"missing time", func(in *CreatePublicBookingInput) { in.Time = "" }, "date_and_time_required"},
		{"bad date", func(in *CreatePublicBookingInput) { in.Date = "05/01/2099" }, "invalid_date_or_time"},
		{"bad time", func(in *CreatePublicBookingInput) { in.Time = "10h" }, "invalid_date_or_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newCreateUC(repo, &fakeNotifier{})

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("want %s, got %v", tc.code, err)
			}
			if repo.created != nil {
				t.Fatalf("appointment created despite invalid input")
			}
		})
	}
}

func TestCreatePublicBookingRejectsPastSlot(t *testing.T) {
	uc := newCreateUC(&fakeRepo{}, &fakeNotifier{})

	in := validInput()
	in.Date = "2020-01-01"

	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("want slot_in_past, got %v", err)
	}
}

func TestCreatePublicBookingAdvisoryConflict(t *testing.T) {
	repo := &fakeRepo{booked: []string{"10:00:00"}}
	uc := newCreateUC(repo, &fakeNotifier{})

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("want time_conflict, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("appointment created on a taken slot")
	}
}

func TestCreatePublicBookingConstraintConflict(t *testing.T) {
	// a corrida perdida aparece como erro de negócio vindo do repositório
	repo := &fakeRepo{createErr: httperr.ErrBusiness("time_conflict")}
	uc := newCreateUC(repo, &fakeNotifier{})

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("want time_conflict, got %v", err)
	}
}

func TestCreatePublicBookingSuccess(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	uc := newCreateUC(repo, notifier)

	in := validInput()
	in.Time = "10:00:00" // normalizado para HH:MM

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if ap.ID == "" {
		t.Fatalf("appointment has no id")
	}
	if ap.Status != "pending" {
		t.Fatalf("status = %q, want pending", ap.Status)
	}
	if ap.Date != "2099-01-05" || ap.Time != "10:00" {
		t.Fatalf("slot = %q %q", ap.Date, ap.Time)
	}

	if repo.upserted == nil || repo.upserted.Phone != "+15551234567" {
		t.Fatalf("client not upserted by phone: %+v", repo.upserted)
	}
	if ap.ClientID != repo.upserted.ID {
		t.Fatalf("appointment not linked to upserted client")
	}
	if ap.Client.Name != "Jo" {
		t.Fatalf("response missing client: %+v", ap.Client)
	}

	if len(notifier.ids) != 1 || notifier.ids[0] != ap.ID {
		t.Fatalf("notifier calls = %v", notifier.ids)
	}
}
