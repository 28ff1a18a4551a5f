package appointment

import (
	"context"
	"testing"

	"github.com/serenespa/booking-api/internal/audit"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

func storedAppointment(status string) *models.Appointment {
	return &models.Appointment{
		ID:          "A1",
		ServiceType: "Deep Tissue",
		Date:        "2099-01-05",
		Time:        "10:00",
		Status:      status,
		Client:      models.Client{ID: "C1", Name: "Jo", Phone: "+15551234567"},
	}
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestConfirmAppointment(t *testing.T) {
	repo := &fakeRepo{stored: storedAppointment("pending")}
	uc := NewConfirmAppointment(repo, testDispatcher(), "America/Sao_Paulo")

	ap, err := uc.Execute(context.Background(), "admin", "A1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if ap.Status != "confirmed" {
		t.Fatalf("status = %q", ap.Status)
	}
	if ap.ConfirmedAt == nil {
		t.Fatalf("confirmed_at not set")
	}
}

func TestConfirmAppointmentInvalidState(t *testing.T) {
	repo := &fakeRepo{stored: storedAppointment("cancelled")}
	uc := NewConfirmAppointment(repo, testDispatcher(), "America/Sao_Paulo")

	if _, err := uc.Execute(context.Background(), "admin", "A1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestConfirmAppointmentNotFound(t *testing.T) {
	uc := NewConfirmAppointment(&fakeRepo{}, testDispatcher(), "America/Sao_Paulo")

	if _, err := uc.Execute(context.Background(), "admin", "missing"); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("want appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	repo := &fakeRepo{stored: storedAppointment("confirmed")}
	uc := NewCancelAppointment(repo, testDispatcher(), nil, "America/Sao_Paulo")

	ap, err := uc.Execute(context.Background(), "admin", "A1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if ap.Status != "cancelled" {
		t.Fatalf("status = %q", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatalf("cancelled_at not set")
	}
}

func TestCancelAppointmentTwice(t *testing.T) {
	repo := &fakeRepo{stored: storedAppointment("cancelled")}
	uc := NewCancelAppointment(repo, testDispatcher(), nil, "America/Sao_Paulo")

	if _, err := uc.Execute(context.Background(), "admin", "A1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	ap := storedAppointment("confirmed")
	now := ap.CreatedAt
	ap.ConfirmedAt = &now

	repo := &fakeRepo{stored: ap}
	uc := NewRescheduleAppointment(repo, testDispatcher(), nil)

	got, err := uc.Execute(context.Background(), "admin", RescheduleAppointmentInput{
		AppointmentID: "A1",
		Date:          "2099-02-10",
		Time:          "14:00:00",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got.Status != "rescheduled" {
		t.Fatalf("status = %q", got.Status)
	}
	if got.Date != "2099-02-10" || got.Time != "14:00" {
		t.Fatalf("slot = %q %q", got.Date, got.Time)
	}
	if got.ConfirmedAt != nil {
		t.Fatalf("reschedule must clear confirmation")
	}
}

func TestRescheduleCancelledAppointment(t *testing.T) {
	repo := &fakeRepo{stored: storedAppointment("cancelled")}
	uc := NewRescheduleAppointment(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), "admin", RescheduleAppointmentInput{
		AppointmentID: "A1",
		Date:          "2099-02-10",
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestRescheduleRequiresSlot(t *testing.T) {
	uc := NewRescheduleAppointment(&fakeRepo{stored: storedAppointment("pending")}, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), "admin", RescheduleAppointmentInput{AppointmentID: "A1"})
	if !httperr.IsBusiness(err, "date_and_time_required") {
		t.Fatalf("want date_and_time_required, got %v", err)
	}
}
