package appointment

import (
	"context"

	"github.com/serenespa/booking-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	UpsertClientByPhone(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / lookup) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	GetAppointmentWithClient(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / listing --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	ListAppointments(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)
}
