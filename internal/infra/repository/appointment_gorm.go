package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

const doubleBookingConstraint = "appointments_no_double_booking"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// UpsertClientByPhone inserts or updates keyed on phone: the last
// submitted name/email for a number wins.
func (r *AppointmentGormRepository) UpsertClientByPhone(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	client := models.Client{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
		}).
		Create(&client).Error; err != nil {
		return nil, err
	}

	// The upsert path does not report the surviving row's id, so read
	// it back by the conflict key.
	var saved models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", client.Phone).
		First(&saved).Error; err != nil {
		return nil, err
	}

	return &saved, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Create(ap).Error
	if httperr.IsUniqueViolation(err, doubleBookingConstraint) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentWithClient(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if httperr.IsUniqueViolation(err, doubleBookingConstraint) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status <> ?", date, string(domain.StatusCancelled)).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Preload("Client")
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
