package appointment

import (
	"context"

	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/models"
)

// ListAppointments returns the dashboard view: every appointment with
// its client, ordered by date then time, optionally filtered to one
// date.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, date)
}
