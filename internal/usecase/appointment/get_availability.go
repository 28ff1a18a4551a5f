package appointment

import (
	"context"

	"github.com/serenespa/booking-api/internal/cache"
	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
)

// GetAvailability lists the booked (non-cancelled) slots of a date and
// answers whether a specific time is still free. Advisory only: two
// clients can both see a slot as free, and the database constraint
// decides the race.
type GetAvailability struct {
	repo  domain.Repository
	slots *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	slots *cache.Availability,
) *GetAvailability {
	return &GetAvailability{repo: repo, slots: slots}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if in.Date == "" {
		return nil, httperr.ErrBusiness("date_required")
	}

	booked, ok := uc.slots.GetBookedTimes(ctx, in.Date)
	if !ok {
		var err error
		booked, err = uc.repo.ListBookedTimes(ctx, in.Date)
		if err != nil {
			return nil, err
		}
		uc.slots.SetBookedTimes(ctx, in.Date, booked)
	}

	short := make([]string, 0, len(booked))
	for _, t := range booked {
		if len(t) > 5 {
			t = t[:5]
		}
		short = append(short, t)
	}

	available := true
	if in.Time != "" {
		t := in.Time
		if len(t) > 5 {
			t = t[:5]
		}
		available = !containsSlot(short, t)
	}

	return &domain.Availability{
		Date:        in.Date,
		BookedSlots: short,
		Available:   available,
	}, nil
}
