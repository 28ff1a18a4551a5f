package appointment

import (
	"context"
	"testing"

	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
)

func TestGetAvailabilityRequiresDate(t *testing.T) {
	uc := NewGetAvailability(&fakeRepo{}, nil)

	if _, err := uc.Execute(context.Background(), domain.AvailabilityInput{}); !httperr.IsBusiness(err, "date_required") {
		t.Fatalf("want date_required, got %v", err)
	}
}

func TestGetAvailabilityTrimsStoredTimes(t *testing.T) {
	repo := &fakeRepo{booked: []string{"09:00:00", "14:30"}}
	uc := NewGetAvailability(repo, nil)

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(av.BookedSlots) != 2 || av.BookedSlots[0] != "09:00" || av.BookedSlots[1] != "14:30" {
		t.Fatalf("booked = %v", av.BookedSlots)
	}
	if !av.Available {
		t.Fatalf("availability without a time must default to available")
	}
}

func TestGetAvailabilityAnswersForSpecificTime(t *testing.T) {
	repo := &fakeRepo{booked: []string{"09:00:00"}}
	uc := NewGetAvailability(repo, nil)

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: "2024-05-01", Time: "09:00:00"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if av.Available {
		t.Fatalf("taken slot reported available")
	}

	av, err = uc.Execute(context.Background(), domain.AvailabilityInput{Date: "2024-05-01", Time: "11:00"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !av.Available {
		t.Fatalf("free slot reported taken")
	}
}
