package appointment

import (
	"time"

	"github.com/serenespa/booking-api/internal/httperr"
)

// normalizeSlot validates the requested slot and trims HH:MM:SS input
// down to the HH:MM the whole system stores and renders.
func normalizeSlot(date, timeOfDay string) (string, string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", "", httperr.ErrBusiness("invalid_date_or_time")
	}

	if len(timeOfDay) > 5 {
		timeOfDay = timeOfDay[:5]
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return "", "", httperr.ErrBusiness("invalid_date_or_time")
	}

	return date, timeOfDay, nil
}

func containsSlot(slots []string, timeOfDay string) bool {
	for _, s := range slots {
		if len(s) > 5 {
			s = s[:5]
		}
		if s == timeOfDay {
			return true
		}
	}
	return false
}
