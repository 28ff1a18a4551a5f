package appointment

type AvailabilityInput struct {
	Date string
	Time string // optional; empty means "just list booked slots"
}

type Availability struct {
	Date        string   `json:"date"`
	BookedSlots []string `json:"booked_slots"`
	Available   bool     `json:"available"`
}
