package notification

import (
	"fmt"

	"github.com/serenespa/booking-api/internal/models"
)

const (
	ClientEmailSubject = "Appointment Confirmation"
	AdminEmailSubject  = "New Appointment Booking"
)

// Messages holds the four payloads a booking fans out to.
type Messages struct {
	ClientText string
	AdminText  string
	ClientHTML string
	AdminHTML  string
}

// BuildMessages renders all four bodies from the authoritative record.
func BuildMessages(ap *models.Appointment) Messages {
	name := ap.Client.Name
	phone := ap.Client.Phone
	email := ap.Client.Email
	service := ap.ServiceType
	date := ap.Date
	hm := shortTime(ap.Time)

	return Messages{
		ClientText: fmt.Sprintf(
			"Hi %s, your appointment is booked.\n\nService: %s\nDate: %s\nTime: %s\n\nThank you.",
			name, service, date, hm,
		),
		AdminText: fmt.Sprintf(
			"New booking:\nClient: %s (%s)\nService: %s\nDate: %s %s\nStatus: %s",
			name, phone, service, date, hm, ap.Status,
		),
		ClientHTML: fmt.Sprintf(
			`<h2>Appointment Confirmation</h2>
<p>Hi %s,</p>
<p>Your appointment has been successfully booked.</p>
<ul>
  <li><strong>Service:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
</ul>
<p>Thank you for choosing us!</p>`,
			name, service, date, hm,
		),
		AdminHTML: fmt.Sprintf(
			`<h2>New Appointment Booking</h2>
<ul>
  <li><strong>Client:</strong> %s</li>
  <li><strong>Phone:</strong> %s</li>
  <li><strong>Email:</strong> %s</li>
  <li><strong>Service:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Status:</strong> %s</li>
</ul>`,
			name, phone, email, service, date, hm, ap.Status,
		),
	}
}

// shortTime trims seconds off HH:MM:SS values coming from the store.
func shortTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
