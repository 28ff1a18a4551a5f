package notification

import (
	"context"
	"errors"
	"log"
	"strings"

	domain "github.com/serenespa/booking-api/internal/domain/appointment"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/smtp"
)

// ======================================================
// PORTS
// ======================================================

type WhatsAppSender interface {
	Send(ctx context.Context, to, text string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ======================================================
// RESULT
// ======================================================

type ChannelResult struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Summary struct {
	AppointmentID string          `json:"appointment_id"`
	Channels      []ChannelResult `json:"channels"`
}

// ======================================================
// USE CASE
// ======================================================

// Dispatch re-reads the appointment from the authoritative store and
// fans out up to four notifications. Every channel is best-effort: a
// failed send is recorded in the summary and logged, never raised, so
// a degraded provider can never fail the booking that triggered it.
type Dispatch struct {
	repo   domain.Repository
	wa     WhatsAppSender
	mailer Mailer

	adminPhone string
	adminEmail string
}

func NewDispatch(
	repo domain.Repository,
	wa WhatsAppSender,
	mailer Mailer,
	adminPhone string,
	adminEmail string,
) *Dispatch {
	return &Dispatch{
		repo:       repo,
		wa:         wa,
		mailer:     mailer,
		adminPhone: adminPhone,
		adminEmail: adminEmail,
	}
}

// Execute fails only on bad input or an unresolvable appointment; the
// returned summary carries per-channel outcomes for callers that care.
func (uc *Dispatch) Execute(
	ctx context.Context,
	appointmentID string,
) (*Summary, error) {

	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return nil, httperr.ErrBusiness("appointment_id_required")
	}

	// Authoritative read; caller-supplied content is never trusted.
	ap, err := uc.repo.GetAppointmentWithClient(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	msgs := BuildMessages(ap)
	summary := &Summary{AppointmentID: ap.ID}

	if ap.Client.Phone != "" {
		summary.add(uc.sendWhatsApp(ctx, "whatsapp_client", ap.Client.Phone, msgs.ClientText))
	}

	if uc.adminPhone != "" {
		summary.add(uc.sendWhatsApp(ctx, "whatsapp_admin", uc.adminPhone, msgs.AdminText))
	}

	if ap.Client.Email != "" {
		summary.add(uc.sendEmail(ctx, "email_client", ap.Client.Email, ClientEmailSubject, msgs.ClientHTML))
	}

	if uc.adminEmail != "" {
		summary.add(uc.sendEmail(ctx, "email_admin", uc.adminEmail, AdminEmailSubject, msgs.AdminHTML))
	}

	return summary, nil
}

func (s *Summary) add(r ChannelResult) {
	s.Channels = append(s.Channels, r)
}

func (uc *Dispatch) sendWhatsApp(ctx context.Context, channel, to, text string) ChannelResult {
	if err := uc.wa.Send(ctx, to, text); err != nil {
		log.Printf("notification %s failed: %v", channel, err)
		return ChannelResult{Channel: channel, Error: err.Error()}
	}
	return ChannelResult{Channel: channel, Sent: true}
}

func (uc *Dispatch) sendEmail(ctx context.Context, channel, to, subject, html string) ChannelResult {
	err := uc.mailer.Send(ctx, to, subject, html)

	if errors.Is(err, smtp.ErrNotConfigured) {
		return ChannelResult{Channel: channel, Skipped: true}
	}

	if err != nil {
		log.Printf("notification %s failed: %v", channel, err)
		return ChannelResult{Channel: channel, Error: err.Error()}
	}

	return ChannelResult{Channel: channel, Sent: true}
}
