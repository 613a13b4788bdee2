// Package notify sends patient-facing notifications. The booking flow treats
// every send as best effort: a failed email never fails the booking.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/careproclinic/patient-api/internal/model"
)

type Sender interface {
	SendBookingConfirmation(ctx context.Context, appointment *model.Appointment) error
}

// NoopSender is used when no SMTP server is configured.
type NoopSender struct{}

func (NoopSender) SendBookingConfirmation(context.Context, *model.Appointment) error {
	return nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type EmailSender struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

func NewEmailSender(cfg SMTPConfig, logger zerolog.Logger) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger.With().Str("component", "notify").Logger(),
	}
}

func (s *EmailSender) SendBookingConfirmation(_ context.Context, appointment *model.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", appointment.Email)
	m.SetHeader("Subject", fmt.Sprintf("CarePro Clinic: appointment request %s received", appointment.ReferenceID))

	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your %s request for %s at %s.\nReference ID: %s\n",
		appointment.Name, appointment.Service, appointment.Date, appointment.TimeSlot, appointment.ReferenceID,
	)
	if appointment.MeetingLink != "" {
		body += fmt.Sprintf("\nYour teleconsultation link: %s\n", appointment.MeetingLink)
	}
	body += "\nOur scheduling team will contact you shortly to confirm the visit details.\n"
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	s.logger.Debug().Str("reference_id", appointment.ReferenceID).Msg("booking confirmation sent")
	return nil
}
