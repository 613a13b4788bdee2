package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/careproclinic/patient-api/internal/catalog"
	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/notify"
	"github.com/careproclinic/patient-api/internal/repository"
	"github.com/careproclinic/patient-api/pkg/errors"
)

const defaultPreferredDoctor = "No preference"

type Config struct {
	MeetingBaseURL string
	// AllowRescheduleCancelled keeps the original portal behavior where a
	// cancelled appointment can be rescheduled back to pending. Set false to
	// reject that with a conflict.
	AllowRescheduleCancelled bool
}

type Service struct {
	repo       repository.AppointmentRepository
	references repository.BookingReferenceRepository
	notifier   notify.Sender
	cfg        Config
	logger     zerolog.Logger
}

func NewService(
	repo repository.AppointmentRepository,
	references repository.BookingReferenceRepository,
	notifier notify.Sender,
	cfg Config,
	logger zerolog.Logger,
) *Service {
	if cfg.MeetingBaseURL == "" {
		cfg.MeetingBaseURL = "https://meet.careproclinic.com"
	}
	if notifier == nil {
		notifier = notify.NoopSender{}
	}
	return &Service{
		repo:       repo,
		references: references,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger.With().Str("component", "booking").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if !catalog.ValidTimeSlot(req.TimeSlot) {
		return nil, errors.BadRequest("unknown time slot", nil)
	}

	reference, err := s.references.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign booking reference: %w", err)
	}

	appointment := &model.Appointment{
		ReferenceID:       reference,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Service:           req.Service,
		PreferredDoctor:   req.PreferredDoctor,
		Date:              req.Date,
		TimeSlot:          req.TimeSlot,
		Message:           req.Message,
		VisitType:         req.VisitType,
		InsuranceProvider: req.InsuranceProvider,
		InsurancePlan:     req.InsurancePlan,
	}
	if appointment.PreferredDoctor == "" {
		appointment.PreferredDoctor = defaultPreferredDoctor
	}
	if req.VisitType == model.VisitTypeVideo {
		appointment.MeetingLink = fmt.Sprintf("%s/%s",
			strings.TrimRight(s.cfg.MeetingBaseURL, "/"), strings.ToLower(reference))
	}
	if req.InsuranceProvider != "" || req.InsurancePlan != "" {
		appointment.CoverageGuidance = catalog.CoverageGuidance(req.InsuranceProvider, req.InsurancePlan)
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.notifier.SendBookingConfirmation(ctx, appointment); err != nil {
		s.logger.Warn().Err(err).Str("reference_id", reference).Msg("booking confirmation not sent")
	}

	s.logger.Info().
		Str("reference_id", reference).
		Str("service", appointment.Service).
		Str("visit_type", string(appointment.VisitType)).
		Msg("appointment created")

	return appointment, nil
}

func (s *Service) List(ctx context.Context) ([]model.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, model.BookingStatusCancelled)
}

// Reschedule moves the appointment to a new date and slot and resets it to
// pending. Whether a cancelled appointment may be resurrected this way is
// configurable.
func (s *Service) Reschedule(ctx context.Context, id, date, timeSlot string) error {
	if !catalog.ValidTimeSlot(timeSlot) {
		return errors.BadRequest("unknown time slot", nil)
	}

	if !s.cfg.AllowRescheduleCancelled {
		appointment, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if appointment.Status == model.BookingStatusCancelled {
			return errors.Conflict("cannot reschedule a cancelled appointment", nil)
		}
	}

	return s.repo.Reschedule(ctx, id, date, timeSlot)
}
