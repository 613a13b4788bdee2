package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/repository"
)

type Service struct {
	repo   repository.ContactRepository
	logger zerolog.Logger
}

func NewService(repo repository.ContactRepository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("component", "contact").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateContactRequest) (*model.ContactRequest, error) {
	contact := &model.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	s.logger.Info().Str("subject", contact.Subject).Msg("contact request created")
	return contact, nil
}

func (s *Service) List(ctx context.Context) ([]model.ContactRequest, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}
