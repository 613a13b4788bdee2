package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/repository"
	"github.com/careproclinic/patient-api/pkg/errors"
	"github.com/careproclinic/patient-api/pkg/security"
)

type Service struct {
	users    repository.PortalUserRepository
	sessions repository.SessionRepository
	visits   repository.VisitHistoryRepository
	hasher   security.PasswordHasher
	logger   zerolog.Logger
}

func NewService(
	users repository.PortalUserRepository,
	sessions repository.SessionRepository,
	visits repository.VisitHistoryRepository,
	hasher security.PasswordHasher,
	logger zerolog.Logger,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		visits:   visits,
		hasher:   hasher,
		logger:   logger.With().Str("component", "portal").Logger(),
	}
}

// Register creates a portal account. Email is trimmed and lowercased before
// the case-insensitive uniqueness check, and a successful registration opens
// a session immediately.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.PortalUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, errors.Conflict("an account with this email already exists", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.BadRequest("invalid password", err)
	}

	user := &model.PortalUser{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create portal user: %w", err)
	}

	if err := s.sessions.Set(ctx, model.PortalSession{Name: user.Name, Email: user.Email}); err != nil {
		s.logger.Warn().Err(err).Msg("session not stored after registration")
	}

	s.logger.Info().Str("email", user.Email).Msg("portal user registered")
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Login authenticates with a single failure mode: callers cannot tell an
// unknown email from a wrong password.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.PortalSession, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	session := model.PortalSession{Name: user.Name, Email: user.Email}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("portal login")
	return &session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Session returns the active session, or nil when logged out.
func (s *Service) Session(ctx context.Context) (*model.PortalSession, error) {
	return s.sessions.Get(ctx)
}

func (s *Service) VisitHistory(ctx context.Context, email string) ([]model.VisitHistory, error) {
	return s.visits.ListByEmail(ctx, email)
}
