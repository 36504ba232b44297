package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bcrental/car-rental-api/internal/api/metrics"
	"github.com/bcrental/car-rental-api/internal/auth"
	"github.com/bcrental/car-rental-api/internal/core/domain"
	"github.com/bcrental/car-rental-api/internal/core/ports"
)

// AccountService implements registration and login.
type AccountService struct {
	users       ports.UserRepository
	roles       ports.RoleRepository
	codec       *auth.Codec
	defaultRole string
	log         zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	codec *auth.Codec,
	defaultRole string,
	log zerolog.Logger,
) *AccountService {
	if defaultRole == "" {
		defaultRole = domain.RoleCustomer
	}
	return &AccountService{
		users:       users,
		roles:       roles,
		codec:       codec,
		defaultRole: defaultRole,
		log:         log,
	}
}

// Register creates an account with the default role and returns its access
// token. An already-taken email fails before any create call.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.NewEmailAlreadyTakenError(email)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	role, err := s.roles.FindByName(ctx, s.defaultRole)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", fmt.Errorf("register: default role %q not seeded", s.defaultRole)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:              name,
		Email:             email,
		EncryptedPassword: hash,
		RoleID:            role.ID,
	})
	if err != nil {
		return "", err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Str("email", email).Msg("account registered")

	return s.codec.Encode(auth.ClaimsFromUser(user, role))
}

// Login authenticates the credentials and returns an access token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("not_registered").Inc()
		return "", domain.NewEmailNotRegisteredError(email)
	}

	if !auth.VerifyPassword(password, user.EncryptedPassword) {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return "", domain.NewWrongPasswordError()
	}

	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", fmt.Errorf("login: role %q not found for user %s", user.RoleID, user.ID)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")

	return s.codec.Encode(auth.ClaimsFromUser(user, role))
}
