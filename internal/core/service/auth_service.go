package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

// dummyHash is compared against when the username does not exist, so a failed
// login costs the same whether or not the account is real.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hms-dummy-password"), bcrypt.DefaultCost)

// AuthService implements registration and login against the credential store.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, throttle ports.LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, log: log}
}

// Register creates a credential record. The role must belong to the fixed
// enumerated set and the username must be unused (case-sensitive match).
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         parsedRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a session token. Nonexistent usernames
// and wrong passwords are indistinguishable to the caller: both return
// ErrInvalidCredentials after a bcrypt compare.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle check failed, proceeding")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Burn a compare anyway so timing does not reveal whether the
		// username exists.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle reset failed")
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("throttle record failed")
	}
}
