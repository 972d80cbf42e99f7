package ports

import (
	"context"

	"github.com/medisys/hms-api/internal/core/domain"
)

// AuthRepository is the persistence interface for user credentials.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// LoginThrottle bounds repeated credential failures per username.
// Implementations degrade open: callers treat errors as "not throttled".
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
