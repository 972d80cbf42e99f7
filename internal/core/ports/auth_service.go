package ports

import (
	"context"

	"github.com/medisys/hms-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenClaims is the identity resolved from a validated session token. The
// role is a snapshot taken at issuance; a later role change does not alter
// already-issued tokens.
type TokenClaims struct {
	Username string
	Role     domain.Role
}

// TokenService mints and validates signed bearer session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Validate(token string) (*TokenClaims, error)
}
