package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// sessionClaims is the JWT payload for a session token. The role is a
// snapshot of the user's role at issuance.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and validates HS256-signed session tokens. Tokens are
// stateless: logout is a client-side discard, and a still-valid token cannot
// be revoked before its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a signed token carrying the user's name and role with the
// configured TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks structure, then signature, then expiry, and maps each
// failure to its own sentinel. No claim is trusted on any failure.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrExpiredToken
		default:
			return nil, domain.ErrMalformedToken
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrMalformedToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrMalformedToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrMalformedToken
	}

	return &ports.TokenClaims{Username: claims.Subject, Role: role}, nil
}
