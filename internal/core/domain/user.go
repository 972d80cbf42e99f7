package domain

import (
	"errors"
	"time"
)

// Role is the fixed set of account categories the system recognises.
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
	RoleAdmin        Role = "admin"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RolePatient, RoleDoctor, RoleNurse, RoleReceptionist, RolePharmacist, RoleAdmin}

// ParseRole validates a role string against the enumerated set.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("unknown role")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")

	ErrUnauthenticated = errors.New("authentication required")
	ErrUnauthorized    = errors.New("operation not permitted for role")
)

// User models an authenticated actor. The password is held only as a bcrypt
// hash and is never serialised.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
