package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/medisys/hms-api/internal/core/domain"
)

func newTestTokenService(secret string, ttl time.Duration, now time.Time) *TokenService {
	s := NewTokenService(secret, ttl)
	s.now = func() time.Time { return now }
	return s
}

func testUser() *domain.User {
	return &domain.User{ID: "1", Username: "alice", Role: domain.RoleDoctor}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	s := newTestTokenService("secret", time.Hour, time.Now())

	token, err := s.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := s.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleDoctor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// Validating the same token again resolves the same identity.
	again, err := s.Validate(token)
	if err != nil {
		t.Fatalf("second Validate returned error: %v", err)
	}
	if *again != *claims {
		t.Fatalf("repeated validation diverged: %+v vs %+v", again, claims)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Now()
	s := newTestTokenService("secret", 30*time.Minute, issuedAt)

	token, err := s.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just inside the TTL: still valid.
	s.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	if _, err := s.Validate(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Past the TTL: deterministic expiry failure.
	s.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	if _, err := s.Validate(token); err != domain.ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	s := newTestTokenService("secret", time.Hour, time.Now())

	token, err := s.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	// Rewrite the payload to claim a different role, keeping it valid JSON so
	// the failure is the signature check, not structural decoding.
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	forged := strings.Replace(string(payload), `"doctor"`, `"admin"`, 1)
	if forged == string(payload) {
		t.Fatalf("payload did not contain expected role: %s", payload)
	}
	tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(forged)) + "." + parts[2]

	if _, err := s.Validate(tampered); err != domain.ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService("secret-a", time.Hour, time.Now())
	verifier := newTestTokenService("secret-b", time.Hour, time.Now())

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Validate(token); err != domain.ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	s := newTestTokenService("secret", time.Hour, time.Now())

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := s.Validate(tok); err != domain.ErrMalformedToken {
			t.Fatalf("Validate(%q): expected ErrMalformedToken, got %v", tok, err)
		}
	}
}

func TestTokenService_DistinctTokensPerIssue(t *testing.T) {
	t0 := time.Now()
	s := newTestTokenService("secret", time.Hour, t0)

	first, err := s.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	s.now = func() time.Time { return t0.Add(2 * time.Second) }
	second, err := s.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct tokens for distinct issue times")
	}

	s.now = func() time.Time { return t0.Add(5 * time.Second) }
	for _, tok := range []string{first, second} {
		if _, err := s.Validate(tok); err != nil {
			t.Fatalf("token invalid before its expiry: %v", err)
		}
	}
}
