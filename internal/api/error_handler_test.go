package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisys/hms-api/internal/core/domain"
)

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrDuplicateUsername, http.StatusConflict},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrExpiredToken, http.StatusUnauthorized},
		{domain.ErrInvalidSignature, http.StatusUnauthorized},
		{domain.ErrMalformedToken, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrPatientNotFound, http.StatusNotFound},
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

// Internal failures must not leak their cause to the client.
func TestErrorHandler_NoLeakOnUnexpected(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("pq: connection refused on 10.0.0.3"), c)

	if strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}

// Login failure wording is identical for unknown user and wrong password, so
// responses cannot be used to enumerate usernames.
func TestErrorHandler_UniformLoginFailure(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	bodies := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler(domain.ErrInvalidCredentials, c)
		bodies = append(bodies, rec.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("login failure responses differ: %q vs %q", bodies[0], bodies[1])
	}
}
