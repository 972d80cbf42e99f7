package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/api/metrics"
	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditRecorder
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditRecorder) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.recordLogin(req.Username, "", "deny", err)
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.recordLogin(user.Username, string(user.Role), "allow", nil)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) recordLogin(username, role, decision string, cause error) {
	switch {
	case cause == nil:
	case errors.Is(cause, domain.ErrTooManyAttempts):
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
	default:
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	}

	if h.audit == nil {
		return
	}
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	h.audit.Enqueue(ports.AuditEntry{
		Username:  username,
		Role:      role,
		Operation: "auth.login",
		Decision:  decision,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
