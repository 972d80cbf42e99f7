package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medisys/hms-api/internal/api/handler"
	"github.com/medisys/hms-api/internal/api/middleware"
	"github.com/medisys/hms-api/internal/core/policy"
	"github.com/medisys/hms-api/internal/core/ports"
	"github.com/medisys/hms-api/internal/core/service"
	mongodb "github.com/medisys/hms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/medisys/hms-api/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its collaborators.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Operation identifiers are resolved against the policy table here, so an
// unknown identifier fails at startup.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hms"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)

	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, redisdb.NewLoginThrottle(rdb), log)
	patientService := service.NewPatientService(patientRepo, appointmentRepo, log)
	chatbotService := service.NewChatbotService(mongodb.NewRecordReader(patientRepo, appointmentRepo), log)

	authHandler := handler.NewAuthHandler(authService, audit)
	patientHandler := handler.NewPatientHandler(patientService)
	appointmentHandler := handler.NewAppointmentHandler(patientService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService)

	authed := middleware.Auth(tokenService)
	gate := func(op policy.Operation) echo.MiddlewareFunc {
		return middleware.RequireOperation(op, audit)
	}

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Patient routes ---
	e.POST("/patients", patientHandler.Create, authed, gate(policy.OpPatientCreate))
	e.GET("/patients", patientHandler.List, authed, gate(policy.OpPatientList))
	e.GET("/patients/:id", patientHandler.Get, authed, gate(policy.OpPatientRead))
	e.PUT("/patients/:id", patientHandler.Update, authed, gate(policy.OpPatientUpdate))
	e.DELETE("/patients/:id", patientHandler.Delete, authed, gate(policy.OpPatientDelete))

	// --- Appointment routes ---
	e.POST("/appointments", appointmentHandler.Create, authed, gate(policy.OpAppointmentCreate))
	e.GET("/patients/:id/appointments", appointmentHandler.ListByPatient, authed, gate(policy.OpAppointmentList))

	// --- Chatbot ---
	e.POST("/chatbot/query", chatbotHandler.Query, authed, gate(policy.OpChatbotQuery))

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
