package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

type AppointmentHandler struct {
	patients ports.PatientService
}

func NewAppointmentHandler(patients ports.PatientService) *AppointmentHandler {
	return &AppointmentHandler{patients: patients}
}

type createAppointmentRequest struct {
	PatientID  int64  `json:"patient_id" validate:"required,gt=0"`
	DoctorName string `json:"doctor_name" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Reason     string `json:"reason"`
}

// Create handles POST /appointments.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "time must be RFC3339")
	}

	appointment, err := h.patients.Schedule(c.Request().Context(), ports.CreateAppointmentInput{
		PatientID:  req.PatientID,
		DoctorName: req.DoctorName,
		Time:       at,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appointment)
}

// ListByPatient handles GET /patients/:id/appointments.
//
// @Summary      List a patient's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Patient id"
// @Success      200  {array}  domain.Appointment
// @Failure      404  {object} map[string]string
// @Router       /patients/{id}/appointments [get]
func (h *AppointmentHandler) ListByPatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	appointments, err := h.patients.Appointments(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	return c.JSON(http.StatusOK, appointments)
}
