package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

type PatientHandler struct {
	patients ports.PatientService
}

func NewPatientHandler(patients ports.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

type createPatientRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Address     string `json:"address"`
	Gender      string `json:"gender"`
}

type updatePatientRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender"`
}

const dateLayout = "2006-01-02"

// Create handles POST /patients.
//
// @Summary      Create a patient record
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "Patient details"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
	}

	patient, err := h.patients.Create(c.Request().Context(), ports.CreatePatientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Address:     req.Address,
		Gender:      req.Gender,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patient)
}

// Get handles GET /patients/:id.
//
// @Summary      Fetch a patient by id
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	patient, err := h.patients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// List handles GET /patients.
//
// @Summary      List all patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Patient
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.patients.List(c.Request().Context())
	if err != nil {
		return err
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

// Update handles PUT /patients/:id.
//
// @Summary      Update a patient record
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to update"
// @Success      200   {object}  domain.Patient
// @Failure      404   {object}  map[string]string
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdatePatientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      req.Gender,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		}
		in.DateOfBirth = &dob
	}

	patient, err := h.patients.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Delete handles DELETE /patients/:id.
//
// @Summary      Delete a patient record
// @Tags         patients
// @Security     BearerAuth
// @Param        id  path  int  true  "Patient id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.patients.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
