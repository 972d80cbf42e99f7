package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

type stubPatientService struct {
	createFn       func(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error)
	updateFn       func(ctx context.Context, id int64, in ports.UpdatePatientInput) (*domain.Patient, error)
	deleteFn       func(ctx context.Context, id int64) error
	getFn          func(ctx context.Context, id int64) (*domain.Patient, error)
	listFn         func(ctx context.Context) ([]domain.Patient, error)
	scheduleFn     func(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error)
	appointmentsFn func(ctx context.Context, patientID int64) ([]domain.Appointment, error)
}

func (s *stubPatientService) Create(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
	return s.createFn(ctx, in)
}

func (s *stubPatientService) Update(ctx context.Context, id int64, in ports.UpdatePatientInput) (*domain.Patient, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubPatientService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.listFn(ctx)
}

func (s *stubPatientService) Schedule(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	return s.scheduleFn(ctx, in)
}

func (s *stubPatientService) Appointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	return s.appointmentsFn(ctx, patientID)
}

func TestPatientHandler_Create_Success(t *testing.T) {
	stub := &stubPatientService{
		createFn: func(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
			if in.FirstName != "Jane" || in.Email != "jane@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.DateOfBirth.Equal(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected dob: %v", in.DateOfBirth)
			}
			return &domain.Patient{ID: 1, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}, nil
		},
	}
	handler := NewPatientHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/patients",
		`{"first_name":"Jane","last_name":"Roe","email":"jane@example.com","date_of_birth":"1990-01-02"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPatientHandler_Create_BadDate(t *testing.T) {
	stub := &stubPatientService{
		createFn: func(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPatientHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/patients",
		`{"first_name":"Jane","last_name":"Roe","email":"jane@example.com","date_of_birth":"02/01/1990"}`)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPatientHandler_Get_NotFound(t *testing.T) {
	stub := &stubPatientService{
		getFn: func(ctx context.Context, id int64) (*domain.Patient, error) {
			return nil, domain.ErrPatientNotFound
		},
	}
	handler := NewPatientHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/patients/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Get(c); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientHandler_Get_BadID(t *testing.T) {
	handler := NewPatientHandler(&stubPatientService{})

	c, _ := newTestContext(t, http.MethodGet, "/patients/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPatientHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubPatientService{
		listFn: func(ctx context.Context) ([]domain.Patient, error) {
			return nil, nil
		},
	}
	handler := NewPatientHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/patients", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []domain.Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected JSON array, got %q: %v", rec.Body.String(), err)
	}
}

func TestPatientHandler_Delete(t *testing.T) {
	deleted := int64(0)
	stub := &stubPatientService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewPatientHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/patients/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 4 {
		t.Fatalf("expected delete of 4, got %d", deleted)
	}
}

func TestAppointmentHandler_Create(t *testing.T) {
	stub := &stubPatientService{
		scheduleFn: func(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
			if in.PatientID != 1 || in.DoctorName != "Dr. Grey" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Appointment{ID: 7, PatientID: 1, DoctorName: in.DoctorName, Status: domain.AppointmentScheduled}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/appointments",
		`{"patient_id":1,"doctor_name":"Dr. Grey","time":"2026-09-01T14:30:00Z","reason":"checkup"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Create_BadTime(t *testing.T) {
	handler := NewAppointmentHandler(&stubPatientService{})

	c, _ := newTestContext(t, http.MethodPost, "/appointments",
		`{"patient_id":1,"doctor_name":"Dr. Grey","time":"tomorrow"}`)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
