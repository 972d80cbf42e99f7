package ports

import (
	"context"
	"time"

	"github.com/medisys/hms-api/internal/core/domain"
)

// RecordReader is the read-only view of the record store consumed by the
// chatbot. The chatbot never writes through this interface.
type RecordReader interface {
	FindPatientByID(ctx context.Context, id int64) (*domain.Patient, error)
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	FindAppointmentsByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error)
}

// PatientRepository is the persistence interface for patient records.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	FindByEmail(ctx context.Context, email string) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
}

// AppointmentRepository is the persistence interface for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error)
}

// CreatePatientInput carries the fields accepted when registering a patient.
type CreatePatientInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth time.Time
	Address     string
	Gender      string
}

// UpdatePatientInput carries optional field updates; nil means unchanged.
type UpdatePatientInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	DateOfBirth *time.Time
	Address     *string
	Gender      *string
}

// CreateAppointmentInput carries the fields accepted when scheduling.
type CreateAppointmentInput struct {
	PatientID  int64
	DoctorName string
	Time       time.Time
	Reason     string
}

// PatientService exposes the record CRUD operations gated by the policy layer.
type PatientService interface {
	Create(ctx context.Context, in CreatePatientInput) (*domain.Patient, error)
	Update(ctx context.Context, id int64, in UpdatePatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Schedule(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error)
	Appointments(ctx context.Context, patientID int64) ([]domain.Appointment, error)
}
