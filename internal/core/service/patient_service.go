package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

// PatientService implements patient record CRUD and appointment scheduling.
// Authorization happens at the route layer; the service assumes the caller
// was already cleared by the policy table.
type PatientService struct {
	patients     ports.PatientRepository
	appointments ports.AppointmentRepository
	log          zerolog.Logger
}

func NewPatientService(patients ports.PatientRepository, appointments ports.AppointmentRepository, log zerolog.Logger) *PatientService {
	return &PatientService{patients: patients, appointments: appointments, log: log}
}

func (s *PatientService) Create(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
	if existing, err := s.patients.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		DateOfBirth: in.DateOfBirth,
		Address:     in.Address,
		Gender:      in.Gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.patients.Create(ctx, patient)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create patient")
		return nil, err
	}

	s.log.Info().Int64("patient_id", created.ID).Msg("patient created")
	return created, nil
}

func (s *PatientService) Update(ctx context.Context, id int64, in ports.UpdatePatientInput) (*domain.Patient, error) {
	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		patient.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		patient.LastName = *in.LastName
	}
	if in.Email != nil {
		patient.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		patient.PhoneNumber = *in.PhoneNumber
	}
	if in.DateOfBirth != nil {
		patient.DateOfBirth = *in.DateOfBirth
	}
	if in.Address != nil {
		patient.Address = *in.Address
	}
	if in.Gender != nil {
		patient.Gender = *in.Gender
	}
	patient.UpdatedAt = time.Now().UTC()

	updated, err := s.patients.Update(ctx, patient)
	if err != nil {
		s.log.Error().Err(err).Int64("patient_id", id).Msg("failed to update patient")
		return nil, err
	}
	return updated, nil
}

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("patient_id", id).Msg("patient deleted")
	return nil
}

func (s *PatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	return s.patients.FindByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.List(ctx)
}

// Schedule books an appointment for an existing patient.
func (s *PatientService) Schedule(ctx context.Context, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if _, err := s.patients.FindByID(ctx, in.PatientID); err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		PatientID:  in.PatientID,
		DoctorName: in.DoctorName,
		Time:       in.Time.UTC(),
		Reason:     in.Reason,
		Status:     domain.AppointmentScheduled,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.appointments.Create(ctx, appointment)
	if err != nil {
		s.log.Error().Err(err).Int64("patient_id", in.PatientID).Msg("failed to create appointment")
		return nil, err
	}

	s.log.Info().Int64("appointment_id", created.ID).Int64("patient_id", in.PatientID).Msg("appointment scheduled")
	return created, nil
}

func (s *PatientService) Appointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointments.FindByPatient(ctx, patientID)
}
