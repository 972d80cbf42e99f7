package mongo

import (
	"context"

	"github.com/medisys/hms-api/internal/core/domain"
)

// MongoRecordReader is the read-only view over the patient and appointment
// collections consumed by the chatbot.
type MongoRecordReader struct {
	patients     *MongoPatientRepository
	appointments *MongoAppointmentRepository
}

func NewRecordReader(patients *MongoPatientRepository, appointments *MongoAppointmentRepository) *MongoRecordReader {
	return &MongoRecordReader{patients: patients, appointments: appointments}
}

func (r *MongoRecordReader) FindPatientByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return r.patients.FindByID(ctx, id)
}

func (r *MongoRecordReader) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	return r.patients.List(ctx)
}

func (r *MongoRecordReader) FindAppointmentsByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	return r.appointments.FindByPatient(ctx, patientID)
}
