package domain

import (
	"errors"
	"time"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AppointmentStatus is the lifecycle state of a scheduled appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Patient is a clinical record subject. IDs are small integers so they can be
// referenced in free-text chatbot queries.
type Patient struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName returns "First Last" for display in composed responses.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Appointment binds a patient to a doctor at a point in time. The doctor name
// is denormalised onto the record for display.
type Appointment struct {
	ID         int64             `json:"id"`
	PatientID  int64             `json:"patient_id"`
	DoctorName string            `json:"doctor_name"`
	Time       time.Time         `json:"time"`
	Reason     string            `json:"reason"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}
