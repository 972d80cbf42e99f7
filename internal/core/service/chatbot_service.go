package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

const fallbackAnswer = "I'm sorry, I couldn't understand that query. " +
	"You can ask for a patient's details by ID (\"What are the details for patient ID 1?\"), " +
	"list all patients (\"List all patients\"), " +
	"or show a patient's appointments (\"Show appointments for patient ID 2\")."

const backendTrouble = "Something went wrong while looking that up. Please try again."

// ChatbotService resolves a parsed query intent against the record store and
// composes a textual answer. It upholds the chatbot contract: every input
// gets some response, and record misses are soft text rather than errors.
type ChatbotService struct {
	records ports.RecordReader
	log     zerolog.Logger
}

func NewChatbotService(records ports.RecordReader, log zerolog.Logger) *ChatbotService {
	return &ChatbotService{records: records, log: log}
}

// Answer parses rawText and executes the resulting intent. The role is the
// caller's snapshot from the session token; the route already gates on
// chatbot.query, but listing every patient stays admin-only inside the
// service as well.
func (s *ChatbotService) Answer(ctx context.Context, role domain.Role, rawText string) string {
	intent := domain.ParseIntent(rawText)

	switch intent.Kind {
	case domain.IntentPatientByID:
		return s.patientByID(ctx, intent.PatientID)
	case domain.IntentListPatients:
		if role != domain.RoleAdmin {
			return "You are not authorized to list all patients."
		}
		return s.listPatients(ctx)
	case domain.IntentAppointmentsForPatient:
		return s.appointmentsForPatient(ctx, intent.PatientID)
	default:
		return fallbackAnswer
	}
}

func (s *ChatbotService) patientByID(ctx context.Context, id int64) string {
	p, err := s.records.FindPatientByID(ctx, id)
	if err != nil {
		if err == domain.ErrPatientNotFound {
			return fmt.Sprintf("Patient with ID %d not found.", id)
		}
		s.log.Error().Err(err).Int64("patient_id", id).Msg("chatbot patient lookup failed")
		return backendTrouble
	}

	return fmt.Sprintf(
		"Patient ID: %d\nName: %s\nEmail: %s\nPhone: %s\nDate of Birth: %s\nAddress: %s\nGender: %s",
		p.ID, p.FullName(), p.Email, p.PhoneNumber, p.DateOfBirth.Format("2006-01-02"), p.Address, p.Gender,
	)
}

func (s *ChatbotService) listPatients(ctx context.Context) string {
	patients, err := s.records.ListPatients(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("chatbot patient listing failed")
		return backendTrouble
	}
	if len(patients) == 0 {
		return "No patients are registered in the system."
	}

	lines := make([]string, 0, len(patients)+1)
	lines = append(lines, "Here are the registered patients:")
	for _, p := range patients {
		lines = append(lines, fmt.Sprintf("- %s (ID: %d, Email: %s)", p.FullName(), p.ID, p.Email))
	}
	return strings.Join(lines, "\n")
}

func (s *ChatbotService) appointmentsForPatient(ctx context.Context, id int64) string {
	p, err := s.records.FindPatientByID(ctx, id)
	if err != nil {
		if err == domain.ErrPatientNotFound {
			return fmt.Sprintf("Patient with ID %d not found.", id)
		}
		s.log.Error().Err(err).Int64("patient_id", id).Msg("chatbot patient lookup failed")
		return backendTrouble
	}

	appointments, err := s.records.FindAppointmentsByPatient(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("patient_id", id).Msg("chatbot appointment lookup failed")
		return backendTrouble
	}
	if len(appointments) == 0 {
		return fmt.Sprintf("No appointments found for patient ID %d.", id)
	}

	lines := make([]string, 0, len(appointments)+1)
	lines = append(lines, fmt.Sprintf("Appointments for patient %s (ID: %d):", p.FullName(), p.ID))
	for _, a := range appointments {
		lines = append(lines, fmt.Sprintf(
			"- Appt ID: %d, Doctor: %s, Time: %s, Reason: %s, Status: %s",
			a.ID, a.DoctorName, a.Time.Format("2006-01-02 15:04"), a.Reason, a.Status,
		))
	}
	return strings.Join(lines, "\n")
}
