package ports

import (
	"context"

	"github.com/medisys/hms-api/internal/core/domain"
)

// ChatbotService answers free-text queries about patients and appointments.
// Answer always produces text: lookup misses and backend failures surface as
// human-readable responses, never as errors.
type ChatbotService interface {
	Answer(ctx context.Context, role domain.Role, rawText string) string
}
