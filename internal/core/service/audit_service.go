package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medisys/hms-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the access
// trail. Persistence is best-effort: the caller never sees the failure.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, entry ports.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		s.log.Warn().Err(err).
			Str("username", entry.Username).
			Str("operation", entry.Operation).
			Msg("failed to persist audit entry")
		return err
	}
	return nil
}
