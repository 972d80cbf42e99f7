package ports

import (
	"context"
	"time"
)

// AuditEntry records the outcome of one authenticated operation or login
// attempt for the access trail.
type AuditEntry struct {
	Username  string
	Role      string
	Operation string
	Decision  string // "allow" or "deny"
	Detail    string
	Timestamp time.Time
}

// AuditRecorder accepts entries for asynchronous persistence. Enqueue never
// blocks the request path beyond channel-buffer capacity.
type AuditRecorder interface {
	Enqueue(entry AuditEntry)
}

// AuditService persists a single audit entry.
type AuditService interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// AuditRepository is the persistence interface for the access trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *AuditEntry) error
}
