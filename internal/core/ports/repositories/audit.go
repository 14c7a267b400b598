package repositories

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
)

// AuditRepository defines the persistence operations for the audit trail.
// Append-only: entries are saved and listed, never updated or deleted.
type AuditRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs returns every entry ordered by timestamp descending.
	ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error)
}
