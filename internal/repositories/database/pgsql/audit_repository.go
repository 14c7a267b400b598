package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/creditapp/creditapp-api/internal/apperrors"
	"github.com/creditapp/creditapp-api/internal/core/domain"
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	"github.com/creditapp/creditapp-api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func toModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		ID:        d.ID,
		UserEmail: d.UserEmail,
		Action:    d.Action,
		Entity:    d.Entity,
		EntityID:  d.EntityID,
		Timestamp: d.Timestamp,
		Payload:   d.Payload,
	}
}

func toDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		ID:        m.ID,
		UserEmail: m.UserEmail,
		Action:    m.Action,
		Entity:    m.Entity,
		EntityID:  m.EntityID,
		Timestamp: m.Timestamp,
		Payload:   m.Payload,
	}
}

func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := toModelAuditLog(entry)
	query := `
        INSERT INTO audit_logs (id, user_email, action, entity, entity_id, ts, payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.UserEmail, m.Action, m.Entity, m.EntityID, m.Timestamp, m.Payload,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: audit entry with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

// ListAuditLogs returns the trail newest-first regardless of insertion order.
func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error) {
	query := `
        SELECT id, user_email, action, entity, entity_id, ts, payload
        FROM audit_logs
        ORDER BY ts DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(&m.ID, &m.UserEmail, &m.Action, &m.Entity, &m.EntityID, &m.Timestamp, &m.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		logs = append(logs, toDomainAuditLog(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", rows.Err())
	}
	return logs, nil
}
