package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is the audit_logs table row. The timestamp column is named ts
// to avoid shadowing the SQL keyword.
type AuditLog struct {
	ID        uuid.UUID       `db:"id"`
	UserEmail string          `db:"user_email"`
	Action    string          `db:"action"`
	Entity    string          `db:"entity"`
	EntityID  string          `db:"entity_id"`
	Timestamp time.Time       `db:"ts"`
	Payload   json.RawMessage `db:"payload"`
}
