package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is one entry of the append-only audit trail. Entries are only
// ever created and listed; there is no update or delete.
type AuditLog struct {
	ID        uuid.UUID       `json:"id"`
	UserEmail string          `json:"userEmail"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}
