package dto

import (
	"encoding/json"
	"time"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
)

// AuditLogRequest is the create payload for an audit entry. Timestamp is
// server-assigned when omitted; Payload is an opaque document.
type AuditLogRequest struct {
	ID        *uuid.UUID      `json:"id"`
	UserEmail string          `json:"userEmail"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId"`
	Timestamp *time.Time      `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// AuditLogResponse is the wire representation of an audit entry.
type AuditLogResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserEmail string          `json:"userEmail"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// ToAuditLogResponse converts a domain.AuditLog to its wire representation.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        a.ID,
		UserEmail: a.UserEmail,
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Timestamp: a.Timestamp,
		Payload:   a.Payload,
	}
}

// ToAuditLogResponseList converts a slice of domain.AuditLog.
func ToAuditLogResponseList(logs []domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(logs))
	for i := range logs {
		out[i] = ToAuditLogResponse(&logs[i])
	}
	return out
}
