package services

import (
	"context"
	"fmt"
	"time"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/google/uuid"
)

type AuditService struct {
	auditRepo portsrepo.AuditRepository
}

func NewAuditService(auditRepo portsrepo.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*AuditService)(nil)

func (s *AuditService) CreateAuditLog(ctx context.Context, req dto.AuditLogRequest) (*domain.AuditLog, error) {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}
	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}

	entry := domain.AuditLog{
		ID:        id,
		UserEmail: req.UserEmail,
		Action:    req.Action,
		Entity:    req.Entity,
		EntityID:  req.EntityID,
		Timestamp: timestamp,
		Payload:   req.Payload,
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}
	return &entry, nil
}

func (s *AuditService) ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error) {
	logs, err := s.auditRepo.ListAuditLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
