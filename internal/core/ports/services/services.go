package services

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/google/uuid"
)

// ClientSvcFacade exposes the client operations consumed by handlers.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.ClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	ReplaceClient(ctx context.Context, id uuid.UUID, req dto.ClientRequest) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// UnitSvcFacade exposes the unit operations consumed by handlers.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, req dto.UnitRequest) (*domain.Unit, error)
	GetUnitByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	ReplaceUnit(ctx context.Context, id uuid.UUID, req dto.UnitRequest) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error
}

// ConfigSvcFacade exposes the rate-configuration operations consumed by
// handlers. Configs have no single-row read endpoint.
type ConfigSvcFacade interface {
	CreateConfig(ctx context.Context, req dto.ConfigRequest) (*domain.Config, error)
	ListConfigs(ctx context.Context) ([]domain.Config, error)
	ReplaceConfig(ctx context.Context, id uuid.UUID, req dto.ConfigRequest) error
	DeleteConfig(ctx context.Context, id uuid.UUID) error
}

// SimulationSvcFacade exposes the simulation operations consumed by handlers.
type SimulationSvcFacade interface {
	CreateSimulation(ctx context.Context, req dto.SimulationRequest) (*domain.Simulation, error)
	ListSimulations(ctx context.Context) ([]domain.Simulation, error)
	DeleteSimulation(ctx context.Context, id uuid.UUID) error
}

// AuditSvcFacade exposes the append-only audit-trail operations.
type AuditSvcFacade interface {
	CreateAuditLog(ctx context.Context, req dto.AuditLogRequest) (*domain.AuditLog, error)
	ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error)
}

// ServiceContainer bundles the per-entity services for route registration.
type ServiceContainer struct {
	Client     ClientSvcFacade
	Unit       UnitSvcFacade
	Config     ConfigSvcFacade
	Simulation SimulationSvcFacade
	Audit      AuditSvcFacade
}
