package services

import (
	"context"
	"fmt"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	portsrepo "github.com/creditapp/creditapp-api/internal/core/ports/repositories"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/google/uuid"
)

type ConfigService struct {
	configRepo portsrepo.ConfigRepository
}

func NewConfigService(configRepo portsrepo.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

var _ portssvc.ConfigSvcFacade = (*ConfigService)(nil)

// configFromRequest starts from the creation-time defaults and overlays the
// fields the request carries, so an omitted field keeps its default.
func configFromRequest(id uuid.UUID, req dto.ConfigRequest) domain.Config {
	config := domain.NewConfig()
	config.ID = id
	if req.Moneda != nil {
		config.Moneda = *req.Moneda
	}
	if req.TasaTipo != nil {
		config.TasaTipo = *req.TasaTipo
	}
	if req.EfectivaAnual != nil {
		config.EfectivaAnual = *req.EfectivaAnual
	}
	if req.GraciaTipo != nil {
		config.GraciaTipo = *req.GraciaTipo
	}
	config.GraciaMeses = req.GraciaMeses
	config.Entidad = req.Entidad
	config.CapitalizaEnGracia = req.CapitalizaEnGracia
	return config
}

func (s *ConfigService) CreateConfig(ctx context.Context, req dto.ConfigRequest) (*domain.Config, error) {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}
	config := configFromRequest(id, req)
	if err := s.configRepo.SaveConfig(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}
	return &config, nil
}

func (s *ConfigService) ListConfigs(ctx context.Context) ([]domain.Config, error) {
	configs, err := s.configRepo.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return configs, nil
}

// ReplaceConfig overwrites every field of the stored row by path id.
// Omitted fields fall back to the creation-time defaults, as a full
// replace leaves nothing of the previous row behind.
func (s *ConfigService) ReplaceConfig(ctx context.Context, id uuid.UUID, req dto.ConfigRequest) error {
	return s.configRepo.ReplaceConfig(ctx, configFromRequest(id, req))
}

func (s *ConfigService) DeleteConfig(ctx context.Context, id uuid.UUID) error {
	return s.configRepo.DeleteConfig(ctx, id)
}
