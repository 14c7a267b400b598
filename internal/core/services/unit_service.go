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

type UnitService struct {
	unitRepo portsrepo.UnitRepository
}

func NewUnitService(unitRepo portsrepo.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

var _ portssvc.UnitSvcFacade = (*UnitService)(nil)

func unitFromRequest(id uuid.UUID, req dto.UnitRequest) domain.Unit {
	moneda := domain.MonedaPEN
	if req.Moneda != nil {
		moneda = *req.Moneda
	}
	return domain.Unit{
		ID:         id,
		Proyecto:   req.Proyecto,
		Torre:      req.Torre,
		Unidad:     req.Unidad,
		Moneda:     moneda,
		Precio:     req.Precio,
		PieInicial: req.PieInicial,
		Gastos:     req.Gastos,
		Seguros:    req.Seguros,
		Comisiones: req.Comisiones,
		ImageURL:   req.ImageURL,
	}
}

func (s *UnitService) CreateUnit(ctx context.Context, req dto.UnitRequest) (*domain.Unit, error) {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}
	unit := unitFromRequest(id, req)
	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return &unit, nil
}

func (s *UnitService) GetUnitByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *UnitService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	units, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// ReplaceUnit overwrites every field of the stored row by path id.
func (s *UnitService) ReplaceUnit(ctx context.Context, id uuid.UUID, req dto.UnitRequest) error {
	return s.unitRepo.ReplaceUnit(ctx, unitFromRequest(id, req))
}

func (s *UnitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	return s.unitRepo.DeleteUnit(ctx, id)
}
