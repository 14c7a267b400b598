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

type SimulationService struct {
	simulationRepo portsrepo.SimulationRepository
}

func NewSimulationService(simulationRepo portsrepo.SimulationRepository) *SimulationService {
	return &SimulationService{simulationRepo: simulationRepo}
}

var _ portssvc.SimulationSvcFacade = (*SimulationService)(nil)

// CreateSimulation stores a simulation record. The foreign ids are taken
// as-is; referential integrity is not checked at this layer. Resultados
// and Schedule pass through untouched.
func (s *SimulationService) CreateSimulation(ctx context.Context, req dto.SimulationRequest) (*domain.Simulation, error) {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}

	tasaTipo := domain.TasaEfectiva
	if req.TasaTipo != nil {
		tasaTipo = *req.TasaTipo
	}
	graciaTipo := domain.GraciaNinguna
	if req.GraciaTipo != nil {
		graciaTipo = *req.GraciaTipo
	}
	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}

	sim := domain.Simulation{
		ID:                 id,
		ClientID:           req.ClientID,
		UnitID:             req.UnitID,
		ConfigID:           req.ConfigID,
		Principal:          req.Principal,
		PlazoMeses:         req.PlazoMeses,
		TasaInput:          req.TasaInput,
		TasaTipo:           tasaTipo,
		GraciaTipo:         graciaTipo,
		GraciaMeses:        req.GraciaMeses,
		CapitalizaEnGracia: req.CapitalizaEnGracia,
		CreatedAt:          createdAt,
		Resultados:         req.Resultados,
		Schedule:           req.Schedule,
	}
	if err := s.simulationRepo.SaveSimulation(ctx, sim); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	return &sim, nil
}

func (s *SimulationService) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	sims, err := s.simulationRepo.ListSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	return sims, nil
}

func (s *SimulationService) DeleteSimulation(ctx context.Context, id uuid.UUID) error {
	return s.simulationRepo.DeleteSimulation(ctx, id)
}
