package repositories

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
)

// SimulationRepository defines the persistence operations for Simulations.
// Simulations are created, listed and deleted; there is no replace.
type SimulationRepository interface {
	SaveSimulation(ctx context.Context, sim domain.Simulation) error
	ListSimulations(ctx context.Context) ([]domain.Simulation, error)
	DeleteSimulation(ctx context.Context, id uuid.UUID) error
}
