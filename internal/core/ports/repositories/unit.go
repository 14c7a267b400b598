package repositories

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
)

// UnitRepository defines the persistence operations for Units.
type UnitRepository interface {
	SaveUnit(ctx context.Context, unit domain.Unit) error
	FindUnitByID(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	ReplaceUnit(ctx context.Context, unit domain.Unit) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error
}
