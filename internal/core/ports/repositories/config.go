package repositories

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
)

// ConfigRepository defines the persistence operations for rate Configs.
// Configs have no single-row read endpoint; FindConfigByID is not exposed.
type ConfigRepository interface {
	SaveConfig(ctx context.Context, config domain.Config) error
	ListConfigs(ctx context.Context) ([]domain.Config, error)
	ReplaceConfig(ctx context.Context, config domain.Config) error
	DeleteConfig(ctx context.Context, id uuid.UUID) error
}
