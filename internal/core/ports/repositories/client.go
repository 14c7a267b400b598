package repositories

import (
	"context"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/google/uuid"
)

// ClientRepository defines the persistence operations for Clients.
type ClientRepository interface {
	// SaveClient persists a new client row.
	SaveClient(ctx context.Context, client domain.Client) error

	// FindClientByID retrieves one client or apperrors.ErrNotFound.
	FindClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	// ListClients retrieves every client row.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ReplaceClient overwrites every stored field of an existing row.
	ReplaceClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a row by id.
	DeleteClient(ctx context.Context, id uuid.UUID) error
}
