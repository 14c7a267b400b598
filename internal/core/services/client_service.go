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

type ClientService struct {
	clientRepo portsrepo.ClientRepository
}

func NewClientService(clientRepo portsrepo.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

func clientFromRequest(id uuid.UUID, req dto.ClientRequest) domain.Client {
	return domain.Client{
		ID:                id,
		Nombres:           req.Nombres,
		Apellidos:         req.Apellidos,
		Documento:         req.Documento,
		Telefono:          req.Telefono,
		Email:             req.Email,
		IngresosMensuales: req.IngresosMensuales,
		Dependientes:      req.Dependientes,
		Empleo:            req.Empleo,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.ClientRequest) (*domain.Client, error) {
	id := uuid.New()
	if req.ID != nil && *req.ID != uuid.Nil {
		id = *req.ID
	}
	client := clientFromRequest(id, req)
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// ReplaceClient overwrites every field of the stored row. The path id
// identifies the row; any id in the request body is ignored.
func (s *ClientService) ReplaceClient(ctx context.Context, id uuid.UUID, req dto.ClientRequest) error {
	return s.clientRepo.ReplaceClient(ctx, clientFromRequest(id, req))
}

func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.DeleteClient(ctx, id)
}
