package services_test

import (
	"context"
	"testing"

	"github.com/creditapp/creditapp-api/internal/apperrors"
	"github.com/creditapp/creditapp-api/internal/core/domain"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
	"github.com/creditapp/creditapp-api/internal/core/services"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) ReplaceClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	service        portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockClientRepo)
}

// --- CreateClient Tests ---

func (suite *ClientServiceTestSuite) TestCreateClient_GeneratesIDWhenOmitted() {
	ctx := context.Background()
	req := dto.ClientRequest{
		Nombres:           "Maria",
		Apellidos:         "Quispe",
		Documento:         "45678912",
		Email:             "maria@example.com",
		IngresosMensuales: decimal.NewFromFloat(5500.50),
		Dependientes:      2,
		Empleo:            "Dependiente",
	}

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ID != uuid.Nil && c.Nombres == "Maria" && c.IngresosMensuales.Equal(req.IngresosMensuales)
	})).Return(nil).Once()

	created, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal("Quispe", created.Apellidos)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_HonorsClientSuppliedID() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ID == id
	})).Return(nil).Once()

	created, err := suite.service.CreateClient(ctx, dto.ClientRequest{ID: &id})

	suite.Require().NoError(err)
	suite.Equal(id, created.ID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- GetClientByID Tests ---

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFoundPropagates() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockClientRepo.On("FindClientByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, id)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(client)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- ReplaceClient Tests ---

func (suite *ClientServiceTestSuite) TestReplaceClient_BodyIDIgnored() {
	ctx := context.Background()
	pathID := uuid.New()
	bodyID := uuid.New()

	suite.mockClientRepo.On("ReplaceClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ID == pathID && c.Nombres == "Renamed"
	})).Return(nil).Once()

	err := suite.service.ReplaceClient(ctx, pathID, dto.ClientRequest{ID: &bodyID, Nombres: "Renamed"})

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestReplaceClient_OmittedFieldsOverwriteWithZeroValues() {
	ctx := context.Background()
	id := uuid.New()

	// Full replace: a body that only carries nombres clears everything else.
	suite.mockClientRepo.On("ReplaceClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Nombres == "Solo" && c.Apellidos == "" && c.IngresosMensuales.IsZero() && c.Dependientes == 0
	})).Return(nil).Once()

	err := suite.service.ReplaceClient(ctx, id, dto.ClientRequest{Nombres: "Solo"})

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- DeleteClient Tests ---

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFoundPropagates() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockClientRepo.On("DeleteClient", ctx, id).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, id)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
