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

// --- Mock ConfigRepository ---
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context, config domain.Config) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigRepository) ListConfigs(ctx context.Context) ([]domain.Config, error) {
	args := m.Called(ctx)
	var configs []domain.Config
	if args.Get(0) != nil {
		configs = args.Get(0).([]domain.Config)
	}
	return configs, args.Error(1)
}

func (m *MockConfigRepository) ReplaceConfig(ctx context.Context, config domain.Config) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigRepository) DeleteConfig(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type ConfigServiceTestSuite struct {
	suite.Suite
	mockConfigRepo *MockConfigRepository
	service        portssvc.ConfigSvcFacade
}

func (suite *ConfigServiceTestSuite) SetupTest() {
	suite.mockConfigRepo = new(MockConfigRepository)
	suite.service = services.NewConfigService(suite.mockConfigRepo)
}

// --- CreateConfig Tests ---

func (suite *ConfigServiceTestSuite) TestCreateConfig_AppliesDefaultsForOmittedFields() {
	ctx := context.Background()

	suite.mockConfigRepo.On("SaveConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.Moneda == domain.MonedaPEN &&
			c.TasaTipo == domain.TasaEfectiva &&
			c.EfectivaAnual.Equal(decimal.NewFromFloat(12.5)) &&
			c.GraciaTipo == domain.GraciaNinguna &&
			c.GraciaMeses == 0 &&
			c.Entidad == "" &&
			!c.CapitalizaEnGracia
	})).Return(nil).Once()

	created, err := suite.service.CreateConfig(ctx, dto.ConfigRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal(domain.MonedaPEN, created.Moneda)
	suite.True(created.EfectivaAnual.Equal(decimal.NewFromFloat(12.5)))
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestCreateConfig_ExplicitFieldsOverrideDefaults() {
	ctx := context.Background()
	usd := domain.MonedaUSD
	nominal := domain.TasaNominal
	total := domain.GraciaTotal
	rate := decimal.NewFromFloat(8.25)

	req := dto.ConfigRequest{
		Moneda:             &usd,
		TasaTipo:           &nominal,
		EfectivaAnual:      &rate,
		GraciaTipo:         &total,
		GraciaMeses:        6,
		Entidad:            "Banco Andino",
		CapitalizaEnGracia: true,
	}

	suite.mockConfigRepo.On("SaveConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.Moneda == domain.MonedaUSD &&
			c.TasaTipo == domain.TasaNominal &&
			c.EfectivaAnual.Equal(rate) &&
			c.GraciaTipo == domain.GraciaTotal &&
			c.GraciaMeses == 6 &&
			c.Entidad == "Banco Andino" &&
			c.CapitalizaEnGracia
	})).Return(nil).Once()

	created, err := suite.service.CreateConfig(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.MonedaUSD, created.Moneda)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestCreateConfig_HonorsClientSuppliedID() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockConfigRepo.On("SaveConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.ID == id
	})).Return(nil).Once()

	created, err := suite.service.CreateConfig(ctx, dto.ConfigRequest{ID: &id})

	suite.Require().NoError(err)
	suite.Equal(id, created.ID)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestCreateConfig_NilUUIDTreatedAsOmitted() {
	ctx := context.Background()
	nilID := uuid.Nil

	suite.mockConfigRepo.On("SaveConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.ID != uuid.Nil
	})).Return(nil).Once()

	created, err := suite.service.CreateConfig(ctx, dto.ConfigRequest{ID: &nilID})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

// --- ReplaceConfig Tests ---

func (suite *ConfigServiceTestSuite) TestReplaceConfig_PathIDWinsOverBodyID() {
	ctx := context.Background()
	pathID := uuid.New()
	bodyID := uuid.New()

	suite.mockConfigRepo.On("ReplaceConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.ID == pathID
	})).Return(nil).Once()

	err := suite.service.ReplaceConfig(ctx, pathID, dto.ConfigRequest{ID: &bodyID})

	suite.Require().NoError(err)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestReplaceConfig_OmittedFieldsResetToDefaults() {
	ctx := context.Background()
	id := uuid.New()

	// A full replace with an empty body leaves the row at the defaults.
	suite.mockConfigRepo.On("ReplaceConfig", ctx, mock.MatchedBy(func(c domain.Config) bool {
		return c.Moneda == domain.MonedaPEN && c.EfectivaAnual.Equal(decimal.NewFromFloat(12.5))
	})).Return(nil).Once()

	err := suite.service.ReplaceConfig(ctx, id, dto.ConfigRequest{})

	suite.Require().NoError(err)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestReplaceConfig_NotFoundPropagates() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockConfigRepo.On("ReplaceConfig", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	err := suite.service.ReplaceConfig(ctx, id, dto.ConfigRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

// --- ListConfigs / DeleteConfig Tests ---

func (suite *ConfigServiceTestSuite) TestListConfigs_Success() {
	ctx := context.Background()
	cfg := domain.NewConfig()
	cfg.ID = uuid.New()

	suite.mockConfigRepo.On("ListConfigs", ctx).Return([]domain.Config{cfg}, nil).Once()

	configs, err := suite.service.ListConfigs(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(configs, 1)
	suite.Equal(cfg.ID, configs[0].ID)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestDeleteConfig_NotFoundPropagates() {
	ctx := context.Background()
	id := uuid.New()

	suite.mockConfigRepo.On("DeleteConfig", ctx, id).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteConfig(ctx, id)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockConfigRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestConfigService(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}
