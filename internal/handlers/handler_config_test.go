package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creditapp/creditapp-api/internal/apperrors"
	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConfigHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
}

func (suite *ConfigHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *ConfigHandlerTestSuite) TestListConfigs_Success() {
	cfg := domain.NewConfig()
	cfg.ID = uuid.New()
	suite.mocks.config.On("ListConfigs", mock.Anything).Return([]domain.Config{cfg}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/configs", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.ConfigResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(domain.MonedaPEN, body[0].Moneda)
	suite.Equal(domain.TasaEfectiva, body[0].TasaTipo)
	suite.True(decimal.NewFromFloat(12.5).Equal(body[0].EfectivaAnual))
	suite.Equal(domain.GraciaNinguna, body[0].GraciaTipo)
	suite.mocks.config.AssertExpectations(suite.T())
}

func (suite *ConfigHandlerTestSuite) TestCreateConfig_SetsLocationHeader() {
	id := uuid.New()
	created := domain.NewConfig()
	created.ID = id
	created.Entidad = "Banco Andino"
	suite.mocks.config.On("CreateConfig", mock.Anything, mock.MatchedBy(func(r dto.ConfigRequest) bool {
		return r.Entidad == "Banco Andino" && r.Moneda == nil
	})).Return(&created, nil).Once()

	payload := `{"entidad":"Banco Andino"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/configs", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("/api/configs/"+id.String(), w.Header().Get("Location"))
	var body dto.ConfigResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.MonedaPEN, body.Moneda)
	suite.Equal("Banco Andino", body.Entidad)
	suite.mocks.config.AssertExpectations(suite.T())
}

func (suite *ConfigHandlerTestSuite) TestCreateConfig_EnumRoundTripsAsString() {
	created := domain.NewConfig()
	created.ID = uuid.New()
	created.Moneda = domain.MonedaUSD
	created.TasaTipo = domain.TasaNominal
	created.GraciaTipo = domain.GraciaParcial
	suite.mocks.config.On("CreateConfig", mock.Anything, mock.Anything).Return(&created, nil).Once()

	payload := `{"moneda":"USD","tasaTipo":"NOMINAL","graciaTipo":"PARCIAL"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/configs", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"moneda":"USD"`)
	suite.Contains(w.Body.String(), `"tasaTipo":"NOMINAL"`)
	suite.Contains(w.Body.String(), `"graciaTipo":"PARCIAL"`)
}

func (suite *ConfigHandlerTestSuite) TestReplaceConfig_NotFound() {
	id := uuid.New()
	suite.mocks.config.On("ReplaceConfig", mock.Anything, id, mock.Anything).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/configs/"+id.String(), bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.config.AssertExpectations(suite.T())
}

func (suite *ConfigHandlerTestSuite) TestReplaceConfig_Success() {
	id := uuid.New()
	suite.mocks.config.On("ReplaceConfig", mock.Anything, id, mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/configs/"+id.String(), bytes.NewBufferString(`{"moneda":"USD"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mocks.config.AssertExpectations(suite.T())
}

func (suite *ConfigHandlerTestSuite) TestDeleteConfig_NotFound() {
	id := uuid.New()
	suite.mocks.config.On("DeleteConfig", mock.Anything, id).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/configs/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.config.AssertExpectations(suite.T())
}

// Configs are list-only on the read side; a single-row GET is not routed.
func (suite *ConfigHandlerTestSuite) TestGetConfigByID_NotRouted() {
	req, _ := http.NewRequest(http.MethodGet, "/api/configs/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestConfigHandler(t *testing.T) {
	suite.Run(t, new(ConfigHandlerTestSuite))
}
