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

type UnitHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
}

func (suite *UnitHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *UnitHandlerTestSuite) TestListUnits_Success() {
	img := "https://cdn.example.com/u1.jpg"
	expected := []domain.Unit{
		{
			ID:         uuid.New(),
			Proyecto:   "Las Lomas",
			Torre:      "B",
			Unidad:     "502",
			Moneda:     domain.MonedaUSD,
			Precio:     decimal.NewFromFloat(120000.00),
			PieInicial: decimal.NewFromFloat(12000.00),
			ImageURL:   &img,
		},
	}
	suite.mocks.unit.On("ListUnits", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/units", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.UnitResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("Las Lomas", body[0].Proyecto)
	suite.Equal(domain.MonedaUSD, body[0].Moneda)
	suite.Require().NotNil(body[0].ImageURL)
	suite.Equal(img, *body[0].ImageURL)
	suite.mocks.unit.AssertExpectations(suite.T())
}

func (suite *UnitHandlerTestSuite) TestGetUnit_NullImageURL() {
	id := uuid.New()
	expected := &domain.Unit{ID: id, Proyecto: "Mirador", Moneda: domain.MonedaPEN}
	suite.mocks.unit.On("GetUnitByID", mock.Anything, id).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/units/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"imageUrl":null`)
	suite.mocks.unit.AssertExpectations(suite.T())
}

func (suite *UnitHandlerTestSuite) TestGetUnit_NotFound() {
	id := uuid.New()
	suite.mocks.unit.On("GetUnitByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/units/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.unit.AssertExpectations(suite.T())
}

func (suite *UnitHandlerTestSuite) TestCreateUnit_SetsLocationHeader() {
	id := uuid.New()
	created := &domain.Unit{
		ID:       id,
		Proyecto: "Las Lomas",
		Moneda:   domain.MonedaPEN,
		Precio:   decimal.NewFromFloat(98000.00),
	}
	suite.mocks.unit.On("CreateUnit", mock.Anything, mock.MatchedBy(func(r dto.UnitRequest) bool {
		return r.Proyecto == "Las Lomas" && r.Moneda == nil
	})).Return(created, nil).Once()

	payload := `{"proyecto":"Las Lomas","precio":98000}`
	req, _ := http.NewRequest(http.MethodPost, "/api/units", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("/api/units/"+id.String(), w.Header().Get("Location"))
	suite.mocks.unit.AssertExpectations(suite.T())
}

func (suite *UnitHandlerTestSuite) TestReplaceUnit_Success() {
	id := uuid.New()
	suite.mocks.unit.On("ReplaceUnit", mock.Anything, id, mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/units/"+id.String(), bytes.NewBufferString(`{"proyecto":"Mirador"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mocks.unit.AssertExpectations(suite.T())
}

func (suite *UnitHandlerTestSuite) TestDeleteUnit_MalformedIDBehavesAsNotFound() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/units/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.unit.AssertNotCalled(suite.T(), "DeleteUnit")
}

func TestUnitHandler(t *testing.T) {
	suite.Run(t, new(UnitHandlerTestSuite))
}
