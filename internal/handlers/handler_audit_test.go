package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creditapp/creditapp-api/internal/core/domain"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
}

func (suite *AuditHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *AuditHandlerTestSuite) TestListAuditLogs_NewestFirst() {
	now := time.Now().UTC()
	expected := []domain.AuditLog{
		{ID: uuid.New(), Action: "DELETE", Entity: "client", Timestamp: now},
		{ID: uuid.New(), Action: "CREATE", Entity: "client", Timestamp: now.Add(-time.Hour)},
	}
	suite.mocks.audit.On("ListAuditLogs", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/audit", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.AuditLogResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("DELETE", body[0].Action)
	suite.Equal("CREATE", body[1].Action)
	suite.True(body[0].Timestamp.After(body[1].Timestamp))
	suite.mocks.audit.AssertExpectations(suite.T())
}

func (suite *AuditHandlerTestSuite) TestCreateAuditLog_Success() {
	id := uuid.New()
	created := &domain.AuditLog{
		ID:        id,
		UserEmail: "asesor@example.com",
		Action:    "UPDATE",
		Entity:    "config",
		EntityID:  uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Payload:   json.RawMessage(`{"before":{"moneda":"PEN"}}`),
	}
	suite.mocks.audit.On("CreateAuditLog", mock.Anything, mock.MatchedBy(func(r dto.AuditLogRequest) bool {
		return r.UserEmail == "asesor@example.com" && r.Timestamp == nil
	})).Return(created, nil).Once()

	payload := `{"userEmail":"asesor@example.com","action":"UPDATE","entity":"config","payload":{"before":{"moneda":"PEN"}}}`
	req, _ := http.NewRequest(http.MethodPost, "/api/audit", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.AuditLogResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(id, body.ID)
	suite.False(body.Timestamp.IsZero())
	suite.JSONEq(`{"before":{"moneda":"PEN"}}`, string(body.Payload))
	suite.mocks.audit.AssertExpectations(suite.T())
}

func (suite *AuditHandlerTestSuite) TestCreateAuditLog_InvalidJSON() {
	req, _ := http.NewRequest(http.MethodPost, "/api/audit", bytes.NewBufferString(`{"action"`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.audit.AssertNotCalled(suite.T(), "CreateAuditLog")
}

// The audit trail is append-only; update and delete are not routed.
func (suite *AuditHandlerTestSuite) TestDeleteAuditLog_NotRouted() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/audit/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAuditHandler(t *testing.T) {
	suite.Run(t, new(AuditHandlerTestSuite))
}
