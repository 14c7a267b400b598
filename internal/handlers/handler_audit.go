package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/creditapp/creditapp-api/internal/apperrors"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
	"github.com/creditapp/creditapp-api/internal/dto"
	"github.com/creditapp/creditapp-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit trail. The trail is
// append-only: entries can be created and listed, never changed or removed.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("", h.listAuditLogs)
		audit.POST("", h.createAuditLog)
	}
}

// listAuditLogs godoc
// @Summary List audit entries, newest first
// @Tags audit
// @Produce json
// @Success 200 {array} dto.AuditLogResponse
// @Failure 500 {object} map[string]string
// @Router /audit [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	logs, err := h.auditService.ListAuditLogs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit logs"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponseList(logs))
}

// createAuditLog godoc
// @Summary Append an audit entry
// @Tags audit
// @Accept json
// @Produce json
// @Param entry body dto.AuditLogRequest true "Audit entry"
// @Success 201 {object} dto.AuditLogResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /audit [post]
func (h *auditHandler) createAuditLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AuditLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.auditService.CreateAuditLog(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Audit entry with this id already exists"})
			return
		}
		logger.Error("Failed to create audit log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create audit log"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/audit/%s", created.ID))
	c.JSON(http.StatusCreated, dto.ToAuditLogResponse(created))
}
