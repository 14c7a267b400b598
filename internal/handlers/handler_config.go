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

// configHandler handles HTTP requests related to rate configurations.
// There is no single-row read: the front-end only ever lists configs.
type configHandler struct {
	configService portssvc.ConfigSvcFacade
}

func newConfigHandler(cs portssvc.ConfigSvcFacade) *configHandler {
	return &configHandler{configService: cs}
}

func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.ConfigSvcFacade) {
	h := newConfigHandler(configService)

	configs := rg.Group("/configs")
	{
		configs.GET("", h.listConfigs)
		configs.POST("", h.createConfig)
		configs.PUT("/:id", h.replaceConfig)
		configs.DELETE("/:id", h.deleteConfig)
	}
}

// listConfigs godoc
// @Summary List rate configurations
// @Tags configs
// @Produce json
// @Success 200 {array} dto.ConfigResponse
// @Failure 500 {object} map[string]string
// @Router /configs [get]
func (h *configHandler) listConfigs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	configs, err := h.configService.ListConfigs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list configs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list configs"})
		return
	}
	c.JSON(http.StatusOK, dto.ToConfigResponseList(configs))
}

// createConfig godoc
// @Summary Create a rate configuration
// @Description Omitted fields take the creation-time defaults (PEN, EFECTIVA, 12.5, NINGUNA).
// @Tags configs
// @Accept json
// @Produce json
// @Param config body dto.ConfigRequest true "Config"
// @Success 201 {object} dto.ConfigResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /configs [post]
func (h *configHandler) createConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.configService.CreateConfig(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Config with this id already exists"})
			return
		}
		logger.Error("Failed to create config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create config"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/configs/%s", created.ID))
	c.JSON(http.StatusCreated, dto.ToConfigResponse(created))
}

// replaceConfig godoc
// @Summary Replace a rate configuration
// @Description Full overwrite of every stored field by id.
// @Tags configs
// @Accept json
// @Param id path string true "Config ID"
// @Param config body dto.ConfigRequest true "Config"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /configs/{id} [put]
func (h *configHandler) replaceConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.configService.ReplaceConfig(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Config not found"})
		} else {
			logger.Error("Failed to replace config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace config"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteConfig godoc
// @Summary Delete a rate configuration
// @Tags configs
// @Param id path string true "Config ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /configs/{id} [delete]
func (h *configHandler) deleteConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.configService.DeleteConfig(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Config not found"})
		} else {
			logger.Error("Failed to delete config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete config"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
