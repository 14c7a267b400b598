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

// unitHandler handles HTTP requests related to real-estate units.
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{unitService: us}
}

func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := newUnitHandler(unitService)

	units := rg.Group("/units")
	{
		units.GET("", h.listUnits)
		units.GET("/:id", h.getUnit)
		units.POST("", h.createUnit)
		units.PUT("/:id", h.replaceUnit)
		units.DELETE("/:id", h.deleteUnit)
	}
}

// listUnits godoc
// @Summary List units
// @Tags units
// @Produce json
// @Success 200 {array} dto.UnitResponse
// @Failure 500 {object} map[string]string
// @Router /units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list units", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list units"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponseList(units))
}

// getUnit godoc
// @Summary Get a unit by id
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /units/{id} [get]
func (h *unitHandler) getUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	unit, err := h.unitService.GetUnitByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			logger.Error("Failed to get unit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve unit"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// createUnit godoc
// @Summary Create a unit
// @Tags units
// @Accept json
// @Produce json
// @Param unit body dto.UnitRequest true "Unit"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.unitService.CreateUnit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Unit with this id already exists"})
			return
		}
		logger.Error("Failed to create unit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/units/%s", created.ID))
	c.JSON(http.StatusCreated, dto.ToUnitResponse(created))
}

// replaceUnit godoc
// @Summary Replace a unit
// @Description Full overwrite of every stored field by id.
// @Tags units
// @Accept json
// @Param id path string true "Unit ID"
// @Param unit body dto.UnitRequest true "Unit"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /units/{id} [put]
func (h *unitHandler) replaceUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.unitService.ReplaceUnit(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			logger.Error("Failed to replace unit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace unit"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteUnit godoc
// @Summary Delete a unit
// @Tags units
// @Param id path string true "Unit ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /units/{id} [delete]
func (h *unitHandler) deleteUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.unitService.DeleteUnit(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			logger.Error("Failed to delete unit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unit"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
