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

// simulationHandler handles HTTP requests related to simulations.
// Simulations are immutable once created: no replace endpoint exists.
type simulationHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

func newSimulationHandler(ss portssvc.SimulationSvcFacade) *simulationHandler {
	return &simulationHandler{simulationService: ss}
}

func registerSimulationRoutes(rg *gin.RouterGroup, simulationService portssvc.SimulationSvcFacade) {
	h := newSimulationHandler(simulationService)

	sims := rg.Group("/simulations")
	{
		sims.GET("", h.listSimulations)
		sims.POST("", h.createSimulation)
		sims.DELETE("/:id", h.deleteSimulation)
	}
}

// listSimulations godoc
// @Summary List simulations
// @Tags simulations
// @Produce json
// @Success 200 {array} dto.SimulationResponse
// @Failure 500 {object} map[string]string
// @Router /simulations [get]
func (h *simulationHandler) listSimulations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sims, err := h.simulationService.ListSimulations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list simulations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list simulations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSimulationResponseList(sims))
}

// createSimulation godoc
// @Summary Create a simulation
// @Description Stores a simulation run; resultados and schedule are opaque documents.
// @Tags simulations
// @Accept json
// @Produce json
// @Param simulation body dto.SimulationRequest true "Simulation"
// @Success 201 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /simulations [post]
func (h *simulationHandler) createSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.simulationService.CreateSimulation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Simulation with this id already exists"})
			return
		}
		logger.Error("Failed to create simulation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create simulation"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/simulations/%s", created.ID))
	c.JSON(http.StatusCreated, dto.ToSimulationResponse(created))
}

// deleteSimulation godoc
// @Summary Delete a simulation
// @Tags simulations
// @Param id path string true "Simulation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /simulations/{id} [delete]
func (h *simulationHandler) deleteSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.simulationService.DeleteSimulation(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Simulation not found"})
		} else {
			logger.Error("Failed to delete simulation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete simulation"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
