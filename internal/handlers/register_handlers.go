package handlers

import (
	"net/http"

	"github.com/creditapp/creditapp-api/cmd/docs"
	portssvc "github.com/creditapp/creditapp-api/internal/core/ports/services"
	"github.com/creditapp/creditapp-api/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHealthRoutes(r)

	api := r.Group("/api")
	registerClientRoutes(api, services.Client)
	registerUnitRoutes(api, services.Unit)
	registerConfigRoutes(api, services.Config)
	registerSimulationRoutes(api, services.Simulation)
	registerAuditRoutes(api, services.Audit)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// parseIDParam parses the :id path segment. An unparseable id behaves
// exactly like an id that matches no row: the route responds 404.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
