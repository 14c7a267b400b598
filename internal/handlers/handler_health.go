package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness probe
// @Description Reports that the process is up, with the current UTC time.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
}

func registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
}
