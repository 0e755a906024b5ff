package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/services"
	"github.com/dsu-aiml/portal/internal/middleware"
)

// StatsController serves department statistics and the liveness probe
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats returns the aggregate counters
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: stats})
}

// Health reports that the process is serving
func (c *StatsController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}
