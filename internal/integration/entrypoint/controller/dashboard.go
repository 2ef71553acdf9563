// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AminataF33/budgetappback/internal/application/usecase/dashboard"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/dto"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.SummaryUseCase
	statsUseCase   *dashboard.StatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.SummaryUseCase,
	statsUseCase *dashboard.StatsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		statsUseCase:   statsUseCase,
	}
}

// Summary handles GET /dashboard requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.SummaryInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	period := entity.Period(ctx.DefaultQuery("period", string(entity.PeriodMonth)))
	if !entity.ValidPeriod(period) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period",
		})
		return
	}

	input := dashboard.StatsInput{
		UserID: userID,
		Period: period,
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}
