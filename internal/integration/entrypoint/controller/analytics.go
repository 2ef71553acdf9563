// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AminataF33/budgetappback/internal/application/usecase/analytics"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/dto"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics and reporting endpoints.
type AnalyticsController struct {
	summaryUseCase      *analytics.SummaryUseCase
	budgetReportUseCase *analytics.BudgetReportUseCase
	goalReportUseCase   *analytics.GoalReportUseCase
	insightsUseCase     *analytics.InsightsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.SummaryUseCase,
	budgetReportUseCase *analytics.BudgetReportUseCase,
	goalReportUseCase *analytics.GoalReportUseCase,
	insightsUseCase *analytics.InsightsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:      summaryUseCase,
		budgetReportUseCase: budgetReportUseCase,
		goalReportUseCase:   goalReportUseCase,
		insightsUseCase:     insightsUseCase,
	}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
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

	input := analytics.SummaryInput{
		UserID: userID,
		Period: period,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsSummaryResponse(output))
}

// BudgetReport handles GET /analytics/budgets requests.
func (c *AnalyticsController) BudgetReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.budgetReportUseCase.Execute(ctx.Request.Context(), analytics.BudgetReportInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetReportResponse(output))
}

// GoalReport handles GET /analytics/goals requests.
func (c *AnalyticsController) GoalReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.goalReportUseCase.Execute(ctx.Request.Context(), analytics.GoalReportInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute goal report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalReportResponse(output))
}

// Insights handles GET /analytics/insights requests.
func (c *AnalyticsController) Insights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), analytics.InsightsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}
