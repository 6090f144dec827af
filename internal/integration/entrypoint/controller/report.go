// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/report"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	buildMonthlyReportUseCase *report.BuildMonthlyReportUseCase
	getSummaryUseCase         *report.GetSummaryUseCase
	getTrendsUseCase          *report.GetTrendsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	buildMonthlyReportUseCase *report.BuildMonthlyReportUseCase,
	getSummaryUseCase *report.GetSummaryUseCase,
	getTrendsUseCase *report.GetTrendsUseCase,
) *ReportController {
	return &ReportController{
		buildMonthlyReportUseCase: buildMonthlyReportUseCase,
		getSummaryUseCase:         getSummaryUseCase,
		getTrendsUseCase:          getTrendsUseCase,
	}
}

// BudgetVsActual handles GET /reports/budget-vs-actual?month=YYYY-MM requests.
func (c *ReportController) BudgetVsActual(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.buildMonthlyReportUseCase.Execute(ctx.Request.Context(), report.BuildMonthlyReportInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// Summary handles GET /reports/summary?month=YYYY-MM requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		UserID: userID,
		Month:  ctx.Query("month"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Trends handles GET /reports/trends?from=YYYY-MM&to=YYYY-MM requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), report.GetTrendsInput{
		UserID: userID,
		From:   ctx.Query("from"),
		To:     ctx.Query("to"),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
// Data-integrity failures are logged with full detail but surface as a
// generic 500; the response never names the offending rows.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		if reportErr.Code == domainerror.ErrCodeDuplicateBudgetCategory {
			slog.Error("report data integrity violation",
				"code", string(reportErr.Code),
				"error", reportErr.Error(),
				"path", ctx.FullPath(),
			)
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "An internal error occurred",
			})
			return
		}

		ctx.JSON(statusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	slog.Error("report generation failed", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportMonth,
		domainerror.ErrCodeInvalidMonthRange,
		domainerror.ErrCodeMonthRangeTooWide:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
