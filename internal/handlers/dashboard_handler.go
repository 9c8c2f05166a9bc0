package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns income/expense totals for the authenticated user
// @Summary     Get summary totals
// @Description Get total income, total expense, net balance, and transaction count, optionally restricted to a date range
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Inclusive start date (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive end date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.Summary "Summary totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(userID, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// TrendsRequest represents the query parameters for the trends endpoint.
type TrendsRequest struct {
	Period string `form:"period" binding:"omitempty,trend_period"`
}

// GetTrends returns per-period income/expense totals
// @Summary     Get trends
// @Description Get income, expense, and net totals per period bucket across all of the user's transactions, ordered by period ascending
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Bucket size: daily, weekly, or monthly (default monthly)"
// @Success     200 {array} services.TrendPoint "Trend points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/trends [get]
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid period, must be daily, weekly, or monthly"))
		return
	}
	period := services.TrendPeriod(req.Period)
	if period == "" {
		period = services.TrendPeriodMonthly
	}

	trends, err := h.dashboardService.GetTrends(userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetCategoryBreakdown returns per-category totals
// @Summary     Get category breakdown
// @Description Get per-category totals and counts with category metadata, ordered by total descending
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type       query string false "Filter by transaction type (income, expense)"
// @Param       start_date query string false "Inclusive start date (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive end date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} services.CategoryBreakdown "Category breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/category-breakdown [get]
func (h *DashboardHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var transactionType *models.TransactionType
	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			transactionType = &txType
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
			return
		}
	}

	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.dashboardService.GetCategoryBreakdown(userID, transactionType, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}
