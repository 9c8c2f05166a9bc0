package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// dashboardService computes aggregate views over a user's transactions.
// Every call is computed from current persisted data; nothing is cached.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetSummary returns income/expense totals, net balance, and transaction
// count for a user, optionally restricted to an inclusive date range.
func (s *dashboardService) GetSummary(userID string, startDate, endDate *time.Time) (*Summary, error) {
	type typeTotal struct {
		Type  models.TransactionType
		Total int64
		Count int64
	}

	q := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID)
	q = applyDateRange(q, "date", startDate, endDate)

	var rows []typeTotal
	if err := q.Group("type").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &Summary{}
	for _, row := range rows {
		switch row.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome = row.Total
		case models.TransactionTypeExpense:
			summary.TotalExpense = row.Total
		}
		summary.TransactionCount += row.Count
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}

// GetTrends groups all of a user's transactions into period buckets and
// returns one point per bucket with income, expense, and net side by
// side, ordered by period ascending. A bucket missing one type carries
// an explicit zero. Bucketing happens in-process so the same code path
// serves every SQL dialect.
func (s *dashboardService) GetTrends(userID string, period TrendPeriod) ([]TrendPoint, error) {
	switch period {
	case TrendPeriodDaily, TrendPeriodWeekly, TrendPeriodMonthly:
	case "":
		period = TrendPeriodMonthly
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be daily, weekly, or monthly")
	}

	type dateAmount struct {
		Date   time.Time
		Type   models.TransactionType
		Amount int64
	}

	var rows []dateAmount
	if err := s.db.Model(&models.Transaction{}).
		Select("date, type, amount").
		Where("user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buckets := make(map[string]*TrendPoint)
	for _, row := range rows {
		key := bucketKey(row.Date, period)
		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Period: key}
			buckets[key] = point
		}
		switch row.Type {
		case models.TransactionTypeIncome:
			point.Income += row.Amount
		case models.TransactionTypeExpense:
			point.Expense += row.Amount
		}
	}

	points := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		point.Net = point.Income - point.Expense
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	return points, nil
}

// bucketKey derives the period grouping key for a transaction date.
// Keys sort lexicographically in chronological order.
func bucketKey(date time.Time, period TrendPeriod) string {
	switch period {
	case TrendPeriodDaily:
		return date.Format("2006-01-02")
	case TrendPeriodWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return date.Format("2006-01")
	}
}

// GetCategoryBreakdown aggregates matching transactions per category,
// joined with category display metadata, ordered by total descending.
// Percentages are left to the consumer: the sum of all returned totals
// is the grand total for the filter.
func (s *dashboardService) GetCategoryBreakdown(userID string, transactionType *models.TransactionType, startDate, endDate *time.Time) ([]CategoryBreakdown, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, categories.name AS category_name, categories.color AS color, categories.icon AS icon, COALESCE(SUM(transactions.amount), 0) AS total, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID)
	if transactionType != nil {
		q = q.Where("transactions.type = ?", *transactionType)
	}
	q = applyDateRange(q, "transactions.date", startDate, endDate)

	var breakdown []CategoryBreakdown
	if err := q.Group("transactions.category_id, categories.name, categories.color, categories.icon").
		Order("total DESC").
		Scan(&breakdown).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if breakdown == nil {
		breakdown = []CategoryBreakdown{}
	}
	return breakdown, nil
}

// applyDateRange adds inclusive bounds on the given date column. Either
// bound may be absent for an open-ended range.
func applyDateRange(q *gorm.DB, column string, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		q = q.Where(column+" >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where(column+" <= ?", *endDate)
	}
	return q
}
