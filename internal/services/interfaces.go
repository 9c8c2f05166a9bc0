package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryUpdateFields holds optional fields for a partial category update.
// Nil pointers leave the corresponding field unchanged.
type CategoryUpdateFields struct {
	Name  *string
	Color *string
	Icon  *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, color, icon string) (*models.Category, error)
	SeedDefaultCategories(userID string) error
	GetUserCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID string, fields CategoryUpdateFields) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing,
// exporting, and aggregating transactions. Criteria compose as a
// conjunction; any subset (including none) is valid.
type TransactionFilter struct {
	Type       *models.TransactionType
	CategoryID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// TransactionUpdateFields holds optional fields for a partial transaction
// update. Nil pointers leave the corresponding field unchanged.
type TransactionUpdateFields struct {
	CategoryID  *string
	Type        *models.TransactionType
	Amount      *int64
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	ExportTransactionsCSV(userID string, filter TransactionFilter) ([]byte, error)
}

// TrendPeriod is the bucket size for trend aggregation.
type TrendPeriod string

const (
	TrendPeriodDaily   TrendPeriod = "daily"
	TrendPeriodWeekly  TrendPeriod = "weekly"
	TrendPeriodMonthly TrendPeriod = "monthly"
)

// Summary contains income/expense totals for a user over an optional
// date range. All figures are computed from the same snapshot, so
// NetBalance always equals TotalIncome - TotalExpense.
type Summary struct {
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	NetBalance       int64 `json:"net_balance"`
	TransactionCount int64 `json:"transaction_count"`
}

// TrendPoint contains income and expense totals for one period bucket.
// Buckets with activity of only one type carry a zero for the other.
type TrendPoint struct {
	Period  string `json:"period"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// CategoryBreakdown contains aggregated transaction data for one category.
type CategoryBreakdown struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	Total        int64  `json:"total"`
	Count        int64  `json:"count"`
}

// DashboardServicer defines the contract for dashboard aggregation queries.
type DashboardServicer interface {
	GetSummary(userID string, startDate, endDate *time.Time) (*Summary, error)
	GetTrends(userID string, period TrendPeriod) ([]TrendPoint, error)
	GetCategoryBreakdown(userID string, transactionType *models.TransactionType, startDate, endDate *time.Time) ([]CategoryBreakdown, error)
}
