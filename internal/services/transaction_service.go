package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// exportRowLimit caps a CSV export so a single request cannot stream an
// unbounded result set.
const exportRowLimit = 10000

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction creates a new transaction for a user. The category
// must exist and belong to the same user; the category's type is not
// required to match the transaction's type.
func (s *transactionService) CreateTransaction(
	userID string,
	categoryID string,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if categoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	// Ensure the category exists and belongs to the user
	if _, err := s.categoryService.GetCategoryByID(userID, categoryID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        truncateToDay(date),
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of a user's
// transactions ordered by date descending (newest insertion first on
// ties). A page past the end returns an empty data slice, not an error.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.Limit, total)
	return &result, nil
}

// applyTransactionFilters translates the typed filter predicate into a
// WHERE clause. Supplied criteria compose as a conjunction; absent
// criteria add nothing.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.Search != "" {
		q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
// A transaction owned by another user is reported as not found.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
// Unset fields are left unchanged; set fields overwrite entirely.
func (s *transactionService) UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *fields.Amount
	}
	if fields.Type != nil {
		if *fields.Type != models.TransactionTypeIncome && *fields.Type != models.TransactionTypeExpense {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *fields.Type
	}
	if fields.CategoryID != nil {
		if _, err := s.categoryService.GetCategoryByID(userID, *fields.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Date != nil {
		if fields.Date.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date cannot be empty")
		}
		updates["date"] = truncateToDay(*fields.Date)
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction permanently deletes a transaction. Deleting the
// same ID twice fails with not-found the second time.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ExportTransactionsCSV serializes all transactions matching the filter
// (up to exportRowLimit rows) as RFC 4180 CSV. Every field is escaped,
// so descriptions may contain commas, quotes, and newlines.
func (s *transactionService) ExportTransactionsCSV(userID string, filter TransactionFilter) ([]byte, error) {
	q := s.db.Where("user_id = ?", userID)
	q = applyTransactionFilters(q, filter)

	var transactions []models.Transaction
	if err := q.Preload("Category").
		Order("date DESC, id DESC").
		Limit(exportRowLimit).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Type", "Category", "Amount", "Description"}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range transactions {
		t := &transactions[i]
		categoryName := ""
		if t.Category != nil {
			categoryName = t.Category.Name
		}
		record := []string{
			t.Date.Format("2006-01-02"),
			string(t.Type),
			categoryName,
			formatAmount(t.Amount),
			t.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// formatAmount renders an amount in minor units as a decimal string,
// e.g. 5000 -> "50.00".
func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// truncateToDay normalizes a timestamp to midnight UTC, since a
// transaction date is a calendar day without a time component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
