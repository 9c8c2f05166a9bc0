package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn     func(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	getUserTransactionsFn   func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn    func(userID, transactionID string) (*models.Transaction, error)
	updateTransactionFn     func(userID, transactionID string, fields services.TransactionUpdateFields) (*models.Transaction, error)
	deleteTransactionFn     func(userID, transactionID string) error
	exportTransactionsCSVFn func(userID string, filter services.TransactionFilter) ([]byte, error)
}

func (m *mockTransactionService) CreateTransaction(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, categoryID, transactionType, amount, description, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID string, fields services.TransactionUpdateFields) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, fields)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

func (m *mockTransactionService) ExportTransactionsCSV(userID string, filter services.TransactionFilter) ([]byte, error) {
	if m.exportTransactionsCSVFn != nil {
		return m.exportTransactionsCSVFn(userID, filter)
	}
	return []byte("Date,Type,Category,Amount,Description\n"), nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

const testTransactionID = "0194e0aa-0000-7000-8000-0000000000f1"

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetUserTransactions)
	auth.GET("/transactions/export", handler.ExportTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID, categoryID string, txType models.TransactionType, amount int64, desc string, date time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: testTransactionID},
					UserID:      userID,
					CategoryID:  categoryID,
					Type:        txType,
					Amount:      amount,
					Description: desc,
					Date:        date,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"expense","amount":5000,"description":"Dinner","date":"2026-01-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 5000 {
			t.Errorf("expected amount 5000, got %v", tx["amount"])
		}
	})

	t.Run("accepts RFC3339 dates", func(t *testing.T) {
		var gotDate time.Time
		txSvc := &mockTransactionService{
			createTransactionFn: func(_, _ string, _ models.TransactionType, _ int64, _ string, date time.Time) (*models.Transaction, error) {
				gotDate = date
				return &models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"expense","amount":100,"date":"2026-01-15T10:30:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDate.Format("2006-01-02") != "2026-01-15" {
			t.Errorf("expected date 2026-01-15, got %s", gotDate)
		}
	})

	t.Run("returns 400 on missing category_id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"type":"income","amount":5000,"date":"2026-01-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"expense","amount":0,"date":"2026-01-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"transfer","amount":1000,"date":"2026-01-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"expense","amount":1000,"date":"15/01/2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when category not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_, _ string, _ models.TransactionType, _ int64, _ string, _ time.Time) (*models.Transaction, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","type":"expense","amount":1000,"date":"2026-01-15"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("passes pagination and filters to the service", func(t *testing.T) {
		var gotPage pagination.PageRequest
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotPage = page
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.Limit, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions?page=2&limit=50&type=expense&search=coffee", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPage.Page != 2 || gotPage.Limit != 50 {
			t.Errorf("expected page=2 limit=50, got %+v", gotPage)
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense type filter, got %v", gotFilter.Type)
		}
		if gotFilter.Search != "coffee" {
			t.Errorf("expected search coffee, got %q", gotFilter.Search)
		}
	})

	t.Run("returns pagination envelope", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, _ pagination.PageRequest, _ services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				resp := pagination.NewPageResponse([]models.Transaction{{Amount: 100}}, 1, 20, 45)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total"].(float64) != 45 {
			t.Errorf("expected total 45, got %v", result["total"])
		}
		if result["total_pages"].(float64) != 3 {
			t.Errorf("expected total_pages 3, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on limit above cap", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?limit=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed category_id filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?category_id=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed start_date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?start_date=January", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ExportTransactions(t *testing.T) {
	t.Run("returns CSV attachment", func(t *testing.T) {
		txSvc := &mockTransactionService{
			exportTransactionsCSVFn: func(_ string, _ services.TransactionFilter) ([]byte, error) {
				return []byte("Date,Type,Category,Amount,Description\n2026-01-15,expense,Food,50.00,Dinner\n"), nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions/export", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected Content-Type text/csv, got %s", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="transactions.csv"` {
			t.Errorf("unexpected Content-Disposition: %s", cd)
		}
		if rec.Body.Len() == 0 {
			t.Error("expected CSV body")
		}
	})

	t.Run("applies the same filters as the listing", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			exportTransactionsCSVFn: func(_ string, filter services.TransactionFilter) ([]byte, error) {
				gotFilter = filter
				return []byte("Date,Type,Category,Amount,Description\n"), nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions/export?type=income&search=salary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeIncome {
			t.Errorf("expected income filter, got %v", gotFilter.Type)
		}
		if gotFilter.Search != "salary" {
			t.Errorf("expected search salary, got %q", gotFilter.Search)
		}
	})
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(_, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("passes only provided fields", func(t *testing.T) {
		var gotFields services.TransactionUpdateFields
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_, _ string, fields services.TransactionUpdateFields) (*models.Transaction, error) {
				gotFields = fields
				return &models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/"+testTransactionID, `{"amount":250}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFields.Amount == nil || *gotFields.Amount != 250 {
			t.Errorf("expected amount 250, got %v", gotFields.Amount)
		}
		if gotFields.Description != nil || gotFields.Type != nil || gotFields.CategoryID != nil || gotFields.Date != nil {
			t.Error("expected omitted fields to stay unset")
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "PUT", "/transactions/"+testTransactionID, `{"date":"tomorrow"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_, _ string, _ services.TransactionUpdateFields) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/"+testTransactionID, `{"amount":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "DELETE", "/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when already deleted", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(_, _ string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "DELETE", "/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
