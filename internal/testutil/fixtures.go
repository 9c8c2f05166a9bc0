package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a custom category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()
	name := fmt.Sprintf("Test Category %d", nextID())
	return CreateTestCategoryWithName(t, db, userID, categoryType, name)
}

// CreateTestCategoryWithName creates a custom category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
		Color:  "#FF5722",
		Icon:   "🧾",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDefaultCategory creates a protected default category.
func CreateTestDefaultCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:    userID,
		Name:      fmt.Sprintf("Default Category %d", nextID()),
		Type:      categoryType,
		Color:     "#9E9E9E",
		Icon:      "📦",
		IsDefault: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test default category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction on the given day (YYYY-MM-DD).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, transactionType models.TransactionType, amount int64, day string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWithDescription(t, db, userID, categoryID, transactionType, amount, day, "")
}

// CreateTestTransactionWithDescription creates a transaction with a description.
func CreateTestTransactionWithDescription(t *testing.T, db *gorm.DB, userID, categoryID string, transactionType models.TransactionType, amount int64, day, description string) *models.Transaction {
	t.Helper()

	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("invalid test transaction day %q: %v", day, err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
