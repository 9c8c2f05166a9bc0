package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Default categories are
// seeded at registration and cannot be modified or deleted.
type Category struct {
	Base
	UserID    string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string       `gorm:"not null" json:"name"`
	Type      CategoryType `gorm:"not null" json:"type"`
	Color     string       `json:"color"`
	Icon      string       `json:"icon"`
	IsDefault bool         `gorm:"default:false" json:"is_default"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
