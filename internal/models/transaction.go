package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single dated money movement owned by one user.
// Amount is stored in minor units (cents) and is always positive; the
// type decides whether it counts as income or expense. Date is the
// calendar day the transaction occurred, distinct from the audit
// timestamps on Base.
//
// Composite indexes back the supported filter and aggregation patterns:
// (user_id, date), (user_id, category_id), (user_id, type).
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_tx_user_date,priority:1;index:idx_tx_user_category,priority:1;index:idx_tx_user_type,priority:1" json:"user_id"`
	CategoryID  string          `gorm:"type:uuid;not null;index:idx_tx_user_category,priority:2" json:"category_id"`
	Type        TransactionType `gorm:"not null;index:idx_tx_user_type,priority:2" json:"type"`
	Amount      int64           `gorm:"not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index:idx_tx_user_date,priority:2" json:"date"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
