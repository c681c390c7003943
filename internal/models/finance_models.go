package models

import "github.com/shopspring/decimal"

// CategoryPayment is the literal tag marking a finance row as revenue.
// Any other category is an expense.
const CategoryPayment = "payment"

// CategoryExpense is the canonical expense category used by the monthly
// net-profit rollup.
const CategoryExpense = "expense"

// FinanceEntry is one ledger row. ClientID is nil for expenses.
type FinanceEntry struct {
	ID          int64           `json:"id" db:"id"`
	ClientID    *int64          `json:"client_id,omitempty" db:"client_id"`
	Category    string          `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description *string         `json:"description,omitempty" db:"description"`
	RecordedBy  *int64          `json:"recorded_by,omitempty" db:"recorded_by"`
	CreatedAt   string          `json:"created_at" db:"created_at"`
}

// PaymentWithMember is the payments-by-date projection. The member side of
// the join is optional, so code and name may be absent.
type PaymentWithMember struct {
	ID          int64           `json:"id"`
	ClientCode  *string         `json:"client_code,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

// UnmatchedPayment is a payment-category row lacking a valid member
// reference or carrying a non-positive amount. A data-quality signal, not a
// schema violation.
type UnmatchedPayment struct {
	ID         int64           `json:"id"`
	ClientCode *string         `json:"client_code,omitempty"`
	Name       *string         `json:"name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}
