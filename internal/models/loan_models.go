package models

import "github.com/shopspring/decimal"

// Loan is one ledger row of a member's informal credit. Positive amounts are
// outstanding debt; repayments are recorded as negative rows. The running
// balance is the sum of all rows for a member, never a stored field.
type Loan struct {
	ID          int64           `json:"id" db:"id"`
	ClientID    int64           `json:"client_id" db:"client_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description *string         `json:"description,omitempty" db:"description"`
	CreatedAt   string          `json:"created_at" db:"created_at"`
}
