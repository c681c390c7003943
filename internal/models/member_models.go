package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage form of all calendar dates.
const DateLayout = "2006-01-02"

// Subscription types offered by the gym.
const (
	SubscriptionNormal  = "Normal"
	SubscriptionPrivate = "Private"
	SubscriptionUnder15 = "Under 15"
	SubscriptionBox     = "Box"
)

// Derived subscription statuses. Exactly one is reported per member;
// ending_soon is shown instead of active inside the 7-day window.
const (
	StatusActive     = "active"
	StatusExpired    = "expired"
	StatusEndingSoon = "ending_soon"
)

// Member represents a gym subscriber. ClientCode is the stable external key,
// assigned at creation and never mutated. Guardian fields are required only
// for the Under 15 subscription type.
type Member struct {
	ID               int64           `json:"id" db:"id"`
	ClientCode       string          `json:"client_code" db:"client_code" binding:"required"`
	Name             string          `json:"name" db:"name" binding:"required"`
	Phone            *string         `json:"phone,omitempty" db:"phone"`
	SubscriptionType string          `json:"subscription_type" db:"subscription_type" binding:"required"`
	StartDate        string          `json:"start_date" db:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate          string          `json:"end_date" db:"end_date" binding:"required"`     // YYYY-MM-DD
	AmountPaid       decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining" db:"amount_remaining"`
	FreezeDays       int             `json:"freeze_days" db:"freeze_days"`
	Rotation         *string         `json:"rotation,omitempty" db:"rotation"`
	GuardianName     *string         `json:"guardian_name,omitempty" db:"guardian_name"`
	GuardianPhone    *string         `json:"guardian_phone,omitempty" db:"guardian_phone"`
	CreatedAt        string          `json:"created_at" db:"created_at"`

	// Derived fields, never stored.
	Status string `json:"status,omitempty"`
	Frozen bool   `json:"frozen"`
}

// SubscriptionStatus derives the status of a membership from its end date.
// The boundaries are inclusive: a member whose end date equals today is not
// expired, and an end date of today+7 still counts as ending soon. An
// unparseable end date is reported as expired.
func SubscriptionStatus(endDate string, today time.Time) string {
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return StatusExpired
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(day) {
		return StatusExpired
	}
	if !end.After(day.AddDate(0, 0, 7)) {
		return StatusEndingSoon
	}
	return StatusActive
}

// Derive fills the computed Status and Frozen fields.
func (m *Member) Derive(today time.Time) {
	m.Status = SubscriptionStatus(m.EndDate, today)
	m.Frozen = m.FreezeDays > 0
}
