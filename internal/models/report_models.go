package models

import "github.com/shopspring/decimal"

// DashboardSummary holds the derived metrics shown on the dashboard.
// Active and frozen are overlapping predicates: a frozen member whose end
// date has passed is excluded from active but still counted as frozen.
type DashboardSummary struct {
	ActiveMembers    int             `json:"active_members"`
	FrozenMembers    int             `json:"frozen_members"`
	EndingSoon       int             `json:"ending_soon"`
	MissingPayments  int             `json:"missing_payments"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	DailyCashier     decimal.Decimal `json:"daily_cashier"`
	InviteConversion string          `json:"invite_conversion"` // "N/M"
}

// MonthlySummary is the month rollup for the finance screen.
// Expenses are matched by category = 'expense' (see DESIGN.md).
type MonthlySummary struct {
	Month     string          `json:"month"` // YYYY-MM
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

// MissingPayment is a member owing money whose subscription has not yet
// lapsed. Expired members are a lapsed-account problem, not a collections one.
type MissingPayment struct {
	ClientCode      string          `json:"client_code"`
	Name            string          `json:"name"`
	Phone           *string         `json:"phone,omitempty"`
	EndDate         string          `json:"end_date"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
}

// ReportTable is the (headers, rows) tuple handed to export writers.
type ReportTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
