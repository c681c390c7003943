package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"

	"github.com/shopspring/decimal"
)

// ReportRepository holds the cross-entity read-only queries behind the
// dashboard and report screens. Nothing here is cached; every request
// recomputes against the store.
type ReportRepository interface {
	GetRegisteredToday() ([]models.Member, error)
	GetPaidToday() ([]models.FinanceEntry, error)
	GetAttendedToday() ([]models.CheckIn, error)
	GetMonthlyFinancials(month string) ([]models.FinanceEntry, error)
	GetMissingPayments() ([]models.MissingPayment, error)

	CountActive() (int, error)
	CountFrozen() (int, error)
	CountEndingSoon() (int, error)
	CountMissingPayments() (int, error)
	TotalRevenue() (decimal.Decimal, error)
	DailyCashierTotal() (decimal.Decimal, error)
	DailyCashierTotalByUser(userID int64) (decimal.Decimal, error)
	MonthlyRevenue(month string) (decimal.Decimal, error)
	MonthlyExpenses(month string) (decimal.Decimal, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetRegisteredToday lists members whose record was created today.
func (r *reportRepository) GetRegisteredToday() ([]models.Member, error) {
	rows, err := r.db.Query(`SELECT ` + memberColumns + ` FROM clients WHERE DATE(created_at) = DATE('now')`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying today's registrations: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

// GetPaidToday lists today's payment-category ledger rows.
func (r *reportRepository) GetPaidToday() ([]models.FinanceEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, category, amount, description, recorded_by, created_at
		 FROM finances WHERE category = 'payment' AND DATE(created_at) = DATE('now')`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying today's payments: %v", ErrDatabaseError, err)
	}
	return collectFinanceEntries(rows)
}

// GetAttendedToday lists today's check-ins.
func (r *reportRepository) GetAttendedToday() ([]models.CheckIn, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, checkin_time, checked_in_by
		 FROM attendance WHERE DATE(checkin_time) = DATE('now')`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying today's attendance: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	checkins := []models.CheckIn{}
	for rows.Next() {
		var ci models.CheckIn
		var checkedInBy sql.NullInt64
		if err := rows.Scan(&ci.ID, &ci.ClientID, &ci.CheckinTime, &checkedInBy); err != nil {
			return nil, fmt.Errorf("%w: scanning check-in: %v", ErrDatabaseError, err)
		}
		if checkedInBy.Valid {
			ci.CheckedInBy = &checkedInBy.Int64
		}
		checkins = append(checkins, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating check-in rows: %v", ErrDatabaseError, err)
	}
	return checkins, nil
}

// GetMonthlyFinancials lists all ledger rows for a YYYY-MM token. This is a
// string-prefix match on the stored timestamp, not a date range.
func (r *reportRepository) GetMonthlyFinancials(month string) ([]models.FinanceEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, category, amount, description, recorded_by, created_at
		 FROM finances WHERE strftime('%Y-%m', created_at) = ?`,
		month,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying financials for %s: %v", ErrDatabaseError, month, err)
	}
	return collectFinanceEntries(rows)
}

// GetMissingPayments lists members owing money whose subscription has not
// yet lapsed. Expired members are excluded: they are a lapsed-account
// problem, not a collections problem.
func (r *reportRepository) GetMissingPayments() ([]models.MissingPayment, error) {
	rows, err := r.db.Query(
		`SELECT client_code, name, phone, end_date, amount_remaining
		 FROM clients WHERE amount_remaining > 0 AND end_date >= DATE('now')`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying missing payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	missing := []models.MissingPayment{}
	for rows.Next() {
		var m models.MissingPayment
		var phone sql.NullString
		if err := rows.Scan(&m.ClientCode, &m.Name, &phone, &m.EndDate, &m.AmountRemaining); err != nil {
			return nil, fmt.Errorf("%w: scanning missing payment: %v", ErrDatabaseError, err)
		}
		if phone.Valid {
			m.Phone = &phone.String
		}
		missing = append(missing, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating missing payment rows: %v", ErrDatabaseError, err)
	}
	return missing, nil
}

func (r *reportRepository) countWhere(query string, args ...interface{}) (int, error) {
	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting: %v", ErrDatabaseError, err)
	}
	return count, nil
}

func (r *reportRepository) sumWhere(query string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%w: summing: %v", ErrDatabaseError, err)
	}
	return total, nil
}

// CountActive counts members whose subscription has not lapsed and who are
// not frozen. The predicate deliberately overlaps with CountFrozen: a frozen
// member with a lapsed end date counts as frozen but not active.
func (r *reportRepository) CountActive() (int, error) {
	return r.countWhere(`SELECT COUNT(*) FROM clients WHERE end_date >= DATE('now') AND freeze_days = 0`)
}

// CountFrozen counts members with any freeze days outstanding.
func (r *reportRepository) CountFrozen() (int, error) {
	return r.countWhere(`SELECT COUNT(*) FROM clients WHERE freeze_days > 0`)
}

// CountEndingSoon counts members whose end date falls inside the inclusive
// [today, today+7] window.
func (r *reportRepository) CountEndingSoon() (int, error) {
	return r.countWhere(`SELECT COUNT(*) FROM clients WHERE end_date BETWEEN DATE('now') AND DATE('now', '+7 day')`)
}

// CountMissingPayments counts the collections list.
func (r *reportRepository) CountMissingPayments() (int, error) {
	return r.countWhere(`SELECT COUNT(*) FROM clients WHERE amount_remaining > 0 AND end_date >= DATE('now')`)
}

// TotalRevenue sums every payment-category row regardless of date. Expense
// rows are excluded from revenue whatever their sign.
func (r *reportRepository) TotalRevenue() (decimal.Decimal, error) {
	return r.sumWhere(`SELECT COALESCE(SUM(amount), 0) FROM finances WHERE category = 'payment'`)
}

// DailyCashierTotal sums today's payments across all users.
func (r *reportRepository) DailyCashierTotal() (decimal.Decimal, error) {
	return r.sumWhere(`SELECT COALESCE(SUM(amount), 0) FROM finances WHERE category = 'payment' AND DATE(created_at) = DATE('now')`)
}

// DailyCashierTotalByUser sums today's payments recorded by one user, used
// to reconcile a receptionist's till.
func (r *reportRepository) DailyCashierTotalByUser(userID int64) (decimal.Decimal, error) {
	return r.sumWhere(
		`SELECT COALESCE(SUM(amount), 0) FROM finances WHERE category = 'payment' AND recorded_by = ? AND DATE(created_at) = DATE('now')`,
		userID,
	)
}

// MonthlyRevenue sums payment rows for a YYYY-MM token.
func (r *reportRepository) MonthlyRevenue(month string) (decimal.Decimal, error) {
	return r.sumWhere(
		`SELECT COALESCE(SUM(amount), 0) FROM finances WHERE category = 'payment' AND strftime('%Y-%m', created_at) = ?`,
		month,
	)
}

// MonthlyExpenses sums rows tagged with the canonical 'expense' category for
// a YYYY-MM token. The by-date expense listing uses the broader
// "anything but payment" predicate; the two are intentionally different.
func (r *reportRepository) MonthlyExpenses(month string) (decimal.Decimal, error) {
	return r.sumWhere(
		`SELECT COALESCE(SUM(amount), 0) FROM finances WHERE category = 'expense' AND strftime('%Y-%m', created_at) = ?`,
		month,
	)
}
