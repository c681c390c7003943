package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"

	"github.com/shopspring/decimal"
)

// FinanceRepository defines the interface for ledger operations. Revenue is
// any row tagged with the literal "payment" category; everything else is an
// expense.
type FinanceRepository interface {
	AddPayment(executor SQLExecutor, clientID int64, amount decimal.Decimal, description string, userID int64) (int64, error)
	AddExpense(executor SQLExecutor, category string, amount decimal.Decimal, description string, userID int64) (int64, error)
	GetPaymentsByDate(date string) ([]models.PaymentWithMember, error)
	GetExpensesByDate(date string) ([]models.FinanceEntry, error)
	GetUnmatchedPayments() ([]models.UnmatchedPayment, error)
	GetDailyPaymentsByUser(userID int64, date string) ([]models.FinanceEntry, error)
	GetAll() ([]models.FinanceEntry, error)
}

type financeRepository struct {
	db *sql.DB
}

// NewFinanceRepository creates a new instance of FinanceRepository.
func NewFinanceRepository(db *sql.DB) FinanceRepository {
	return &financeRepository{db: db}
}

// AddPayment records a revenue row for a member.
func (r *financeRepository) AddPayment(executor SQLExecutor, clientID int64, amount decimal.Decimal, description string, userID int64) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO finances (client_id, category, amount, description, recorded_by) VALUES (?, 'payment', ?, ?, ?)`,
		clientID, amount, description, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: adding payment for client %d: %v", ErrDatabaseError, clientID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted payment id: %v", ErrDatabaseError, err)
	}
	return id, nil
}

// AddExpense records an expense row. Expenses carry no member reference.
func (r *financeRepository) AddExpense(executor SQLExecutor, category string, amount decimal.Decimal, description string, userID int64) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO finances (category, amount, description, recorded_by) VALUES (?, ?, ?, ?)`,
		category, amount, description, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: adding expense: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted expense id: %v", ErrDatabaseError, err)
	}
	return id, nil
}

// GetPaymentsByDate lists payment rows for one calendar day, left-joined with
// members so unmatched payments still appear.
func (r *financeRepository) GetPaymentsByDate(date string) ([]models.PaymentWithMember, error) {
	rows, err := r.db.Query(
		`SELECT f.id, c.client_code, c.name, f.amount, f.description
		 FROM finances f LEFT JOIN clients c ON f.client_id = c.id
		 WHERE f.category = 'payment' AND DATE(f.created_at) = ?`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments for %s: %v", ErrDatabaseError, date, err)
	}
	defer rows.Close()

	payments := []models.PaymentWithMember{}
	for rows.Next() {
		var p models.PaymentWithMember
		var code, name, description sql.NullString
		if err := rows.Scan(&p.ID, &code, &name, &p.Amount, &description); err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		if code.Valid {
			p.ClientCode = &code.String
		}
		if name.Valid {
			p.Name = &name.String
		}
		if description.Valid {
			p.Description = &description.String
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// GetExpensesByDate lists non-payment rows for one calendar day. The listing
// keeps the broad predicate (any category other than 'payment'); the monthly
// net-profit rollup uses the narrower category = 'expense' match.
func (r *financeRepository) GetExpensesByDate(date string) ([]models.FinanceEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, category, amount, description, recorded_by, created_at
		 FROM finances WHERE category != 'payment' AND DATE(created_at) = ?`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenses for %s: %v", ErrDatabaseError, date, err)
	}
	return collectFinanceEntries(rows)
}

// GetUnmatchedPayments flags payment rows lacking a valid member reference or
// carrying a non-positive amount. A data-quality signal surfaced in the UI,
// not a constraint enforced at write time.
func (r *financeRepository) GetUnmatchedPayments() ([]models.UnmatchedPayment, error) {
	rows, err := r.db.Query(
		`SELECT f.id, c.client_code, c.name, f.amount
		 FROM finances f LEFT JOIN clients c ON f.client_id = c.id
		 WHERE f.category = 'payment' AND (f.client_id IS NULL OR f.amount <= 0)`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying unmatched payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	unmatched := []models.UnmatchedPayment{}
	for rows.Next() {
		var u models.UnmatchedPayment
		var code, name sql.NullString
		if err := rows.Scan(&u.ID, &code, &name, &u.Amount); err != nil {
			return nil, fmt.Errorf("%w: scanning unmatched payment: %v", ErrDatabaseError, err)
		}
		if code.Valid {
			u.ClientCode = &code.String
		}
		if name.Valid {
			u.Name = &name.String
		}
		unmatched = append(unmatched, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating unmatched payment rows: %v", ErrDatabaseError, err)
	}
	return unmatched, nil
}

// GetDailyPaymentsByUser lists one user's payment rows for a day, used to
// reconcile a receptionist's till.
func (r *financeRepository) GetDailyPaymentsByUser(userID int64, date string) ([]models.FinanceEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, category, amount, description, recorded_by, created_at
		 FROM finances WHERE category = 'payment' AND recorded_by = ? AND DATE(created_at) = ?`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying daily payments for user %d: %v", ErrDatabaseError, userID, err)
	}
	return collectFinanceEntries(rows)
}

// GetAll retrieves the entire ledger.
func (r *financeRepository) GetAll() ([]models.FinanceEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, category, amount, description, recorded_by, created_at FROM finances`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying finances: %v", ErrDatabaseError, err)
	}
	return collectFinanceEntries(rows)
}

func collectFinanceEntries(rows *sql.Rows) ([]models.FinanceEntry, error) {
	defer rows.Close()
	entries := []models.FinanceEntry{}
	for rows.Next() {
		var e models.FinanceEntry
		var clientID, recordedBy sql.NullInt64
		var description sql.NullString
		if err := rows.Scan(&e.ID, &clientID, &e.Category, &e.Amount, &description, &recordedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning finance entry: %v", ErrDatabaseError, err)
		}
		if clientID.Valid {
			e.ClientID = &clientID.Int64
		}
		if recordedBy.Valid {
			e.RecordedBy = &recordedBy.Int64
		}
		if description.Valid {
			e.Description = &description.String
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating finance rows: %v", ErrDatabaseError, err)
	}
	return entries, nil
}
