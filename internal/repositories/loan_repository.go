package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"

	"github.com/shopspring/decimal"
)

// LoanRepository defines the interface for loan-ledger operations.
// Repayments are negative-amount rows; the running balance is always the sum
// over all rows for a member.
type LoanRepository interface {
	Add(executor SQLExecutor, loan *models.Loan) (int64, error)
	GetByClient(clientID int64) ([]models.Loan, error)
	GetAll() ([]models.Loan, error)
	RunningBalance(clientID int64) (decimal.Decimal, error)
}

type loanRepository struct {
	db *sql.DB
}

// NewLoanRepository creates a new instance of LoanRepository.
func NewLoanRepository(db *sql.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Add records one loan row.
func (r *loanRepository) Add(executor SQLExecutor, loan *models.Loan) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO loans (client_id, amount, description) VALUES (?, ?, ?)`,
		loan.ClientID, loan.Amount, loan.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: adding loan for client %d: %v", ErrDatabaseError, loan.ClientID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted loan id: %v", ErrDatabaseError, err)
	}
	loan.ID = id
	return id, nil
}

// GetByClient lists one member's loan rows.
func (r *loanRepository) GetByClient(clientID int64) ([]models.Loan, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, amount, description, created_at FROM loans WHERE client_id = ?`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying loans for client %d: %v", ErrDatabaseError, clientID, err)
	}
	return collectLoans(rows)
}

// GetAll retrieves every loan row.
func (r *loanRepository) GetAll() ([]models.Loan, error) {
	rows, err := r.db.Query(`SELECT id, client_id, amount, description, created_at FROM loans`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying loans: %v", ErrDatabaseError, err)
	}
	return collectLoans(rows)
}

// RunningBalance sums all loan rows for one member, including negative
// repayment entries. A member with no rows has a balance of zero, not an
// absent value.
func (r *loanRepository) RunningBalance(clientID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM loans WHERE client_id = ?`,
		clientID,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: computing loan balance for client %d: %v", ErrDatabaseError, clientID, err)
	}
	return balance, nil
}

func collectLoans(rows *sql.Rows) ([]models.Loan, error) {
	defer rows.Close()
	loans := []models.Loan{}
	for rows.Next() {
		var l models.Loan
		var description sql.NullString
		if err := rows.Scan(&l.ID, &l.ClientID, &l.Amount, &description, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning loan: %v", ErrDatabaseError, err)
		}
		if description.Valid {
			l.Description = &description.String
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating loan rows: %v", ErrDatabaseError, err)
	}
	return loans, nil
}
