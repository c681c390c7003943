package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/models"
)

func TestLoanRepository_RunningBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLoanRepository(db)

	t.Run("no rows sums to zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM loans WHERE client_id = \\?").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("0"))

		balance, err := repo.RunningBalance(1)
		assert.NoError(t, err)
		assert.True(t, balance.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repayments count against the balance", func(t *testing.T) {
		// 200 borrowed, 50 repaid.
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM loans WHERE client_id = \\?").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("150"))

		balance, err := repo.RunningBalance(2)
		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(150)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLoanRepository(db)

	mock.ExpectExec("INSERT INTO loans").
		WillReturnResult(sqlmock.NewResult(3, 1))

	loan := &models.Loan{ClientID: 2, Amount: decimal.NewFromInt(-50)}
	id, err := repo.Add(db, loan)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, int64(3), loan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_GetByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLoanRepository(db)

	mock.ExpectQuery("FROM loans WHERE client_id = \\?").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "amount", "description", "created_at"}).
			AddRow(1, 2, "200", "protein bars", "2025-06-01 09:00:00").
			AddRow(2, 2, "-50", nil, "2025-06-10 09:00:00"))

	loans, err := repo.GetByClient(2)
	assert.NoError(t, err)
	assert.Len(t, loans, 2)
	assert.True(t, loans[1].Amount.IsNegative())
	assert.Nil(t, loans[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
