package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFinanceRepository_AddPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFinanceRepository(db)

	// The category literal is baked into the statement; callers cannot
	// spoof it.
	mock.ExpectExec("INSERT INTO finances \\(client_id, category, amount, description, recorded_by\\) VALUES \\(\\?, 'payment', \\?, \\?, \\?\\)").
		WithArgs(int64(1), decimal.NewFromInt(500), "June fee", int64(9)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.AddPayment(db, 1, decimal.NewFromInt(500), "June fee", 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceRepository_GetUnmatchedPayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFinanceRepository(db)

	mock.ExpectQuery("WHERE f.category = 'payment' AND \\(f.client_id IS NULL OR f.amount <= 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_code", "name", "amount"}).
			AddRow(4, nil, nil, "300").
			AddRow(7, "GC-002", "Sara", "0"))

	unmatched, err := repo.GetUnmatchedPayments()
	assert.NoError(t, err)
	assert.Len(t, unmatched, 2)
	assert.Nil(t, unmatched[0].ClientCode)
	assert.NotNil(t, unmatched[1].ClientCode)
	assert.True(t, unmatched[1].Amount.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceRepository_GetDailyPaymentsByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFinanceRepository(db)

	mock.ExpectQuery("WHERE category = 'payment' AND recorded_by = \\? AND DATE\\(created_at\\) = \\?").
		WithArgs(int64(9), "2025-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "category", "amount", "description", "recorded_by", "created_at"}).
			AddRow(5, 1, "payment", "500", "June fee", 9, "2025-06-15 10:00:00"))

	entries, err := repo.GetDailyPaymentsByUser(9, "2025-06-15")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "payment", entries[0].Category)
	assert.NotNil(t, entries[0].RecordedBy)
	assert.Equal(t, int64(9), *entries[0].RecordedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinanceRepository_GetExpensesByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewFinanceRepository(db)

	mock.ExpectQuery("WHERE category != 'payment' AND DATE\\(created_at\\) = \\?").
		WithArgs("2025-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "category", "amount", "description", "recorded_by", "created_at"}).
			AddRow(6, nil, "expense", "120", "cleaning supplies", 9, "2025-06-15 12:00:00"))

	entries, err := repo.GetExpensesByDate("2025-06-15")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Nil(t, entries[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
