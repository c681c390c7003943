package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/repositories"
)

func newLoanService(t *testing.T) (LoanService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLoanService(
		repositories.NewLoanRepository(db),
		repositories.NewMemberRepository(db),
		db,
	), mock
}

func TestLoanService_AddLoan(t *testing.T) {
	t.Run("zero amount is rejected", func(t *testing.T) {
		service, _ := newLoanService(t)
		_, err := service.AddLoan(AddLoanRequest{ClientCode: "GC-001"})
		assert.ErrorIs(t, err, ErrLoanValidation)
	})

	t.Run("unknown member code", func(t *testing.T) {
		service, mock := newLoanService(t)
		mock.ExpectQuery("SELECT id FROM clients WHERE client_code = \\?").
			WithArgs("GC-404").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.AddLoan(AddLoanRequest{ClientCode: "GC-404", Amount: decimal.NewFromInt(100)})
		assert.ErrorIs(t, err, ErrMemberNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repayment rows are negative", func(t *testing.T) {
		service, mock := newLoanService(t)
		mock.ExpectQuery("SELECT id FROM clients WHERE client_code = \\?").
			WithArgs("GC-001").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec("INSERT INTO loans").
			WillReturnResult(sqlmock.NewResult(5, 1))

		loan, err := service.AddLoan(AddLoanRequest{ClientCode: "GC-001", Amount: decimal.NewFromInt(-50)})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), loan.ClientID)
		assert.True(t, loan.Amount.IsNegative())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanService_GetByMember(t *testing.T) {
	service, mock := newLoanService(t)

	mock.ExpectQuery("SELECT id FROM clients WHERE client_code = \\?").
		WithArgs("GC-001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("FROM loans WHERE client_id = \\?").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "amount", "description", "created_at"}).
			AddRow(1, 2, "200", nil, "2025-06-01 09:00:00").
			AddRow(2, 2, "-50", nil, "2025-06-10 09:00:00"))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM loans WHERE client_id = \\?").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("150"))

	result, err := service.GetByMember("GC-001")
	assert.NoError(t, err)
	assert.Len(t, result.Loans, 2)
	assert.Equal(t, "150", result.RunningBalance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
