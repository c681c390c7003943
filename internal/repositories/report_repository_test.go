package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReportRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReportRepository(db)

	t.Run("active excludes frozen members", func(t *testing.T) {
		mock.ExpectQuery("WHERE end_date >= DATE\\('now'\\) AND freeze_days = 0").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.CountActive()
		assert.NoError(t, err)
		assert.Equal(t, 42, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ending soon uses the inclusive 7-day window", func(t *testing.T) {
		mock.ExpectQuery("WHERE end_date BETWEEN DATE\\('now'\\) AND DATE\\('now', '\\+7 day'\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountEndingSoon()
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing payments excludes lapsed subscriptions", func(t *testing.T) {
		mock.ExpectQuery("WHERE amount_remaining > 0 AND end_date >= DATE\\('now'\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.CountMissingPayments()
		assert.NoError(t, err)
		assert.Equal(t, 5, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportRepository_MonthlySums(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReportRepository(db)

	t.Run("revenue matches the month token", func(t *testing.T) {
		mock.ExpectQuery("WHERE category = 'payment' AND strftime\\('%Y-%m', created_at\\) = \\?").
			WithArgs("2025-06").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("12500"))

		revenue, err := repo.MonthlyRevenue("2025-06")
		assert.NoError(t, err)
		assert.True(t, revenue.Equal(decimal.NewFromInt(12500)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expenses match only the literal expense category", func(t *testing.T) {
		mock.ExpectQuery("WHERE category = 'expense' AND strftime\\('%Y-%m', created_at\\) = \\?").
			WithArgs("2025-06").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("4300"))

		expenses, err := repo.MonthlyExpenses("2025-06")
		assert.NoError(t, err)
		assert.True(t, expenses.Equal(decimal.NewFromInt(4300)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportRepository_DailyCashierTotalByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewReportRepository(db)

	mock.ExpectQuery("WHERE category = 'payment' AND recorded_by = \\? AND DATE\\(created_at\\) = DATE\\('now'\\)").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("750.50"))

	total, err := repo.DailyCashierTotalByUser(9)
	assert.NoError(t, err)
	assert.Equal(t, "750.5", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
