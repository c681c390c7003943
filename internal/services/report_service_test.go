package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/repositories"
)

func newReportService(t *testing.T) (ReportService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReportService(
		repositories.NewReportRepository(db),
		repositories.NewInvitationRepository(db),
	), mock
}

func TestReportService_GetDashboardSummary(t *testing.T) {
	service, mock := newReportService(t)

	mock.ExpectQuery("WHERE end_date >= DATE\\('now'\\) AND freeze_days = 0").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("WHERE freeze_days > 0").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("WHERE end_date BETWEEN").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("WHERE amount_remaining > 0").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM finances WHERE category = 'payment'$").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("98000"))
	mock.ExpectQuery("WHERE category = 'payment' AND DATE\\(created_at\\) = DATE\\('now'\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1500"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(tagged\\), 0\\) FROM invitations").
		WillReturnRows(sqlmock.NewRows([]string{"total", "tagged"}).AddRow(10, 4))

	summary, err := service.GetDashboardSummary()
	assert.NoError(t, err)
	assert.Equal(t, 42, summary.ActiveMembers)
	assert.Equal(t, 4, summary.FrozenMembers)
	assert.Equal(t, 3, summary.EndingSoon)
	assert.Equal(t, 5, summary.MissingPayments)
	assert.Equal(t, "98000", summary.TotalRevenue.String())
	assert.Equal(t, "1500", summary.DailyCashier.String())
	assert.Equal(t, "4/10", summary.InviteConversion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_GetMonthlySummary(t *testing.T) {
	t.Run("net profit subtracts expenses from revenue", func(t *testing.T) {
		service, mock := newReportService(t)

		mock.ExpectQuery("WHERE category = 'payment' AND strftime").
			WithArgs("2025-06").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("12500.50"))
		mock.ExpectQuery("WHERE category = 'expense' AND strftime").
			WithArgs("2025-06").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("4300.25"))

		summary, err := service.GetMonthlySummary("2025-06")
		assert.NoError(t, err)
		assert.Equal(t, "2025-06", summary.Month)
		assert.Equal(t, "8200.25", summary.NetProfit.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed month token", func(t *testing.T) {
		service, _ := newReportService(t)

		_, err := service.GetMonthlySummary("June 2025")
		assert.ErrorIs(t, err, ErrMonthFormat)
	})
}

func TestReportService_MissingPaymentsTable(t *testing.T) {
	service, mock := newReportService(t)

	mock.ExpectQuery("WHERE amount_remaining > 0 AND end_date >= DATE\\('now'\\)").
		WillReturnRows(sqlmock.NewRows([]string{"client_code", "name", "phone", "end_date", "amount_remaining"}).
			AddRow("GC-001", "Omar Said", nil, "2025-12-31", "250"))

	table, err := service.MissingPaymentsTable()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Client Code", "Name", "Phone", "End Date", "Amount Remaining"}, table.Headers)
	assert.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"GC-001", "Omar Said", "", "2025-12-31", "250"}, table.Rows[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
