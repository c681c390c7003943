package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/repositories"
)

func newAttendanceService(t *testing.T) (AttendanceService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAttendanceService(
		repositories.NewAttendanceRepository(db),
		repositories.NewMemberRepository(db),
		db,
	), mock
}

func TestAttendanceService_LogCheckIn(t *testing.T) {
	t.Run("resolves the member code before inserting", func(t *testing.T) {
		service, mock := newAttendanceService(t)
		mock.ExpectQuery("SELECT id FROM clients WHERE client_code = \\?").
			WithArgs("GC-001").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec("INSERT INTO attendance \\(client_id, checked_in_by\\) VALUES \\(\\?, \\?\\)").
			WithArgs(int64(2), int64(9)).
			WillReturnResult(sqlmock.NewResult(31, 1))

		id, err := service.LogCheckIn(CheckInRequest{ClientCode: "GC-001"}, 9)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown member code", func(t *testing.T) {
		service, mock := newAttendanceService(t)
		mock.ExpectQuery("SELECT id FROM clients WHERE client_code = \\?").
			WithArgs("GC-404").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.LogCheckIn(CheckInRequest{ClientCode: "GC-404"}, 9)
		assert.ErrorIs(t, err, ErrMemberNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceService_GetByDate(t *testing.T) {
	service, _ := newAttendanceService(t)

	_, err := service.GetByDate("15-06-2025")
	assert.ErrorIs(t, err, ErrDateFormat)
}
