package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

func strPtr(s string) *string { return &s }

func newMemberService(t *testing.T) (MemberService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMemberService(repositories.NewMemberRepository(db), db), mock
}

func validCreateRequest() CreateMemberRequest {
	return CreateMemberRequest{
		ClientCode:       "GC-001",
		Name:             "Omar Said",
		SubscriptionType: models.SubscriptionNormal,
		StartDate:        "2025-01-01",
		EndDate:          "2025-12-31",
	}
}

func TestMemberService_CreateMember_Validation(t *testing.T) {
	service, _ := newMemberService(t)

	t.Run("empty client code", func(t *testing.T) {
		req := validCreateRequest()
		req.ClientCode = "  "
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("unknown subscription type", func(t *testing.T) {
		req := validCreateRequest()
		req.SubscriptionType = "Gold"
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("end date equal to start date", func(t *testing.T) {
		req := validCreateRequest()
		req.EndDate = req.StartDate
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("end date before start date", func(t *testing.T) {
		req := validCreateRequest()
		req.StartDate = "2025-12-31"
		req.EndDate = "2025-01-01"
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validCreateRequest()
		req.EndDate = "31/12/2025"
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrDateFormat)
	})

	t.Run("bad phone", func(t *testing.T) {
		req := validCreateRequest()
		req.Phone = strPtr("12345")
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("under 15 without guardian", func(t *testing.T) {
		req := validCreateRequest()
		req.SubscriptionType = models.SubscriptionUnder15
		_, err := service.CreateMember(req)
		assert.ErrorIs(t, err, ErrMemberValidation)
	})

	t.Run("under 15 with guardian passes validation", func(t *testing.T) {
		req := validCreateRequest()
		req.SubscriptionType = models.SubscriptionUnder15
		req.GuardianName = strPtr("Huda Said")
		req.GuardianPhone = strPtr("0501234567")

		service, mock := newMemberService(t)
		mock.ExpectExec("INSERT INTO clients").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("FROM clients WHERE client_code = \\?").
			WithArgs("GC-001").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "client_code", "name", "phone", "subscription_type", "start_date", "end_date",
				"amount_paid", "amount_remaining", "freeze_days", "rotation", "guardian_name", "guardian_phone", "created_at",
			}).AddRow(1, "GC-001", "Omar Said", nil, models.SubscriptionUnder15, "2025-01-01", "2025-12-31",
				"0", "0", 0, nil, "Huda Said", "0501234567", "2025-01-01 10:00:00"))

		member, err := service.CreateMember(req)
		assert.NoError(t, err)
		assert.Equal(t, "GC-001", member.ClientCode)
		assert.NotEmpty(t, member.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberService_CreateMember_DuplicateCode(t *testing.T) {
	service, mock := newMemberService(t)

	mock.ExpectExec("INSERT INTO clients").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := service.CreateMember(validCreateRequest())
	assert.ErrorIs(t, err, ErrMemberCodeExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberService_GetMemberByCode_NotFound(t *testing.T) {
	service, mock := newMemberService(t)

	mock.ExpectQuery("FROM clients WHERE client_code = \\?").
		WithArgs("GC-404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := service.GetMemberByCode("GC-404")
	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
