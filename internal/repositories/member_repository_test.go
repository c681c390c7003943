package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"gym_crm_backend/internal/models"
)

var memberRows = []string{
	"id", "client_code", "name", "phone", "subscription_type", "start_date", "end_date",
	"amount_paid", "amount_remaining", "freeze_days", "rotation", "guardian_name", "guardian_phone", "created_at",
}

func TestMemberRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMemberRepository(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM clients WHERE client_code = \\?").
			WithArgs("GC-001").
			WillReturnRows(sqlmock.NewRows(memberRows).
				AddRow(1, "GC-001", "Omar Said", "0501234567", "Normal", "2025-01-01", "2025-12-31",
					"1500", "0", 0, nil, nil, nil, "2025-01-01 10:00:00"))

		member, err := repo.GetByCode("GC-001")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), member.ID)
		assert.Equal(t, "Omar Said", member.Name)
		assert.NotNil(t, member.Phone)
		assert.Equal(t, "0501234567", *member.Phone)
		assert.Nil(t, member.GuardianName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		mock.ExpectQuery("FROM clients WHERE client_code = \\?").
			WithArgs("GC-404").
			WillReturnRows(sqlmock.NewRows(memberRows))

		member, err := repo.GetByCode("GC-404")
		assert.Nil(t, member)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMemberRepository(db)

	t.Run("assigns the inserted id", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO clients").
			WillReturnResult(sqlmock.NewResult(7, 1))

		member := &models.Member{ClientCode: "GC-007", Name: "Lina", SubscriptionType: "Normal"}
		id, err := repo.Create(db, member)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, int64(7), member.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate code maps to ErrDuplicateKey", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO clients").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

		_, err := repo.Create(db, &models.Member{ClientCode: "GC-007", Name: "Lina", SubscriptionType: "Normal"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMemberRepository(db)

	mock.ExpectQuery("WHERE name LIKE \\? OR client_code LIKE \\? OR phone LIKE \\?").
		WithArgs("%oma%", "%oma%", "%oma%").
		WillReturnRows(sqlmock.NewRows(memberRows).
			AddRow(1, "GC-001", "Omar Said", nil, "Normal", "2025-01-01", "2025-12-31",
				"1500", "0", 0, nil, nil, nil, "2025-01-01 10:00:00"))

	members, err := repo.Search("oma")
	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, "GC-001", members[0].ClientCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMemberRepository(db)

	t.Run("unknown code is ErrNotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE clients SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(db, "GC-404", &models.Member{Name: "Lina", SubscriptionType: "Normal"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMemberRepository(db)

	mock.ExpectExec("DELETE FROM clients WHERE client_code = \\?").
		WithArgs("GC-001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(db, "GC-001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
