package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestInvitationRepository_GetStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewInvitationRepository(db)

	t.Run("empty table yields zeroes", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(tagged\\), 0\\) FROM invitations").
			WillReturnRows(sqlmock.NewRows([]string{"total", "tagged"}).AddRow(0, 0))

		stats, err := repo.GetStats()
		assert.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.Tagged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tagged count rides on the integer flag", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(tagged\\), 0\\) FROM invitations").
			WillReturnRows(sqlmock.NewRows([]string{"total", "tagged"}).AddRow(5, 2))

		stats, err := repo.GetStats()
		assert.NoError(t, err)
		assert.Equal(t, "2/5", stats.Conversion())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationRepository_Tag(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewInvitationRepository(db)

	t.Run("updates the flag", func(t *testing.T) {
		mock.ExpectExec("UPDATE invitations SET tagged = \\? WHERE id = \\?").
			WithArgs(true, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Tag(db, 3, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE invitations SET tagged = \\? WHERE id = \\?").
			WithArgs(true, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Tag(db, 99, true), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
