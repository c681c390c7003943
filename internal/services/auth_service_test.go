package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthService(repositories.NewUserRepository(db)), mock
}

func userRow(t *testing.T, password, role string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "full_name"}).
		AddRow(1, "reception", string(hash), role, "Front Desk")
}

func TestAuthService_Login(t *testing.T) {
	t.Run("all three credentials agree", func(t *testing.T) {
		service, mock := newAuthService(t)
		mock.ExpectQuery("FROM users WHERE username = \\?").
			WithArgs("reception").
			WillReturnRows(userRow(t, "recept123", models.RoleReceptionist))

		resp, err := service.Login(LoginRequest{Username: "reception", Password: "recept123", Role: models.RoleReceptionist})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Empty(t, resp.User.PasswordHash)

		claims, err := utils.ValidateToken(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, models.RoleReceptionist, claims.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("correct password under the wrong role fails", func(t *testing.T) {
		service, mock := newAuthService(t)
		mock.ExpectQuery("FROM users WHERE username = \\?").
			WithArgs("reception").
			WillReturnRows(userRow(t, "recept123", models.RoleReceptionist))

		_, err := service.Login(LoginRequest{Username: "reception", Password: "recept123", Role: models.RoleAdmin})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password fails", func(t *testing.T) {
		service, mock := newAuthService(t)
		mock.ExpectQuery("FROM users WHERE username = \\?").
			WithArgs("reception").
			WillReturnRows(userRow(t, "recept123", models.RoleReceptionist))

		_, err := service.Login(LoginRequest{Username: "reception", Password: "nope", Role: models.RoleReceptionist})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user collapses to the same error", func(t *testing.T) {
		service, mock := newAuthService(t)
		mock.ExpectQuery("FROM users WHERE username = \\?").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.Login(LoginRequest{Username: "ghost", Password: "whatever", Role: models.RoleAdmin})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
