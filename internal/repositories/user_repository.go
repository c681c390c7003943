package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
)

// UserRepository defines the interface for staff-account operations.
type UserRepository interface {
	Create(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	GetAll() ([]models.User, error)
	Remove(executor SQLExecutor, userID int64) error
	ChangePassword(executor SQLExecutor, userID int64, hashedPassword string) error
	FindByUsername(username string) (*models.User, error) // PasswordHash populated
	FindByID(userID int64) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new staff account with an already-hashed password.
func (r *userRepository) Create(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO users (username, password_hash, role, full_name) VALUES (?, ?, ?, ?)`,
		user.Username, hashedPassword, user.Role, user.FullName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: username %s", ErrDuplicateKey, user.Username)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted user id: %v", ErrDatabaseError, err)
	}
	user.ID = id
	return id, nil
}

// GetAll lists accounts without password hashes.
func (r *userRepository) GetAll() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT id, username, role, full_name FROM users`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.FullName); err != nil {
			return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, nil
}

// Remove deletes a staff account.
func (r *userRepository) Remove(executor SQLExecutor, userID int64) error {
	result, err := executor.Exec(`DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("%w: deleting user %d: %v", ErrDatabaseError, userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for user %d: %v", ErrDatabaseError, userID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ChangePassword replaces a user's stored hash.
func (r *userRepository) ChangePassword(executor SQLExecutor, userID int64, hashedPassword string) error {
	result, err := executor.Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("%w: changing password for user %d: %v", ErrDatabaseError, userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for user %d: %v", ErrDatabaseError, userID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByUsername retrieves an account including its password hash, for
// credential checks.
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(
		`SELECT id, username, password_hash, role, full_name FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user %s: %v", ErrDatabaseError, username, err)
	}
	return user, nil
}

// FindByID retrieves an account by id, without the password hash.
func (r *userRepository) FindByID(userID int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(
		`SELECT id, username, role, full_name FROM users WHERE id = ?`,
		userID,
	).Scan(&user.ID, &user.Username, &user.Role, &user.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, userID, err)
	}
	return user, nil
}
