package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"
)

// SessionRepository defines the interface for training-session operations.
// Sessions are created and listed only; no edit or delete exists.
type SessionRepository interface {
	Add(executor SQLExecutor, session *models.TrainingSession) (int64, error)
	GetByTrainer(trainerName string) ([]models.TrainingSession, error)
	GetByClient(clientID int64) ([]models.TrainingSession, error)
	GetAll() ([]models.TrainingSession, error)
}

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Add records one training session.
func (r *sessionRepository) Add(executor SQLExecutor, session *models.TrainingSession) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO private_sessions (client_id, trainer_name, session_date, session_type, is_group)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ClientID, session.TrainerName, session.SessionDate, session.SessionType, session.IsGroup,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: adding session for client %d: %v", ErrDatabaseError, session.ClientID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted session id: %v", ErrDatabaseError, err)
	}
	session.ID = id
	return id, nil
}

// GetByTrainer lists sessions led by one trainer.
func (r *sessionRepository) GetByTrainer(trainerName string) ([]models.TrainingSession, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, trainer_name, session_date, session_type, is_group, created_at
		 FROM private_sessions WHERE trainer_name = ?`,
		trainerName,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sessions for trainer %s: %v", ErrDatabaseError, trainerName, err)
	}
	return collectSessions(rows)
}

// GetByClient lists sessions booked by one member.
func (r *sessionRepository) GetByClient(clientID int64) ([]models.TrainingSession, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, trainer_name, session_date, session_type, is_group, created_at
		 FROM private_sessions WHERE client_id = ?`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sessions for client %d: %v", ErrDatabaseError, clientID, err)
	}
	return collectSessions(rows)
}

// GetAll retrieves every session.
func (r *sessionRepository) GetAll() ([]models.TrainingSession, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, trainer_name, session_date, session_type, is_group, created_at
		 FROM private_sessions`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sessions: %v", ErrDatabaseError, err)
	}
	return collectSessions(rows)
}

func collectSessions(rows *sql.Rows) ([]models.TrainingSession, error) {
	defer rows.Close()
	sessions := []models.TrainingSession{}
	for rows.Next() {
		var s models.TrainingSession
		if err := rows.Scan(&s.ID, &s.ClientID, &s.TrainerName, &s.SessionDate, &s.SessionType, &s.IsGroup, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning session: %v", ErrDatabaseError, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating session rows: %v", ErrDatabaseError, err)
	}
	return sessions, nil
}
