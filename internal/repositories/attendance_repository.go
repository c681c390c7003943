package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"
)

// AttendanceRepository defines the interface for attendance-related database
// operations. Check-ins are append-only.
type AttendanceRepository interface {
	LogCheckIn(executor SQLExecutor, clientID, userID int64) (int64, error)
	GetByDate(date string) ([]models.CheckInWithMember, error)
	GetByClient(clientID int64) ([]models.CheckIn, error)
}

type attendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// LogCheckIn records one check-in event. The timestamp is assigned by the
// store, never supplied by the caller.
func (r *attendanceRepository) LogCheckIn(executor SQLExecutor, clientID, userID int64) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO attendance (client_id, checked_in_by) VALUES (?, ?)`,
		clientID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: logging check-in for client %d: %v", ErrDatabaseError, clientID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted check-in id: %v", ErrDatabaseError, err)
	}
	return id, nil
}

// GetByDate lists check-ins whose calendar day equals date (YYYY-MM-DD),
// joined with member identity. Exact-day equality, not a range.
func (r *attendanceRepository) GetByDate(date string) ([]models.CheckInWithMember, error) {
	rows, err := r.db.Query(
		`SELECT a.id, c.client_code, c.name, a.checkin_time
		 FROM attendance a JOIN clients c ON a.client_id = c.id
		 WHERE DATE(a.checkin_time) = ?`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying attendance for %s: %v", ErrDatabaseError, date, err)
	}
	defer rows.Close()

	checkins := []models.CheckInWithMember{}
	for rows.Next() {
		var ci models.CheckInWithMember
		if err := rows.Scan(&ci.ID, &ci.ClientCode, &ci.Name, &ci.CheckinTime); err != nil {
			return nil, fmt.Errorf("%w: scanning check-in: %v", ErrDatabaseError, err)
		}
		checkins = append(checkins, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating check-in rows: %v", ErrDatabaseError, err)
	}
	return checkins, nil
}

// GetByClient lists all check-ins of one member.
func (r *attendanceRepository) GetByClient(clientID int64) ([]models.CheckIn, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, checkin_time, checked_in_by FROM attendance WHERE client_id = ?`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying attendance for client %d: %v", ErrDatabaseError, clientID, err)
	}
	defer rows.Close()

	checkins := []models.CheckIn{}
	for rows.Next() {
		var ci models.CheckIn
		var checkedInBy sql.NullInt64
		if err := rows.Scan(&ci.ID, &ci.ClientID, &ci.CheckinTime, &checkedInBy); err != nil {
			return nil, fmt.Errorf("%w: scanning check-in: %v", ErrDatabaseError, err)
		}
		if checkedInBy.Valid {
			ci.CheckedInBy = &checkedInBy.Int64
		}
		checkins = append(checkins, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating check-in rows: %v", ErrDatabaseError, err)
	}
	return checkins, nil
}
