package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
)

// MemberRepository defines the interface for member-related database operations.
// Members are keyed externally by client_code; the code is assigned at
// creation and is never part of an update statement.
type MemberRepository interface {
	Create(executor SQLExecutor, member *models.Member) (int64, error)
	GetAll() ([]models.Member, error)
	Search(keyword string) ([]models.Member, error)
	GetByCode(code string) (*models.Member, error)
	GetByID(id int64) (*models.Member, error)
	GetIDByCode(code string) (int64, error)
	Update(executor SQLExecutor, code string, member *models.Member) error
	Delete(executor SQLExecutor, code string) error
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, client_code, name, phone, subscription_type, start_date, end_date,
	amount_paid, amount_remaining, freeze_days, rotation, guardian_name, guardian_phone, created_at`

func scanMember(row scanner) (*models.Member, error) {
	member := &models.Member{}
	var phone, rotation, guardianName, guardianPhone sql.NullString
	err := row.Scan(
		&member.ID, &member.ClientCode, &member.Name, &phone, &member.SubscriptionType,
		&member.StartDate, &member.EndDate, &member.AmountPaid, &member.AmountRemaining,
		&member.FreezeDays, &rotation, &guardianName, &guardianPhone, &member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		member.Phone = &phone.String
	}
	if rotation.Valid {
		member.Rotation = &rotation.String
	}
	if guardianName.Valid {
		member.GuardianName = &guardianName.String
	}
	if guardianPhone.Valid {
		member.GuardianPhone = &guardianPhone.String
	}
	return member, nil
}

func (r *memberRepository) collectMembers(rows *sql.Rows) ([]models.Member, error) {
	defer rows.Close()
	members := []models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}
	return members, nil
}

// Create inserts a new member.
func (r *memberRepository) Create(executor SQLExecutor, member *models.Member) (int64, error) {
	query := `INSERT INTO clients (client_code, name, phone, subscription_type, start_date, end_date,
	            amount_paid, amount_remaining, freeze_days, rotation, guardian_name, guardian_phone)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := executor.Exec(query,
		member.ClientCode, member.Name, member.Phone, member.SubscriptionType,
		member.StartDate, member.EndDate, member.AmountPaid, member.AmountRemaining,
		member.FreezeDays, member.Rotation, member.GuardianName, member.GuardianPhone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: client_code %s", ErrDuplicateKey, member.ClientCode)
		}
		return 0, fmt.Errorf("%w: creating member: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted member id: %v", ErrDatabaseError, err)
	}
	member.ID = id
	return id, nil
}

// GetAll retrieves every member. Store order; callers must not assume one.
func (r *memberRepository) GetAll() ([]models.Member, error) {
	rows, err := r.db.Query(`SELECT ` + memberColumns + ` FROM clients`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying members: %v", ErrDatabaseError, err)
	}
	return r.collectMembers(rows)
}

// Search matches a substring against name, code and phone, OR'd together.
// SQLite LIKE is case-insensitive, matching the list-all projection exactly.
func (r *memberRepository) Search(keyword string) ([]models.Member, error) {
	pattern := "%" + keyword + "%"
	rows, err := r.db.Query(
		`SELECT `+memberColumns+` FROM clients WHERE name LIKE ? OR client_code LIKE ? OR phone LIKE ?`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: searching members: %v", ErrDatabaseError, err)
	}
	return r.collectMembers(rows)
}

// GetByCode retrieves a member by their external code.
func (r *memberRepository) GetByCode(code string) (*models.Member, error) {
	row := r.db.QueryRow(`SELECT `+memberColumns+` FROM clients WHERE client_code = ?`, code)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting member by code %s: %v", ErrDatabaseError, code, err)
	}
	return member, nil
}

// GetByID retrieves a member by surrogate row id.
func (r *memberRepository) GetByID(id int64) (*models.Member, error) {
	row := r.db.QueryRow(`SELECT `+memberColumns+` FROM clients WHERE id = ?`, id)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return member, nil
}

// GetIDByCode resolves a member code to its row id. An unknown code is an
// expected outcome and surfaces as ErrNotFound, never as a fault.
func (r *memberRepository) GetIDByCode(code string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`SELECT id FROM clients WHERE client_code = ?`, code).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: resolving member code %s: %v", ErrDatabaseError, code, err)
	}
	return id, nil
}

// Update replaces all mutable fields of a member in one statement, keyed by
// the immutable client code.
func (r *memberRepository) Update(executor SQLExecutor, code string, member *models.Member) error {
	query := `UPDATE clients SET
	            name = ?, phone = ?, subscription_type = ?, start_date = ?, end_date = ?,
	            amount_paid = ?, amount_remaining = ?, freeze_days = ?, rotation = ?,
	            guardian_name = ?, guardian_phone = ?
	          WHERE client_code = ?`

	result, err := executor.Exec(query,
		member.Name, member.Phone, member.SubscriptionType, member.StartDate, member.EndDate,
		member.AmountPaid, member.AmountRemaining, member.FreezeDays, member.Rotation,
		member.GuardianName, member.GuardianPhone, code,
	)
	if err != nil {
		return fmt.Errorf("%w: updating member %s: %v", ErrDatabaseError, code, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for member %s: %v", ErrDatabaseError, code, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a member by code. Dependent attendance/session/loan/
// invitation rows are left in place; the store defines no cascade rule.
func (r *memberRepository) Delete(executor SQLExecutor, code string) error {
	result, err := executor.Exec(`DELETE FROM clients WHERE client_code = ?`, code)
	if err != nil {
		return fmt.Errorf("%w: deleting member %s: %v", ErrDatabaseError, code, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting member %s: %v", ErrDatabaseError, code, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
