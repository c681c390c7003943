package repositories

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/models"
)

// InvitationRepository defines the interface for referral-invitation
// operations. Tagging is a manual flag flip, not a workflow.
type InvitationRepository interface {
	Add(executor SQLExecutor, invitation *models.Invitation) (int64, error)
	GetByClient(clientID int64) ([]models.Invitation, error)
	GetAll() ([]models.Invitation, error)
	Tag(executor SQLExecutor, invitationID int64, tagged bool) error
	GetStats() (models.InvitationStats, error)
}

type invitationRepository struct {
	db *sql.DB
}

// NewInvitationRepository creates a new instance of InvitationRepository.
func NewInvitationRepository(db *sql.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

// Add records a referral. The invited_at timestamp is store-assigned and
// tagged defaults to false.
func (r *invitationRepository) Add(executor SQLExecutor, invitation *models.Invitation) (int64, error) {
	result, err := executor.Exec(
		`INSERT INTO invitations (client_id, friend_name, friend_phone) VALUES (?, ?, ?)`,
		invitation.ClientID, invitation.FriendName, invitation.FriendPhone,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: adding invitation for client %d: %v", ErrDatabaseError, invitation.ClientID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted invitation id: %v", ErrDatabaseError, err)
	}
	invitation.ID = id
	return id, nil
}

// GetByClient lists referrals made by one member.
func (r *invitationRepository) GetByClient(clientID int64) ([]models.Invitation, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, friend_name, friend_phone, invited_at, tagged
		 FROM invitations WHERE client_id = ?`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying invitations for client %d: %v", ErrDatabaseError, clientID, err)
	}
	return collectInvitations(rows)
}

// GetAll retrieves every referral.
func (r *invitationRepository) GetAll() ([]models.Invitation, error) {
	rows, err := r.db.Query(
		`SELECT id, client_id, friend_name, friend_phone, invited_at, tagged FROM invitations`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying invitations: %v", ErrDatabaseError, err)
	}
	return collectInvitations(rows)
}

// Tag sets or clears the converted flag on one invitation.
func (r *invitationRepository) Tag(executor SQLExecutor, invitationID int64, tagged bool) error {
	result, err := executor.Exec(`UPDATE invitations SET tagged = ? WHERE id = ?`, tagged, invitationID)
	if err != nil {
		return fmt.Errorf("%w: tagging invitation %d: %v", ErrDatabaseError, invitationID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for invitation %d: %v", ErrDatabaseError, invitationID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStats counts total and tagged referrals for the conversion metric.
func (r *invitationRepository) GetStats() (models.InvitationStats, error) {
	var stats models.InvitationStats
	err := r.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(tagged), 0) FROM invitations`,
	).Scan(&stats.Total, &stats.Tagged)
	if err != nil {
		return models.InvitationStats{}, fmt.Errorf("%w: counting invitations: %v", ErrDatabaseError, err)
	}
	return stats, nil
}

func collectInvitations(rows *sql.Rows) ([]models.Invitation, error) {
	defer rows.Close()
	invitations := []models.Invitation{}
	for rows.Next() {
		var inv models.Invitation
		var friendPhone sql.NullString
		if err := rows.Scan(&inv.ID, &inv.ClientID, &inv.FriendName, &friendPhone, &inv.InvitedAt, &inv.Tagged); err != nil {
			return nil, fmt.Errorf("%w: scanning invitation: %v", ErrDatabaseError, err)
		}
		if friendPhone.Valid {
			inv.FriendPhone = &friendPhone.String
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating invitation rows: %v", ErrDatabaseError, err)
	}
	return invitations, nil
}
