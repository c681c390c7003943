package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationValidation = errors.New("invitation data validation error")
)

// AddInvitationRequest records a referral by an existing member.
type AddInvitationRequest struct {
	ClientCode  string  `json:"client_code" binding:"required"`
	FriendName  string  `json:"friend_name" binding:"required"`
	FriendPhone *string `json:"friend_phone"`
}

// TagInvitationRequest flips the converted flag on a referral.
type TagInvitationRequest struct {
	Tagged bool `json:"tagged"`
}

// InvitationService is the use-case façade over the invitation repository.
type InvitationService interface {
	AddInvitation(req AddInvitationRequest) (*models.Invitation, error)
	GetByMember(code string) ([]models.Invitation, error)
	GetAll() ([]models.Invitation, error)
	TagInvitation(invitationID int64, tagged bool) error
	GetStats() (models.InvitationStats, error)
}

type invitationService struct {
	invitationRepo repositories.InvitationRepository
	memberRepo     repositories.MemberRepository
	db             *sql.DB
}

// NewInvitationService creates a new instance of InvitationService.
func NewInvitationService(invitationRepo repositories.InvitationRepository, memberRepo repositories.MemberRepository, db *sql.DB) InvitationService {
	return &invitationService{invitationRepo: invitationRepo, memberRepo: memberRepo, db: db}
}

func (s *invitationService) AddInvitation(req AddInvitationRequest) (*models.Invitation, error) {
	if strings.TrimSpace(req.FriendName) == "" {
		return nil, fmt.Errorf("%w: friend name cannot be empty", ErrInvitationValidation)
	}
	clientID, err := s.memberRepo.GetIDByCode(req.ClientCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}

	invitation := &models.Invitation{
		ClientID:    clientID,
		FriendName:  strings.TrimSpace(req.FriendName),
		FriendPhone: req.FriendPhone,
	}
	if _, err := s.invitationRepo.Add(s.db, invitation); err != nil {
		return nil, fmt.Errorf("failed to add invitation: %w", err)
	}
	return invitation, nil
}

func (s *invitationService) GetByMember(code string) ([]models.Invitation, error) {
	clientID, err := s.memberRepo.GetIDByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}
	invitations, err := s.invitationRepo.GetByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations for member %s: %w", code, err)
	}
	return invitations, nil
}

func (s *invitationService) GetAll() ([]models.Invitation, error) {
	invitations, err := s.invitationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}
	return invitations, nil
}

func (s *invitationService) TagInvitation(invitationID int64, tagged bool) error {
	if err := s.invitationRepo.Tag(s.db, invitationID, tagged); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to tag invitation %d: %w", invitationID, err)
	}
	return nil
}

func (s *invitationService) GetStats() (models.InvitationStats, error) {
	stats, err := s.invitationRepo.GetStats()
	if err != nil {
		return models.InvitationStats{}, fmt.Errorf("failed to get invitation stats: %w", err)
	}
	return stats, nil
}
