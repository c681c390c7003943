package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

var ErrSessionValidation = errors.New("session data validation error")

// AddSessionRequest books a training session for a member.
type AddSessionRequest struct {
	ClientCode  string `json:"client_code" binding:"required"`
	TrainerName string `json:"trainer_name" binding:"required"`
	SessionDate string `json:"session_date" binding:"required"`
	SessionType string `json:"session_type" binding:"required"`
	IsGroup     bool   `json:"is_group"`
}

// SessionService is the use-case façade over the session repository.
type SessionService interface {
	AddSession(req AddSessionRequest) (*models.TrainingSession, error)
	GetByTrainer(trainerName string) ([]models.TrainingSession, error)
	GetByMember(code string) ([]models.TrainingSession, error)
	GetAll() ([]models.TrainingSession, error)
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
	memberRepo  repositories.MemberRepository
	db          *sql.DB
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(sessionRepo repositories.SessionRepository, memberRepo repositories.MemberRepository, db *sql.DB) SessionService {
	return &sessionService{sessionRepo: sessionRepo, memberRepo: memberRepo, db: db}
}

func (s *sessionService) AddSession(req AddSessionRequest) (*models.TrainingSession, error) {
	if strings.TrimSpace(req.TrainerName) == "" {
		return nil, fmt.Errorf("%w: trainer name cannot be empty", ErrSessionValidation)
	}
	if _, err := time.Parse(models.DateLayout, req.SessionDate); err != nil {
		return nil, ErrDateFormat
	}
	clientID, err := s.memberRepo.GetIDByCode(req.ClientCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}

	session := &models.TrainingSession{
		ClientID:    clientID,
		TrainerName: strings.TrimSpace(req.TrainerName),
		SessionDate: req.SessionDate,
		SessionType: req.SessionType,
		IsGroup:     req.IsGroup,
	}
	if _, err := s.sessionRepo.Add(s.db, session); err != nil {
		return nil, fmt.Errorf("failed to add session: %w", err)
	}
	return session, nil
}

func (s *sessionService) GetByTrainer(trainerName string) ([]models.TrainingSession, error) {
	sessions, err := s.sessionRepo.GetByTrainer(trainerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for trainer %s: %w", trainerName, err)
	}
	return sessions, nil
}

func (s *sessionService) GetByMember(code string) ([]models.TrainingSession, error) {
	clientID, err := s.memberRepo.GetIDByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}
	sessions, err := s.sessionRepo.GetByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for member %s: %w", code, err)
	}
	return sessions, nil
}

func (s *sessionService) GetAll() ([]models.TrainingSession, error) {
	sessions, err := s.sessionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}
	return sessions, nil
}
