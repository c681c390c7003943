package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// CheckInRequest identifies the member by their external code; the recording
// user comes from the authenticated session, never the request body.
type CheckInRequest struct {
	ClientCode string `json:"client_code" binding:"required"`
}

// AttendanceService is the use-case façade over the attendance repository.
type AttendanceService interface {
	LogCheckIn(req CheckInRequest, userID int64) (int64, error)
	GetByDate(date string) ([]models.CheckInWithMember, error)
	GetByMember(code string) ([]models.CheckIn, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	memberRepo     repositories.MemberRepository
	db             *sql.DB
}

// NewAttendanceService creates a new instance of AttendanceService.
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, memberRepo repositories.MemberRepository, db *sql.DB) AttendanceService {
	return &attendanceService{attendanceRepo: attendanceRepo, memberRepo: memberRepo, db: db}
}

func (s *attendanceService) LogCheckIn(req CheckInRequest, userID int64) (int64, error) {
	clientID, err := s.memberRepo.GetIDByCode(req.ClientCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrMemberNotFound
		}
		return 0, fmt.Errorf("failed to resolve member code: %w", err)
	}
	id, err := s.attendanceRepo.LogCheckIn(s.db, clientID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to log check-in: %w", err)
	}
	return id, nil
}

func (s *attendanceService) GetByDate(date string) ([]models.CheckInWithMember, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrDateFormat
	}
	checkins, err := s.attendanceRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for %s: %w", date, err)
	}
	return checkins, nil
}

func (s *attendanceService) GetByMember(code string) ([]models.CheckIn, error) {
	clientID, err := s.memberRepo.GetIDByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}
	checkins, err := s.attendanceRepo.GetByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for member %s: %w", code, err)
	}
	return checkins, nil
}
