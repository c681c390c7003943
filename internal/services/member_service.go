package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberCodeExists = errors.New("client code already exists")
	ErrMemberValidation = errors.New("member data validation error")
	ErrDateFormat       = errors.New("invalid date format, please use YYYY-MM-DD")
)

// CreateMemberRequest carries all fields of a new member. The client code is
// assigned here and immutable afterwards.
type CreateMemberRequest struct {
	ClientCode       string          `json:"client_code" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	Phone            *string         `json:"phone"`
	SubscriptionType string          `json:"subscription_type" binding:"required"`
	StartDate        string          `json:"start_date" binding:"required"`
	EndDate          string          `json:"end_date" binding:"required"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining"`
	FreezeDays       int             `json:"freeze_days"`
	Rotation         *string         `json:"rotation"`
	GuardianName     *string         `json:"guardian_name"`
	GuardianPhone    *string         `json:"guardian_phone"`
}

// UpdateMemberRequest replaces every mutable field of a member. There are no
// partial updates; the code itself is never touched.
type UpdateMemberRequest struct {
	Name             string          `json:"name" binding:"required"`
	Phone            *string         `json:"phone"`
	SubscriptionType string          `json:"subscription_type" binding:"required"`
	StartDate        string          `json:"start_date" binding:"required"`
	EndDate          string          `json:"end_date" binding:"required"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	AmountRemaining  decimal.Decimal `json:"amount_remaining"`
	FreezeDays       int             `json:"freeze_days"`
	Rotation         *string         `json:"rotation"`
	GuardianName     *string         `json:"guardian_name"`
	GuardianPhone    *string         `json:"guardian_phone"`
}

// MemberService is the use-case façade over the member repository.
// Validation happens here, before anything reaches the store; the
// repositories trust their callers.
type MemberService interface {
	CreateMember(req CreateMemberRequest) (*models.Member, error)
	GetMembers() ([]models.Member, error)
	SearchMembers(keyword string) ([]models.Member, error)
	GetMemberByCode(code string) (*models.Member, error)
	UpdateMember(code string, req UpdateMemberRequest) (*models.Member, error)
	DeleteMember(code string) error
}

type memberService struct {
	memberRepo repositories.MemberRepository
	db         *sql.DB
}

// NewMemberService creates a new instance of MemberService.
func NewMemberService(repo repositories.MemberRepository, db *sql.DB) MemberService {
	return &memberService{memberRepo: repo, db: db}
}

var subscriptionTypes = map[string]bool{
	models.SubscriptionNormal:  true,
	models.SubscriptionPrivate: true,
	models.SubscriptionUnder15: true,
	models.SubscriptionBox:     true,
}

func validateMemberFields(name, subscriptionType, startDate, endDate string, phone, guardianName, guardianPhone *string, amountPaid, amountRemaining decimal.Decimal, freezeDays int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrMemberValidation)
	}
	if !subscriptionTypes[subscriptionType] {
		return fmt.Errorf("%w: unknown subscription type %q", ErrMemberValidation, subscriptionType)
	}

	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return ErrDateFormat
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return ErrDateFormat
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrMemberValidation)
	}

	if phone != nil && *phone != "" && !utils.IsValidPhone(*phone) {
		return fmt.Errorf("%w: phone must be 10-15 digits", ErrMemberValidation)
	}

	if subscriptionType == models.SubscriptionUnder15 {
		if guardianName == nil || strings.TrimSpace(*guardianName) == "" ||
			guardianPhone == nil || strings.TrimSpace(*guardianPhone) == "" {
			return fmt.Errorf("%w: guardian name and phone are required for Under 15 members", ErrMemberValidation)
		}
		if !utils.IsValidPhone(*guardianPhone) {
			return fmt.Errorf("%w: guardian phone must be 10-15 digits", ErrMemberValidation)
		}
	}

	if amountPaid.IsNegative() || amountRemaining.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", ErrMemberValidation)
	}
	if freezeDays < 0 {
		return fmt.Errorf("%w: freeze days cannot be negative", ErrMemberValidation)
	}
	return nil
}

func (s *memberService) CreateMember(req CreateMemberRequest) (*models.Member, error) {
	if strings.TrimSpace(req.ClientCode) == "" {
		return nil, fmt.Errorf("%w: client code cannot be empty", ErrMemberValidation)
	}
	if err := validateMemberFields(req.Name, req.SubscriptionType, req.StartDate, req.EndDate,
		req.Phone, req.GuardianName, req.GuardianPhone, req.AmountPaid, req.AmountRemaining, req.FreezeDays); err != nil {
		return nil, err
	}

	member := &models.Member{
		ClientCode:       strings.TrimSpace(req.ClientCode),
		Name:             strings.TrimSpace(req.Name),
		Phone:            req.Phone,
		SubscriptionType: req.SubscriptionType,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AmountPaid:       req.AmountPaid,
		AmountRemaining:  req.AmountRemaining,
		FreezeDays:       req.FreezeDays,
		Rotation:         req.Rotation,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
	}

	if _, err := s.memberRepo.Create(s.db, member); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMemberCodeExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return s.GetMemberByCode(member.ClientCode)
}

func (s *memberService) GetMembers() ([]models.Member, error) {
	members, err := s.memberRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	deriveAll(members)
	return members, nil
}

func (s *memberService) SearchMembers(keyword string) ([]models.Member, error) {
	members, err := s.memberRepo.Search(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	deriveAll(members)
	return members, nil
}

func (s *memberService) GetMemberByCode(code string) (*models.Member, error) {
	member, err := s.memberRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	member.Derive(time.Now())
	return member, nil
}

func (s *memberService) UpdateMember(code string, req UpdateMemberRequest) (*models.Member, error) {
	if err := validateMemberFields(req.Name, req.SubscriptionType, req.StartDate, req.EndDate,
		req.Phone, req.GuardianName, req.GuardianPhone, req.AmountPaid, req.AmountRemaining, req.FreezeDays); err != nil {
		return nil, err
	}

	member := &models.Member{
		Name:             strings.TrimSpace(req.Name),
		Phone:            req.Phone,
		SubscriptionType: req.SubscriptionType,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AmountPaid:       req.AmountPaid,
		AmountRemaining:  req.AmountRemaining,
		FreezeDays:       req.FreezeDays,
		Rotation:         req.Rotation,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
	}

	if err := s.memberRepo.Update(s.db, code, member); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member %s: %w", code, err)
	}
	return s.GetMemberByCode(code)
}

func (s *memberService) DeleteMember(code string) error {
	if err := s.memberRepo.Delete(s.db, code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member %s: %w", code, err)
	}
	return nil
}

func deriveAll(members []models.Member) {
	now := time.Now()
	for i := range members {
		members[i].Derive(now)
	}
}
