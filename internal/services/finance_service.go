package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrFinanceValidation = errors.New("finance data validation error")
)

// AddPaymentRequest records revenue against a member. The recording user is
// taken from the authenticated session.
type AddPaymentRequest struct {
	ClientCode  string          `json:"client_code" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// AddExpenseRequest records an expense row. Expenses carry no member.
type AddExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// FinanceService is the use-case façade over the ledger repository.
type FinanceService interface {
	AddPayment(req AddPaymentRequest, userID int64) (int64, error)
	AddExpense(req AddExpenseRequest, userID int64) (int64, error)
	GetPaymentsByDate(date string) ([]models.PaymentWithMember, error)
	GetExpensesByDate(date string) ([]models.FinanceEntry, error)
	GetUnmatchedPayments() ([]models.UnmatchedPayment, error)
	GetDailyPaymentsByUser(userID int64, date string) ([]models.FinanceEntry, error)
	GetAll() ([]models.FinanceEntry, error)
}

type financeService struct {
	financeRepo repositories.FinanceRepository
	memberRepo  repositories.MemberRepository
	db          *sql.DB
}

// NewFinanceService creates a new instance of FinanceService.
func NewFinanceService(financeRepo repositories.FinanceRepository, memberRepo repositories.MemberRepository, db *sql.DB) FinanceService {
	return &financeService{financeRepo: financeRepo, memberRepo: memberRepo, db: db}
}

func (s *financeService) AddPayment(req AddPaymentRequest, userID int64) (int64, error) {
	if !req.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: payment amount must be positive", ErrFinanceValidation)
	}
	clientID, err := s.memberRepo.GetIDByCode(req.ClientCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrMemberNotFound
		}
		return 0, fmt.Errorf("failed to resolve member code: %w", err)
	}
	id, err := s.financeRepo.AddPayment(s.db, clientID, req.Amount, req.Description, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to add payment: %w", err)
	}
	return id, nil
}

func (s *financeService) AddExpense(req AddExpenseRequest, userID int64) (int64, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return 0, fmt.Errorf("%w: expense category cannot be empty", ErrFinanceValidation)
	}
	// "payment" is reserved for revenue; an expense tagged with it would
	// silently inflate every revenue rollup.
	if category == models.CategoryPayment {
		return 0, fmt.Errorf("%w: %q is not a valid expense category", ErrFinanceValidation, category)
	}
	if !req.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: expense amount must be positive", ErrFinanceValidation)
	}
	id, err := s.financeRepo.AddExpense(s.db, category, req.Amount, req.Description, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to add expense: %w", err)
	}
	return id, nil
}

func (s *financeService) GetPaymentsByDate(date string) ([]models.PaymentWithMember, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrDateFormat
	}
	payments, err := s.financeRepo.GetPaymentsByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for %s: %w", date, err)
	}
	return payments, nil
}

func (s *financeService) GetExpensesByDate(date string) ([]models.FinanceEntry, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrDateFormat
	}
	expenses, err := s.financeRepo.GetExpensesByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for %s: %w", date, err)
	}
	return expenses, nil
}

func (s *financeService) GetUnmatchedPayments() ([]models.UnmatchedPayment, error) {
	unmatched, err := s.financeRepo.GetUnmatchedPayments()
	if err != nil {
		return nil, fmt.Errorf("failed to get unmatched payments: %w", err)
	}
	return unmatched, nil
}

func (s *financeService) GetDailyPaymentsByUser(userID int64, date string) ([]models.FinanceEntry, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrDateFormat
	}
	payments, err := s.financeRepo.GetDailyPaymentsByUser(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily payments for user %d: %w", userID, err)
	}
	return payments, nil
}

func (s *financeService) GetAll() ([]models.FinanceEntry, error) {
	entries, err := s.financeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get finances: %w", err)
	}
	return entries, nil
}
