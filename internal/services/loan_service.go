package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrLoanValidation = errors.New("loan data validation error")

// AddLoanRequest records one loan ledger row. A negative amount is a
// repayment; zero carries no information and is rejected.
type AddLoanRequest struct {
	ClientCode  string          `json:"client_code" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// MemberLoans is the per-member view: the rows plus the derived balance.
type MemberLoans struct {
	Loans          []models.Loan   `json:"loans"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// LoanService is the use-case façade over the loan repository.
type LoanService interface {
	AddLoan(req AddLoanRequest) (*models.Loan, error)
	GetByMember(code string) (*MemberLoans, error)
	GetAll() ([]models.Loan, error)
	GetRunningBalance(code string) (decimal.Decimal, error)
}

type loanService struct {
	loanRepo   repositories.LoanRepository
	memberRepo repositories.MemberRepository
	db         *sql.DB
}

// NewLoanService creates a new instance of LoanService.
func NewLoanService(loanRepo repositories.LoanRepository, memberRepo repositories.MemberRepository, db *sql.DB) LoanService {
	return &loanService{loanRepo: loanRepo, memberRepo: memberRepo, db: db}
}

func (s *loanService) AddLoan(req AddLoanRequest) (*models.Loan, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: loan amount cannot be zero", ErrLoanValidation)
	}
	clientID, err := s.memberRepo.GetIDByCode(req.ClientCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	loan := &models.Loan{
		ClientID:    clientID,
		Amount:      req.Amount,
		Description: description,
	}
	if _, err := s.loanRepo.Add(s.db, loan); err != nil {
		return nil, fmt.Errorf("failed to add loan: %w", err)
	}
	return loan, nil
}

func (s *loanService) GetByMember(code string) (*MemberLoans, error) {
	clientID, err := s.memberRepo.GetIDByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to resolve member code: %w", err)
	}
	loans, err := s.loanRepo.GetByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loans for member %s: %w", code, err)
	}
	balance, err := s.loanRepo.RunningBalance(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan balance for member %s: %w", code, err)
	}
	return &MemberLoans{Loans: loans, RunningBalance: balance}, nil
}

func (s *loanService) GetAll() ([]models.Loan, error) {
	loans, err := s.loanRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get loans: %w", err)
	}
	return loans, nil
}

func (s *loanService) GetRunningBalance(code string) (decimal.Decimal, error) {
	clientID, err := s.memberRepo.GetIDByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return decimal.Zero, ErrMemberNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to resolve member code: %w", err)
	}
	balance, err := s.loanRepo.RunningBalance(clientID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get loan balance for member %s: %w", code, err)
	}
	return balance, nil
}
