package services

import (
	"fmt"
	"regexp"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

var monthTokenRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ErrMonthFormat rejects anything that is not a YYYY-MM token. The monthly
// queries are string-prefix matches on stored timestamps, so the token shape
// matters.
var ErrMonthFormat = fmt.Errorf("invalid month format, please use YYYY-MM")

// ReportService composes the read-only aggregation queries behind the
// dashboard and report screens, and shapes (headers, rows) tables for the
// export writers.
type ReportService interface {
	GetDashboardSummary() (*models.DashboardSummary, error)
	GetMonthlySummary(month string) (*models.MonthlySummary, error)
	GetRegisteredToday() ([]models.Member, error)
	GetPaidToday() ([]models.FinanceEntry, error)
	GetAttendedToday() ([]models.CheckIn, error)
	GetMonthlyFinancials(month string) ([]models.FinanceEntry, error)
	GetMissingPayments() ([]models.MissingPayment, error)
	GetDailyCashier(userID int64) (*models.DashboardSummary, error)

	MissingPaymentsTable() (*models.ReportTable, error)
	MonthlyFinancialsTable(month string) (*models.ReportTable, error)
}

type reportService struct {
	reportRepo     repositories.ReportRepository
	invitationRepo repositories.InvitationRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(reportRepo repositories.ReportRepository, invitationRepo repositories.InvitationRepository) ReportService {
	return &reportService{reportRepo: reportRepo, invitationRepo: invitationRepo}
}

// GetDashboardSummary recomputes every dashboard metric from the store.
// Nothing is cached; at a few thousand rows per table this is cheap.
func (s *reportService) GetDashboardSummary() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	var err error

	if summary.ActiveMembers, err = s.reportRepo.CountActive(); err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}
	if summary.FrozenMembers, err = s.reportRepo.CountFrozen(); err != nil {
		return nil, fmt.Errorf("failed to count frozen members: %w", err)
	}
	if summary.EndingSoon, err = s.reportRepo.CountEndingSoon(); err != nil {
		return nil, fmt.Errorf("failed to count ending-soon members: %w", err)
	}
	if summary.MissingPayments, err = s.reportRepo.CountMissingPayments(); err != nil {
		return nil, fmt.Errorf("failed to count missing payments: %w", err)
	}
	if summary.TotalRevenue, err = s.reportRepo.TotalRevenue(); err != nil {
		return nil, fmt.Errorf("failed to compute total revenue: %w", err)
	}
	if summary.DailyCashier, err = s.reportRepo.DailyCashierTotal(); err != nil {
		return nil, fmt.Errorf("failed to compute daily cashier total: %w", err)
	}

	stats, err := s.invitationRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation stats: %w", err)
	}
	summary.InviteConversion = stats.Conversion()

	return summary, nil
}

// GetDailyCashier is the per-user till reconciliation view.
func (s *reportService) GetDailyCashier(userID int64) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	var err error
	if summary.DailyCashier, err = s.reportRepo.DailyCashierTotalByUser(userID); err != nil {
		return nil, fmt.Errorf("failed to compute daily cashier total for user %d: %w", userID, err)
	}
	return summary, nil
}

// GetMonthlySummary rolls one YYYY-MM token up into revenue, expenses and
// net profit. Expenses match category = 'expense' only.
func (s *reportService) GetMonthlySummary(month string) (*models.MonthlySummary, error) {
	if !monthTokenRegex.MatchString(month) {
		return nil, ErrMonthFormat
	}
	revenue, err := s.reportRepo.MonthlyRevenue(month)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}
	expenses, err := s.reportRepo.MonthlyExpenses(month)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly expenses: %w", err)
	}
	return &models.MonthlySummary{
		Month:     month,
		Revenue:   revenue,
		Expenses:  expenses,
		NetProfit: revenue.Sub(expenses),
	}, nil
}

func (s *reportService) GetRegisteredToday() ([]models.Member, error) {
	members, err := s.reportRepo.GetRegisteredToday()
	if err != nil {
		return nil, fmt.Errorf("failed to get today's registrations: %w", err)
	}
	now := time.Now()
	for i := range members {
		members[i].Derive(now)
	}
	return members, nil
}

func (s *reportService) GetPaidToday() ([]models.FinanceEntry, error) {
	entries, err := s.reportRepo.GetPaidToday()
	if err != nil {
		return nil, fmt.Errorf("failed to get today's payments: %w", err)
	}
	return entries, nil
}

func (s *reportService) GetAttendedToday() ([]models.CheckIn, error) {
	checkins, err := s.reportRepo.GetAttendedToday()
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return checkins, nil
}

func (s *reportService) GetMonthlyFinancials(month string) ([]models.FinanceEntry, error) {
	if !monthTokenRegex.MatchString(month) {
		return nil, ErrMonthFormat
	}
	entries, err := s.reportRepo.GetMonthlyFinancials(month)
	if err != nil {
		return nil, fmt.Errorf("failed to get financials for %s: %w", month, err)
	}
	return entries, nil
}

func (s *reportService) GetMissingPayments() ([]models.MissingPayment, error) {
	missing, err := s.reportRepo.GetMissingPayments()
	if err != nil {
		return nil, fmt.Errorf("failed to get missing payments: %w", err)
	}
	return missing, nil
}

// MissingPaymentsTable shapes the collections list for an export writer.
func (s *reportService) MissingPaymentsTable() (*models.ReportTable, error) {
	missing, err := s.GetMissingPayments()
	if err != nil {
		return nil, err
	}
	table := &models.ReportTable{
		Headers: []string{"Client Code", "Name", "Phone", "End Date", "Amount Remaining"},
	}
	for _, m := range missing {
		phone := ""
		if m.Phone != nil {
			phone = *m.Phone
		}
		table.Rows = append(table.Rows, []string{
			m.ClientCode, m.Name, phone, m.EndDate, m.AmountRemaining.String(),
		})
	}
	return table, nil
}

// MonthlyFinancialsTable shapes one month's ledger for an export writer.
func (s *reportService) MonthlyFinancialsTable(month string) (*models.ReportTable, error) {
	entries, err := s.GetMonthlyFinancials(month)
	if err != nil {
		return nil, err
	}
	table := &models.ReportTable{
		Headers: []string{"ID", "Category", "Amount", "Description", "Created At"},
	}
	for _, e := range entries {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID), e.Category, e.Amount.String(), description, e.CreatedAt,
		})
	}
	return table, nil
}
