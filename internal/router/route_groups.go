package router

import (
	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the unauthenticated auth routes.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.Login)
}

// SetupAuthenticatedAuthRoutes sets up the session-bound auth routes.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupMemberRoutes sets up the member routes.
func SetupMemberRoutes(authenticatedGroup *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	memberRoutes := authenticatedGroup.Group("/members")
	{
		memberRoutes.POST("", memberHandler.CreateMember)
		memberRoutes.GET("", memberHandler.GetMembers)
		memberRoutes.GET("/:code", memberHandler.GetMemberByCode)
		memberRoutes.PUT("/:code", memberHandler.UpdateMember)
		memberRoutes.DELETE("/:code", memberHandler.DeleteMember)
	}
}

// SetupAttendanceRoutes sets up the attendance routes.
func SetupAttendanceRoutes(authenticatedGroup *gin.RouterGroup, attendanceHandler *handlers.AttendanceHandler) {
	attendanceRoutes := authenticatedGroup.Group("/attendance")
	{
		attendanceRoutes.POST("", attendanceHandler.LogCheckIn)
		attendanceRoutes.GET("", attendanceHandler.GetByDate)
		attendanceRoutes.GET("/members/:code", attendanceHandler.GetByMember)
	}
}

// SetupFinanceRoutes sets up the finance routes.
func SetupFinanceRoutes(authenticatedGroup *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	financeRoutes := authenticatedGroup.Group("/finances")
	{
		financeRoutes.POST("/payments", financeHandler.AddPayment)
		financeRoutes.POST("/expenses", financeHandler.AddExpense)
		financeRoutes.GET("", financeHandler.GetAll)
		financeRoutes.GET("/payments", financeHandler.GetPayments)
		financeRoutes.GET("/expenses", financeHandler.GetExpenses)
		financeRoutes.GET("/payments/unmatched", financeHandler.GetUnmatchedPayments)
		financeRoutes.GET("/payments/mine", financeHandler.GetDailyPayments)
	}
}

// SetupSessionRoutes sets up the private training session routes.
func SetupSessionRoutes(authenticatedGroup *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessionRoutes := authenticatedGroup.Group("/sessions")
	{
		sessionRoutes.POST("", sessionHandler.AddSession)
		sessionRoutes.GET("", sessionHandler.GetSessions)
		sessionRoutes.GET("/members/:code", sessionHandler.GetByMember)
	}
}

// SetupInvitationRoutes sets up the invitation routes.
func SetupInvitationRoutes(authenticatedGroup *gin.RouterGroup, invitationHandler *handlers.InvitationHandler) {
	invitationRoutes := authenticatedGroup.Group("/invitations")
	{
		invitationRoutes.POST("", invitationHandler.AddInvitation)
		invitationRoutes.GET("", invitationHandler.GetInvitations)
		invitationRoutes.GET("/stats", invitationHandler.GetStats)
		invitationRoutes.GET("/members/:code", invitationHandler.GetByMember)
		invitationRoutes.PATCH("/:id/tag", invitationHandler.TagInvitation)
	}
}

// SetupLoanRoutes sets up the loan routes.
func SetupLoanRoutes(authenticatedGroup *gin.RouterGroup, loanHandler *handlers.LoanHandler) {
	loanRoutes := authenticatedGroup.Group("/loans")
	{
		loanRoutes.POST("", loanHandler.AddLoan)
		loanRoutes.GET("", loanHandler.GetLoans)
		loanRoutes.GET("/members/:code", loanHandler.GetByMember)
		loanRoutes.GET("/members/:code/balance", loanHandler.GetBalance)
	}
}

// SetupUserRoutes sets up the user management routes.
// Account creation and removal are admin only; password change is open to
// any authenticated user.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	adminRoutes := authenticatedGroup.Group("/users")
	adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminRoutes.GET("", userHandler.GetUsers)
		adminRoutes.POST("", userHandler.AddUser)
		adminRoutes.DELETE("/:id", userHandler.RemoveUser)
	}

	authenticatedGroup.PUT("/users/password", userHandler.ChangePassword)
}

// SetupReportRoutes sets up the report and dashboard routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	authenticatedGroup.GET("/dashboard/summary", reportHandler.GetDashboardSummary)
	authenticatedGroup.GET("/dashboard/cashier", reportHandler.GetDailyCashier)

	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/monthly", reportHandler.GetMonthlySummary)
		reportRoutes.GET("/monthly/entries", reportHandler.GetMonthlyFinancials)
		reportRoutes.GET("/registered-today", reportHandler.GetRegisteredToday)
		reportRoutes.GET("/paid-today", reportHandler.GetPaidToday)
		reportRoutes.GET("/attended-today", reportHandler.GetAttendedToday)
		reportRoutes.GET("/missing-payments", reportHandler.GetMissingPayments)
		reportRoutes.GET("/missing-payments/export", reportHandler.ExportMissingPayments)
		reportRoutes.GET("/monthly/export", reportHandler.ExportMonthlyFinancials)
	}
}
