package router

import (
	"database/sql"

	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	memberRepo := repositories.NewMemberRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	financeRepo := repositories.NewFinanceRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services
	memberService := services.NewMemberService(memberRepo, db)
	attendanceService := services.NewAttendanceService(attendanceRepo, memberRepo, db)
	financeService := services.NewFinanceService(financeRepo, memberRepo, db)
	sessionService := services.NewSessionService(sessionRepo, memberRepo, db)
	invitationService := services.NewInvitationService(invitationRepo, memberRepo, db)
	loanService := services.NewLoanService(loanRepo, memberRepo, db)
	userService := services.NewUserService(userRepo, db)
	authService := services.NewAuthService(userRepo)
	reportService := services.NewReportService(reportRepo, invitationRepo)

	// Initialize Handlers
	memberHandler := handlers.NewMemberHandler(memberService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	loanHandler := handlers.NewLoanHandler(loanService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService, userService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Login is the only public endpoint.
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupMemberRoutes(authenticated, memberHandler)
		SetupAttendanceRoutes(authenticated, attendanceHandler)
		SetupFinanceRoutes(authenticated, financeHandler)
		SetupSessionRoutes(authenticated, sessionHandler)
		SetupInvitationRoutes(authenticated, invitationHandler)
		SetupLoanRoutes(authenticated, loanHandler)
		SetupUserRoutes(authenticated, userHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
