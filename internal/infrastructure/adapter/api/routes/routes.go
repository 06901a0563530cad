package routes

import (
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler wired into the router
type Handlers struct {
	Auth     *handler.AuthHandler
	Employee *handler.EmployeeHandler
	Payroll  *handler.PayrollHandler
	Treasury *handler.TreasuryHandler
	Stream   *handler.StreamHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Chain    *handler.ChainHandler
}

// SetupRoutes configures all the routes for the API. Everything except login
// requires a valid token; mutations require the admin role.
func SetupRoutes(router *gin.Engine, h Handlers, tokens coreport.TokenIssuer, logger coreport.Logger) {
	router.POST("/auth/register", h.Auth.Register)
	router.POST("/auth/login", h.Auth.Login)

	authed := router.Group("", middleware.Authenticate(tokens, logger))
	admin := authed.Group("", middleware.RequireAdmin())

	authed.GET("/blockchain/config", h.Chain.GetConfig)

	// Self-service routes, resolved through the principal's email
	{
		authed.GET("/me/profile", h.Employee.MyProfile)
		authed.GET("/me/transactions", h.Employee.MyTransactions)
	}

	// Employee routes
	{
		authed.GET("/employees", h.Employee.List)
		authed.GET("/employees/:employeeId", h.Employee.Get)
		authed.GET("/employees/:employeeId/transactions", h.Employee.Transactions)

		admin.POST("/employees", h.Employee.Create)
		admin.PUT("/employees/:employeeId/tax", h.Employee.UpdateTaxOverride)
		admin.PUT("/employees/:employeeId/wallet", h.Employee.UpdateWallet)
		admin.DELETE("/employees/:employeeId", h.Employee.Delete)
	}

	// Payout routes
	{
		admin.POST("/employees/:employeeId/salary", h.Payroll.PaySalary)
		admin.POST("/employees/:employeeId/bonus", h.Payroll.GiveBonus)
		admin.POST("/employees/:employeeId/stream/start", h.Stream.Start)
		admin.POST("/employees/:employeeId/stream/pause", h.Stream.Pause)
	}

	// Treasury routes
	{
		authed.GET("/treasury", h.Treasury.Get)
		admin.POST("/treasury/deposit", h.Treasury.Deposit)
		admin.POST("/treasury/withdraw", h.Treasury.Withdraw)
	}

	// Reporting routes
	{
		authed.GET("/reports/dashboard", h.Report.Dashboard)
		authed.GET("/reports/monthly", h.Report.MonthlySummary)
		authed.GET("/reports/top-earners", h.Report.TopEarners)
	}

	// Settings routes
	{
		authed.GET("/settings", h.Settings.Get)
		authed.GET("/settings/tax-slabs", h.Settings.ListSlabs)

		admin.PUT("/settings", h.Settings.Update)
		admin.POST("/settings/tax-slabs", h.Settings.CreateSlab)
		admin.DELETE("/settings/tax-slabs/:slabId", h.Settings.DeleteSlab)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
