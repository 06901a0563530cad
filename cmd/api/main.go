package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	authUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/auth"
	employeeUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/employee"
	payrollUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/payroll"
	reportingUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/reporting"
	settingsUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/settings"
	streamUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/stream"
	taxUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/tax"
	treasuryUseCase "github.com/corepay/payroll-ledger/internal/domain/usecase/treasury"

	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/corepay/payroll-ledger/internal/infrastructure/adapter/auth"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/database"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/logger"
	"github.com/corepay/payroll-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/corepay/payroll-ledger/internal/infrastructure/adapter/time"
	"github.com/corepay/payroll-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
	}

	db, err := database.Connect(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Run migrations
	migrator := database.NewMigrator(db, appLogger, tp)
	if err := migrator.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db, appLogger)
	treasuryRepo := repository.NewTreasuryRepository(db, tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, tp, appLogger)
	taxSlabRepo := repository.NewTaxSlabRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)

	uow := database.NewUnitOfWork(db, appLogger, tp)

	// Auth collaborators
	hasher := authAdapter.NewBcryptHasher()
	tokens := authAdapter.NewJWTIssuer(cfg.Auth.JWTSecret, tp)

	fallbackRate, err := decimal.NewFromString(cfg.Payroll.FallbackTaxRate)
	if err != nil {
		log.Fatalf("Invalid payroll.fallbackTaxRate: %v", err)
	}

	// Use cases
	taxCalculator := taxUseCase.NewCalculator(settingsRepo, fallbackRate, appLogger)
	payrollEngine := payrollUseCase.NewEngine(uow, taxCalculator, tp, appLogger)
	treasuryLedger := treasuryUseCase.NewLedger(uow, treasuryRepo, tp, appLogger)
	streamController := streamUseCase.NewController(employeeRepo, tp, appLogger)
	reportingAggregator := reportingUseCase.NewAggregator(ledgerRepo, employeeRepo, appLogger)
	employeeService := employeeUseCase.NewService(uow, employeeRepo, ledgerRepo, tp, appLogger)
	settingsService := settingsUseCase.NewService(settingsRepo, taxSlabRepo, tp, appLogger)
	authService := authUseCase.NewService(userRepo, hasher, tokens, cfg.Auth.TokenTTL, tp, appLogger)

	// Seed the admin identity so the API is usable on a fresh database
	if cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			appLogger.Error("Failed to seed admin user", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// HTTP layer
	handlers := routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, appLogger),
		Employee: handler.NewEmployeeHandler(employeeService, appLogger),
		Payroll:  handler.NewPayrollHandler(payrollEngine, appLogger),
		Treasury: handler.NewTreasuryHandler(treasuryLedger, appLogger),
		Stream:   handler.NewStreamHandler(streamController, appLogger),
		Report:   handler.NewReportHandler(reportingAggregator, treasuryLedger, appLogger),
		Settings: handler.NewSettingsHandler(settingsService, appLogger),
		Chain:    handler.NewChainHandler(cfg.Chain),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, tokens, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missing = append(missing, "database.host (or PL_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missing = append(missing, "database.username (or PL_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missing = append(missing, "database.database (or PL_DB_NAME environment variable)")
		}
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missing = append(missing, "database.path (or PL_DB_PATH environment variable)")
		}
	default:
		return fmt.Errorf("invalid database.driver value: %q, must be %q or %q",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or PL_AUTH_JWT_SECRET environment variable)")
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
