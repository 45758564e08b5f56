package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maternal-care-backend/config"
	"maternal-care-backend/internal/delivery/dto"
	deliveryHttp "maternal-care-backend/internal/delivery/http"
	"maternal-care-backend/internal/delivery/http/handler"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/infrastructure/cache"
	"maternal-care-backend/internal/infrastructure/database"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/service"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/jwt"
	"maternal-care-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// Connect loads configuration and opens the database. Commands that
// only touch the database stop here.
func Connect() (*App, error) {
	app := &App{}

	// Setup logger
	app.Log = setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.OpenPostgres(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	return app, nil
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	app, err := Connect()
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = initializeServer(app.Config, app.DB, redisClient, app.Log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	mohRepo := repository.NewMOHOfficerRepository()
	midwifeRepo := repository.NewMidwifeRepository()
	motherRepo := repository.NewMotherRepository()
	recordRepo := repository.NewPregnancyRecordRepository()
	pastRepo := repository.NewPastPregnancyRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	ancRepo := repository.NewANCVisitRepository()
	pncRepo := repository.NewPNCVisitRepository()
	deliveryRepo := repository.NewDeliveryRecordRepository()
	planRepo := repository.NewAntenatalPlanRepository()
	leaveRepo := repository.NewLeaveRequestRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	riskStatsCache := service.NewRiskStatsCache(redisClient, cfg.Cache.RiskStatsTTL, log)
	notifier := service.NewSMTPNotifier(cfg.SMTP, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, midwifeRepo, motherRepo, mohRepo, auditService, jwtService, redisClient)
	mohUsecase := usecase.NewMOHUsecase(db, log, mohRepo, auditService)
	midwifeUsecase := usecase.NewMidwifeUsecase(db, log, midwifeRepo, motherRepo, appointmentRepo, auditService, notifier)
	motherUsecase := usecase.NewMotherUsecase(db, log, motherRepo, auditService, riskStatsCache)
	carePlanUsecase := usecase.NewCarePlanUsecase(db, log, motherRepo, recordRepo, pastRepo, appointmentRepo, deliveryRepo, auditService, riskStatsCache)
	riskUsecase := usecase.NewRiskUsecase(db, log, motherRepo, recordRepo, riskStatsCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, motherRepo, auditService)
	visitUsecase := usecase.NewVisitUsecase(db, log, ancRepo, pncRepo, appointmentRepo, motherRepo, auditService)
	careRecordUsecase := usecase.NewCareRecordUsecase(db, log, deliveryRepo, planRepo, motherRepo, auditService)
	leaveUsecase := usecase.NewLeaveUsecase(db, log, leaveRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	mohHandler := handler.NewMOHHandler(mohUsecase)
	midwifeHandler := handler.NewMidwifeHandler(midwifeUsecase, customValidator)
	motherHandler := handler.NewMotherHandler(motherUsecase, customValidator)
	carePlanHandler := handler.NewCarePlanHandler(carePlanUsecase, customValidator)
	riskHandler := handler.NewRiskHandler(riskUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	careRecordHandler := handler.NewCareRecordHandler(careRecordUsecase, customValidator)
	leaveHandler := handler.NewLeaveHandler(leaveUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		mohHandler,
		midwifeHandler,
		motherHandler,
		carePlanHandler,
		riskHandler,
		appointmentHandler,
		visitHandler,
		careRecordHandler,
		leaveHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Migrate creates or updates every table
func (app *App) Migrate() error {
	if err := database.AutoMigrate(app.DB); err != nil {
		return err
	}
	app.Log.Info("Database migrated successfully")
	return nil
}

// SeedMOH registers a MOH officer account from the command line
func (app *App) SeedMOH(ctx context.Context, req *dto.RegisterMOHRequest) (*dto.MOHOfficerResponse, error) {
	if err := validator.NewValidator().Validate(req); err != nil {
		return nil, err
	}

	auditService := service.NewAuditService(app.Log, repository.NewAuditLogRepository())
	mohUsecase := usecase.NewMOHUsecase(app.DB, app.Log, repository.NewMOHOfficerRepository(), auditService)
	return mohUsecase.RegisterMOH(ctx, req)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
