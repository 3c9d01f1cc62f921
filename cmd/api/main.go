package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/config"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/taskboard-backend-go/internal/service/auth"
	calendarService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/calendar"
	dashboardService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/employee"
	taskService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/task"
	timelineService "github.com/cmlabs-hris/taskboard-backend-go/internal/service/timeline"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	tx            database.Transactor
	users         user.UserRepository
	employees     employee.EmployeeRepository
	tasks         task.TaskRepository
	refreshTokens auth.RefreshTokenRepository
	close         func()
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "taskboard"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		slog.Warn("Using in-memory storage, data is lost on restart")
		return &repositories{
			tx:            memory.NewTransactor(),
			users:         memory.NewUserRepository(),
			employees:     memory.NewEmployeeRepository(),
			tasks:         memory.NewTaskRepository(),
			refreshTokens: memory.NewRefreshTokenRepository(),
			close:         func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
	}

	return &repositories{
		tx:            postgresql.NewTransactor(db),
		users:         postgresql.NewUserRepository(db),
		employees:     postgresql.NewEmployeeRepository(db),
		tasks:         postgresql.NewTaskRepository(db),
		refreshTokens: postgresql.NewRefreshTokenRepository(db),
		close:         db.Close,
	}, nil
}

func seedDemoData(ctx context.Context, cfg *config.Config, repos *repositories, clk clock.Clock) error {
	hash, err := serviceAuth.HashPassword(cfg.Storage.DemoPassword)
	if err != nil {
		return err
	}
	seeder := fixtures.NewSeeder(repos.tx, repos.users, repos.employees, repos.tasks)
	if _, err := seeder.Seed(ctx, hash, clk.Now()); err != nil {
		if errors.Is(err, fixtures.ErrAlreadySeeded) {
			slog.Info("Demo data already present, skipping seed")
			return nil
		}
		return err
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Storage setup failed", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	clk := clock.NewSystemClock(cfg.App.Location)

	if cfg.ShouldSeedDemoData() {
		if err := seedDemoData(ctx, cfg, repos, clk); err != nil {
			slog.Error("Demo data seed failed", "error", err)
			os.Exit(1)
		}
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
	if err != nil {
		slog.Error("JWT setup failed", "error", err)
		os.Exit(1)
	}

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authService := serviceAuth.NewAuthService(repos.tx, repos.users, repos.employees, JWTService, repos.refreshTokens)
	employeeSvc := employeeService.NewEmployeeService(repos.employees)
	taskSvc := taskService.NewTaskService(repos.tasks, repos.employees, clk)
	calendarSvc := calendarService.NewCalendarService(repos.tasks, clk, cfg.App.DefaultWeekStart)
	timelineSvc := timelineService.NewTimelineService(repos.tasks, repos.employees, clk)
	dashboardSvc := dashboardService.NewDashboardService(repos.tasks, repos.employees, clk)

	router := appHTTP.NewRouter(logger, cfg.App.CORSAllowedOrigins, JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Task:      appHTTP.NewTaskHandler(taskSvc),
		Calendar:  appHTTP.NewCalendarHandler(calendarSvc),
		Timeline:  appHTTP.NewTimelineHandler(timelineSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(repos.refreshTokens, clk).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Driver, "timezone", cfg.App.Location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
