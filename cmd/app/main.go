package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"procurement/cmd"
	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(configs.LogLevel, configs.LogFormat, configs.ServiceName)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	notifier, closeNotifier, err := cmd.NewNotifier(ctx, configs, zapLogger)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}
	defer func() { _ = closeNotifier() }()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, zapLogger)

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, zapLogger)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connection to postgres through gorm: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, zapLogger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewValidator()
	e.HTTPErrorHandler = httpin.ErrorHandler(zapLogger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server := app.Server()
	server.Register(e, httpin.Authenticate([]byte(configs.JWTSecret)))
	if err := server.RegisterDocs(ctx, e); err != nil {
		log.Fatalf("api docs: %v", err)
	}

	go func() {
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http shutdown", zap.Error(err))
	}
}
