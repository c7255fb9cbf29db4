package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donationrecords/config"
	_ "donationrecords/docs"
	"donationrecords/internal/adapters/auth"
	"donationrecords/internal/adapters/email"
	httpapi "donationrecords/internal/delivery/http"
	"donationrecords/internal/delivery/http/controllers"
	"donationrecords/internal/delivery/http/middleware"
	"donationrecords/internal/domain"
	"donationrecords/internal/metrics"
	"donationrecords/internal/migration"
	"donationrecords/internal/repository/postgres"
	"donationrecords/internal/services"

	_ "github.com/lib/pq"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title Donation Records API
// @version 1.0
// @description Records monetary donations and answers lookups by id, donor CPF and donor name.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return err
	}

	if cfg.RunMigrations {
		if err := migration.RunMigrations(db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	m := metrics.New()
	donationRepo := postgres.NewDonationRepository(db)
	emailService := services.NewEmailService(mailer, renderer, logger)
	donationService := services.NewDonationService(donationRepo, emailService, m, logger, serviceTimeout)

	routerCfg := httpapi.RouterConfig{
		Donations:      controllers.NewDonationController(logger, donationService, cfg.Location),
		Health:         controllers.NewHealthController(logger, db),
		Observer:       m,
		MetricsHandler: m.Handler(),
	}
	if cfg.AdminJWTSecret != "" {
		routerCfg.RequireAdmin = middleware.RequireRole(auth.NewJWTVerifier(cfg.AdminJWTSecret), domain.RoleAdmin, logger)
	} else {
		logger.Warn("ADMIN_JWT_SECRET not set; DELETE /api/donations/{id} is unauthenticated")
	}

	var handler http.Handler = httpapi.NewRouter(routerCfg)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
