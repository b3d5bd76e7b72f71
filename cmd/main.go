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

	"croevo-console/internal/adapter/http"
	"croevo-console/internal/adapter/identity"
	"croevo-console/internal/adapter/mail"
	"croevo-console/internal/adapter/postgres"
	"croevo-console/internal/adapter/redis"
	"croevo-console/internal/adapter/usecase"
	"croevo-console/internal/config"
	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/port"
	"croevo-console/internal/db"
	"croevo-console/internal/render"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const brand = "Croevo AI"

// main loads configuration, prepares the database, wires the adapters and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("console stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if err = seedAdmin(ctx, pool, cfg.Bootstrap, logger); err != nil {
		return err
	}

	locker, closeLocker := dispatchLocker(cfg.Redis, pool, logger)
	defer closeLocker()

	renderer, err := render.New(brand)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	ids := identity.New(postgres.NewPrincipalRepository(pool), cfg.Auth)
	news := usecase.NewNewsletterUseCase(
		postgres.NewSubscriberRepository(pool),
		postgres.NewCampaignRepository(pool),
		locker,
		renderer,
		mailTransport(cfg.Mail, logger),
		cfg.Dispatch,
		logger,
	)
	access := usecase.NewAccessUseCase(
		postgres.NewInviteRepository(pool),
		postgres.NewRoleRepository(pool),
		ids,
		cfg.Invite,
		logger,
	)

	handler := httpadapter.NewHandler(cfg.HTTP, news, access, ids, pool, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	// In-flight dispatches run detached from their request, so give them
	// the whole shutdown window.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, cfg configs.Bootstrap, logger *slog.Logger) error {
	if !cfg.Enabled() {
		return nil
	}
	hash, err := identity.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin password: %w", err)
	}
	created, err := db.SeedAdmin(ctx, pool, cfg.Email, hash)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logger.Info("bootstrap admin created", slog.String("email", cfg.Email))
	}
	return nil
}

func dispatchLocker(cfg configs.Redis, pool *pgxpool.Pool, logger *slog.Logger) (port.DispatchLocker, func()) {
	if !cfg.Enabled() {
		return postgres.NewAdvisoryLocker(pool, logger), func() {}
	}
	rdb := redis.NewClient(cfg)
	logger.Info("using redis dispatch lock", slog.String("addr", cfg.Addr))
	return redis.NewDispatchLocker(rdb, cfg.LockTTL, logger), func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}
}

func mailTransport(cfg configs.Mail, logger *slog.Logger) port.MailTransport {
	if cfg.NormalizedProvider() == configs.MailProviderResend {
		return mail.NewResendTransport(cfg, &http.Client{Timeout: cfg.Timeout})
	}
	logger.Warn("mail provider is log; newsletters are not delivered")
	return mail.NewLogTransport(logger)
}
