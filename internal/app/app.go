package app

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

	"quotedesk/go_backend/internal/app/config"
	"quotedesk/go_backend/internal/app/controller"
	apphttp "quotedesk/go_backend/internal/app/http"
	"quotedesk/go_backend/internal/domain/quote/pdf/gofpdf"
	"quotedesk/go_backend/internal/domain/settings"
	"quotedesk/go_backend/internal/infra/db/postgres"
	"quotedesk/go_backend/internal/infra/db/sqlite"
	"quotedesk/go_backend/internal/infra/supabase"
	"quotedesk/go_backend/internal/infra/webhook"
	"quotedesk/go_backend/internal/logging"
	"quotedesk/go_backend/internal/persistence"
)

// Runtime is the wired application: stores, gateway and controller.
type Runtime struct {
	Ctrl    *controller.Controller
	closers []func()
}

func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
}

// Open wires the local store and remote destinations and loads state.
func Open(ctx context.Context, cfg config.Config) (*Runtime, error) {
	rt := &Runtime{}

	local, err := sqlite.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	rt.closers = append(rt.closers, func() { local.Close() })

	httpClient := &http.Client{Timeout: 15 * time.Second}

	var pg *postgres.Store
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("db: %w", err)
		}
		rt.closers = append(rt.closers, db.Close)
		pg = postgres.NewStore(db)
		if err := pg.Migrate(ctx); err != nil {
			rt.Close()
			return nil, fmt.Errorf("db migrate: %w", err)
		}
	}

	// Factories return an untyped nil for an unconfigured destination.
	remote := func(s settings.Settings) persistence.RemoteStore {
		if pg != nil {
			return pg
		}
		if !s.HasRemote() {
			return nil
		}
		return supabase.New(s.RemoteURL, s.RemoteKey, httpClient)
	}
	notifier := func(s settings.Settings) persistence.Notifier {
		if !s.HasWebhook() {
			return nil
		}
		return webhook.New(s.WebhookURL, httpClient)
	}

	gw := persistence.NewGateway(local, remote, notifier)
	rt.Ctrl = controller.New(gw, controller.Options{})
	if err := rt.Ctrl.Load(ctx, cfg.SeedSettings()); err != nil {
		rt.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	return rt, nil
}

func Run() {
	cfg := config.MustLoad()
	logging.Setup(cfg.LogLevel)

	rt, err := Open(context.Background(), cfg)
	if err != nil {
		logging.Fatal("startup failed", "error", err)
	}
	defer rt.Close()

	router := apphttp.NewRouter(cfg, rt.Ctrl, gofpdf.New(cfg.Issuer))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
