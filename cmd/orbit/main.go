// cmd/orbit/main.go
//
// Orbit backend – process entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (host-wide file → .env fallback).
//
//  2. Build Settings (fatal on any missing or invalid variable; the error
//     names every offending field).
//
//  3. Start the structured logger from the LogConfig projection (tees to
//     console when running in a TTY).
//
//  4. With -check: dial the configured database and cache once, report,
//     and exit.  This is the smoke test for a new deployment's settings.
//
//  5. Otherwise expose /metrics and /healthz on the metrics port (when
//     enabled) and wait for SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/orbitai/orbit/internal/cache"
	"github.com/orbitai/orbit/internal/database"
	"github.com/orbitai/orbit/internal/logger"
	"github.com/orbitai/orbit/internal/secrets"
	"github.com/orbitai/orbit/internal/settings"
)

const serverEnvPath = "/usr/local/etc/orbit/global.env"

// loadEnv prefers the host-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	check := flag.Bool("check", false, "dial the configured database and cache, then exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Settings (with Vault resolution when configured) ───────────
	//
	var resolver secrets.Resolver
	if os.Getenv("VAULT_ADDR") != "" {
		cli, err := secrets.New()
		if err != nil {
			log.Fatalf("vault client: %v", err)
		}
		resolver = cli
	}

	cfg, err := settings.Load(ctx, resolver)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	logOut, err := logger.New(cfg.LogConfig(), runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	logOut.Infow("orbit online",
		"app", cfg.AppName,
		"env", cfg.AppEnv,
		"debug", cfg.Debug,
		"api_prefix", cfg.APIV1Prefix,
	)

	//
	// ── 2.  Connectivity smoke test (-check) ───────────────────────────
	//
	if *check {
		runCheck(ctx, cfg, logOut.Infow, logOut.Errorw)
		return
	}

	//
	// ── 3.  Metrics endpoint ────────────────────────────────────────────
	//
	mcfg := cfg.MetricsConfig()

	g, ctx := errgroup.WithContext(ctx)

	if mcfg.Enabled {
		r := chi.NewRouter()
		r.Handle(mcfg.Path, promhttp.Handler())
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", mcfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logOut.Infow("metrics endpoint up", "addr", srv.Addr, "path", mcfg.Path)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	} else {
		logOut.Infow("metrics disabled; idling until signal")
		g.Go(func() error {
			<-ctx.Done()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logOut.Fatalw("shutdown with error", "err", err)
	}
	logOut.Infow("orbit offline")
}

// runCheck dials the derived database and cache URIs once each and logs
// the outcome.  Exits non-zero when either dial fails.
func runCheck(ctx context.Context, cfg *settings.Settings, infow, errorw func(string, ...any)) {
	failed := false

	db, err := database.OpenWithConfig(cfg.DatabaseConfig(), cfg.DatabaseURI)
	if err != nil {
		errorw("database unreachable", "err", err)
		failed = true
	} else {
		infow("database reachable", "host", cfg.PostgresServer)
		_ = db.Close()
	}

	rdb, err := cache.Open(ctx, cfg.RedisURI)
	if err != nil {
		errorw("cache unreachable", "err", err)
		failed = true
	} else {
		infow("cache reachable", "host", cfg.RedisHost)
		_ = rdb.Close()
	}

	if failed {
		os.Exit(1)
	}
}
