// Package server boots the HTTP server: configuration, database, schema,
// middleware chain, routes, and a graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/app/routes"
	"github.com/shashiranjanraj/stockpile/config"
	"github.com/shashiranjanraj/stockpile/pkg/database"
	"github.com/shashiranjanraj/stockpile/pkg/logger"
	"github.com/shashiranjanraj/stockpile/pkg/metrics"
	"github.com/shashiranjanraj/stockpile/pkg/middleware"
	"github.com/shashiranjanraj/stockpile/pkg/reqid"
	"github.com/shashiranjanraj/stockpile/pkg/router"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	// Table creation is idempotent and runs on every start, so a fresh
	// database file is usable without an explicit migrate step.
	if err := db.AutoMigrate(&models.Product{}, &models.Branch{}, &models.Stock{}); err != nil {
		return err
	}

	r := NewRouter(db)

	addr := ":" + config.AppPort()
	srv := &http.Server{Addr: addr, Handler: r.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "driver", config.DatabaseDriver())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter assembles the full middleware chain and route table around an
// injected database handle. Split out from Start so tests can exercise the
// exact production handler against an in-memory database.
func NewRouter(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, db)
	return r
}
