package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/merev/ds-scorekeeper/internal/config"
	"github.com/merev/ds-scorekeeper/internal/database"
	"github.com/merev/ds-scorekeeper/internal/game"
	apphttp "github.com/merev/ds-scorekeeper/internal/http"
	"github.com/merev/ds-scorekeeper/internal/storage/sqlite"
	"github.com/merev/ds-scorekeeper/internal/telemetry"
)

func main() {
	cfg := config.Load()

	shutdownTracing, err := telemetry.Setup(context.Background(), "dart-api", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	svc := game.NewService(store, cfg.PersistTimeout)
	handler := game.NewHandler(svc)
	router := apphttp.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("dart-api running on port %s (store: %s)", cfg.Port, cfg.Store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down dart-api...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracing shutdown failed: %v", err)
	}
}

// openStore connects the configured result store and returns its closer.
func openStore(cfg config.Config) (game.ResultStore, func()) {
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		return s, func() { _ = s.Close() }

	default:
		db, err := database.NewPool(cfg.DBDSN)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := database.Migrate(ctx, db); err != nil {
			cancel()
			db.Close()
			log.Fatalf("migration failed: %v", err)
		}
		cancel()

		return game.NewRepository(db), db.Close
	}
}
