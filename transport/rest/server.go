package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes the ping, stats and archive endpoints.
func NewRouter(ping PingHandler, handlers Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ping", ping.PingHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handlers.Stats).Methods(http.MethodGet)
	router.HandleFunc("/games/recent", handlers.RecentGames).Methods(http.MethodGet)
	router.HandleFunc("/games/totals", handlers.GameTotals).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}", handlers.GameByID).Methods(http.MethodGet)

	return router
}

// Start - serves the router on port until ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string, router http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
