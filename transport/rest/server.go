package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewRouter wires the REST API. Everything except /ping and /auth/guest needs a bearer token.
func NewRouter(logger *slog.Logger, auth authService, rooms roomService, solo soloService) http.Handler {
	authH := &authHandler{logger: logger, auth: auth}
	roomH := &roomHandler{logger: logger, rooms: rooms}
	soloH := &soloHandler{logger: logger, solo: solo}
	pingH := &pingHandler{rooms: rooms}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", pingH.PingHandler)
	r.Post("/auth/guest", authH.GuestLogin)

	r.Group(func(r chi.Router) {
		r.Use(authH.Authenticate)

		r.Post("/rooms", roomH.Create)
		r.Route("/rooms/{code}", func(r chi.Router) {
			r.Get("/", roomH.Get)
			r.Post("/join", roomH.Join)
			r.Post("/moves", roomH.Move)
			r.Post("/reset", roomH.Reset)
		})

		r.Post("/solo", soloH.Start)
		r.Route("/solo/{id}", func(r chi.Router) {
			r.Get("/", soloH.Get)
			r.Delete("/", soloH.End)
			r.Post("/moves", soloH.Move)
			r.Post("/rounds", soloH.NewRound)
		})
	})

	return r
}

// Start serves handler on port until ctx is done, then shuts down gracefully.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	log := logger.With("method", "Start", "port", port)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}
