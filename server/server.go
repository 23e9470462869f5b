// Package server exposes the acquisition controller to the browser dashboard as a JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"weatherdash/logger"
	"weatherdash/manager"
)

//go:generate mockgen -source=server.go -destination=mock/mock.go Controller

// Controller provides the dashboard triggers.
type Controller interface {
	Snapshot() manager.State
	Mount(ctx context.Context) manager.State
	Locate(ctx context.Context) manager.State
	LocateWith(ctx context.Context, locator manager.Locator) manager.State
	Search(ctx context.Context, query string) manager.State
	Refresh(ctx context.Context) manager.State
}

const shutdownTimeout = 5 * time.Second

// WeatherServer is a server for the weather dashboard.
type WeatherServer struct {
	controller Controller
	theme      *themeStore
	origin     string
	accessLog  io.Writer
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(controller Controller, origin string) *WeatherServer {
	return &WeatherServer{
		controller: controller,
		theme:      newThemeStore(),
		origin:     origin,
		accessLog:  logger.Writer(),
	}
}

// Router wires the API routes with CORS and access logging.
func (s *WeatherServer) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", s.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/state", s.GetStateHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/search", s.SearchHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/locate", s.LocateHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/refresh", s.RefreshHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/theme", s.GetThemeHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/theme", s.SetThemeHandler).Methods(http.MethodPut)

	return handlers.CORS(setupCorsOptions(s.origin)...)(handlers.LoggingHandler(s.accessLog, r))
}

// Run loads the initial forecast in the background and serves until ctx is done.
func (s *WeatherServer) Run(ctx context.Context, port int) error {
	go s.controller.Mount(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info(fmt.Sprintf("Starting weather dashboard api at port %d", port))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func setupCorsOptions(origin string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	return []handlers.CORSOption{methods, origins, headers}
}
