package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"triage-insights-go/internal/explain"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/types"
)

// DatasetProvider supplies the dataset behind GET /api/v1/analytics.
type DatasetProvider interface {
	Dataset(ctx context.Context) (types.Dataset, error)
}

// StaticDataset serves a dataset loaded once at startup.
type StaticDataset struct {
	DS types.Dataset
}

func (s StaticDataset) Dataset(context.Context) (types.Dataset, error) {
	return s.DS, nil
}

type Dependencies struct {
	Datasets DatasetProvider
	Logger   *logger.Logger
}

type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Defaults        explain.Defaults
	Dependencies    Dependencies
}

type WebAPI struct {
	router          chi.Router
	logger          *logger.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// ConfigureRouter builds the routes without starting anything.
func ConfigureRouter(config Config) chi.Router {
	log := config.Dependencies.Logger
	if log == nil {
		log = logger.New()
	}
	h := &handler{datasets: config.Dependencies.Datasets, defaults: config.Defaults}

	router := chi.NewRouter()
	router.Use(log.Middleware)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.health)
	router.Get("/demo", h.demo)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/explanations", h.explain)
		r.Get("/analytics", h.analytics)
		r.Post("/analytics", h.analyzeDataset)
	})
	return router
}

func NewWebAPI(config Config) *WebAPI {
	log := config.Dependencies.Logger
	if log == nil {
		log = logger.New()
	}
	config.Dependencies.Logger = log
	router := ConfigureRouter(config)

	shutdown := config.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = 10 * time.Second
	}
	return &WebAPI{
		router: router,
		logger: log,
		server: &http.Server{
			Addr:         config.Addr,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
		shutdownTimeout: shutdown,
	}
}

// Start serves until the listener fails or SIGINT/SIGTERM arrives, then
// drains in-flight requests for up to the shutdown timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.WithField("addr", w.server.Addr).Info("listening")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-shutdown:
		w.logger.WithField("signal", sig.String()).Info("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.WithError(err).Error("graceful shutdown failed")
			err = w.server.Close()
		}
		return err
	}
}
