package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"triage-insights-go/internal/config"
	"triage-insights-go/internal/dataset"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/server"
	"triage-insights-go/internal/source"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "triage-insights-go").Info("starting service")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	datasets, err := datasetProvider(cfg.Dataset, log.Entry)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout(),
		WriteTimeout:    cfg.Server.WriteTimeout(),
		IdleTimeout:     cfg.Server.IdleTimeout(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout(),
		Defaults:        cfg.Explain.Defaults(),
		Dependencies: server.Dependencies{
			Datasets: datasets,
			Logger:   log,
		},
	})
	if err := api.Start(); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
	log.Info("server stopped")
}

// datasetProvider prefers a local file, then the upstream source, then the
// demo data.
func datasetProvider(cfg config.DatasetConfig, log *logrus.Entry) (server.DatasetProvider, error) {
	switch {
	case cfg.Path != "":
		ds, err := dataset.LoadAndSummarize(cfg.Path)
		if err != nil {
			return nil, err
		}
		return server.StaticDataset{DS: ds}, nil
	case cfg.SourceURL != "":
		log.WithField("source_url", cfg.SourceURL).Info("serving analytics from upstream source")
		return source.New(cfg.SourceURL, cfg.Timeout()), nil
	default:
		log.Warn("no dataset configured, serving demo data")
		return server.StaticDataset{DS: dataset.Demo()}, nil
	}
}
