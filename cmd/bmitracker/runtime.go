package main

import (
	"fmt"

	"bmitracker/internal/app"
	"bmitracker/internal/config"
	"bmitracker/internal/domain"
	"bmitracker/internal/logger"
	"bmitracker/internal/metrics"
	"bmitracker/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runtime holds the dependencies shared by every command. Close releases the
// store on all exit paths.
type runtime struct {
	cfg          config.Config
	log          *zap.Logger
	registry     *prometheus.Registry
	repo         domain.RecordRepository
	measurements *app.MeasurementService
	charts       *app.ChartsService
}

func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	repo, err := store.Open(cmd.Context(), cfg.Store, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return &runtime{
		cfg:          cfg,
		log:          log,
		registry:     reg,
		repo:         repo,
		measurements: app.NewMeasurementService(repo, rec, log),
		charts:       app.NewChartsService(repo),
	}, nil
}

func (r *runtime) Close() {
	if err := r.repo.Close(); err != nil {
		r.log.Warn("close store", zap.Error(err))
	}
	_ = r.log.Sync()
}
