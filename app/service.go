package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/staffsight/staffsight/api/dashboard"
	"github.com/staffsight/staffsight/config"
	"github.com/staffsight/staffsight/core/analytics"
	"github.com/staffsight/staffsight/core/engine"
	"github.com/staffsight/staffsight/core/match"
	coremetrics "github.com/staffsight/staffsight/core/metrics"
	"github.com/staffsight/staffsight/infra/logger"
	"github.com/staffsight/staffsight/infra/metrics"
	"github.com/staffsight/staffsight/internal/tabular"
	"github.com/staffsight/staffsight/pkg/export"
)

// Service wires the scoring engine, the matcher and the observability sinks.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	eng     *engine.Engine
	matcher *match.Matcher
	sink    coremetrics.RunRecorder
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.RunRecorder
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.RunRecorder = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	return &Service{
		cfg:     cfg,
		log:     logg,
		eng:     engine.New(cfg.Engine),
		matcher: match.New(),
		sink:    sink,
	}, nil
}

// LoadTables reads the configured input files.
func (s *Service) LoadTables() (dashboard.Tables, error) {
	var t dashboard.Tables
	var err error
	if t.Employees, err = tabular.LoadEmployees(s.cfg.Data.Employees); err != nil {
		return t, err
	}
	if t.Projects, err = tabular.LoadProjects(s.cfg.Data.Projects); err != nil {
		return t, err
	}
	if s.cfg.Data.Reportees != "" {
		if t.Reportees, err = tabular.LoadIDs(s.cfg.Data.Reportees); err != nil {
			return t, err
		}
	}
	return t, nil
}

// RunOnce executes one full scoring and matching pass over the configured
// tables and records the run with the metrics sinks.
func (s *Service) RunOnce() (export.Result, error) {
	tables, err := s.LoadTables()
	if err != nil {
		return export.Result{}, err
	}

	start := time.Now()
	scored, err := s.eng.Score(tables.Employees)
	if err != nil {
		return export.Result{}, fmt.Errorf("score: %w", err)
	}
	if len(tables.Reportees) > 0 {
		scored = analytics.FilterByIDs(scored, tables.Reportees)
	}
	assignments, unfilled := s.matcher.Assign(scored, tables.Projects, s.cfg.Match.UtilizationThreshold)

	summary := analytics.Summarize(scored)
	shortfall := 0
	for _, u := range unfilled {
		shortfall += u.Shortfall
	}
	result := coremetrics.RunResult{
		RunID:             uuid.New(),
		Employees:         summary.Total,
		OnBench:           summary.OnBench,
		PartiallyUtilized: summary.PartiallyUtilized,
		FullyUtilized:     summary.FullyUtilized,
		MeanUtilization:   summary.MeanUtilization,
		Projects:          len(tables.Projects),
		Assignments:       len(assignments),
		UnfilledPositions: shortfall,
		Duration:          time.Since(start),
		Time:              start,
	}
	if err := s.sink.RecordRun(result); err != nil {
		s.log.Warnf("record run: %v", err)
	}
	s.log.Debugw("run complete", map[string]any{
		"run_id":      result.RunID.String(),
		"employees":   result.Employees,
		"assignments": result.Assignments,
		"unfilled":    result.UnfilledPositions,
	})

	return export.Result{Scored: scored, Assignments: assignments, Unfilled: unfilled}, nil
}

// Run serves the dashboard API until the context is cancelled. The metrics
// endpoint is started alongside when enabled.
func (s *Service) Run(ctx context.Context) error {
	tables, err := s.LoadTables()
	if err != nil {
		return err
	}

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	handler := dashboard.NewHandler(s.eng, s.matcher, tables, dashboard.Options{
		Threshold: s.cfg.Match.UtilizationThreshold,
		Role:      analytics.Role(s.cfg.Analytics.Role),
		TopSkills: s.cfg.Analytics.TopSkills,
	})
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: handler.Mux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("dashboard API listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
