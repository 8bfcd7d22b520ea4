package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/staffsight/staffsight/core/metrics"
)

// PromSink records run results in Prometheus metrics.
type PromSink struct {
	runs        prometheus.Counter
	assignments prometheus.Counter
	unfilled    prometheus.Counter
	bench       *prometheus.GaugeVec
	meanUtil    prometheus.Gauge
	duration    prometheus.Histogram
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The Prometheus server should be started separately via StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staffsight_runs_total",
			Help: "Total number of scoring and matching runs",
		}),
		assignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staffsight_assignments_total",
			Help: "Total number of employee-project assignments produced",
		}),
		unfilled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staffsight_unfilled_positions_total",
			Help: "Total number of project positions left unfilled",
		}),
		bench: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "staffsight_bench_employees",
			Help: "Employees per bench tier in the latest run",
		}, []string{"status"}),
		meanUtil: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "staffsight_mean_utilization",
			Help: "Mean utilization of the latest run",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "staffsight_run_duration_seconds",
			Help:    "Wall time of a full scoring and matching run",
			Buckets: prometheus.DefBuckets,
		}),
	}

	collectors := []prometheus.Collector{s.runs, s.assignments, s.unfilled, s.bench, s.meanUtil, s.duration}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				collectors[i] = are.ExistingCollector
				continue
			}
			return nil, err
		}
	}
	s.runs = collectors[0].(prometheus.Counter)
	s.assignments = collectors[1].(prometheus.Counter)
	s.unfilled = collectors[2].(prometheus.Counter)
	s.bench = collectors[3].(*prometheus.GaugeVec)
	s.meanUtil = collectors[4].(prometheus.Gauge)
	s.duration = collectors[5].(prometheus.Histogram)
	return s, nil
}

// RecordRun implements coremetrics.RunRecorder.
func (s *PromSink) RecordRun(r coremetrics.RunResult) error {
	s.runs.Inc()
	s.assignments.Add(float64(r.Assignments))
	s.unfilled.Add(float64(r.UnfilledPositions))
	s.bench.WithLabelValues("on_bench").Set(float64(r.OnBench))
	s.bench.WithLabelValues("partially_utilized").Set(float64(r.PartiallyUtilized))
	s.bench.WithLabelValues("fully_utilized").Set(float64(r.FullyUtilized))
	s.meanUtil.Set(r.MeanUtilization)
	s.duration.Observe(r.Duration.Seconds())
	return nil
}

// StartPromServer starts an HTTP server exposing Prometheus metrics on the
// given address. The server runs until the provided context is canceled.
// A dedicated ServeMux is used to avoid interfering with other handlers.
func StartPromServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("prom server shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
