// Package metrics exposes scrape run and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adwatch/internal/core/domain"
)

const namespace = "adwatch"

// Recorder implements port.RunObserver and instruments HTTP handlers.
type Recorder struct {
	runs             *prometheus.CounterVec
	runDuration      prometheus.Histogram
	creatives        *prometheus.CounterVec
	parseFailures    prometheus.Counter
	businessFailures *prometheus.CounterVec
	lastSuccess      prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Scrape runs partitioned by outcome.",
		}, []string{"status"}),
		runDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of completed scrape runs.",
			Buckets:   []float64{10, 30, 60, 120, 300, 600, 1200, 1800, 3600},
		}),
		creatives: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "creatives_total",
			Help:      "Creatives changed by reconciliation, by operation.",
		}, []string{"op"}),
		parseFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Observed ads skipped because their start date could not be read.",
		}),
		businessFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "business_failures_total",
			Help:      "Businesses that failed during a run, by stage.",
		}, []string{"stage"}),
		lastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_completed_run_timestamp_seconds",
			Help:      "Unix time the last completed run finished.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests partitioned by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveRun implements port.RunObserver.
func (r *Recorder) ObserveRun(s domain.RunSummary) {
	r.runs.WithLabelValues(string(s.Status)).Inc()
	if s.Status != domain.RunCompleted {
		return
	}
	r.runDuration.Observe(s.FinishedAt.Sub(s.StartedAt).Seconds())
	r.lastSuccess.Set(float64(s.FinishedAt.Unix()))
	r.creatives.WithLabelValues("created").Add(float64(s.Created))
	r.creatives.WithLabelValues("refreshed").Add(float64(s.Refreshed))
	r.creatives.WithLabelValues("deactivated").Add(float64(s.Deactivated))
	r.parseFailures.Add(float64(s.ParseFailures))
	for _, o := range s.Businesses {
		if o.Failed() {
			r.businessFailures.WithLabelValues(string(o.Stage)).Inc()
		}
	}
}

// Middleware records every request under its chi route pattern so that
// path parameters do not blow up label cardinality.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := req.URL.Path
		if rc := chi.RouteContext(req.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
