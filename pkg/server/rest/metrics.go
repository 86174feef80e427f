package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestCount     *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ShortestPathRuns *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of http requests by route, method and status code.",
		}, []string{"path", "method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		ShortestPathRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortest_path_queries_total",
			Help: "Number of shortest path queries by mode and whether a path was found.",
		}, []string{"mode", "found"}),
	}
	reg.MustRegister(m.RequestCount, m.RequestDuration, m.ShortestPathRuns)
	return m
}

func (m *Metrics) observeQuery(mode string, found bool) {
	m.ShortestPathRuns.WithLabelValues(mode, strconv.FormatBool(found)).Inc()
}

// PromeHttpMiddleware records count and latency per chi route pattern, so paths with ids
// do not blow up the label cardinality.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.RequestCount.WithLabelValues(path, r.Method, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
