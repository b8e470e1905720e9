package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus implements every hook interface with Prometheus collectors.
type Prometheus struct {
	gatherer prometheus.Gatherer

	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	skippedEdges  prometheus.Counter
	cacheOps      *prometheus.CounterVec
	cacheBytes    prometheus.Counter
	selections    *prometheus.CounterVec
	clears        prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewPrometheus registers the collectors on reg.
func NewPrometheus(reg *prometheus.Registry) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		gatherer: reg,
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roadmap",
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}, []string{"stage"}),
		stageErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "stage_errors_total",
			Help:      "Pipeline stage failures.",
		}, []string{"stage"}),
		skippedEdges: f.NewCounter(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "skipped_edges_total",
			Help:      "Dangling edges left out of computed scenes.",
		}),
		cacheOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes.",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}),
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "selections_total",
			Help:      "Node activations by whether the node exists.",
		}, []string{"found"}),
		clears: f.NewCounter(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "drawer_dismissals_total",
			Help:      "Drawer dismissals.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadmap",
			Name:      "http_requests_total",
			Help:      "Served HTTP requests.",
		}, []string{"method", "route", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roadmap",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

// Register installs p as the pipeline, cache, selection and HTTP hooks.
func (p *Prometheus) Register() {
	SetPipelineHooks(p)
	SetCacheHooks(p)
	SetSelectionHooks(p)
	SetHTTPHooks(p)
}

func (p *Prometheus) OnLayoutStart(context.Context, string, int) {}

func (p *Prometheus) OnLayoutComplete(_ context.Context, _ string, skipped int, d time.Duration, err error) {
	p.observeStage("layout", d, err)
	p.skippedEdges.Add(float64(skipped))
}

func (p *Prometheus) OnRenderStart(context.Context, []string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	p.observeStage("render", d, err)
}

func (p *Prometheus) observeStage(stage string, d time.Duration, err error) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		p.stageErrors.WithLabelValues(stage).Inc()
	}
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheOps.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.Add(float64(size))
}

func (p *Prometheus) OnSelect(_ context.Context, _ string, found bool) {
	p.selections.WithLabelValues(strconv.FormatBool(found)).Inc()
}

func (p *Prometheus) OnClear(context.Context) { p.clears.Inc() }

func (p *Prometheus) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

var (
	_ PipelineHooks  = (*Prometheus)(nil)
	_ CacheHooks     = (*Prometheus)(nil)
	_ SelectionHooks = (*Prometheus)(nil)
	_ HTTPHooks      = (*Prometheus)(nil)
)
