// Package metrics defines the Prometheus collectors of the search server and
// exposes an HTTP handler for scraping.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result types for SearchQueriesTotal.
const (
	ResultHit        = "hit"
	ResultZeroResult = "zero_result"
	ResultError      = "error"
)

// Metrics holds all Prometheus collectors for the server.
// Each instance owns its registry, so several can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SearchQueriesTotal  *prometheus.CounterVec
	SearchResultsCount  *prometheus.HistogramVec
	NoResultRequests    *prometheus.GaugeVec
	DocsIndexedTotal    *prometheus.CounterVec
	DocsRejectedTotal   *prometheus.CounterVec
	IndexDocumentCount  *prometheus.GaugeVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by index and result type (hit, zero_result, error).",
			},
			[]string{"index", "result_type"},
		),
		SearchResultsCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of documents returned per search query.",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
			},
			[]string{"index"},
		),
		NoResultRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "search_no_result_requests",
				Help: "Empty-result searches inside the request window.",
			},
			[]string{"index"},
		),
		DocsIndexedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents indexed.",
			},
			[]string{"index"},
		),
		DocsRejectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docs_rejected_total",
				Help: "Total documents rejected by validation.",
			},
			[]string{"index"},
		),
		IndexDocumentCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "index_document_count",
				Help: "Number of documents per index.",
			},
			[]string{"index"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchQueriesTotal,
		m.SearchResultsCount,
		m.NoResultRequests,
		m.DocsIndexedTotal,
		m.DocsRejectedTotal,
		m.IndexDocumentCount,
	)

	return m
}

// ObserveSearch records one tracked search. It is safe to call on a nil *Metrics.
func (m *Metrics) ObserveSearch(indexName string, resultCount int, noResultRequests int) {
	if m == nil {
		return
	}
	resultType := ResultHit
	if resultCount == 0 {
		resultType = ResultZeroResult
	}
	m.SearchQueriesTotal.WithLabelValues(indexName, resultType).Inc()
	m.SearchResultsCount.WithLabelValues(indexName).Observe(float64(resultCount))
	m.NoResultRequests.WithLabelValues(indexName).Set(float64(noResultRequests))
}

// ObserveSearchError records a search that failed validation.
func (m *Metrics) ObserveSearchError(indexName string) {
	if m == nil {
		return
	}
	m.SearchQueriesTotal.WithLabelValues(indexName, ResultError).Inc()
}

// ObserveIndexing records the outcome of one AddDocument call.
func (m *Metrics) ObserveIndexing(indexName string, err error, documentCount int) {
	if m == nil {
		return
	}
	if err != nil {
		m.DocsRejectedTotal.WithLabelValues(indexName).Inc()
		return
	}
	m.DocsIndexedTotal.WithLabelValues(indexName).Inc()
	m.IndexDocumentCount.WithLabelValues(indexName).Set(float64(documentCount))
}

// ForgetIndex drops every series labelled with indexName.
func (m *Metrics) ForgetIndex(indexName string) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"index": indexName}
	m.SearchQueriesTotal.DeletePartialMatch(labels)
	m.SearchResultsCount.DeletePartialMatch(labels)
	m.NoResultRequests.DeletePartialMatch(labels)
	m.DocsIndexedTotal.DeletePartialMatch(labels)
	m.DocsRejectedTotal.DeletePartialMatch(labels)
	m.IndexDocumentCount.DeletePartialMatch(labels)
}

// Handler returns the Prometheus scrape HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// NewServer builds the metrics HTTP server; the caller runs and shuts it down.
func (m *Metrics) NewServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><h1>Search Server Metrics</h1><p><a href="/metrics">/metrics</a></p></body></html>`)
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
