package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics concentra os coletores Prometheus expostos em /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	InsightSyncRuns     *prometheus.CounterVec
	ProviderRequests    *prometheus.CounterVec
	ChatEventsPublished *prometheus.CounterVec
	ChatClientsGauge    prometheus.Gauge
}

func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP por método, rota e status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		InsightSyncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "insight_sync_runs_total",
			Help: "Execuções da sincronização de insights por resultado.",
		}, []string{"result"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Chamadas às APIs dos providers por plataforma e resultado.",
		}, []string{"provider", "result"}),
		ChatEventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_events_published_total",
			Help: "Eventos de chat publicados por tipo.",
		}, []string{"type"}),
		ChatClientsGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_connected_clients",
			Help: "Clientes WebSocket conectados nesta instância.",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.InsightSyncRuns,
		m.ProviderRequests,
		m.ChatEventsPublished,
		m.ChatClientsGauge,
	)

	return m
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordProviderRequest(provider, result string) {
	m.ProviderRequests.WithLabelValues(provider, result).Inc()
}

func (m *Metrics) RecordInsightSync(result string) {
	m.InsightSyncRuns.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordChatEvent(eventType string) {
	m.ChatEventsPublished.WithLabelValues(eventType).Inc()
}
