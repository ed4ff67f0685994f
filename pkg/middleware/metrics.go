package middleware

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/metrics"
)

// MetricsMiddleware registra contadores e latência de cada requisição no
// registry Prometheus. O próprio /metrics fica de fora para não se
// auto-inflar.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			mrw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(mrw, r)

			m.RecordHTTPRequest(r.Method, r.URL.Path, mrw.statusCode, time.Since(start))
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack repassa a conexão ao writer original para o upgrade de WebSocket.
func (w *metricsResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	return hijacker.Hijack()
}
