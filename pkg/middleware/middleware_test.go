package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/metrics"
)

// Os writers embrulhados precisam repassar o hijack, senão o upgrade de
// WebSocket falha atrás da cadeia de middlewares.
var (
	_ http.Hijacker = &loggingResponseWriter{}
	_ http.Hijacker = &metricsResponseWriter{}
)

func TestMiddlewares_UpgradeDeWebSocket(t *testing.T) {
	t.Run("Upgrade deve atravessar logging e métricas", func(t *testing.T) {
		upgrader := websocket.Upgrader{}

		echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if !assert.NoError(t, err) {
				return
			}
			defer conn.Close()

			msgType, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			_ = conn.WriteMessage(msgType, payload)
		})

		m := metrics.New(prometheus.NewRegistry())
		chained := LoggingMiddleware()(MetricsMiddleware(m)(echo))

		server := httptest.NewServer(chained)
		defer server.Close()

		wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

		conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		assert.NoError(t, err)
		if resp != nil {
			defer resp.Body.Close()
		}
		if conn == nil {
			return
		}
		defer conn.Close()

		assert.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("oi")))

		_, payload, err := conn.ReadMessage()
		assert.NoError(t, err)
		assert.Equal(t, "oi", string(payload))
	})

	t.Run("Requisição comum continua registrando o status code", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		m := metrics.New(prometheus.NewRegistry())
		chained := LoggingMiddleware()(MetricsMiddleware(m)(handler))

		recorder := httptest.NewRecorder()
		chained.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

		assert.Equal(t, http.StatusTeapot, recorder.Code)
	})
}

func TestResponseWriters_HijackSemSuporte(t *testing.T) {
	// httptest.ResponseRecorder não implementa http.Hijacker
	lrw := newLoggingResponseWriter(httptest.NewRecorder())

	_, _, err := lrw.Hijack()

	assert.ErrorIs(t, err, http.ErrNotSupported)

	mrw := &metricsResponseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}

	_, _, err = mrw.Hijack()

	assert.ErrorIs(t, err, http.ErrNotSupported)
}
