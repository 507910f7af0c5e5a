package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues("GET", "/groups", "200").Inc()
	m.WebhookDropped.Inc()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["seven_http_requests_total"])
	assert.True(t, names["seven_webhook_dropped_total"])
	assert.True(t, names["go_goroutines"])

	// a second instance must not collide with the first
	assert.NotPanics(t, func() { New() })
}

func TestHandler(t *testing.T) {
	m := New()
	m.WebhookDeliveries.WithLabelValues("ok").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `seven_webhook_deliveries_total{result="ok"} 1`)
}
