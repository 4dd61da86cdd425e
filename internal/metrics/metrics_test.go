package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveArchive(3)
	m.ObserveRestore(2, false)
	m.ObserveRestore(0, true)
	m.ObserveRollup(10, time.Second, nil)
	m.ObserveRollup(0, time.Second, errors.New("falhou"))
	m.ObserveCache("hit")
	m.ObserveRequest(http.MethodGet, "/v1/offers", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OffersArchivedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CreativesArchivedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OffersRestoredTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CreativesRestoredTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CreativeRestoreFailTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RollupRunsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RollupRunsTotal.WithLabelValues("error")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.RollupRowsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MetricsCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/v1/offers", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveArchive(1)
		m.ObserveRestore(1, true)
		m.ObserveRollup(1, time.Second, nil)
		m.ObserveCache("miss")
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveArchive(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "offer_dashboard_offers_archived_total 1")
}
