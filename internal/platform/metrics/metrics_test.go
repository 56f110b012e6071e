package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestValidationMetrics_ObserveField(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewValidationMetrics(reg, "symbol", "chart_type")

	m.ObserveField("symbol", true)
	m.ObserveField("symbol", false)
	m.ObserveField("symbol", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fields.WithLabelValues("symbol", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fields.WithLabelValues("symbol", "false")))
	// 事前初期化されたシリーズは0で存在する
	assert.Equal(t, 0.0, testutil.ToFloat64(m.fields.WithLabelValues("chart_type", "false")))
	assert.Equal(t, 4, testutil.CollectAndCount(m.fields))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	m := NewValidationMetrics(reg, "symbol")
	m.ObserveField("symbol", false)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `chart_input_validations_total{field="symbol",valid="false"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
