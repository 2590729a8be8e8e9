package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWriteHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(50)
	h.Observe(5000)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_ms", "test", h.Snapshot())
	out := buf.String()

	want := []string{
		`test_ms_bucket{le="10"} 1`,
		`test_ms_bucket{le="100"} 3`,
		`test_ms_bucket{le="1000"} 3`,
		`test_ms_bucket{le="+Inf"} 4`,
		`test_ms_sum 5105`,
		`test_ms_count 4`,
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Fatalf("missing line %q in:\n%s", line, out)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(1000); got != "1000" {
		t.Fatalf("integral value: %q", got)
	}
	if got := formatFloat(12.5); got != "12.5" {
		t.Fatalf("fractional value: %q", got)
	}
}

func TestHandlerExposesPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncAnalysisStarted()
	IncExtractionPartial()

	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	for _, name := range []string{
		"analysis_started_total",
		"analysis_failed_total",
		"extraction_partial_total",
		"analysis_duration_ms_bucket",
		"extraction_duration_ms_count",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("missing metric %s in:\n%s", name, body)
		}
	}
}
