package metrics_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurumimpex/procurement/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	rec := metrics.New(false)
	ctx := context.Background()

	rec.Observe(ctx, "navigate", true, 2*time.Millisecond)
	rec.Observe(ctx, "navigate", true, time.Millisecond)
	rec.Observe(ctx, "navigate", false, time.Millisecond)

	count, err := testutil.GatherAndCount(rec.Registry(), "procurement_operations_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(rec.Registry(), "procurement_operation_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRecorder_Handler(t *testing.T) {
	rec := metrics.New(false)
	rec.Observe(context.Background(), "get_project_summary", true, time.Millisecond)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	require.Contains(t, string(body), `procurement_operations_total{operation="get_project_summary",result="success"} 1`)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *metrics.Recorder
	require.NotPanics(t, func() {
		rec.Observe(context.Background(), "navigate", true, time.Millisecond)
	})
}
