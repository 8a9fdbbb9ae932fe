package testserver

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/mcp"
	"github.com/aurumimpex/procurement/internal/transport"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_NavigationPerSession(t *testing.T) {
	ts := New(t, "token1", "tenant1")

	for _, view := range []string{"projects", "rfq", "rfq-in", "quotes"} {
		ts.Call(t, ts.Token, "s1", "navigate", map[string]string{"view": view})
	}
	ts.Call(t, ts.Token, "s2", "navigate", map[string]string{"view": "po"})

	var s1 mcp.BreadcrumbsResponse
	Decode(t, ts.Call(t, ts.Token, "s1", "get_breadcrumbs", nil), &s1)
	labels := make([]string, 0, len(s1.Breadcrumbs))
	for _, crumb := range s1.Breadcrumbs {
		labels = append(labels, crumb.Label)
	}
	require.Equal(t, []string{"Dashboard", "Projects", "RFQs", "Quotes"}, labels)
	require.True(t, s1.CanGoBack)

	var jumped navigation.TrailView
	Decode(t, ts.Call(t, ts.Token, "s1", "jump_to_breadcrumb", map[string]string{"view": "projects"}), &jumped)
	require.Len(t, jumped.Entries, 2)
	require.Equal(t, "projects", jumped.CurrentView)

	var s2 mcp.BreadcrumbsResponse
	Decode(t, ts.Call(t, ts.Token, "s2", "get_breadcrumbs", nil), &s2)
	require.Len(t, s2.Breadcrumbs, 2)
}

func TestEndToEnd_TenantIsolation(t *testing.T) {
	ts := New(t, "token1", "tenant1")
	require.NoError(t, ts.AddAPIKey("token2", "tenant2"))

	ts.Call(t, "token1", "shared", "navigate", map[string]string{"view": "goods"})

	var other mcp.BreadcrumbsResponse
	Decode(t, ts.Call(t, "token2", "shared", "get_breadcrumbs", nil), &other)
	require.Len(t, other.Breadcrumbs, 1)
	require.Equal(t, navigation.ViewDashboard, other.Breadcrumbs[0].View)
}

func TestEndToEnd_ProjectQueries(t *testing.T) {
	ts := New(t, "token1", "tenant1")

	var overview procurement.ProjectOverview
	Decode(t, ts.Call(t, ts.Token, "", "get_project_overview", map[string]any{"project_id": 1}), &overview)
	require.Equal(t, procurement.ProjectCode("PRJ-2024-001"), overview.Code)
	require.Equal(t, "$595,000", overview.Financials.TotalPOValue)
	require.NotNil(t, overview.Timeline.NextDeadline)
	require.Equal(t, "2024-02-15", *overview.Timeline.NextDeadline)

	var unknown procurement.ProjectOverview
	Decode(t, ts.Call(t, ts.Token, "", "get_project_overview", map[string]any{"project_code": "PRJ-1999-999"}), &unknown)
	require.Empty(t, unknown.RFQs)
	require.Zero(t, unknown.Summary.RFQs.Total)
	require.Nil(t, unknown.Timeline.NextDeadline)

	resp := ts.Call(t, ts.Token, "", "trace_rfq_provenance", map[string]string{"rfq_number": "RFQ-0000"})
	require.NotNil(t, resp.Error)
	require.Equal(t, transport.ErrInternal, resp.Error.Code)
	data, ok := resp.Error.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "RFQ_NOT_FOUND", data["code"])

	resp = ts.Call(t, ts.Token, "", "no_such_tool", nil)
	require.NotNil(t, resp.Error)
	require.Equal(t, transport.ErrMethodNotFound, resp.Error.Code)

	count, err := testutil.GatherAndCount(ts.Metrics.Registry(), "procurement_operations_total")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestEndToEnd_RejectsUnknownToken(t *testing.T) {
	ts := New(t, "token1", "tenant1")

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/rpc",
		bytes.NewBufferString(`{"jsonrpc":"2.0","method":"get_breadcrumbs","id":1}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer nope")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
