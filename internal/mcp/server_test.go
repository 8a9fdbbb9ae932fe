package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/fixtures"
	"github.com/aurumimpex/procurement/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func connectTestClient(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	server := NewServer(Config{
		Services: Services{
			Navigation:  navigation.NewService(sqlite.NewNavigationRepository(db), nil),
			Procurement: procurement.NewService(fixtures.Default(), nil),
		},
		TransportMode: "stdio",
	})

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	return res
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_ListTools(t *testing.T) {
	session := connectTestClient(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 15)

	readOnly := map[string]bool{}
	for _, tool := range res.Tools {
		require.NotNil(t, tool.Annotations, tool.Name)
		readOnly[tool.Name] = tool.Annotations.ReadOnlyHint
	}
	require.True(t, readOnly["get_project_overview"])
	require.False(t, readOnly["navigate"])
}

func TestServer_NavigationRoundTrip(t *testing.T) {
	session := connectTestClient(t)

	callTool(t, session, "navigate", map[string]any{"view": "projects"})
	callTool(t, session, "navigate", map[string]any{"view": "masters", "sub_section": "users"})
	// other sessions keep their own trail
	callTool(t, session, "navigate", map[string]any{"view": "po", "session_id": "s2"})

	var crumbs BreadcrumbsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, session, "get_breadcrumbs", nil))), &crumbs))
	require.Equal(t, defaultSessionID, crumbs.SessionID)
	require.Len(t, crumbs.Breadcrumbs, 3)
	require.Equal(t, "Masters - users", crumbs.Breadcrumbs[2].Label)
	require.True(t, crumbs.Breadcrumbs[0].Clickable)
	require.False(t, crumbs.Breadcrumbs[2].Clickable)

	var view navigation.TrailView
	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, session, "go_back", nil))), &view))
	require.Equal(t, "projects", view.CurrentView)
	require.Len(t, view.Entries, 2)

	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, session, "reset_navigation", map[string]any{"session_id": "s2"}))), &view))
	require.Len(t, view.Entries, 1)
	require.Equal(t, navigation.ViewDashboard, view.Entries[0].View)
}

func TestServer_ProjectTools(t *testing.T) {
	session := connectTestClient(t)

	res := callTool(t, session, "get_project_financials", map[string]any{"project_code": "PRJ-2024-001"})
	require.False(t, res.IsError)
	var fin ProjectFinancialsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &fin))
	require.Equal(t, procurement.ProjectCode("PRJ-2024-001"), fin.Project)
	require.Equal(t, "$595,000", fin.TotalQuotedValue)

	res = callTool(t, session, "trace_rfq_provenance", map[string]any{"rfq_number": "RFQ-9999"})
	require.True(t, res.IsError)
	var apiErr APIError
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &apiErr))
	require.Equal(t, "RFQ_NOT_FOUND", apiErr.Code)
}

func TestServer_DocResources(t *testing.T) {
	session := connectTestClient(t)

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "procurement://docs/navigation"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "jump_to_breadcrumb")
}
