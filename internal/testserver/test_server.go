// Package testserver runs the full JSON-RPC stack over httptest for
// end-to-end tests.
package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/fixtures"
	"github.com/aurumimpex/procurement/internal/mcp"
	"github.com/aurumimpex/procurement/internal/metrics"
	"github.com/aurumimpex/procurement/internal/sqlite"
	"github.com/aurumimpex/procurement/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Metrics  *metrics.Recorder
	Token    string
	TenantID string

	apiKeys *sqlite.APIKeyRepository
}

// New starts a server seeded with the embedded demo data, accepting token for
// tenantID.
func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	data, err := procurement.Bootstrap(ctx, sqlite.NewProcurementRepository(db), fixtures.Default(), nil)
	require.NoError(t, err)

	recorder := metrics.New(false)
	handler := mcp.NewHandler(mcp.Services{
		Navigation:  navigation.NewService(sqlite.NewNavigationRepository(db), nil),
		Procurement: procurement.NewService(data, nil),
	}, recorder, nil)

	apiKeys := sqlite.NewAPIKeyRepository(db)
	server := httptest.NewServer(transport.NewServer(handler, transport.AuthMiddleware(apiKeys), nil))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Metrics:  recorder,
		Token:    token,
		TenantID: tenantID,
		apiKeys:  apiKeys,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, tenantID string) error {
	return ts.apiKeys.Add(context.Background(), token, tenantID, "test")
}

// Call posts one JSON-RPC request as token within sessionID and decodes the
// response envelope.
func (ts *TestServer) Call(t *testing.T, token, sessionID, method string, params any) transport.Response {
	t.Helper()

	payload := map[string]any{"jsonrpc": "2.0", "method": method, "id": 1}
	if params != nil {
		payload["params"] = params
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/rpc", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if sessionID != "" {
		req.Header.Set(transport.SessionHeader, sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out transport.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// Decode re-encodes a response result into out.
func Decode(t *testing.T, resp transport.Response, out any) {
	t.Helper()
	require.Nil(t, resp.Error, "unexpected rpc error: %+v", resp.Error)
	data, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}
