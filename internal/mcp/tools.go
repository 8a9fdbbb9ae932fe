package mcp

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultSessionID names the trail used when a client supplies no session.
const defaultSessionID = "default"

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	ReadOnly    bool           `json:"-"`
}

// ToolsListResult represents the tools/list response
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

func registerTools(server *sdkmcp.Server, handler *Handler) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		tool := &sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
			Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: def.ReadOnly},
		}
		server.AddTool(tool, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := handler.Handle(ctx, getTenantID(ctx), toolSessionID(ctx, req), name, args)
			if err != nil {
				return errorResult(err), nil
			}
			return textResult(result)
		})
	}
}

// toolSessionID resolves the trail a tool call operates on: the session from
// middleware, then the SDK session, then the shared default.
func toolSessionID(ctx context.Context, req *sdkmcp.CallToolRequest) string {
	if sessionID := getSessionID(ctx); sessionID != "" {
		return sessionID
	}
	if sessionID := safeSessionID(req); sessionID != "" {
		return sessionID
	}
	return defaultSessionID
}

func textResult(payload any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) *sdkmcp.CallToolResult {
	apiErr := MapError(err)
	if apiErr == nil {
		apiErr = &APIError{Code: "INTERNAL", Message: err.Error()}
	}
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}

var sessionProperty = map[string]any{
	"type":        "string",
	"description": "Navigation session (omit to use the transport session)",
}

func projectSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"project_id": map[string]any{
				"type":        "integer",
				"description": "Numeric project id, formatted as PRJ-2024-NNN",
			},
			"project_code": map[string]any{
				"type":        "string",
				"description": "Canonical project code, e.g. PRJ-2024-001 (wins over project_id)",
			},
		},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Navigation
		{
			Name:        "navigate",
			Description: "Switch to a section and record it in the breadcrumb trail. Repeats and sub-views are not recorded.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"view": map[string]any{
						"type":        "string",
						"description": "Section id: dashboard, projects, rfq, quotes, po, goods, payments, reports or masters",
					},
					"sub_section": map[string]any{
						"type":        "string",
						"description": "Master-data section when view is masters (materials, suppliers, customers, users)",
					},
					"session_id": sessionProperty,
				},
				"required": []string{"view"},
			},
		},
		{
			Name:        "go_back",
			Description: "Drop the current breadcrumb and return to the previous location",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"session_id": sessionProperty,
				},
			},
		},
		{
			Name:        "jump_to_breadcrumb",
			Description: "Rewind the trail to a visited breadcrumb. An unvisited target replaces the trail.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"view": map[string]any{
						"type":        "string",
						"description": "Breadcrumb view",
					},
					"sub_section": map[string]any{
						"type":        "string",
						"description": "Breadcrumb sub-section",
					},
					"label": map[string]any{
						"type":        "string",
						"description": "Label used when the target is not in the trail",
					},
					"session_id": sessionProperty,
				},
				"required": []string{"view"},
			},
		},
		{
			Name:        "reset_navigation",
			Description: "Start the trail over at the dashboard",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"session_id": sessionProperty,
				},
			},
		},
		{
			Name:        "get_breadcrumbs",
			Description: "Get the breadcrumb trail for rendering",
			ReadOnly:    true,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"session_id": sessionProperty,
				},
			},
		},

		// Projects
		{
			Name:        "list_project_codes",
			Description: "List every project code referenced by a procurement record",
			ReadOnly:    true,
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "get_project_rfqs",
			Description: "List a project's RFQs",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_quotes",
			Description: "List a project's supplier quotes",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_pos",
			Description: "List a project's purchase orders",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_goods",
			Description: "List a project's shipments",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_summary",
			Description: "Count a project's RFQs, quotes, orders and shipments by status",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_timeline",
			Description: "Get a project's next RFQ deadline, estimated completion and open counts",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_financials",
			Description: "Sum a project's accepted quotes, approved orders, pending quotes and savings",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "get_project_overview",
			Description: "Get every record and rollup of a project in one call",
			ReadOnly:    true,
			InputSchema: projectSchema(),
		},
		{
			Name:        "trace_rfq_provenance",
			Description: "Follow an RFQ through its quotes, purchase orders and shipments",
			ReadOnly:    true,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"rfq_number": map[string]any{
						"type":        "string",
						"description": "RFQ number, e.g. RFQ-2024-001",
					},
				},
				"required": []string{"rfq_number"},
			},
		},
	}
}
