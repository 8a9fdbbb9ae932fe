package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `procurement serves the navigation trail and project relationships of the procurement dashboard.

Core concepts:
- Section: a dashboard area (projects, rfq, quotes, po, goods, payments, reports, masters/<section>).
- Trail: the breadcrumb history of one session. At most 10 entries, never two identical entries in a row, always starts with Dashboard after a reset.
- Project: identified by PRJ-2024-NNN or its numeric id. Records join by those codes.

Default workflow:
1) Call list_project_codes to see which projects have records.
2) Call get_project_overview (or a narrower get_project_* tool) with project_id or project_code.
3) Call trace_rfq_provenance to follow an RFQ through quotes, orders and shipments.
4) Drive the dashboard with navigate / go_back / jump_to_breadcrumb / reset_navigation and render get_breadcrumbs.

Transport notes:
- HTTP: the trail follows the Mcp-Session-Id header.
- Stdio: pass _meta.session_id, or session_id on navigation tools; otherwise a shared default trail is used.

Docs:
- procurement://docs/index
- procurement://docs/navigation
- procurement://docs/projects
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "procurement://docs/index",
		Name:        "docs_index",
		Title:       "procurement docs index",
		Description: "Entry point: available tools and what to read next.",
		Content: `# procurement: Docs Index

## Tools

Navigation: ` + "`navigate`" + `, ` + "`go_back`" + `, ` + "`jump_to_breadcrumb`" + `, ` + "`reset_navigation`" + `, ` + "`get_breadcrumbs`" + `.

Projects: ` + "`list_project_codes`" + `, ` + "`get_project_rfqs`" + `, ` + "`get_project_quotes`" + `, ` + "`get_project_pos`" + `, ` + "`get_project_goods`" + `, ` + "`get_project_summary`" + `, ` + "`get_project_timeline`" + `, ` + "`get_project_financials`" + `, ` + "`get_project_overview`" + `, ` + "`trace_rfq_provenance`" + `.

## Docs

- ` + "`procurement://docs/navigation`" + `: trail rules and breadcrumb rendering.
- ` + "`procurement://docs/projects`" + `: project codes, status buckets and financial rollups.
`,
	},
	{
		URI:         "procurement://docs/navigation",
		Name:        "docs_navigation",
		Title:       "Navigation trail",
		Description: "How the breadcrumb trail records, rewinds and resets.",
		Content: `# Navigation trail

A location is a view plus an optional sub-section. Labels are display only.

## navigate

- Always switches the current view.
- Records the location unless the view contains a hyphen (rfq-in, rfq-out), is masters without a sub-section, or equals the current location.
- Keeps only the 10 most recent entries.

## go_back

Drops the current entry. A single-entry trail is left alone.

## jump_to_breadcrumb

Finds the oldest matching entry and discards everything after it. A target that is not in the trail becomes the whole trail.

## reset_navigation

Back to a single Dashboard entry.

## Rendering

Every entry but the last is clickable. Offer a reset control when ` + "`show_reset`" + ` is true (more than 8 entries).
`,
	},
	{
		URI:         "procurement://docs/projects",
		Name:        "docs_projects",
		Title:       "Project relationships",
		Description: "Project codes, status buckets, timeline and financial rollups.",
		Content: `# Project relationships

Projects are addressed by ` + "`project_code`" + ` (PRJ-2024-001) or ` + "`project_id`" + ` (1). The code wins when both are given. Unknown projects return empty lists and zero counts, never an error.

## Summary buckets

- RFQs: active, closed, draft.
- Quotes: pending, received (status "Under Review"), evaluated (accepted or rejected).
- Orders: approved, pending (status "Pending Approval"), delivered.
- Goods: shipped, in transit, received.

Other statuses count toward totals only.

## Timeline

- next_deadline: earliest due date among active RFQs.
- estimated_completion: latest expected delivery across all orders, whatever their status.

## Financials

Accepted quotes, approved orders and pending or under-review quotes are summed. Savings is quoted minus ordered and may be negative. Amounts that fail to parse make the sum NaN.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
