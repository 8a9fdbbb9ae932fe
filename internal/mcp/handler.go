package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
)

// NavigationService defines navigation operations needed by MCP.
type NavigationService interface {
	Trail(ctx context.Context, tenantID, sessionID string) (*navigation.TrailView, error)
	Push(ctx context.Context, tenantID, sessionID string, req navigation.PushRequest) (*navigation.TrailView, error)
	Back(ctx context.Context, tenantID, sessionID string) (*navigation.TrailView, error)
	Jump(ctx context.Context, tenantID, sessionID string, target navigation.Entry) (*navigation.TrailView, error)
	Reset(ctx context.Context, tenantID, sessionID string) (*navigation.TrailView, error)
}

// ProcurementService defines project relationship queries needed by MCP.
type ProcurementService interface {
	ProjectRFQs(ref procurement.ProjectRef) []procurement.RFQ
	ProjectQuotes(ref procurement.ProjectRef) []procurement.Quote
	ProjectPOs(ref procurement.ProjectRef) []procurement.PurchaseOrder
	ProjectGoods(ref procurement.ProjectRef) []procurement.Shipment
	Summary(ref procurement.ProjectRef) procurement.ProjectSummary
	Timeline(ref procurement.ProjectRef) procurement.TimelineSummary
	Financials(ref procurement.ProjectRef) procurement.FinancialSummary
	Overview(ref procurement.ProjectRef) procurement.ProjectOverview
	ProjectCodes() []procurement.ProjectCode
	Provenance(rfqNumber string) (*procurement.ProvenanceChain, error)
}

// MetricsRecorder observes handled operations.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Navigation  NavigationService
	Procurement ProcurementService
}

// Handler dispatches MCP commands.
type Handler struct {
	navigation  NavigationService
	procurement ProcurementService
	metrics     MetricsRecorder
	logger      *slog.Logger
}

// NewHandler creates a new MCP handler. metrics and logger may be nil.
func NewHandler(services Services, metrics MetricsRecorder, logger *slog.Logger) *Handler {
	return &Handler{
		navigation:  services.Navigation,
		procurement: services.Procurement,
		metrics:     metrics,
		logger:      logger,
	}
}

// Handle dispatches MCP requests to domain services.
func (h *Handler) Handle(ctx context.Context, tenantID, sessionID, method string, params json.RawMessage) (any, error) {
	start := time.Now()
	result, err := h.dispatch(ctx, tenantID, sessionID, method, params)
	if h.metrics != nil {
		h.metrics.Observe(ctx, method, err == nil, time.Since(start))
	}
	if err != nil && h.logger != nil {
		h.logger.Debug("tool call failed", "method", method, "tenant_id", tenantID, "session_id", sessionID, "error", err)
	}
	return result, err
}

func (h *Handler) dispatch(ctx context.Context, tenantID, sessionID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "tools/list":
		return ToolsListResult{Tools: buildToolCatalog()}, nil

	// Navigation
	case "navigate":
		var req NavigateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return wrap(h.navigation.Push(ctx, tenantID, pickSession(req.SessionID, sessionID), navigation.PushRequest{
			View:       req.View,
			SubSection: req.SubSection,
		}))
	case "go_back":
		var req SessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return wrap(h.navigation.Back(ctx, tenantID, pickSession(req.SessionID, sessionID)))
	case "jump_to_breadcrumb":
		var req JumpToBreadcrumbParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return wrap(h.navigation.Jump(ctx, tenantID, pickSession(req.SessionID, sessionID), navigation.Entry{
			View:       req.View,
			SubSection: req.SubSection,
			Label:      req.Label,
		}))
	case "reset_navigation":
		var req SessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return wrap(h.navigation.Reset(ctx, tenantID, pickSession(req.SessionID, sessionID)))
	case "get_breadcrumbs":
		var req SessionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		view, err := h.navigation.Trail(ctx, tenantID, pickSession(req.SessionID, sessionID))
		if err != nil {
			return nil, mapError(err)
		}
		return BreadcrumbsResponse{
			SessionID:   view.SessionID,
			Breadcrumbs: view.Breadcrumbs,
			CanGoBack:   view.CanGoBack,
			ShowReset:   view.ShowReset,
		}, nil

	// Projects
	case "list_project_codes":
		codes := h.procurement.ProjectCodes()
		return ProjectCodesResponse{Codes: codes, Count: len(codes)}, nil
	case "get_project_rfqs":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return projectRecords(ref, h.procurement.ProjectRFQs(ref)), nil
	case "get_project_quotes":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return projectRecords(ref, h.procurement.ProjectQuotes(ref)), nil
	case "get_project_pos":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return projectRecords(ref, h.procurement.ProjectPOs(ref)), nil
	case "get_project_goods":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return projectRecords(ref, h.procurement.ProjectGoods(ref)), nil
	case "get_project_summary":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return ProjectSummaryResponse{Project: ref.Code(), ProjectSummary: h.procurement.Summary(ref)}, nil
	case "get_project_timeline":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return ProjectTimelineResponse{Project: ref.Code(), TimelineSummary: h.procurement.Timeline(ref)}, nil
	case "get_project_financials":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return ProjectFinancialsResponse{Project: ref.Code(), FinancialSummary: h.procurement.Financials(ref)}, nil
	case "get_project_overview":
		ref, err := decodeProject(params)
		if err != nil {
			return nil, err
		}
		return h.procurement.Overview(ref), nil
	case "trace_rfq_provenance":
		var req TraceProvenanceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		chain, err := h.procurement.Provenance(req.RFQNumber)
		if err != nil {
			return nil, mapError(err)
		}
		return chain, nil
	default:
		return nil, mapError(fmt.Errorf("%w: %s", ErrUnknownMethod, method))
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidParams(err)
	}
	return nil
}

func decodeProject(params json.RawMessage) (procurement.ProjectRef, error) {
	var req ProjectParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	ref, err := req.ref()
	if err != nil {
		return nil, mapError(err)
	}
	return ref, nil
}

// pickSession prefers an explicit session argument over the transport session.
func pickSession(explicit, fromTransport string) string {
	if explicit != "" {
		return explicit
	}
	return fromTransport
}

func wrap(view *navigation.TrailView, err error) (any, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return view, nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
