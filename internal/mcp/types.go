package mcp

import (
	"strings"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
)

// Navigation

type NavigateParams struct {
	View       string `json:"view"`
	SubSection string `json:"sub_section,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
}

type JumpToBreadcrumbParams struct {
	View       string `json:"view"`
	SubSection string `json:"sub_section,omitempty"`
	Label      string `json:"label,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
}

type SessionParams struct {
	SessionID string `json:"session_id,omitempty"`
}

// Projects

// ProjectParams selects a project by numeric id or code; the code wins when
// both are given.
type ProjectParams struct {
	ProjectID   *int   `json:"project_id,omitempty"`
	ProjectCode string `json:"project_code,omitempty"`
}

func (p ProjectParams) ref() (procurement.ProjectRef, error) {
	if code := strings.TrimSpace(p.ProjectCode); code != "" {
		return procurement.ParseProjectRef(code), nil
	}
	if p.ProjectID != nil {
		if *p.ProjectID < 0 {
			return nil, errNegativeProjectID
		}
		return procurement.ProjectID(*p.ProjectID), nil
	}
	return nil, errMissingProject
}

type TraceProvenanceParams struct {
	RFQNumber string `json:"rfq_number"`
}

// Responses

type ProjectCodesResponse struct {
	Codes []procurement.ProjectCode `json:"codes"`
	Count int                       `json:"count"`
}

// ProjectRecordsResponse is a project-scoped record listing.
type ProjectRecordsResponse[T any] struct {
	Project procurement.ProjectCode `json:"project"`
	Count   int                     `json:"count"`
	Items   []T                     `json:"items"`
}

func projectRecords[T any](ref procurement.ProjectRef, items []T) ProjectRecordsResponse[T] {
	return ProjectRecordsResponse[T]{Project: ref.Code(), Count: len(items), Items: items}
}

type ProjectSummaryResponse struct {
	Project procurement.ProjectCode `json:"project"`
	procurement.ProjectSummary
}

type ProjectTimelineResponse struct {
	Project procurement.ProjectCode `json:"project"`
	procurement.TimelineSummary
}

type ProjectFinancialsResponse struct {
	Project procurement.ProjectCode `json:"project"`
	procurement.FinancialSummary
}

// BreadcrumbsResponse is the render contract for the breadcrumb bar.
type BreadcrumbsResponse struct {
	SessionID   string                  `json:"session_id"`
	Breadcrumbs []navigation.Breadcrumb `json:"breadcrumbs"`
	CanGoBack   bool                    `json:"can_go_back"`
	ShowReset   bool                    `json:"show_reset"`
}
