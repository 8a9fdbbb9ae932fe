package mcp

import (
	"errors"
	"fmt"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
)

var (
	errMissingProject    = errors.New("project_id or project_code is required")
	errNegativeProjectID = errors.New("project_id must not be negative")

	// ErrUnknownMethod is returned for methods outside the tool catalog.
	ErrUnknownMethod = errors.New("unknown method")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) CodeValue() string {
	return e.Code
}

func (e *APIError) MessageValue() string {
	return e.Message
}

func (e *APIError) DetailsValue() any {
	return e.Details
}

func (e *APIError) RecoveryHintValue() string {
	return e.RecoveryHint
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, ErrUnknownMethod):
		return &APIError{Code: "METHOD_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call tools/list for the catalog"}
	case errors.Is(err, errMissingProject), errors.Is(err, errNegativeProjectID):
		return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Pass project_id (e.g. 1) or project_code (e.g. PRJ-2024-001)"}
	case errors.Is(err, navigation.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid navigation input", RecoveryHint: "A session and a non-empty view are required"}
	case errors.Is(err, procurement.ErrRFQNotFound):
		return &APIError{Code: "RFQ_NOT_FOUND", Message: "rfq not found", RecoveryHint: "Check the RFQ number, e.g. RFQ-2024-001"}
	case errors.Is(err, procurement.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid procurement input", RecoveryHint: "Check required arguments"}
	default:
		return nil
	}
}

func invalidParams(err error) *APIError {
	return &APIError{Code: "INVALID_PARAMS", Message: err.Error(), RecoveryHint: "Check argument names and types"}
}
