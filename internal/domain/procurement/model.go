package procurement

// Code is a human-facing record code used as a soft reference, e.g. "RFQ-2024-001".
// References are resolved by string equality; a dangling code simply matches nothing.
type Code = string

// RFQ statuses.
const (
	RFQActive  = "Active"
	RFQClosed  = "Closed"
	RFQDraft   = "Draft"
	RFQExpired = "Expired"
)

// Quote statuses.
const (
	QuotePending     = "Pending"
	QuoteUnderReview = "Under Review"
	QuoteAccepted    = "Accepted"
	QuoteRejected    = "Rejected"
)

// Purchase order statuses.
const (
	POApproved        = "Approved"
	POPendingApproval = "Pending Approval"
	PODelivered       = "Delivered"
	PODraft           = "Draft"
)

// Shipment statuses.
const (
	ShipmentShipped      = "Shipped"
	ShipmentInTransit    = "In Transit"
	ShipmentReceived     = "Received"
	ShipmentQualityCheck = "Quality Check"
)

// RFQ is a request for quotation issued for a project.
type RFQ struct {
	ID                int    `json:"id" yaml:"id"`
	RFQNumber         Code   `json:"rfq_number" yaml:"rfq_number"`
	Title             string `json:"title" yaml:"title"`
	Customer          string `json:"customer" yaml:"customer"`
	Project           Code   `json:"project" yaml:"project"`
	DueDate           string `json:"due_date" yaml:"due_date"`
	Status            string `json:"status" yaml:"status"`
	Priority          string `json:"priority" yaml:"priority"`
	EstimatedValue    string `json:"estimated_value" yaml:"estimated_value"`
	SuppliersInvited  int    `json:"suppliers_invited" yaml:"suppliers_invited"`
	ResponsesReceived int    `json:"responses_received" yaml:"responses_received"`
	Description       string `json:"description,omitempty" yaml:"description"`
}

// Quote is a supplier's answer to an RFQ.
type Quote struct {
	ID            int    `json:"id" yaml:"id"`
	QuoteNumber   Code   `json:"quote_number" yaml:"quote_number"`
	RFQReference  Code   `json:"rfq_reference" yaml:"rfq_reference"`
	Supplier      string `json:"supplier" yaml:"supplier"`
	Project       Code   `json:"project" yaml:"project"`
	SubmittedDate string `json:"submitted_date" yaml:"submitted_date"`
	ValidUntil    string `json:"valid_until" yaml:"valid_until"`
	Status        string `json:"status" yaml:"status"`
	TotalAmount   string `json:"total_amount" yaml:"total_amount"`
	Currency      string `json:"currency" yaml:"currency"`
	DeliveryTime  string `json:"delivery_time" yaml:"delivery_time"`
	Description   string `json:"description,omitempty" yaml:"description"`
}

// PurchaseOrder is issued against an accepted quote.
type PurchaseOrder struct {
	ID               int    `json:"id" yaml:"id"`
	PONumber         Code   `json:"po_number" yaml:"po_number"`
	QuoteReference   Code   `json:"quote_reference" yaml:"quote_reference"`
	Supplier         string `json:"supplier" yaml:"supplier"`
	Project          Code   `json:"project" yaml:"project"`
	OrderDate        string `json:"order_date" yaml:"order_date"`
	ExpectedDelivery string `json:"expected_delivery" yaml:"expected_delivery"`
	Status           string `json:"status" yaml:"status"`
	TotalAmount      string `json:"total_amount" yaml:"total_amount"`
	Currency         string `json:"currency" yaml:"currency"`
	PaymentTerms     string `json:"payment_terms" yaml:"payment_terms"`
	Description      string `json:"description,omitempty" yaml:"description"`
}

// Shipment tracks goods delivered against a purchase order.
type Shipment struct {
	ID              int     `json:"id" yaml:"id"`
	ShipmentNumber  Code    `json:"shipment_number" yaml:"shipment_number"`
	POReference     Code    `json:"po_reference" yaml:"po_reference"`
	Supplier        string  `json:"supplier" yaml:"supplier"`
	Project         Code    `json:"project" yaml:"project"`
	ShippedDate     string  `json:"shipped_date" yaml:"shipped_date"`
	ExpectedArrival string  `json:"expected_arrival" yaml:"expected_arrival"`
	ActualArrival   *string `json:"actual_arrival" yaml:"actual_arrival"`
	Status          string  `json:"status" yaml:"status"`
	TrackingNumber  string  `json:"tracking_number" yaml:"tracking_number"`
	Carrier         string  `json:"carrier" yaml:"carrier"`
	Description     string  `json:"description,omitempty" yaml:"description"`
}
