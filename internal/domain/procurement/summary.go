package procurement

// RFQCounts buckets a project's RFQs by status.
type RFQCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Closed int `json:"closed"`
	Draft  int `json:"draft"`
}

// QuoteCounts buckets a project's quotes. Received counts quotes that are
// "Under Review".
type QuoteCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Received  int `json:"received"`
	Evaluated int `json:"evaluated"`
}

// POCounts buckets a project's purchase orders.
type POCounts struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
}

// GoodsCounts buckets a project's shipments.
type GoodsCounts struct {
	Total     int `json:"total"`
	Shipped   int `json:"shipped"`
	InTransit int `json:"in_transit"`
	Received  int `json:"received"`
}

// ProjectSummary holds per-kind counts. Buckets are not exhaustive: a record
// whose status matches no bucket is only counted in Total.
type ProjectSummary struct {
	RFQs   RFQCounts   `json:"rfqs"`
	Quotes QuoteCounts `json:"quotes"`
	POs    POCounts    `json:"pos"`
	Goods  GoodsCounts `json:"goods"`
}

// TimelineSummary holds scheduling facts. NextDeadline is the earliest due date
// among active RFQs; EstimatedCompletion is the latest expected delivery across
// all purchase orders regardless of status.
type TimelineSummary struct {
	ActiveRFQs          int     `json:"active_rfqs"`
	PendingPOs          int     `json:"pending_pos"`
	InTransitGoods      int     `json:"in_transit_goods"`
	NextDeadline        *string `json:"next_deadline"`
	EstimatedCompletion *string `json:"estimated_completion"`
}

// FinancialSummary holds formatted currency rollups.
type FinancialSummary struct {
	TotalQuotedValue string `json:"total_quoted_value"`
	TotalPOValue     string `json:"total_po_value"`
	PendingQuotes    string `json:"pending_quotes"`
	Savings          string `json:"savings"`
	QuoteCount       int    `json:"quote_count"`
	POCount          int    `json:"po_count"`
}

// ProjectOverview bundles everything the project detail view shows.
type ProjectOverview struct {
	Code           ProjectCode      `json:"code"`
	RFQs           []RFQ            `json:"rfqs"`
	Quotes         []Quote          `json:"quotes"`
	PurchaseOrders []PurchaseOrder  `json:"purchase_orders"`
	Goods          []Shipment       `json:"goods"`
	Summary        ProjectSummary   `json:"summary"`
	Timeline       TimelineSummary  `json:"timeline"`
	Financials     FinancialSummary `json:"financials"`
}

// ProvenanceChain follows one RFQ through its quotes, orders and shipments.
type ProvenanceChain struct {
	RFQ    RFQ            `json:"rfq"`
	Quotes []QuoteLineage `json:"quotes"`
}

// QuoteLineage is a quote and the orders raised from it.
type QuoteLineage struct {
	Quote  Quote        `json:"quote"`
	Orders []OrderTrail `json:"orders"`
}

// OrderTrail is a purchase order and its shipments.
type OrderTrail struct {
	PurchaseOrder PurchaseOrder `json:"purchase_order"`
	Shipments     []Shipment    `json:"shipments"`
}
