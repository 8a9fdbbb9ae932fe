package procurement

import (
	"log/slog"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Service derives per-project views over a DataSource. It holds no state of its
// own; every call recomputes from the source.
type Service struct {
	source DataSource
	logger *slog.Logger
}

// NewService creates a new procurement service.
func NewService(source DataSource, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// ProjectRFQs returns the project's RFQs in source order.
func (s *Service) ProjectRFQs(ref ProjectRef) []RFQ {
	code := codeOf(ref)
	return filter(s.source.RFQs(), func(r RFQ) bool { return r.Project == code })
}

// ProjectQuotes returns the project's quotes in source order.
func (s *Service) ProjectQuotes(ref ProjectRef) []Quote {
	code := codeOf(ref)
	return filter(s.source.Quotes(), func(q Quote) bool { return q.Project == code })
}

// ProjectPOs returns the project's purchase orders in source order.
func (s *Service) ProjectPOs(ref ProjectRef) []PurchaseOrder {
	code := codeOf(ref)
	return filter(s.source.PurchaseOrders(), func(po PurchaseOrder) bool { return po.Project == code })
}

// ProjectGoods returns the project's shipments in source order.
func (s *Service) ProjectGoods(ref ProjectRef) []Shipment {
	code := codeOf(ref)
	return filter(s.source.Shipments(), func(sh Shipment) bool { return sh.Project == code })
}

// Summary counts the project's records per status bucket.
func (s *Service) Summary(ref ProjectRef) ProjectSummary {
	var sum ProjectSummary

	for _, r := range s.ProjectRFQs(ref) {
		sum.RFQs.Total++
		switch r.Status {
		case RFQActive:
			sum.RFQs.Active++
		case RFQClosed:
			sum.RFQs.Closed++
		case RFQDraft:
			sum.RFQs.Draft++
		}
	}

	for _, q := range s.ProjectQuotes(ref) {
		sum.Quotes.Total++
		switch q.Status {
		case QuotePending:
			sum.Quotes.Pending++
		case QuoteUnderReview:
			sum.Quotes.Received++
		case QuoteAccepted, QuoteRejected:
			sum.Quotes.Evaluated++
		}
	}

	for _, po := range s.ProjectPOs(ref) {
		sum.POs.Total++
		switch po.Status {
		case POApproved:
			sum.POs.Approved++
		case POPendingApproval:
			sum.POs.Pending++
		case PODelivered:
			sum.POs.Delivered++
		}
	}

	for _, sh := range s.ProjectGoods(ref) {
		sum.Goods.Total++
		switch sh.Status {
		case ShipmentShipped:
			sum.Goods.Shipped++
		case ShipmentInTransit:
			sum.Goods.InTransit++
		case ShipmentReceived:
			sum.Goods.Received++
		}
	}

	return sum
}

// Timeline derives the project's scheduling facts.
func (s *Service) Timeline(ref ProjectRef) TimelineSummary {
	var tl TimelineSummary

	var deadlines []string
	for _, r := range s.ProjectRFQs(ref) {
		if r.Status == RFQActive {
			tl.ActiveRFQs++
			deadlines = append(deadlines, r.DueDate)
		}
	}

	var deliveries []string
	for _, po := range s.ProjectPOs(ref) {
		if po.Status == POPendingApproval {
			tl.PendingPOs++
		}
		deliveries = append(deliveries, po.ExpectedDelivery)
	}

	for _, sh := range s.ProjectGoods(ref) {
		if sh.Status == ShipmentInTransit {
			tl.InTransitGoods++
		}
	}

	if sorted := sortDates(deadlines); len(sorted) > 0 {
		tl.NextDeadline = &sorted[0]
	}
	if sorted := sortDates(deliveries); len(sorted) > 0 {
		tl.EstimatedCompletion = &sorted[len(sorted)-1]
	}
	return tl
}

// Financials sums the project's quote and order amounts.
func (s *Service) Financials(ref ProjectRef) FinancialSummary {
	quotes := s.ProjectQuotes(ref)
	orders := s.ProjectPOs(ref)

	accepted := filter(quotes, func(q Quote) bool { return q.Status == QuoteAccepted })
	pending := filter(quotes, func(q Quote) bool {
		return q.Status == QuotePending || q.Status == QuoteUnderReview
	})
	approved := filter(orders, func(po PurchaseOrder) bool { return po.Status == POApproved })

	quoted := sumAmounts(accepted, func(q Quote) string { return q.TotalAmount })
	ordered := sumAmounts(approved, func(po PurchaseOrder) string { return po.TotalAmount })
	pendingTotal := sumAmounts(pending, func(q Quote) string { return q.TotalAmount })

	return FinancialSummary{
		TotalQuotedValue: FormatAmount(quoted),
		TotalPOValue:     FormatAmount(ordered),
		PendingQuotes:    FormatAmount(pendingTotal),
		Savings:          FormatAmount(quoted - ordered),
		QuoteCount:       len(quotes),
		POCount:          len(orders),
	}
}

// Overview gathers every derived view of one project.
func (s *Service) Overview(ref ProjectRef) ProjectOverview {
	return ProjectOverview{
		Code:           ProjectCode(codeOf(ref)),
		RFQs:           s.ProjectRFQs(ref),
		Quotes:         s.ProjectQuotes(ref),
		PurchaseOrders: s.ProjectPOs(ref),
		Goods:          s.ProjectGoods(ref),
		Summary:        s.Summary(ref),
		Timeline:       s.Timeline(ref),
		Financials:     s.Financials(ref),
	}
}

// ProjectCodes lists every project code referenced by any record, in first-seen
// order across RFQs, quotes, orders and shipments.
func (s *Service) ProjectCodes() []ProjectCode {
	seen := make(map[string]bool)
	codes := []ProjectCode{}
	add := func(code string) {
		if code == "" || seen[code] {
			return
		}
		seen[code] = true
		codes = append(codes, ProjectCode(code))
	}

	for _, r := range s.source.RFQs() {
		add(r.Project)
	}
	for _, q := range s.source.Quotes() {
		add(q.Project)
	}
	for _, po := range s.source.PurchaseOrders() {
		add(po.Project)
	}
	for _, sh := range s.source.Shipments() {
		add(sh.Project)
	}
	return codes
}

// Provenance follows an RFQ through the quotes that reference it, the orders
// raised against those quotes and the shipments of those orders. References
// that resolve to nothing are left out.
func (s *Service) Provenance(rfqNumber string) (*ProvenanceChain, error) {
	rfqNumber = strings.TrimSpace(rfqNumber)
	if rfqNumber == "" {
		return nil, ErrInvalidInput
	}

	var chain *ProvenanceChain
	for _, r := range s.source.RFQs() {
		if r.RFQNumber == rfqNumber {
			chain = &ProvenanceChain{RFQ: r, Quotes: []QuoteLineage{}}
			break
		}
	}
	if chain == nil {
		return nil, ErrRFQNotFound
	}

	for _, q := range s.source.Quotes() {
		if q.RFQReference != rfqNumber {
			continue
		}
		lineage := QuoteLineage{Quote: q, Orders: []OrderTrail{}}
		for _, po := range s.source.PurchaseOrders() {
			if po.QuoteReference != q.QuoteNumber {
				continue
			}
			lineage.Orders = append(lineage.Orders, OrderTrail{
				PurchaseOrder: po,
				Shipments: filter(s.source.Shipments(), func(sh Shipment) bool {
					return sh.POReference == po.PONumber
				}),
			})
		}
		chain.Quotes = append(chain.Quotes, lineage)
	}

	if s.logger != nil {
		s.logger.Debug("provenance traced", "rfq", rfqNumber, "quotes", len(chain.Quotes))
	}
	return chain, nil
}

func codeOf(ref ProjectRef) string {
	if ref == nil {
		return ""
	}
	return string(ref.Code())
}

// filter keeps matching items in order. The result is never nil.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// sortDates returns the parseable dates in ascending order. Dates that do not
// parse are dropped.
func sortDates(dates []string) []string {
	type dated struct {
		raw string
		at  time.Time
	}
	parsed := make([]dated, 0, len(dates))
	for _, d := range dates {
		at, err := time.Parse(dateLayout, strings.TrimSpace(d))
		if err != nil {
			continue
		}
		parsed = append(parsed, dated{raw: d, at: at})
	}
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].at.Before(parsed[j].at) })

	out := make([]string, len(parsed))
	for i, p := range parsed {
		out[i] = p.raw
	}
	return out
}
