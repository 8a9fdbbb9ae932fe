package procurement_test

import (
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleData() *procurement.Dataset {
	return &procurement.Dataset{
		RFQList: []procurement.RFQ{
			{ID: 1, RFQNumber: "RFQ-1", Project: "PRJ-2024-001", Status: "Active", DueDate: "2024-03-01"},
			{ID: 2, RFQNumber: "RFQ-2", Project: "PRJ-2024-002", Status: "Active", DueDate: "2024-01-01"},
			{ID: 3, RFQNumber: "RFQ-3", Project: "PRJ-2024-001", Status: "Active", DueDate: "2024-02-15"},
			{ID: 4, RFQNumber: "RFQ-4", Project: "PRJ-2024-001", Status: "Closed", DueDate: "2024-01-10"},
			{ID: 5, RFQNumber: "RFQ-5", Project: "PRJ-2024-001", Status: "Unknown", DueDate: "2024-01-05"},
		},
		QuoteList: []procurement.Quote{
			{ID: 1, QuoteNumber: "QUO-1", RFQReference: "RFQ-1", Project: "PRJ-2024-001", Status: "Accepted", TotalAmount: "$25,000"},
			{ID: 2, QuoteNumber: "QUO-2", RFQReference: "RFQ-1", Project: "PRJ-2024-001", Status: "Under Review", TotalAmount: "$1,500"},
			{ID: 3, QuoteNumber: "QUO-3", RFQReference: "RFQ-3", Project: "PRJ-2024-001", Status: "Pending", TotalAmount: "$2,000"},
			{ID: 4, QuoteNumber: "QUO-4", RFQReference: "RFQ-2", Project: "PRJ-2024-002", Status: "Rejected", TotalAmount: "$9,000"},
			{ID: 5, QuoteNumber: "QUO-5", RFQReference: "RFQ-4", Project: "PRJ-2024-001", Status: "Rejected", TotalAmount: "$3,000"},
		},
		OrderList: []procurement.PurchaseOrder{
			{ID: 1, PONumber: "PO-1", QuoteReference: "QUO-1", Project: "PRJ-2024-001", Status: "Approved", TotalAmount: "$50,000", ExpectedDelivery: "2024-04-01"},
			{ID: 2, PONumber: "PO-2", QuoteReference: "QUO-1", Project: "PRJ-2024-001", Status: "Pending Approval", TotalAmount: "$10,000", ExpectedDelivery: "2024-05-01"},
			{ID: 3, PONumber: "PO-3", QuoteReference: "QUO-9", Project: "PRJ-2024-001", Status: "Delivered", TotalAmount: "$1,000", ExpectedDelivery: "2024-03-01"},
		},
		ShipmentList: []procurement.Shipment{
			{ID: 1, ShipmentNumber: "SHP-1", POReference: "PO-1", Project: "PRJ-2024-001", Status: "In Transit"},
			{ID: 2, ShipmentNumber: "SHP-2", POReference: "PO-1", Project: "PRJ-2024-001", Status: "Received", ActualArrival: strPtr("2024-03-20")},
			{ID: 3, ShipmentNumber: "SHP-3", POReference: "PO-404", Project: "PRJ-2024-003", Status: "Shipped"},
		},
	}
}

func newService() *procurement.Service {
	return procurement.NewService(sampleData(), nil)
}

func TestService_ProjectRFQsKeepsSourceOrder(t *testing.T) {
	svc := newService()

	rfqs := svc.ProjectRFQs(procurement.ProjectCode("PRJ-2024-001"))
	ids := make([]int, len(rfqs))
	for i, r := range rfqs {
		ids[i] = r.ID
	}
	require.Equal(t, []int{1, 3, 4, 5}, ids)
}

func TestService_NumericIDMatchesCode(t *testing.T) {
	svc := newService()

	require.Equal(t, svc.ProjectRFQs(procurement.ProjectCode("PRJ-2024-001")), svc.ProjectRFQs(procurement.ProjectID(1)))
	require.Equal(t, svc.ProjectQuotes(procurement.ProjectCode("PRJ-2024-002")), svc.ProjectQuotes(procurement.ProjectID(2)))
	require.Len(t, svc.ProjectGoods(procurement.ProjectID(3)), 1)
}

func TestService_UnknownProjectIsEmpty(t *testing.T) {
	svc := newService()
	ref := procurement.ProjectCode("PRJ-2099-999")

	require.NotNil(t, svc.ProjectRFQs(ref))
	require.Empty(t, svc.ProjectRFQs(ref))
	require.Empty(t, svc.ProjectQuotes(ref))
	require.Empty(t, svc.ProjectPOs(ref))
	require.Empty(t, svc.ProjectGoods(ref))
	require.Equal(t, procurement.ProjectSummary{}, svc.Summary(ref))

	tl := svc.Timeline(ref)
	require.Nil(t, tl.NextDeadline)
	require.Nil(t, tl.EstimatedCompletion)
	require.Zero(t, tl.ActiveRFQs)

	fin := svc.Financials(ref)
	require.Equal(t, "$0", fin.TotalQuotedValue)
	require.Equal(t, "$0", fin.Savings)
}

func TestService_Summary(t *testing.T) {
	svc := newService()

	sum := svc.Summary(procurement.ProjectID(1))
	require.Equal(t, procurement.RFQCounts{Total: 4, Active: 2, Closed: 1, Draft: 0}, sum.RFQs)
	require.Equal(t, procurement.QuoteCounts{Total: 4, Pending: 1, Received: 1, Evaluated: 2}, sum.Quotes)
	require.Equal(t, procurement.POCounts{Total: 3, Approved: 1, Pending: 1, Delivered: 1}, sum.POs)
	require.Equal(t, procurement.GoodsCounts{Total: 2, Shipped: 0, InTransit: 1, Received: 1}, sum.Goods)
}

func TestService_SummaryUnknownStatusOnlyInTotal(t *testing.T) {
	svc := procurement.NewService(&procurement.Dataset{
		RFQList: []procurement.RFQ{
			{Project: "PRJ-2024-001", Status: "Active"},
			{Project: "PRJ-2024-001", Status: "Unknown"},
		},
	}, nil)

	sum := svc.Summary(procurement.ProjectID(1))
	require.Equal(t, 2, sum.RFQs.Total)
	require.Equal(t, 1, sum.RFQs.Active+sum.RFQs.Closed+sum.RFQs.Draft)
}

func TestService_TimelineAsymmetry(t *testing.T) {
	svc := newService()

	tl := svc.Timeline(procurement.ProjectID(1))
	require.Equal(t, 2, tl.ActiveRFQs)
	require.Equal(t, 1, tl.PendingPOs)
	require.Equal(t, 1, tl.InTransitGoods)
	require.NotNil(t, tl.NextDeadline)
	require.Equal(t, "2024-02-15", *tl.NextDeadline)
	require.NotNil(t, tl.EstimatedCompletion)
	require.Equal(t, "2024-05-01", *tl.EstimatedCompletion)
}

func TestService_TimelineSkipsUnparseableDates(t *testing.T) {
	svc := procurement.NewService(&procurement.Dataset{
		RFQList: []procurement.RFQ{
			{Project: "PRJ-2024-001", Status: "Active", DueDate: "soon"},
		},
	}, nil)

	tl := svc.Timeline(procurement.ProjectID(1))
	require.Equal(t, 1, tl.ActiveRFQs)
	require.Nil(t, tl.NextDeadline)
}

func TestService_Financials(t *testing.T) {
	svc := newService()

	fin := svc.Financials(procurement.ProjectID(1))
	require.Equal(t, "$25,000", fin.TotalQuotedValue)
	require.Equal(t, "$50,000", fin.TotalPOValue)
	require.Equal(t, "$3,500", fin.PendingQuotes)
	require.Equal(t, "$-25,000", fin.Savings)
	require.Equal(t, 4, fin.QuoteCount)
	require.Equal(t, 3, fin.POCount)
}

func TestService_FinancialsMalformedAmount(t *testing.T) {
	svc := procurement.NewService(&procurement.Dataset{
		QuoteList: []procurement.Quote{
			{Project: "PRJ-2024-001", Status: "Accepted", TotalAmount: "TBD"},
		},
	}, nil)

	fin := svc.Financials(procurement.ProjectID(1))
	require.Equal(t, "$NaN", fin.TotalQuotedValue)
	require.Equal(t, "$NaN", fin.Savings)
	require.Equal(t, "$0", fin.TotalPOValue)
}

func TestService_Overview(t *testing.T) {
	svc := newService()

	ov := svc.Overview(procurement.ProjectID(1))
	require.Equal(t, procurement.ProjectCode("PRJ-2024-001"), ov.Code)
	require.Len(t, ov.RFQs, 4)
	require.Len(t, ov.Goods, 2)
	require.Equal(t, svc.Summary(procurement.ProjectID(1)), ov.Summary)
	require.Equal(t, "$50,000", ov.Financials.TotalPOValue)

	require.Equal(t, procurement.ProjectCode("PRJ-2024-042"), svc.Overview(procurement.ProjectCode("PRJ-2024-042")).Code)
	require.Equal(t, procurement.ProjectCode(""), svc.Overview(nil).Code)
}

func TestService_ProjectCodes(t *testing.T) {
	svc := newService()

	require.Equal(t, []procurement.ProjectCode{"PRJ-2024-001", "PRJ-2024-002", "PRJ-2024-003"}, svc.ProjectCodes())
}

func TestService_Provenance(t *testing.T) {
	svc := newService()

	chain, err := svc.Provenance("RFQ-1")
	require.NoError(t, err)
	require.Equal(t, "RFQ-1", chain.RFQ.RFQNumber)
	require.Len(t, chain.Quotes, 2)

	accepted := chain.Quotes[0]
	require.Equal(t, "QUO-1", accepted.Quote.QuoteNumber)
	require.Len(t, accepted.Orders, 2)
	require.Equal(t, "PO-1", accepted.Orders[0].PurchaseOrder.PONumber)
	require.Len(t, accepted.Orders[0].Shipments, 2)
	require.Empty(t, accepted.Orders[1].Shipments)

	require.Empty(t, chain.Quotes[1].Orders)
}

func TestService_ProvenanceErrors(t *testing.T) {
	svc := newService()

	_, err := svc.Provenance("RFQ-404")
	require.ErrorIs(t, err, procurement.ErrRFQNotFound)

	_, err = svc.Provenance("  ")
	require.ErrorIs(t, err, procurement.ErrInvalidInput)
}
