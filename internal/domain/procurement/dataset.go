package procurement

// DataSource supplies the materialised record collections the service joins over.
// Implementations must return slices that callers treat as read-only.
type DataSource interface {
	RFQs() []RFQ
	Quotes() []Quote
	PurchaseOrders() []PurchaseOrder
	Shipments() []Shipment
}

// Dataset is an in-memory DataSource.
type Dataset struct {
	RFQList      []RFQ           `json:"rfqs" yaml:"rfqs"`
	QuoteList    []Quote         `json:"quotes" yaml:"quotes"`
	OrderList    []PurchaseOrder `json:"purchase_orders" yaml:"purchase_orders"`
	ShipmentList []Shipment      `json:"shipments" yaml:"shipments"`
}

func (d *Dataset) RFQs() []RFQ                     { return d.RFQList }
func (d *Dataset) Quotes() []Quote                 { return d.QuoteList }
func (d *Dataset) PurchaseOrders() []PurchaseOrder { return d.OrderList }
func (d *Dataset) Shipments() []Shipment           { return d.ShipmentList }

// Empty reports whether the dataset holds no records at all.
func (d *Dataset) Empty() bool {
	return len(d.RFQList) == 0 && len(d.QuoteList) == 0 && len(d.OrderList) == 0 && len(d.ShipmentList) == 0
}

// Len returns the total number of records.
func (d *Dataset) Len() int {
	return len(d.RFQList) + len(d.QuoteList) + len(d.OrderList) + len(d.ShipmentList)
}
