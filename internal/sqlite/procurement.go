package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/repository"
)

// ProcurementRepository implements procurement.Repository for SQLite
type ProcurementRepository struct {
	db *DB
}

// NewProcurementRepository creates a new ProcurementRepository
func NewProcurementRepository(db *DB) *ProcurementRepository {
	return &ProcurementRepository{db: db}
}

// Load reads every record, each collection in its stored order
func (r *ProcurementRepository) Load(ctx context.Context) (*procurement.Dataset, error) {
	data := &procurement.Dataset{}

	var err error
	if data.RFQList, err = r.loadRFQs(ctx); err != nil {
		return nil, err
	}
	if data.QuoteList, err = r.loadQuotes(ctx); err != nil {
		return nil, err
	}
	if data.OrderList, err = r.loadOrders(ctx); err != nil {
		return nil, err
	}
	if data.ShipmentList, err = r.loadShipments(ctx); err != nil {
		return nil, err
	}

	return data, nil
}

// Replace swaps all stored records for data in one transaction
func (r *ProcurementRepository) Replace(ctx context.Context, data *procurement.Dataset) error {
	if data == nil {
		return repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"rfqs", "quotes", "purchase_orders", "shipments"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, rfq := range data.RFQList {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO rfqs (
				rfq_number, position, id, title, customer, project, due_date, status,
				priority, estimated_value, suppliers_invited, responses_received, description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rfq.RFQNumber, i, rfq.ID, rfq.Title, rfq.Customer, rfq.Project, rfq.DueDate, rfq.Status,
			rfq.Priority, rfq.EstimatedValue, rfq.SuppliersInvited, rfq.ResponsesReceived, rfq.Description,
		)
		if err != nil {
			return insertError("rfq", rfq.RFQNumber, err)
		}
	}

	for i, q := range data.QuoteList {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO quotes (
				quote_number, position, id, rfq_reference, supplier, project, submitted_date,
				valid_until, status, total_amount, currency, delivery_time, description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.QuoteNumber, i, q.ID, q.RFQReference, q.Supplier, q.Project, q.SubmittedDate,
			q.ValidUntil, q.Status, q.TotalAmount, q.Currency, q.DeliveryTime, q.Description,
		)
		if err != nil {
			return insertError("quote", q.QuoteNumber, err)
		}
	}

	for i, po := range data.OrderList {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO purchase_orders (
				po_number, position, id, quote_reference, supplier, project, order_date,
				expected_delivery, status, total_amount, currency, payment_terms, description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			po.PONumber, i, po.ID, po.QuoteReference, po.Supplier, po.Project, po.OrderDate,
			po.ExpectedDelivery, po.Status, po.TotalAmount, po.Currency, po.PaymentTerms, po.Description,
		)
		if err != nil {
			return insertError("purchase order", po.PONumber, err)
		}
	}

	for i, sh := range data.ShipmentList {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shipments (
				shipment_number, position, id, po_reference, supplier, project, shipped_date,
				expected_arrival, actual_arrival, status, tracking_number, carrier, description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sh.ShipmentNumber, i, sh.ID, sh.POReference, sh.Supplier, sh.Project, sh.ShippedDate,
			sh.ExpectedArrival, sh.ActualArrival, sh.Status, sh.TrackingNumber, sh.Carrier, sh.Description,
		)
		if err != nil {
			return insertError("shipment", sh.ShipmentNumber, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Count returns the total number of stored records
func (r *ProcurementRepository) Count(ctx context.Context) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rfqs) +
			(SELECT COUNT(*) FROM quotes) +
			(SELECT COUNT(*) FROM purchase_orders) +
			(SELECT COUNT(*) FROM shipments)
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func (r *ProcurementRepository) loadRFQs(ctx context.Context) ([]procurement.RFQ, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rfq_number, title, customer, project, due_date, status, priority,
		       estimated_value, suppliers_invited, responses_received, description
		FROM rfqs
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rfqs: %w", err)
	}
	defer rows.Close()

	rfqs := []procurement.RFQ{}
	for rows.Next() {
		var rfq procurement.RFQ
		if err := rows.Scan(
			&rfq.ID, &rfq.RFQNumber, &rfq.Title, &rfq.Customer, &rfq.Project, &rfq.DueDate,
			&rfq.Status, &rfq.Priority, &rfq.EstimatedValue, &rfq.SuppliersInvited,
			&rfq.ResponsesReceived, &rfq.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rfq: %w", err)
		}
		rfqs = append(rfqs, rfq)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rfqs: %w", err)
	}

	return rfqs, nil
}

func (r *ProcurementRepository) loadQuotes(ctx context.Context) ([]procurement.Quote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quote_number, rfq_reference, supplier, project, submitted_date, valid_until,
		       status, total_amount, currency, delivery_time, description
		FROM quotes
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes := []procurement.Quote{}
	for rows.Next() {
		var q procurement.Quote
		if err := rows.Scan(
			&q.ID, &q.QuoteNumber, &q.RFQReference, &q.Supplier, &q.Project, &q.SubmittedDate,
			&q.ValidUntil, &q.Status, &q.TotalAmount, &q.Currency, &q.DeliveryTime, &q.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}

	return quotes, nil
}

func (r *ProcurementRepository) loadOrders(ctx context.Context) ([]procurement.PurchaseOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, po_number, quote_reference, supplier, project, order_date, expected_delivery,
		       status, total_amount, currency, payment_terms, description
		FROM purchase_orders
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []procurement.PurchaseOrder{}
	for rows.Next() {
		var po procurement.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.PONumber, &po.QuoteReference, &po.Supplier, &po.Project, &po.OrderDate,
			&po.ExpectedDelivery, &po.Status, &po.TotalAmount, &po.Currency, &po.PaymentTerms,
			&po.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase orders: %w", err)
	}

	return orders, nil
}

func (r *ProcurementRepository) loadShipments(ctx context.Context) ([]procurement.Shipment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, shipment_number, po_reference, supplier, project, shipped_date,
		       expected_arrival, actual_arrival, status, tracking_number, carrier, description
		FROM shipments
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	shipments := []procurement.Shipment{}
	for rows.Next() {
		var sh procurement.Shipment
		var actualArrival sql.NullString
		if err := rows.Scan(
			&sh.ID, &sh.ShipmentNumber, &sh.POReference, &sh.Supplier, &sh.Project, &sh.ShippedDate,
			&sh.ExpectedArrival, &actualArrival, &sh.Status, &sh.TrackingNumber, &sh.Carrier,
			&sh.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		if actualArrival.Valid {
			sh.ActualArrival = &actualArrival.String
		}
		shipments = append(shipments, sh)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipments: %w", err)
	}

	return shipments, nil
}

func insertError(kind, code string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: duplicate %s %s", repository.ErrInvalidInput, kind, code)
	}
	return fmt.Errorf("failed to insert %s %s: %w", kind, code, err)
}
