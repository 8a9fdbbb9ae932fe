package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if dataSourceName == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. It is safe to run on every start.
func (db *DB) RunMigrations() error {
	migration := `
-- Procurement records. Cross-record references are soft: plain codes with no
-- foreign keys, so a dangling reference is stored as-is.
CREATE TABLE IF NOT EXISTS rfqs (
    rfq_number TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    id INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    customer TEXT NOT NULL DEFAULT '',
    project TEXT NOT NULL,
    due_date TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    estimated_value TEXT NOT NULL DEFAULT '',
    suppliers_invited INTEGER NOT NULL DEFAULT 0,
    responses_received INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_rfqs_project ON rfqs(project);

CREATE TABLE IF NOT EXISTS quotes (
    quote_number TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    id INTEGER NOT NULL,
    rfq_reference TEXT NOT NULL DEFAULT '',
    supplier TEXT NOT NULL DEFAULT '',
    project TEXT NOT NULL,
    submitted_date TEXT NOT NULL DEFAULT '',
    valid_until TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    total_amount TEXT NOT NULL DEFAULT '',
    currency TEXT NOT NULL DEFAULT '',
    delivery_time TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_quotes_project ON quotes(project);
CREATE INDEX IF NOT EXISTS idx_quotes_rfq ON quotes(rfq_reference);

CREATE TABLE IF NOT EXISTS purchase_orders (
    po_number TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    id INTEGER NOT NULL,
    quote_reference TEXT NOT NULL DEFAULT '',
    supplier TEXT NOT NULL DEFAULT '',
    project TEXT NOT NULL,
    order_date TEXT NOT NULL DEFAULT '',
    expected_delivery TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    total_amount TEXT NOT NULL DEFAULT '',
    currency TEXT NOT NULL DEFAULT '',
    payment_terms TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_pos_project ON purchase_orders(project);

CREATE TABLE IF NOT EXISTS shipments (
    shipment_number TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    id INTEGER NOT NULL,
    po_reference TEXT NOT NULL DEFAULT '',
    supplier TEXT NOT NULL DEFAULT '',
    project TEXT NOT NULL,
    shipped_date TEXT NOT NULL DEFAULT '',
    expected_arrival TEXT NOT NULL DEFAULT '',
    actual_arrival TEXT,
    status TEXT NOT NULL DEFAULT '',
    tracking_number TEXT NOT NULL DEFAULT '',
    carrier TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_shipments_project ON shipments(project);

-- One navigation trail per client session
CREATE TABLE IF NOT EXISTS navigation_trails (
    tenant_id TEXT NOT NULL,
    session_id TEXT NOT NULL,
    entries TEXT NOT NULL,
    current_view TEXT NOT NULL,
    master_section TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (tenant_id, session_id)
);

-- API keys for authentication
CREATE TABLE IF NOT EXISTS api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX IF NOT EXISTS idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
