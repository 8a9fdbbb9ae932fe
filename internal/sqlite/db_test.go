package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"rfqs",
		"quotes",
		"purchase_orders",
		"shipments",
		"navigation_trails",
		"api_keys",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

func TestMigrationsAreRepeatable(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestSoftReferences verifies that dangling references are stored as-is
func TestSoftReferences(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO quotes (quote_number, position, id, rfq_reference, project) VALUES (?, ?, ?, ?, ?)`,
		"QUO-1", 0, 1, "RFQ-DOES-NOT-EXIST", "PRJ-2024-001")
	require.NoError(t, err)

	var ref string
	err = db.QueryRowContext(ctx, `SELECT rfq_reference FROM quotes WHERE quote_number = ?`, "QUO-1").Scan(&ref)
	require.NoError(t, err)
	require.Equal(t, "RFQ-DOES-NOT-EXIST", ref)
}
