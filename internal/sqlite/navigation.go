package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/repository"
)

// NavigationRepository implements navigation.Repository for SQLite
type NavigationRepository struct {
	db *DB
}

// NewNavigationRepository creates a new NavigationRepository
func NewNavigationRepository(db *DB) *NavigationRepository {
	return &NavigationRepository{db: db}
}

// Get retrieves a session's trail
func (r *NavigationRepository) Get(ctx context.Context, tenantID, sessionID string) (*navigation.Trail, error) {
	query := `
		SELECT tenant_id, session_id, entries, current_view, master_section, updated_at
		FROM navigation_trails
		WHERE tenant_id = ? AND session_id = ?
	`

	var trail navigation.Trail
	var entries string
	err := r.db.QueryRowContext(ctx, query, tenantID, sessionID).Scan(
		&trail.TenantID,
		&trail.SessionID,
		&entries,
		&trail.CurrentView,
		&trail.MasterSection,
		&trail.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trail: %w", err)
	}

	if err := json.Unmarshal([]byte(entries), &trail.Entries); err != nil {
		return nil, fmt.Errorf("failed to decode trail entries: %w", err)
	}

	return &trail, nil
}

// Save inserts or replaces a session's trail
func (r *NavigationRepository) Save(ctx context.Context, tenantID string, trail *navigation.Trail) error {
	if trail == nil || trail.SessionID == "" {
		return repository.ErrInvalidInput
	}

	entries, err := json.Marshal(trail.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode trail entries: %w", err)
	}

	updatedAt := trail.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query := `
		INSERT INTO navigation_trails (
			tenant_id, session_id, entries, current_view, master_section, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, session_id) DO UPDATE SET
			entries = excluded.entries,
			current_view = excluded.current_view,
			master_section = excluded.master_section,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		tenantID,
		trail.SessionID,
		string(entries),
		trail.CurrentView,
		trail.MasterSection,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save trail: %w", err)
	}

	return nil
}
