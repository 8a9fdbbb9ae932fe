package navigation

import "context"

// Repository provides persistence for session trails.
type Repository interface {
	Get(ctx context.Context, tenantID, sessionID string) (*Trail, error)
	Save(ctx context.Context, tenantID string, trail *Trail) error
}
