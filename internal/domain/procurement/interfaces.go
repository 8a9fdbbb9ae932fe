package procurement

import "context"

// Repository persists the record collections.
type Repository interface {
	Load(ctx context.Context) (*Dataset, error)
	Replace(ctx context.Context, data *Dataset) error
}
