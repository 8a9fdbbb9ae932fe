package procurement

import (
	"context"
	"fmt"
	"log/slog"
)

// Bootstrap loads the stored records. When the store is empty and a seed is
// given, the seed is written first and returned.
func Bootstrap(ctx context.Context, repo Repository, seed *Dataset, logger *slog.Logger) (*Dataset, error) {
	data, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	if !data.Empty() || seed == nil {
		return data, nil
	}

	if err := repo.Replace(ctx, seed); err != nil {
		return nil, fmt.Errorf("seeding records: %w", err)
	}
	if logger != nil {
		logger.Info("seeded procurement records", "records", seed.Len())
	}
	return seed, nil
}
