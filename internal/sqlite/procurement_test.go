package sqlite

import (
	"context"
	"testing"

	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/aurumimpex/procurement/internal/fixtures"
	"github.com/aurumimpex/procurement/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProcurementRepository_ReplaceLoad(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProcurementRepository(db)

	seed := fixtures.Default()
	require.NoError(t, repo.Replace(ctx, seed))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, seed, loaded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, seed.Len(), count)
}

func TestProcurementRepository_EmptyStore(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProcurementRepository(db)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, loaded.Empty())

	data, err := procurement.Bootstrap(ctx, repo, fixtures.Default(), nil)
	require.NoError(t, err)
	require.False(t, data.Empty())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, data.Len(), count)
}

func TestProcurementRepository_ReplaceDiscardsOldRecords(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProcurementRepository(db)

	require.NoError(t, repo.Replace(ctx, fixtures.Default()))
	require.NoError(t, repo.Replace(ctx, &procurement.Dataset{
		RFQList: []procurement.RFQ{{ID: 1, RFQNumber: "RFQ-X", Project: "PRJ-2024-042"}},
	}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.RFQs(), 1)
	require.Empty(t, loaded.Quotes())
	require.Empty(t, loaded.Shipments())
}

func TestProcurementRepository_DuplicateRollsBack(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProcurementRepository(db)

	require.NoError(t, repo.Replace(ctx, fixtures.Default()))

	err := repo.Replace(ctx, &procurement.Dataset{
		QuoteList: []procurement.Quote{
			{QuoteNumber: "Q-1", Project: "P"},
			{QuoteNumber: "Q-1", Project: "P"},
		},
	})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, fixtures.Default().Len(), count)
}
