package mocks

import (
	"context"

	"github.com/aurumimpex/procurement/internal/domain/navigation"
	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"github.com/stretchr/testify/mock"
)

// NavigationRepository is a mock for navigation.Repository.
type NavigationRepository struct {
	mock.Mock
}

func (m *NavigationRepository) Get(ctx context.Context, tenantID, sessionID string) (*navigation.Trail, error) {
	args := m.Called(ctx, tenantID, sessionID)
	if trail, ok := args.Get(0).(*navigation.Trail); ok {
		return trail, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NavigationRepository) Save(ctx context.Context, tenantID string, trail *navigation.Trail) error {
	args := m.Called(ctx, tenantID, trail)
	return args.Error(0)
}

// ProcurementRepository is a mock for procurement.Repository.
type ProcurementRepository struct {
	mock.Mock
}

func (m *ProcurementRepository) Load(ctx context.Context) (*procurement.Dataset, error) {
	args := m.Called(ctx)
	if data, ok := args.Get(0).(*procurement.Dataset); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProcurementRepository) Replace(ctx context.Context, data *procurement.Dataset) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
