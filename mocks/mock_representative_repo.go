package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gestdoc/internal/domain"
)

// MockRepresentativeRepo is a mock implementation of port.RepresentativeRepository.
type MockRepresentativeRepo struct {
	mock.Mock
}

func (m *MockRepresentativeRepo) Create(ctx context.Context, rep *domain.Representative) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockRepresentativeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Representative, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Representative), args.Error(1)
}

func (m *MockRepresentativeRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Representative, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Representative), args.Error(1)
}

func (m *MockRepresentativeRepo) Update(ctx context.Context, rep *domain.Representative) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockRepresentativeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
