package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a testify double for repository.CatalogRepository.
type MockCatalogRepository[T entity.Cataloged] struct {
	mock.Mock
}

func NewMockCatalogRepository[T entity.Cataloged](t testingT) *MockCatalogRepository[T] {
	m := &MockCatalogRepository[T]{}
	register(&m.Mock, t)

	return m
}

func (m *MockCatalogRepository[T]) Create(ctx context.Context, item T) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(T)

	return item, args.Error(1)
}

func (m *MockCatalogRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]T)

	return items, args.Error(1)
}

func (m *MockCatalogRepository[T]) List(ctx context.Context, q listing.Query) ([]T, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]T)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository[T]) Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (T, error) {
	args := m.Called(ctx, id, patch)
	item, _ := args.Get(0).(T)

	return item, args.Error(1)
}

func (m *MockCatalogRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository[T]) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)

	return args.Get(0).(int64), args.Error(1)
}
