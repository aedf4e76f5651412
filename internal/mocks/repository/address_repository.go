package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a testify double for repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func NewMockAddressRepository(t testingT) *MockAddressRepository {
	m := &MockAddressRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) FirstOrCreate(ctx context.Context, house, square string) (*entity.Address, error) {
	args := m.Called(ctx, house, square)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) FindByPair(ctx context.Context, house, square string) (*entity.Address, error) {
	args := m.Called(ctx, house, square)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) List(ctx context.Context, q listing.Query) ([]*entity.Address, int64, error) {
	args := m.Called(ctx, q)
	addresses, _ := args.Get(0).([]*entity.Address)

	return addresses, args.Get(1).(int64), args.Error(2)
}

func (m *MockAddressRepository) Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error) {
	args := m.Called(ctx, id, patch)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
