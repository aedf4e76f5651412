package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// AddressRepository defines the interface for address data operations.
type AddressRepository interface {
	// Create persists a new address. A duplicate (house, square) pair
	// returns domainerrors.ErrAddressExists.
	Create(ctx context.Context, address *entity.Address) error

	// FirstOrCreate returns the address with this pair, creating it when absent.
	FirstOrCreate(ctx context.Context, house, square string) (*entity.Address, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByPair returns domainerrors.ErrNotFound when no address matches.
	FindByPair(ctx context.Context, house, square string) (*entity.Address, error)

	List(ctx context.Context, q listing.Query) ([]*entity.Address, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
