package usecase

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// AddressUsecase manages addresses.
type AddressUsecase interface {
	// Create returns the existing address when the pair is already stored.
	Create(ctx context.Context, house, square string) (*entity.Address, error)
	List(ctx context.Context, params listing.Params) (listing.Page[*entity.Address], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleUsecase manages the role rows.
type RoleUsecase interface {
	// Ensure creates the role when absent. Repeated calls return the same row.
	Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error)
	List(ctx context.Context) ([]*entity.RoleRecord, error)
}

// SeedUsecase creates the records every deployment needs.
type SeedUsecase interface {
	Seed(ctx context.Context) error
}
