package usecase

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"

	"github.com/google/uuid"
)

// UserUsecase manages user accounts regardless of their sub-role.
type UserUsecase interface {
	List(ctx context.Context, caller Caller, params listing.Params) (listing.Page[*entity.User], error)
	Get(ctx context.Context, caller Caller, id uuid.UUID, includes []string) (*entity.User, error)

	// Update changes name or password. Password is plain text.
	Update(ctx context.Context, caller Caller, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)

	// Delete removes the user. Deleting a client also removes its members.
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	DeleteMany(ctx context.Context, caller Caller, ids []uuid.UUID) error
}

// AdminUsecase manages admin accounts.
type AdminUsecase interface {
	Create(ctx context.Context, account Account) (*entity.User, error)
	List(ctx context.Context, params listing.Params) (listing.Page[*entity.Admin], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewClient carries a client account and its address.
type NewClient struct {
	Account
	House  string
	Square string
}

// ClientUsecase manages client accounts.
type ClientUsecase interface {
	Create(ctx context.Context, input NewClient) (*entity.Client, error)
	List(ctx context.Context, caller Caller, params listing.Params) (listing.Page[*entity.Client], error)
	Get(ctx context.Context, caller Caller, id uuid.UUID, includes []string) (*entity.Client, error)

	// Update changes the name or password of the client's user.
	Update(ctx context.Context, caller Caller, id uuid.UUID, patch entity.UserPatch) (*entity.Client, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	DeleteMany(ctx context.Context, caller Caller, ids []uuid.UUID) error

	// ChangeAddress moves the client to a new (house, square) pair that no
	// other address uses.
	ChangeAddress(ctx context.Context, caller Caller, id uuid.UUID, house, square string) (*entity.Client, error)

	// Swap exchanges the client and member bindings of two users.
	Swap(ctx context.Context, clientID, memberID uuid.UUID) (*entity.Client, error)
}

// NewMember carries a member account.
type NewMember struct {
	Account
	ClientID     uuid.UUID
	Relationship string
}

// MemberUsecase manages member accounts.
type MemberUsecase interface {
	Create(ctx context.Context, caller Caller, input NewMember) (*entity.Member, error)
	List(ctx context.Context, caller Caller, params listing.Params) (listing.Page[*entity.Member], error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*entity.Member, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	DeleteMany(ctx context.Context, caller Caller, ids []uuid.UUID) error
}
