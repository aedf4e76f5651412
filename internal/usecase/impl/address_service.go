package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type addressService struct {
	addressRepo repository.AddressRepository
	lists       *ListCache
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Lists       *ListCache
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		lists:       params.Lists,
		logger:      params.Logger,
	}
}

func (srv *addressService) Create(ctx context.Context, house, square string) (*entity.Address, error) {
	address, err := srv.addressRepo.FirstOrCreate(ctx, strings.TrimSpace(house), strings.TrimSpace(square))
	if err != nil {
		return nil, err
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Address ensured", slog.Any("address_id", address.ID))

	return address, nil
}

func (srv *addressService) List(ctx context.Context, params listing.Params) (listing.Page[*entity.Address], error) {
	return cachedList(ctx, srv.lists, addressSchema, params, srv.addressRepo.List)
}

func (srv *addressService) Get(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	return srv.addressRepo.FindByID(ctx, id)
}

func (srv *addressService) Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}
	if patch.House != nil {
		house := strings.TrimSpace(*patch.House)
		patch.House = &house
	}
	if patch.Square != nil {
		square := strings.TrimSpace(*patch.Square)
		patch.Square = &square
	}

	address, err := srv.addressRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}

	return address, nil
}

func (srv *addressService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFoundAsBadRequest(srv.addressRepo.Delete(ctx, id))
}

type roleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService is the constructor for roleService.
func NewRoleService(roleRepo repository.RoleRepository) usecase.RoleUsecase {
	return &roleService{roleRepo: roleRepo}
}

func (srv *roleService) Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	if !name.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("name must be one of [ADMIN CLIENT MEMBER]")
	}

	return srv.roleRepo.Ensure(ctx, name)
}

func (srv *roleService) List(ctx context.Context) ([]*entity.RoleRecord, error) {
	return srv.roleRepo.List(ctx)
}
