package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/policy"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type clientService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	lists      *ListCache
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Lists      *ListCache
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		lists:      params.Lists,
		logger:     params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ownsClient reports whether the caller is the user bound to clientID.
func (srv *clientService) ownsClient(ctx context.Context, caller usecase.Caller, clientID uuid.UUID) (bool, error) {
	if caller.Role != entity.RoleClient {
		return false, nil
	}

	user, err := callerUser(ctx, srv.userRepo, caller)
	if err != nil {
		return false, err
	}

	return user.ClientID != nil && *user.ClientID == clientID, nil
}

func (srv *clientService) authorize(ctx context.Context, caller usecase.Caller, action policy.Action, clientID uuid.UUID) error {
	if policy.Unrestricted(caller.Role, action) {
		return nil
	}

	owns, err := srv.ownsClient(ctx, caller, clientID)
	if err != nil {
		return err
	}

	return policy.Authorize(caller.Role, action, owns)
}

// Create inserts the user, reuses or creates the address, and binds the
// client in one transaction.
func (srv *clientService) Create(ctx context.Context, input usecase.NewClient) (*entity.Client, error) {
	var client *entity.Client

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := createAccount(ctx, repos, srv.hasher, input.Account, entity.RoleClient)
		if err != nil {
			return err
		}

		address, err := repos.AddressRepo().FirstOrCreate(ctx, strings.TrimSpace(input.House), strings.TrimSpace(input.Square))
		if err != nil {
			return errors.Wrap(err, "failed to resolve address")
		}

		client = &entity.Client{UserID: user.ID, AddressID: address.ID}
		if err := repos.ClientRepo().Create(ctx, client); err != nil {
			return errors.Wrap(err, "failed to create client")
		}

		link := repository.SubRoleLink{RoleID: user.RoleID, ClientID: &client.ID}
		if err := repos.UserRepo().LinkSubRole(ctx, user.ID, link); err != nil {
			return errors.Wrap(err, "failed to link client")
		}
		user.ClientID = &client.ID

		client.Address = address
		client.User = user
		client.Members = []*entity.Member{}

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Client created", slog.Any("client_id", client.ID), slog.Any("user_id", client.UserID))

	return client, nil
}

func (srv *clientService) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.Client], error) {
	if err := policy.Authorize(caller.Role, policy.ClientList, false); err != nil {
		return listing.Page[*entity.Client]{}, err
	}

	return cachedList(ctx, srv.lists, clientSchema, params, srv.clientRepo.List)
}

func (srv *clientService) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID, includes []string) (*entity.Client, error) {
	if err := srv.authorize(ctx, caller, policy.ClientRead, id); err != nil {
		return nil, err
	}
	if err := clientSchema.CheckIncludes(includes); err != nil {
		return nil, err
	}

	return srv.clientRepo.FindByID(ctx, id, includes...)
}

// Update changes the credentials of the client's user.
func (srv *clientService) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.UserPatch) (*entity.Client, error) {
	if err := srv.authorize(ctx, caller, policy.ClientUpdate, id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	patch, err := hashPatch(srv.hasher, patch)
	if err != nil {
		return nil, err
	}

	client, err := srv.clientRepo.FindByID(ctx, id, repository.IncludeAddress)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}

	user, err := srv.userRepo.Update(ctx, client.UserID, patch)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}
	client.User = user

	return client, nil
}

func (srv *clientService) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	if err := srv.authorize(ctx, caller, policy.ClientDelete, id); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		client, err := repos.ClientRepo().FindByID(ctx, id)
		if err != nil {
			return notFoundAsBadRequest(err)
		}

		_, err = deleteUsers(ctx, repos, []uuid.UUID{client.UserID})

		return err
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Client deleted", slog.Any("client_id", id))

	return nil
}

func (srv *clientService) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	if err := policy.Authorize(caller.Role, policy.ClientDeleteMany, false); err != nil {
		return err
	}
	if len(ids) == 0 {
		return domainerrors.ErrMissingIDs
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userIDs := make([]uuid.UUID, 0, len(ids))
		for _, id := range ids {
			client, err := repos.ClientRepo().FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					continue
				}

				return err
			}
			userIDs = append(userIDs, client.UserID)
		}

		_, err := deleteUsers(ctx, repos, userIDs)

		return err
	})
}

// ChangeAddress moves the client onto a fresh address. A CLIENT may only
// move itself, and the target pair must not exist yet.
func (srv *clientService) ChangeAddress(ctx context.Context, caller usecase.Caller, id uuid.UUID, house, square string) (*entity.Client, error) {
	if !policy.MayAttempt(caller.Role, policy.ClientChangeAddress) {
		return nil, domainerrors.ErrForbidden
	}
	if !policy.Unrestricted(caller.Role, policy.ClientChangeAddress) {
		owns, err := srv.ownsClient(ctx, caller, id)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, domainerrors.ErrClientMismatch
		}
	}

	house, square = strings.TrimSpace(house), strings.TrimSpace(square)

	var client *entity.Client
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.ClientRepo().FindByID(ctx, id); err != nil {
			return notFoundAsBadRequest(err)
		}

		_, err := repos.AddressRepo().FindByPair(ctx, house, square)
		switch {
		case err == nil:
			return domainerrors.ErrAddressExists
		case !errors.Is(err, domainerrors.ErrAddressNotFound):
			return err
		}

		address := &entity.Address{House: house, Square: square}
		if err := repos.AddressRepo().Create(ctx, address); err != nil {
			return err
		}
		if err := repos.ClientRepo().SetAddress(ctx, id, address.ID); err != nil {
			return err
		}

		client, err = repos.ClientRepo().FindByID(ctx, id, repository.IncludeAddress)

		return err
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Client address changed", slog.Any("client_id", id), slog.Any("address_id", client.AddressID))

	return client, nil
}

// Swap exchanges the bindings of a client and one of its members. The
// two users trade sub-role rows, role ids and pointers in one transaction.
func (srv *clientService) Swap(ctx context.Context, clientID, memberID uuid.UUID) (*entity.Client, error) {
	var swapped *entity.Client

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		client, err := repos.ClientRepo().FindByID(ctx, clientID)
		if err != nil {
			return notFoundAsBadRequest(err)
		}
		member, err := repos.MemberRepo().FindByID(ctx, memberID)
		if err != nil {
			return notFoundAsBadRequest(err)
		}
		if member.ClientID != client.ID {
			return domainerrors.ErrMemberNotOfClient
		}

		clientRole, err := repos.RoleRepo().Ensure(ctx, entity.RoleClient)
		if err != nil {
			return err
		}
		memberRole, err := repos.RoleRepo().Ensure(ctx, entity.RoleMember)
		if err != nil {
			return err
		}

		formerClientUser, formerMemberUser := client.UserID, member.UserID

		if err := repos.ClientRepo().SetUser(ctx, client.ID, formerMemberUser); err != nil {
			return err
		}
		if err := repos.MemberRepo().SetUser(ctx, member.ID, formerClientUser); err != nil {
			return err
		}

		if err := repos.UserRepo().LinkSubRole(ctx, formerClientUser, repository.SubRoleLink{
			RoleID:   memberRole.ID,
			MemberID: &member.ID,
		}); err != nil {
			return err
		}
		if err := repos.UserRepo().LinkSubRole(ctx, formerMemberUser, repository.SubRoleLink{
			RoleID:   clientRole.ID,
			ClientID: &client.ID,
		}); err != nil {
			return err
		}

		swapped, err = repos.ClientRepo().FindByID(ctx, client.ID, repository.IncludeAddress, repository.IncludeMembers)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Swap failed", slog.Any("client_id", clientID), slog.Any("member_id", memberID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Client and member swapped", slog.Any("client_id", clientID), slog.Any("member_id", memberID))

	return swapped, nil
}
