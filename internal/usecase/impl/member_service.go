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

type memberService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	lists      *ListCache
	logger     *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Lists      *ListCache
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		lists:      params.Lists,
		logger:     params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ownership loads the caller's sub-role pointers when its role is
// restricted for action; admins skip the lookup.
func (srv *memberService) ownership(ctx context.Context, caller usecase.Caller, action policy.Action) (*entity.User, error) {
	if policy.Unrestricted(caller.Role, action) {
		return nil, nil
	}
	if !policy.MayAttempt(caller.Role, action) {
		return nil, domainerrors.ErrForbidden
	}

	return callerUser(ctx, srv.userRepo, caller)
}

// owns reports whether user is the member's client or the member itself.
func owns(user *entity.User, member *entity.Member) bool {
	if user == nil {
		return false
	}
	if user.ClientID != nil && *user.ClientID == member.ClientID {
		return true
	}

	return user.MemberID != nil && *user.MemberID == member.ID
}

// Create adds a member account to a client. A CLIENT caller may omit the
// client id and always adds to its own client.
func (srv *memberService) Create(ctx context.Context, caller usecase.Caller, input usecase.NewMember) (*entity.Member, error) {
	self, err := srv.ownership(ctx, caller, policy.MemberCreate)
	if err != nil {
		return nil, err
	}
	if self != nil {
		if self.ClientID == nil {
			return nil, domainerrors.ErrForbidden
		}
		if input.ClientID == uuid.Nil {
			input.ClientID = *self.ClientID
		}
		if input.ClientID != *self.ClientID {
			return nil, domainerrors.ErrClientMismatch
		}
	}
	if input.ClientID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("clientId must be a valid id")
	}

	var member *entity.Member
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.ClientRepo().FindByID(ctx, input.ClientID); err != nil {
			return notFoundAsBadRequest(err)
		}

		user, err := createAccount(ctx, repos, srv.hasher, input.Account, entity.RoleMember)
		if err != nil {
			return err
		}

		member = &entity.Member{
			UserID:       user.ID,
			ClientID:     input.ClientID,
			Relationship: strings.TrimSpace(input.Relationship),
		}
		if err := repos.MemberRepo().Create(ctx, member); err != nil {
			return errors.Wrap(err, "failed to create member")
		}

		link := repository.SubRoleLink{RoleID: user.RoleID, MemberID: &member.ID}
		if err := repos.UserRepo().LinkSubRole(ctx, user.ID, link); err != nil {
			return errors.Wrap(err, "failed to link member")
		}
		user.MemberID = &member.ID
		member.User = user

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Member created", slog.Any("member_id", member.ID), slog.Any("client_id", member.ClientID))

	return member, nil
}

// List pages through members. A CLIENT only sees its own members.
func (srv *memberService) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.Member], error) {
	self, err := srv.ownership(ctx, caller, policy.MemberList)
	if err != nil {
		return listing.Page[*entity.Member]{}, err
	}
	if self == nil {
		return cachedList(ctx, srv.lists, memberSchema, params, srv.memberRepo.List)
	}
	if self.ClientID == nil {
		return listing.Page[*entity.Member]{}, domainerrors.ErrForbidden
	}

	q, err := memberSchema.Build(params)
	if err != nil {
		return listing.Page[*entity.Member]{}, err
	}
	clientID := *self.ClientID
	q.Conditions = append(q.Conditions, listing.Condition{Column: "client_id", Operator: listing.OpEq, Value: clientID})
	key := listing.Key(memberSchema.Resource, params, clientID.String())

	return cachedQuery(ctx, srv.lists, memberSchema.Resource, key, q, srv.memberRepo.List)
}

func (srv *memberService) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID) (*entity.Member, error) {
	self, err := srv.ownership(ctx, caller, policy.MemberRead)
	if err != nil {
		return nil, err
	}

	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if self != nil {
		if err := policy.Authorize(caller.Role, policy.MemberRead, owns(self, member)); err != nil {
			return nil, err
		}
	}

	return member, nil
}

func (srv *memberService) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error) {
	self, err := srv.ownership(ctx, caller, policy.MemberUpdate)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}
	if self != nil {
		if err := policy.Authorize(caller.Role, policy.MemberUpdate, owns(self, member)); err != nil {
			return nil, err
		}
		if patch.ClientID != nil && *patch.ClientID != member.ClientID {
			return nil, domainerrors.ErrClientMismatch
		}
	}

	updated, err := srv.memberRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundAsBadRequest(err)
	}

	return updated, nil
}

// Delete removes the member's user; the member row cascades.
func (srv *memberService) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	self, err := srv.ownership(ctx, caller, policy.MemberDelete)
	if err != nil {
		return err
	}

	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundAsBadRequest(err)
	}
	if self != nil {
		if err := policy.Authorize(caller.Role, policy.MemberDelete, owns(self, member)); err != nil {
			return err
		}
	}

	if err := srv.userRepo.Delete(ctx, member.UserID); err != nil {
		return notFoundAsBadRequest(err)
	}
	srv.log(ctx).Info("Member deleted", slog.Any("member_id", id))

	return nil
}

func (srv *memberService) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	if err := policy.Authorize(caller.Role, policy.MemberDeleteMany, false); err != nil {
		return err
	}
	if len(ids) == 0 {
		return domainerrors.ErrMissingIDs
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		members, err := repos.MemberRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}

		userIDs := make([]uuid.UUID, 0, len(members))
		for _, member := range members {
			userIDs = append(userIDs, member.UserID)
		}

		deleted, err := repos.UserRepo().DeleteMany(ctx, userIDs)
		if err != nil {
			return err
		}
		srv.log(ctx).Info("Members deleted", slog.Int("requested", len(ids)), slog.Int64("rows", deleted))

		return nil
	})
}
