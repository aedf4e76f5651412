package impl

import (
	"context"
	"net/http"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"
	mockRepo "scoop/internal/mocks/repository"
	mockService "scoop/internal/mocks/service"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	tx     *mockRepo.MockTransactionManager
	users  *mockRepo.MockUserRepository
	hasher *mockService.MockPasswordHasher
	srv    usecase.UserUsecase
}

func newUserFixture(t *testing.T) *userFixture {
	lists, _ := newTestLists(t)
	f := &userFixture{
		tx:     mockRepo.NewMockTransactionManager(t),
		users:  mockRepo.NewMockUserRepository(t),
		hasher: mockService.NewMockPasswordHasher(t),
	}
	f.srv = NewUserService(UserServiceParams{
		TxManager: f.tx,
		UserRepo:  f.users,
		Hasher:    f.hasher,
		Lists:     lists,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestUserService_Get_Ownership(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	self := clientCaller()
	other := uuid.New()

	f.users.On("FindByID", ctx, self.UserID, []string{"role"}).Return(&entity.User{ID: self.UserID}, nil)

	got, err := f.srv.Get(ctx, self, self.UserID, []string{"role"})
	require.NoError(t, err)
	assert.Equal(t, self.UserID, got.ID)

	_, err = f.srv.Get(ctx, self, other, nil)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Get_UnknownInclude(t *testing.T) {
	f := newUserFixture(t)
	caller := adminCaller()

	_, err := f.srv.Get(context.Background(), caller, uuid.New(), []string{"orders"})

	require.Error(t, err)
	f.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_List_AdminOnly(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.srv.List(context.Background(), memberCaller(), listingParams())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Update_HashesPassword(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	caller := memberCaller()

	f.hasher.On("Hash", "s3cret").Return("hashed", nil)
	f.users.On("Update", ctx, caller.UserID, entity.UserPatch{Password: ptr("hashed")}).
		Return(&entity.User{ID: caller.UserID, Name: caller.Name}, nil)

	got, err := f.srv.Update(ctx, caller, caller.UserID, entity.UserPatch{Password: ptr("s3cret")})

	require.NoError(t, err)
	assert.Equal(t, caller.UserID, got.ID)
}

func TestUserService_Update_Errors(t *testing.T) {
	caller := adminCaller()
	id := uuid.New()

	t.Run("empty patch", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.srv.Update(context.Background(), caller, id, entity.UserPatch{})

		require.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
	})

	t.Run("empty password", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.srv.Update(context.Background(), caller, id, entity.UserPatch{Password: ptr("")})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing user answers 400", func(t *testing.T) {
		f := newUserFixture(t)
		patch := entity.UserPatch{Name: ptr("New")}
		f.users.On("Update", mock.Anything, id, patch).Return(nil, domainerrors.ErrUserNotFound)

		_, err := f.srv.Update(context.Background(), caller, id, patch)

		var base *domainerrors.BaseError
		require.True(t, errors.As(err, &base))
		assert.Equal(t, http.StatusBadRequest, base.HTTPCode())
	})
}

func TestUserService_Delete_ClientTakesMembers(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	caller := adminCaller()

	clientID := uuid.New()
	target := &entity.User{ID: uuid.New(), ClientID: &clientID}
	memberUsers := []uuid.UUID{uuid.New(), uuid.New()}

	txUsers := mockRepo.NewMockUserRepository(t)
	txMembers := mockRepo.NewMockMemberRepository(t)
	f.tx.PassThrough(&mockRepo.Factory{Users: txUsers, Members: txMembers})

	txUsers.On("FindByID", ctx, target.ID, []string(nil)).Return(target, nil)
	txMembers.On("UserIDsByClient", ctx, clientID).Return(memberUsers, nil)
	txUsers.On("DeleteMany", ctx, append(append([]uuid.UUID{}, memberUsers...), target.ID)).Return(int64(3), nil)

	require.NoError(t, f.srv.Delete(ctx, caller, target.ID))
}

func TestUserService_Delete_Missing(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	caller := adminCaller()
	id := uuid.New()

	txUsers := mockRepo.NewMockUserRepository(t)
	f.tx.PassThrough(&mockRepo.Factory{Users: txUsers})
	txUsers.On("FindByID", ctx, id, []string(nil)).Return(nil, domainerrors.ErrUserNotFound)

	err := f.srv.Delete(ctx, caller, id)

	var base *domainerrors.BaseError
	require.True(t, errors.As(err, &base))
	assert.Equal(t, http.StatusBadRequest, base.HTTPCode())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Delete_MemberCannotDeleteSelf(t *testing.T) {
	f := newUserFixture(t)
	caller := memberCaller()

	err := f.srv.Delete(context.Background(), caller, caller.UserID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_DeleteMany(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.srv.DeleteMany(ctx, adminCaller(), nil), domainerrors.ErrMissingIDs)
	require.ErrorIs(t, f.srv.DeleteMany(ctx, clientCaller(), []uuid.UUID{uuid.New()}), domainerrors.ErrForbidden)
}
