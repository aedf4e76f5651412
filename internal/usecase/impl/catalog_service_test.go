package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/errors"
	mockRepo "scoop/internal/mocks/repository"
	mockService "scoop/internal/mocks/service"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type creamFixture struct {
	creams  *mockRepo.MockCatalogRepository[*entity.Cream]
	users   *mockRepo.MockUserRepository
	photos  *mockService.MockPhotoStorage
	metrics *mockService.MockMetricsRecorder
	srv     usecase.CreamUsecase
}

func newCreamFixture(t *testing.T) *creamFixture {
	lists, metrics := newTestLists(t)
	f := &creamFixture{
		creams:  mockRepo.NewMockCatalogRepository[*entity.Cream](t),
		users:   mockRepo.NewMockUserRepository(t),
		photos:  mockService.NewMockPhotoStorage(t),
		metrics: metrics,
	}
	f.srv = NewCreamService(CatalogServiceParams{
		CreamRepo: f.creams,
		UserRepo:  f.users,
		Lists:     lists,
		Photos:    f.photos,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestCatalogService_Create_StampsCallerAdmin(t *testing.T) {
	f := newCreamFixture(t)
	ctx := context.Background()
	caller := adminCaller()
	adminID := uuid.New()

	f.users.On("FindByID", ctx, caller.UserID, []string(nil)).Return(&entity.User{ID: caller.UserID, AdminID: &adminID}, nil)
	f.creams.On("Create", ctx, mock.AnythingOfType("*entity.Cream")).Return(nil)

	forged := uuid.New()
	cream := &entity.Cream{CatalogItem: entity.CatalogItem{Name: "Chocolate", Price: 5, Unit: "ml", Available: true, AdminID: forged}, Amount: 150}

	created, err := f.srv.Create(ctx, caller, cream)

	require.NoError(t, err)
	assert.Equal(t, adminID, created.AdminID)
	assert.Equal(t, "Chocolate", created.Name)
}

func TestCatalogService_Create_CallerWithoutAdminRow(t *testing.T) {
	f := newCreamFixture(t)
	ctx := context.Background()
	caller := adminCaller()

	f.users.On("FindByID", ctx, caller.UserID, []string(nil)).Return(&entity.User{ID: caller.UserID}, nil)

	_, err := f.srv.Create(ctx, caller, &entity.Cream{})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.creams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("empty patch", func(t *testing.T) {
		f := newCreamFixture(t)

		_, err := f.srv.Update(context.Background(), id, entity.CatalogPatch{})

		require.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
	})

	t.Run("missing item answers 400", func(t *testing.T) {
		f := newCreamFixture(t)
		patch := entity.CatalogPatch{Price: ptr(7.5)}
		f.creams.On("Update", mock.Anything, id, patch).Return(nil, domainerrors.ErrNotFound.WithMessage("Cream not found"))

		_, err := f.srv.Update(context.Background(), id, patch)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "Cream not found", appErr.Message())
	})

	t.Run("applies patch", func(t *testing.T) {
		f := newCreamFixture(t)
		patch := entity.CatalogPatch{Available: ptr(false)}
		updated := &entity.Cream{CatalogItem: entity.CatalogItem{ID: id, Name: "Mint"}}
		f.creams.On("Update", mock.Anything, id, patch).Return(updated, nil)

		got, err := f.srv.Update(context.Background(), id, patch)

		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	f := newCreamFixture(t)
	id := uuid.New()
	f.creams.On("Delete", mock.Anything, id).Return(domainerrors.ErrNotFound)

	err := f.srv.Delete(context.Background(), id)

	var base *domainerrors.BaseError
	require.True(t, errors.As(err, &base))
	assert.Equal(t, http.StatusBadRequest, base.HTTPCode())
}

func TestCatalogService_DeleteMany(t *testing.T) {
	f := newCreamFixture(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	require.ErrorIs(t, f.srv.DeleteMany(context.Background(), nil), domainerrors.ErrMissingIDs)

	f.creams.On("DeleteMany", mock.Anything, ids).Return(int64(1), nil)
	require.NoError(t, f.srv.DeleteMany(context.Background(), ids))
}

func TestCatalogService_List_ServesRepeatFromCache(t *testing.T) {
	f := newCreamFixture(t)
	ctx := context.Background()
	rows := []*entity.Cream{
		{CatalogItem: entity.CatalogItem{ID: uuid.New(), Name: "Vanilla", Price: 4.5, Available: true}, Amount: 100},
	}
	f.creams.On("List", mock.Anything, mock.AnythingOfType("listing.Query")).Return(rows, int64(11), nil).Once()

	params := listing.Params{Page: 1, PerPage: 10, Filter: "available:eq:true"}
	first, err := f.srv.List(ctx, params)
	require.NoError(t, err)
	second, err := f.srv.List(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNextPage)
	require.Len(t, second.Data, 1)
	assert.Equal(t, "Vanilla", second.Data[0].Name)
	assert.Equal(t, first.TotalPages, second.TotalPages)
	f.metrics.AssertCalled(t, "RecordCacheLookup", "creams", false)
	f.metrics.AssertCalled(t, "RecordCacheLookup", "creams", true)
}

func TestCatalogService_List_RejectsUnknownField(t *testing.T) {
	f := newCreamFixture(t)

	_, err := f.srv.List(context.Background(), listing.Params{Filter: "flavour:eq:mint"})

	require.ErrorIs(t, err, domainerrors.ErrUnknownFilterField)
	f.creams.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_UploadPhoto(t *testing.T) {
	id := uuid.New()
	existing := &entity.Cream{CatalogItem: entity.CatalogItem{ID: id, Name: "Mint"}}

	t.Run("stores image and links url", func(t *testing.T) {
		f := newCreamFixture(t)
		url := "http://localhost/api/v1/photos/creams/" + id.String() + "/p.png"
		f.creams.On("FindByID", mock.Anything, id).Return(existing, nil)
		f.photos.On("Put", mock.Anything,
			mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "creams/"+id.String()+"/") && strings.HasSuffix(key, ".png")
			}),
			"image/png", mock.Anything).Return(url, nil)
		updated := &entity.Cream{CatalogItem: entity.CatalogItem{ID: id, Name: "Mint", Photo: url}}
		f.creams.On("Update", mock.Anything, id, entity.CatalogPatch{Photo: &url}).Return(updated, nil)

		got, err := f.srv.UploadPhoto(context.Background(), id, usecase.Photo{
			Filename: "mint.PNG", ContentType: "application/octet-stream", Body: strings.NewReader("png"),
		})

		require.NoError(t, err)
		assert.Equal(t, url, got.Photo)
	})

	t.Run("rejects non images", func(t *testing.T) {
		f := newCreamFixture(t)
		f.creams.On("FindByID", mock.Anything, id).Return(existing, nil)

		_, err := f.srv.UploadPhoto(context.Background(), id, usecase.Photo{
			Filename: "notes.txt", ContentType: "text/plain", Body: strings.NewReader("hi"),
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		f.photos.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("removes object when link fails", func(t *testing.T) {
		f := newCreamFixture(t)
		f.creams.On("FindByID", mock.Anything, id).Return(existing, nil)
		f.photos.On("Put", mock.Anything, mock.Anything, "image/jpeg", mock.Anything).Return("http://x/p.jpg", nil)
		f.creams.On("Update", mock.Anything, id, mock.Anything).Return(nil, domainerrors.ErrNotFound)
		f.photos.On("Delete", mock.Anything, mock.Anything).Return(nil)

		_, err := f.srv.UploadPhoto(context.Background(), id, usecase.Photo{
			Filename: "mint.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg"),
		})

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
