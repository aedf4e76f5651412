package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	mockusecase "scoop/internal/mocks/usecase"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreamServer(t *testing.T) (*testServer, *mockusecase.MockCatalogUsecase[*entity.Cream]) {
	srv := newTestServer(t)
	creams := mockusecase.NewMockCatalogUsecase[*entity.Cream](t)
	h := NewCreamHandler(creams)

	g := srv.e.Group("/creams", srv.auth.Authenticate)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/deleteMany", h.DeleteMany)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/photo", h.UploadPhoto)

	return srv, creams
}

func TestCatalogHandler_Create(t *testing.T) {
	srv, creams := newCreamServer(t)
	admin := srv.callers[entity.RoleAdmin]

	creams.On("Create", mock.Anything, admin, mock.MatchedBy(func(c *entity.Cream) bool {
		return c.Name == "Chocolate" && c.Price == 2.5 && c.Amount == 1 && c.Unit == "kg" && c.Available
	})).Return(func() *entity.Cream {
		cream := &entity.Cream{Amount: 1}
		cream.ID = uuid.New()
		cream.Name = "Chocolate"
		return cream
	}(), nil)

	rec := srv.do(t, http.MethodPost, "/creams", map[string]any{
		"name": "Chocolate", "price": 2.5, "amount": 1, "unit": "kg", "available": true,
	}, entity.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]map[string]any](t, rec)
	assert.Equal(t, "Chocolate", body["data"]["name"])
}

func TestCatalogHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{
			name: "price as text",
			body: `{"name":"Chocolate","price":"cheap","amount":1,"unit":"kg","available":true}`,
			want: "price must be a number and not empty",
		},
		{
			name: "missing amount",
			body: map[string]any{"name": "Chocolate", "price": 2.5, "unit": "kg", "available": true},
			want: "amount must be a number and not empty",
		},
		{
			name: "missing availability",
			body: map[string]any{"name": "Chocolate", "price": 2.5, "amount": 1, "unit": "kg"},
			want: "available must be a boolean",
		},
		{
			name: "empty name",
			body: map[string]any{"name": "", "price": 2.5, "amount": 1, "unit": "kg", "available": true},
			want: "name must be a string and not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCreamServer(t)

			rec := srv.do(t, http.MethodPost, "/creams", tt.body, entity.RoleAdmin)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec).Message)
		})
	}
}

func TestCatalogHandler_List(t *testing.T) {
	srv, creams := newCreamServer(t)
	want := listing.Params{Page: 2, PerPage: 5, OrderBy: "price:desc", Filter: "name:like:choc"}
	creams.On("List", mock.Anything, want).
		Return(listing.Paginate([]*entity.Cream{{}}, 6, 2, 5), nil)

	rec := srv.do(t, http.MethodGet, "/creams?page=2&perPage=5&orderBy=price:desc&filter=name:like:choc", nil, entity.RoleMember)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Len(t, body["data"], 1)
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 2, body["totalPages"])
	assert.Equal(t, false, body["hasNextPage"])
}

func TestCatalogHandler_List_Errors(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodGet, "/creams", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized: No access token provided", decodeError(t, rec).Message)
	})

	t.Run("page not a number", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodGet, "/creams?page=abc", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "page must be a number and not empty", decodeError(t, rec).Message)
	})

	t.Run("unknown filter field", func(t *testing.T) {
		srv, creams := newCreamServer(t)
		creams.On("List", mock.Anything, mock.Anything).
			Return(listing.Page[*entity.Cream]{}, domainerrors.ErrUnknownFilterField.WithMessage("Unknown field(s): flavour"))

		rec := srv.do(t, http.MethodGet, "/creams?filter=flavour:mint", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Unknown field(s): flavour", decodeError(t, rec).Message)
	})
}

func TestCatalogHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodGet, "/creams/not-a-uuid", nil, entity.RoleClient)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("not found", func(t *testing.T) {
		srv, creams := newCreamServer(t)
		id := uuid.New()
		creams.On("Get", mock.Anything, id).Return(nil, domainerrors.ErrNotFound)

		rec := srv.do(t, http.MethodGet, "/creams/"+id.String(), nil, entity.RoleClient)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogHandler_Update(t *testing.T) {
	srv, creams := newCreamServer(t)
	id := uuid.New()
	creams.On("Update", mock.Anything, id, entity.CatalogPatch{Price: ptr(3.0), Available: ptr(false)}).
		Return(&entity.Cream{}, nil)

	rec := srv.do(t, http.MethodPut, "/creams/"+id.String(), map[string]any{"price": 3, "available": false}, entity.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Cream updated successfully", body["message"])
	assert.Contains(t, body, "data")
}

func TestCatalogHandler_Update_EmptyPatch(t *testing.T) {
	srv, creams := newCreamServer(t)
	id := uuid.New()
	creams.On("Update", mock.Anything, id, entity.CatalogPatch{}).Return(nil, domainerrors.ErrEmptyPatch)

	rec := srv.do(t, http.MethodPut, "/creams/"+id.String(), map[string]any{}, entity.RoleAdmin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one field must be provided", decodeError(t, rec).Message)
}

func TestCatalogHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		srv, creams := newCreamServer(t)
		id := uuid.New()
		creams.On("Delete", mock.Anything, id).Return(nil)

		rec := srv.do(t, http.MethodDelete, "/creams/"+id.String(), nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("invalid cream id", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodDelete, "/creams/invalid-id", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("invalid product id", func(t *testing.T) {
		srv := newTestServer(t)
		products := mockusecase.NewMockCatalogUsecase[*entity.Product](t)
		h := NewProductHandler(products)
		srv.e.DELETE("/products/:id", h.Delete, srv.auth.Authenticate)

		rec := srv.do(t, http.MethodDelete, "/products/invalid-id", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
		products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCatalogHandler_DeleteMany(t *testing.T) {
	t.Run("parses ids", func(t *testing.T) {
		srv, creams := newCreamServer(t)
		a, b := uuid.New(), uuid.New()
		creams.On("DeleteMany", mock.Anything, []uuid.UUID{a, b}).Return(nil)

		rec := srv.do(t, http.MethodDelete, "/creams/deleteMany?ids="+a.String()+","+b.String(), nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing ids", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodDelete, "/creams/deleteMany", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_IDS", decodeError(t, rec).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		srv, _ := newCreamServer(t)

		rec := srv.do(t, http.MethodDelete, "/creams/deleteMany?ids=abc", nil, entity.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})
}

func photoRequest(t *testing.T, path, field string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "mint.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return req
}

func TestCatalogHandler_UploadPhoto(t *testing.T) {
	srv, creams := newCreamServer(t)
	id := uuid.New()
	creams.On("UploadPhoto", mock.Anything, id, mock.MatchedBy(func(p usecase.Photo) bool {
		raw, err := io.ReadAll(p.Body)
		return err == nil && p.Filename == "mint.png" && string(raw) == "\x89PNG fake"
	})).Return(&entity.Cream{}, nil)

	rec := srv.send(photoRequest(t, "/creams/"+id.String()+"/photo", "photo"), entity.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Photo uploaded successfully", decodeJSON[map[string]any](t, rec)["message"])
}

func TestCatalogHandler_UploadPhoto_MissingFile(t *testing.T) {
	srv, _ := newCreamServer(t)

	rec := srv.send(photoRequest(t, "/creams/"+uuid.NewString()+"/photo", "image"), entity.RoleAdmin)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "photo must be a file and not empty", decodeError(t, rec).Message)
}
