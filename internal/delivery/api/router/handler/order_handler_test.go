package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	mockservice "scoop/internal/mocks/service"
	mockusecase "scoop/internal/mocks/usecase"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServer(t *testing.T) (*testServer, *mockusecase.MockServiceOrderUsecase) {
	srv := newTestServer(t)
	orders := mockusecase.NewMockServiceOrderUsecase(t)
	srv.e.POST("/service-orders", NewServiceOrderHandler(orders).Place, srv.auth.Authenticate)

	return srv, orders
}

func TestServiceOrderHandler_Place(t *testing.T) {
	srv, orders := newOrderServer(t)
	member := srv.callers[entity.RoleMember]
	productID, creamID, toppingID := uuid.New(), uuid.New(), uuid.New()

	orders.On("Place", mock.Anything, member, usecase.PlaceOrder{
		ProductID:     &productID,
		CreamIDs:      []uuid.UUID{creamID, creamID},
		ToppingIDs:    []uuid.UUID{toppingID},
		Extras:        []entity.OrderExtra{{Name: "candle", Price: 0.5}},
		PaymentMethod: entity.PaymentPix,
		Notes:         "no nuts",
	}).Return(&usecase.OrderReceipt{OrderID: uuid.New(), TotalPrice: 9.5, PickupCode: "cG5n"}, nil)

	rec := srv.do(t, http.MethodPost, "/service-orders", map[string]any{
		"productId":     productID.String(),
		"creams":        []string{creamID.String(), creamID.String()},
		"toppings":      []string{toppingID.String()},
		"extras":        []map[string]any{{"name": "candle", "price": 0.5}},
		"paymentMethod": "PIX",
		"notes":         "no nuts",
	}, entity.RoleMember)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Service order placed successfully", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, 9.5, data["totalPrice"])
	assert.Equal(t, "cG5n", data["pickupCode"])
}

func TestServiceOrderHandler_Place_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		setup      func(orders *mockusecase.MockServiceOrderUsecase)
		wantStatus int
		want       string
	}{
		{
			name:       "unknown payment method",
			body:       map[string]any{"paymentMethod": "GOLD"},
			wantStatus: http.StatusUnprocessableEntity,
			want:       "paymentMethod must be one of [CASH CREDIT_CARD DEBIT_CARD PIX]",
		},
		{
			name:       "cream id malformed",
			body:       map[string]any{"paymentMethod": "CASH", "creams": []string{"x"}},
			wantStatus: http.StatusUnprocessableEntity,
			want:       "creams[0] must be a valid id",
		},
		{
			name: "unavailable item",
			body: map[string]any{"paymentMethod": "CASH", "creams": []string{uuid.NewString()}},
			setup: func(orders *mockusecase.MockServiceOrderUsecase) {
				orders.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrItemUnavailable.WithMessage("Cream Mint is not available"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			want:       "Cream Mint is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, orders := newOrderServer(t)
			if tt.setup != nil {
				tt.setup(orders)
			}

			rec := srv.do(t, http.MethodPost, "/service-orders", tt.body, entity.RoleClient)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec).Message)
		})
	}
}

func TestPhotoHandler_Get(t *testing.T) {
	srv := newTestServer(t)
	photos := mockservice.NewMockPhotoStorage(t)
	srv.e.GET("/photos/*", NewPhotoHandler(photos).Get)

	photos.On("Open", mock.Anything, "creams/mint.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)
	photos.On("Open", mock.Anything, "creams/gone.png").
		Return(nil, "", domainerrors.ErrNotFound.WithMessage("Photo not found"))

	rec := srv.do(t, http.MethodGet, "/photos/creams/mint.png", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/photos/creams/gone.png", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", decodeError(t, rec).Message)
}

func TestRoleHandler_Ensure(t *testing.T) {
	srv := newTestServer(t)
	roles := mockusecase.NewMockRoleUsecase(t)
	h := NewRoleHandler(roles)
	srv.e.POST("/roles", h.Ensure, srv.auth.Authenticate)

	roles.On("Ensure", mock.Anything, entity.RoleMember).
		Return(&entity.RoleRecord{ID: uuid.New(), Name: entity.RoleMember}, nil)

	rec := srv.do(t, http.MethodPost, "/roles", map[string]string{"name": "MEMBER"}, entity.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/roles", map[string]string{"name": "OWNER"}, entity.RoleAdmin)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "name must be one of [ADMIN CLIENT MEMBER]", decodeError(t, rec).Message)
}
