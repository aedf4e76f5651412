package impl

import (
	"context"
	"net/http"
	"testing"

	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"
	mockRepo "scoop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_CreateTrimsAndReuses(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	lists, _ := newTestLists(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: repo, Lists: lists, Logger: newDiscardLogger()})
	existing := &entity.Address{ID: uuid.New(), House: "10", Square: "Q"}

	repo.On("FirstOrCreate", mock.Anything, "10", "Q").Return(existing, nil)

	got, err := srv.Create(context.Background(), " 10 ", "Q\t")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
}

func TestAddressService_Update(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	lists, _ := newTestLists(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: repo, Lists: lists, Logger: newDiscardLogger()})
	id := uuid.New()

	_, err := srv.Update(context.Background(), id, entity.AddressPatch{})
	require.ErrorIs(t, err, domainerrors.ErrEmptyPatch)

	repo.On("Update", mock.Anything, id, entity.AddressPatch{House: ptr("11")}).Return(nil, domainerrors.ErrAddressNotFound)
	_, err = srv.Update(context.Background(), id, entity.AddressPatch{House: ptr(" 11 ")})

	var base *domainerrors.BaseError
	require.True(t, errors.As(err, &base))
	assert.Equal(t, http.StatusBadRequest, base.HTTPCode())
}

func TestAddressService_DeleteInUse(t *testing.T) {
	repo := mockRepo.NewMockAddressRepository(t)
	lists, _ := newTestLists(t)
	srv := NewAddressService(AddressServiceParams{AddressRepo: repo, Lists: lists, Logger: newDiscardLogger()})
	id := uuid.New()
	inUse := domainerrors.ErrBadRequest.WithMessage("Address is in use")

	repo.On("Delete", mock.Anything, id).Return(inUse)
	require.ErrorIs(t, srv.Delete(context.Background(), id), domainerrors.ErrBadRequest)
}

func TestRoleService_EnsureRejectsUnknownRole(t *testing.T) {
	repo := mockRepo.NewMockRoleRepository(t)
	srv := NewRoleService(repo)

	_, err := srv.Ensure(context.Background(), entity.Role("OWNER"))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Ensure", mock.Anything, mock.Anything)
}
