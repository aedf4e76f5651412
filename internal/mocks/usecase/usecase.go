// Package usecase holds testify doubles for the usecase interfaces.
package usecase

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

func pageOf[T any](args mock.Arguments) (listing.Page[T], error) {
	page, _ := args.Get(0).(listing.Page[T])
	return page, args.Error(1)
}

// MockSessionUsecase is a testify double for usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

func NewMockSessionUsecase(t testingT) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockSessionUsecase) SignIn(ctx context.Context, name, password string) (*usecase.SignInResult, error) {
	args := m.Called(ctx, name, password)
	result, _ := args.Get(0).(*usecase.SignInResult)

	return result, args.Error(1)
}

func (m *MockSessionUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// MockCatalogUsecase is a testify double for usecase.CatalogUsecase.
type MockCatalogUsecase[T entity.Cataloged] struct {
	mock.Mock
}

func NewMockCatalogUsecase[T entity.Cataloged](t testingT) *MockCatalogUsecase[T] {
	m := &MockCatalogUsecase[T]{}
	register(&m.Mock, t)

	return m
}

func (m *MockCatalogUsecase[T]) item(args mock.Arguments) (T, error) {
	item, _ := args.Get(0).(T)
	return item, args.Error(1)
}

func (m *MockCatalogUsecase[T]) Create(ctx context.Context, caller usecase.Caller, item T) (T, error) {
	return m.item(m.Called(ctx, caller, item))
}

func (m *MockCatalogUsecase[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return m.item(m.Called(ctx, id))
}

func (m *MockCatalogUsecase[T]) List(ctx context.Context, params listing.Params) (listing.Page[T], error) {
	return pageOf[T](m.Called(ctx, params))
}

func (m *MockCatalogUsecase[T]) Update(ctx context.Context, id uuid.UUID, patch entity.CatalogPatch) (T, error) {
	return m.item(m.Called(ctx, id, patch))
}

func (m *MockCatalogUsecase[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogUsecase[T]) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockCatalogUsecase[T]) UploadPhoto(ctx context.Context, id uuid.UUID, photo usecase.Photo) (T, error) {
	return m.item(m.Called(ctx, id, photo))
}

// MockUserUsecase is a testify double for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func NewMockUserUsecase(t testingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockUserUsecase) user(args mock.Arguments) (*entity.User, error) {
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserUsecase) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.User], error) {
	return pageOf[*entity.User](m.Called(ctx, caller, params))
}

func (m *MockUserUsecase) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID, includes []string) (*entity.User, error) {
	return m.user(m.Called(ctx, caller, id, includes))
}

func (m *MockUserUsecase) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	return m.user(m.Called(ctx, caller, id, patch))
}

func (m *MockUserUsecase) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockUserUsecase) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	return m.Called(ctx, caller, ids).Error(0)
}

// MockClientUsecase is a testify double for usecase.ClientUsecase.
type MockClientUsecase struct {
	mock.Mock
}

func NewMockClientUsecase(t testingT) *MockClientUsecase {
	m := &MockClientUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockClientUsecase) client(args mock.Arguments) (*entity.Client, error) {
	client, _ := args.Get(0).(*entity.Client)
	return client, args.Error(1)
}

func (m *MockClientUsecase) Create(ctx context.Context, input usecase.NewClient) (*entity.Client, error) {
	return m.client(m.Called(ctx, input))
}

func (m *MockClientUsecase) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.Client], error) {
	return pageOf[*entity.Client](m.Called(ctx, caller, params))
}

func (m *MockClientUsecase) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID, includes []string) (*entity.Client, error) {
	return m.client(m.Called(ctx, caller, id, includes))
}

func (m *MockClientUsecase) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.UserPatch) (*entity.Client, error) {
	return m.client(m.Called(ctx, caller, id, patch))
}

func (m *MockClientUsecase) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockClientUsecase) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	return m.Called(ctx, caller, ids).Error(0)
}

func (m *MockClientUsecase) ChangeAddress(ctx context.Context, caller usecase.Caller, id uuid.UUID, house, square string) (*entity.Client, error) {
	return m.client(m.Called(ctx, caller, id, house, square))
}

func (m *MockClientUsecase) Swap(ctx context.Context, clientID, memberID uuid.UUID) (*entity.Client, error) {
	return m.client(m.Called(ctx, clientID, memberID))
}

// MockMemberUsecase is a testify double for usecase.MemberUsecase.
type MockMemberUsecase struct {
	mock.Mock
}

func NewMockMemberUsecase(t testingT) *MockMemberUsecase {
	m := &MockMemberUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockMemberUsecase) member(args mock.Arguments) (*entity.Member, error) {
	member, _ := args.Get(0).(*entity.Member)
	return member, args.Error(1)
}

func (m *MockMemberUsecase) Create(ctx context.Context, caller usecase.Caller, input usecase.NewMember) (*entity.Member, error) {
	return m.member(m.Called(ctx, caller, input))
}

func (m *MockMemberUsecase) List(ctx context.Context, caller usecase.Caller, params listing.Params) (listing.Page[*entity.Member], error) {
	return pageOf[*entity.Member](m.Called(ctx, caller, params))
}

func (m *MockMemberUsecase) Get(ctx context.Context, caller usecase.Caller, id uuid.UUID) (*entity.Member, error) {
	return m.member(m.Called(ctx, caller, id))
}

func (m *MockMemberUsecase) Update(ctx context.Context, caller usecase.Caller, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error) {
	return m.member(m.Called(ctx, caller, id, patch))
}

func (m *MockMemberUsecase) Delete(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockMemberUsecase) DeleteMany(ctx context.Context, caller usecase.Caller, ids []uuid.UUID) error {
	return m.Called(ctx, caller, ids).Error(0)
}

// MockAddressUsecase is a testify double for usecase.AddressUsecase.
type MockAddressUsecase struct {
	mock.Mock
}

func NewMockAddressUsecase(t testingT) *MockAddressUsecase {
	m := &MockAddressUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockAddressUsecase) address(args mock.Arguments) (*entity.Address, error) {
	address, _ := args.Get(0).(*entity.Address)
	return address, args.Error(1)
}

func (m *MockAddressUsecase) Create(ctx context.Context, house, square string) (*entity.Address, error) {
	return m.address(m.Called(ctx, house, square))
}

func (m *MockAddressUsecase) List(ctx context.Context, params listing.Params) (listing.Page[*entity.Address], error) {
	return pageOf[*entity.Address](m.Called(ctx, params))
}

func (m *MockAddressUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	return m.address(m.Called(ctx, id))
}

func (m *MockAddressUsecase) Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) (*entity.Address, error) {
	return m.address(m.Called(ctx, id, patch))
}

func (m *MockAddressUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockServiceOrderUsecase is a testify double for usecase.ServiceOrderUsecase.
type MockServiceOrderUsecase struct {
	mock.Mock
}

func NewMockServiceOrderUsecase(t testingT) *MockServiceOrderUsecase {
	m := &MockServiceOrderUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockServiceOrderUsecase) Place(ctx context.Context, caller usecase.Caller, order usecase.PlaceOrder) (*usecase.OrderReceipt, error) {
	args := m.Called(ctx, caller, order)
	receipt, _ := args.Get(0).(*usecase.OrderReceipt)

	return receipt, args.Error(1)
}

// MockAdminUsecase is a testify double for usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

func NewMockAdminUsecase(t testingT) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockAdminUsecase) Create(ctx context.Context, account usecase.Account) (*entity.User, error) {
	args := m.Called(ctx, account)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockAdminUsecase) List(ctx context.Context, params listing.Params) (listing.Page[*entity.Admin], error) {
	return pageOf[*entity.Admin](m.Called(ctx, params))
}

func (m *MockAdminUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*entity.Admin)

	return admin, args.Error(1)
}

func (m *MockAdminUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRoleUsecase is a testify double for usecase.RoleUsecase.
type MockRoleUsecase struct {
	mock.Mock
}

func NewMockRoleUsecase(t testingT) *MockRoleUsecase {
	m := &MockRoleUsecase{}
	register(&m.Mock, t)

	return m
}

func (m *MockRoleUsecase) Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.RoleRecord)

	return role, args.Error(1)
}

func (m *MockRoleUsecase) List(ctx context.Context) ([]*entity.RoleRecord, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*entity.RoleRecord)

	return roles, args.Error(1)
}
