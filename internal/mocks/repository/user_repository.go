package repository

import (
	"context"

	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/repository"

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

// MockUserRepository is a testify double for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.User, error) {
	args := m.Called(ctx, id, includes)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	args := m.Called(ctx, name)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q listing.Query) ([]*entity.User, int64, error) {
	args := m.Called(ctx, q)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	args := m.Called(ctx, id, patch)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) LinkSubRole(ctx context.Context, id uuid.UUID, link repository.SubRoleLink) error {
	return m.Called(ctx, id, link).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)

	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository is a testify double for repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func NewMockRoleRepository(t testingT) *MockRoleRepository {
	m := &MockRoleRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockRoleRepository) Ensure(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.RoleRecord)

	return role, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.RoleRecord)

	return role, args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*entity.RoleRecord, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*entity.RoleRecord)

	return roles, args.Error(1)
}

// MockAdminRepository is a testify double for repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func NewMockAdminRepository(t testingT) *MockAdminRepository {
	m := &MockAdminRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*entity.Admin)

	return admin, args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context, q listing.Query) ([]*entity.Admin, int64, error) {
	args := m.Called(ctx, q)
	admins, _ := args.Get(0).([]*entity.Admin)

	return admins, args.Get(1).(int64), args.Error(2)
}

// MockClientRepository is a testify double for repository.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func NewMockClientRepository(t testingT) *MockClientRepository {
	m := &MockClientRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockClientRepository) Create(ctx context.Context, client *entity.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID, includes ...string) (*entity.Client, error) {
	args := m.Called(ctx, id, includes)
	client, _ := args.Get(0).(*entity.Client)

	return client, args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, q listing.Query) ([]*entity.Client, int64, error) {
	args := m.Called(ctx, q)
	clients, _ := args.Get(0).([]*entity.Client)

	return clients, args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepository) SetAddress(ctx context.Context, id, addressID uuid.UUID) error {
	return m.Called(ctx, id, addressID).Error(0)
}

func (m *MockClientRepository) SetUser(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

// MockMemberRepository is a testify double for repository.MemberRepository.
type MockMemberRepository struct {
	mock.Mock
}

func NewMockMemberRepository(t testingT) *MockMemberRepository {
	m := &MockMemberRepository{}
	register(&m.Mock, t)

	return m
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	args := m.Called(ctx, id)
	member, _ := args.Get(0).(*entity.Member)

	return member, args.Error(1)
}

func (m *MockMemberRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Member, error) {
	args := m.Called(ctx, ids)
	members, _ := args.Get(0).([]*entity.Member)

	return members, args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, q listing.Query) ([]*entity.Member, int64, error) {
	args := m.Called(ctx, q)
	members, _ := args.Get(0).([]*entity.Member)

	return members, args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepository) Update(ctx context.Context, id uuid.UUID, patch entity.MemberPatch) (*entity.Member, error) {
	args := m.Called(ctx, id, patch)
	member, _ := args.Get(0).(*entity.Member)

	return member, args.Error(1)
}

func (m *MockMemberRepository) SetUser(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockMemberRepository) UserIDsByClient(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, clientID)
	ids, _ := args.Get(0).([]uuid.UUID)

	return ids, args.Error(1)
}
