// Package repository holds testify doubles for the persistence interfaces.
package repository

import (
	"context"

	"scoop/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify double for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations on cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// PassThrough makes Execute run the callback against factory.
func (m *MockTransactionManager) PassThrough(factory repository.RepositoryFactory) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).Return(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)
}

// Factory is a RepositoryFactory serving fixed repositories. Nil fields
// panic when requested, which flags an unexpected repository use.
type Factory struct {
	Users     repository.UserRepository
	Roles     repository.RoleRepository
	Admins    repository.AdminRepository
	Clients   repository.ClientRepository
	Members   repository.MemberRepository
	Addresses repository.AddressRepository
	Creams    repository.CreamRepository
	Toppings  repository.ToppingRepository
	Products  repository.ProductRepository
}

func (f *Factory) UserRepo() repository.UserRepository       { return must(f.Users) }
func (f *Factory) RoleRepo() repository.RoleRepository       { return must(f.Roles) }
func (f *Factory) AdminRepo() repository.AdminRepository     { return must(f.Admins) }
func (f *Factory) ClientRepo() repository.ClientRepository   { return must(f.Clients) }
func (f *Factory) MemberRepo() repository.MemberRepository   { return must(f.Members) }
func (f *Factory) AddressRepo() repository.AddressRepository { return must(f.Addresses) }
func (f *Factory) CreamRepo() repository.CreamRepository     { return must(f.Creams) }
func (f *Factory) ToppingRepo() repository.ToppingRepository { return must(f.Toppings) }
func (f *Factory) ProductRepo() repository.ProductRepository { return must(f.Products) }

func must[T any](repo T) T {
	if any(repo) == nil {
		panic("mocks: repository not configured on Factory")
	}

	return repo
}
