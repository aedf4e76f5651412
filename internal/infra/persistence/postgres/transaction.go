// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"scoop/internal/domain/repository"
	"scoop/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return newUserRepository(f.tx, false)
}

func (f *gormRepositoryFactory) RoleRepo() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

func (f *gormRepositoryFactory) AdminRepo() repository.AdminRepository {
	return newAdminRepository(f.tx, false)
}

func (f *gormRepositoryFactory) ClientRepo() repository.ClientRepository {
	return newClientRepository(f.tx, false)
}

func (f *gormRepositoryFactory) MemberRepo() repository.MemberRepository {
	return newMemberRepository(f.tx, false)
}

func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return newAddressRepository(f.tx, false)
}

func (f *gormRepositoryFactory) CreamRepo() repository.CreamRepository {
	return newCreamRepository(f.tx, false)
}

func (f *gormRepositoryFactory) ToppingRepo() repository.ToppingRepository {
	return newToppingRepository(f.tx, false)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return newProductRepository(f.tx, false)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back if the callback panics, then re-panic for the recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error; the rollback failure is context.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
