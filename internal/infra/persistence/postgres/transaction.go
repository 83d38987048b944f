// Package postgres stores the loyalty ledger in PostgreSQL through GORM.
package postgres

import (
	"context"

	"stampcard/internal/domain/repository"
	"stampcard/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by GORM.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute runs fn in one transaction. gorm rolls back when fn returns an
// error or panics; the error from fn is returned unwrapped so callers can
// match domain errors.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "loyalty transaction failed")
	}
}

// txRepositories binds every repository to the same *gorm.DB transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewCustomerRepository() repository.CustomerRepository {
	return NewCustomerRepository(r.tx)
}

func (r txRepositories) NewLedgerRepository() repository.LedgerRepository {
	return NewLedgerRepository(r.tx)
}

func (r txRepositories) NewActivityRepository() repository.ActivityRepository {
	return NewActivityRepository(r.tx)
}
