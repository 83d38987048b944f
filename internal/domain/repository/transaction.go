package repository

import "context"

// TransactionManager runs ledger mutations atomically. Stamp awards and
// redemptions lock the customer row inside Execute, so a balance read there
// cannot be raced by a concurrent write.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. The error
	// returned by fn is passed through unchanged.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories sharing one transaction.
type RepositoryFactory interface {
	NewCustomerRepository() CustomerRepository
	NewLedgerRepository() LedgerRepository
	NewActivityRepository() ActivityRepository
}
