package repository

import "context"

// TransactionManager runs device writes atomically without exposing the
// storage driver to use cases.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewDeviceRepository() DeviceRepository
}
