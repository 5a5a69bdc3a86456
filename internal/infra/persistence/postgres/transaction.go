// Package postgres stores devices and trigger settings through GORM.
package postgres

import (
	"context"

	"azan/internal/domain/repository"
	"azan/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. GORM rolls back when fn returns an
// error or panics and commits otherwise.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "device transaction")
	}

	return nil
}

type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(r.tx)
}
