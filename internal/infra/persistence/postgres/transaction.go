// Package postgres implements the persistence layer on GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"clubefast/internal/domain/repository"
	"clubefast/internal/errors"

	"gorm.io/gorm"
)

const (
	maxTxAttempts = 3
	txRetryDelay  = 25 * time.Millisecond
)

// gormTransactionManager runs balance-changing units of work in one transaction.
type gormTransactionManager struct {
	db         *gorm.DB
	retryDelay time.Duration
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) PrizeRepo() repository.PrizeRepository {
	return NewPrizeRepository(f.tx)
}

func (f *gormRepositoryFactory) RedemptionRepo() repository.RedemptionRepository {
	return NewRedemptionRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) HistoryRepo() repository.PointsHistoryRepository {
	return NewPointsHistoryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db, retryDelay: txRetryDelay}
}

// Execute runs fn in a transaction. Row locks taken inside fn are held until commit.
// When Postgres aborts the transaction for a deadlock, serialization failure or lock
// timeout, fn runs again from the start, so it must not keep state between calls.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = tm.executeOnce(ctx, fn)
		if err == nil || !isTransientTxError(err) || attempt == maxTxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "transaction retry cancelled")
		case <-time.After(tm.retryDelay * time.Duration(attempt)):
		}
	}

	return err
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit transaction")
}
