// Package db carries a gorm transaction through a context so that a use case
// can run several repository calls in one transaction scope.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager opens transactions and exposes them via context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction bound to ctx, or the default handle.
func Conn(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// Runner is the part of TransactionManager that use cases depend on.
type Runner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
