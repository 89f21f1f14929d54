package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
	mock "github.com/stretchr/testify/mock"
)

// TxRepository is a testify mock for the TxRepository interface.
type TxRepository struct {
	mock.Mock
}

// BeginTx provides a mock function with given fields: ctx
func (_m *TxRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for BeginTx")
	}

	var r0 *sqlx.Tx
	if rf, ok := ret.Get(0).(func(context.Context) *sqlx.Tx); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sqlx.Tx)
	}

	return r0, ret.Error(1)
}

// CommitTx provides a mock function with given fields: tx
func (_m *TxRepository) CommitTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	if len(ret) == 0 {
		panic("no return value specified for CommitTx")
	}

	return ret.Error(0)
}

// RollbackTx provides a mock function with given fields: tx
func (_m *TxRepository) RollbackTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	if len(ret) == 0 {
		panic("no return value specified for RollbackTx")
	}

	return ret.Error(0)
}

// NewTxRepository creates a new TxRepository. It registers a cleanup that asserts the mock expectations.
func NewTxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TxRepository {
	m := &TxRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
