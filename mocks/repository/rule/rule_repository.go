package mocks

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	mock "github.com/stretchr/testify/mock"
)

// RuleRepository is a testify mock for the RuleRepository interface.
type RuleRepository struct {
	mock.Mock
}

// InsertRuleTx provides a mock function with given fields: ctx, tx, rule
func (_m *RuleRepository) InsertRuleTx(ctx context.Context, tx *sqlx.Tx, rule *model.RuleEntity) (uint64, error) {
	ret := _m.Called(ctx, tx, rule)

	if len(ret) == 0 {
		panic("no return value specified for InsertRuleTx")
	}

	var r0 uint64
	if rf, ok := ret.Get(0).(func(context.Context, *sqlx.Tx, *model.RuleEntity) uint64); ok {
		r0 = rf(ctx, tx, rule)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(uint64)
	}

	return r0, ret.Error(1)
}

// InsertTiersTx provides a mock function with given fields: ctx, tx, ruleID, tiers
func (_m *RuleRepository) InsertTiersTx(ctx context.Context, tx *sqlx.Tx, ruleID uint64, tiers []model.RuleTier) error {
	ret := _m.Called(ctx, tx, ruleID, tiers)

	if len(ret) == 0 {
		panic("no return value specified for InsertTiersTx")
	}

	return ret.Error(0)
}

// ListByProduct provides a mock function with given fields: ctx, productID
func (_m *RuleRepository) ListByProduct(ctx context.Context, productID int64) ([]model.RuleEntity, error) {
	ret := _m.Called(ctx, productID)

	if len(ret) == 0 {
		panic("no return value specified for ListByProduct")
	}

	var r0 []model.RuleEntity
	if rf, ok := ret.Get(0).(func(context.Context, int64) []model.RuleEntity); ok {
		r0 = rf(ctx, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.RuleEntity)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, ruleID
func (_m *RuleRepository) GetByID(ctx context.Context, ruleID uint64) (*model.RuleEntity, error) {
	ret := _m.Called(ctx, ruleID)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *model.RuleEntity
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *model.RuleEntity); ok {
		r0 = rf(ctx, ruleID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.RuleEntity)
	}

	return r0, ret.Error(1)
}

// UpdateStatus provides a mock function with given fields: ctx, ruleID, status
func (_m *RuleRepository) UpdateStatus(ctx context.Context, ruleID uint64, status constant.RuleStatus) error {
	ret := _m.Called(ctx, ruleID, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStatus")
	}

	return ret.Error(0)
}

// CountActiveByProduct provides a mock function with given fields: ctx, day
func (_m *RuleRepository) CountActiveByProduct(ctx context.Context, day time.Time) (map[int64]int, error) {
	ret := _m.Called(ctx, day)

	if len(ret) == 0 {
		panic("no return value specified for CountActiveByProduct")
	}

	var r0 map[int64]int
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) map[int64]int); ok {
		r0 = rf(ctx, day)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int64]int)
	}

	return r0, ret.Error(1)
}

// NewRuleRepository creates a new RuleRepository. It registers a cleanup that asserts the mock expectations.
func NewRuleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RuleRepository {
	m := &RuleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
