package mocks

import (
	"context"

	"github.com/muhammadheryan/promo-admin/model"
	mock "github.com/stretchr/testify/mock"
)

// RuleApp is a testify mock for the RuleApp interface.
type RuleApp struct {
	mock.Mock
}

// CreateRule provides a mock function with given fields: ctx, req
func (_m *RuleApp) CreateRule(ctx context.Context, req *model.CreateRuleRequest) (*model.RuleResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateRule")
	}

	var r0 *model.RuleResponse
	if rf, ok := ret.Get(0).(func(context.Context, *model.CreateRuleRequest) *model.RuleResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.RuleResponse)
	}

	return r0, ret.Error(1)
}

// ListRules provides a mock function with given fields: ctx, productID
func (_m *RuleApp) ListRules(ctx context.Context, productID int64) ([]model.RuleResponse, error) {
	ret := _m.Called(ctx, productID)

	if len(ret) == 0 {
		panic("no return value specified for ListRules")
	}

	var r0 []model.RuleResponse
	if rf, ok := ret.Get(0).(func(context.Context, int64) []model.RuleResponse); ok {
		r0 = rf(ctx, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.RuleResponse)
	}

	return r0, ret.Error(1)
}

// ExpireRule provides a mock function with given fields: ctx, ruleID
func (_m *RuleApp) ExpireRule(ctx context.Context, ruleID uint64) error {
	ret := _m.Called(ctx, ruleID)

	if len(ret) == 0 {
		panic("no return value specified for ExpireRule")
	}

	return ret.Error(0)
}

// NewRuleApp creates a new RuleApp. It registers a cleanup that asserts the mock expectations.
func NewRuleApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *RuleApp {
	m := &RuleApp{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
