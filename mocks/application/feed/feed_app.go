package mocks

import (
	"context"

	"github.com/muhammadheryan/promo-admin/model"
	mock "github.com/stretchr/testify/mock"
)

// FeedApp is a testify mock for the FeedApp interface.
type FeedApp struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *FeedApp) Load(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	return ret.Error(0)
}

// Refresh provides a mock function with given fields: ctx
func (_m *FeedApp) Refresh(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Refresh")
	}

	return ret.Error(0)
}

// Snapshot provides a mock function with given fields: 
func (_m *FeedApp) Snapshot() model.FeedSnapshot {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Snapshot")
	}

	var r0 model.FeedSnapshot
	if rf, ok := ret.Get(0).(func() model.FeedSnapshot); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.FeedSnapshot)
	}

	return r0
}

// NewFeedApp creates a new FeedApp. It registers a cleanup that asserts the mock expectations.
func NewFeedApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedApp {
	m := &FeedApp{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
