package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// Client is a testify mock for the Client interface.
type Client struct {
	mock.Mock
}

// Fetch provides a mock function with given fields: ctx
func (_m *Client) Fetch(ctx context.Context) ([]byte, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Fetch")
	}

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context) []byte); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewClient creates a new Client. It registers a cleanup that asserts the mock expectations.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
