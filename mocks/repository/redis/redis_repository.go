package mocks

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// RedisRepository is a testify mock for the RedisRepository interface.
type RedisRepository struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key
func (_m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// SetWithTTL provides a mock function with given fields: ctx, key, value, ttl
func (_m *RedisRepository) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	if len(ret) == 0 {
		panic("no return value specified for SetWithTTL")
	}

	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, key
func (_m *RedisRepository) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	return ret.Error(0)
}

// NewRedisRepository creates a new RedisRepository. It registers a cleanup that asserts the mock expectations.
func NewRedisRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RedisRepository {
	m := &RedisRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
