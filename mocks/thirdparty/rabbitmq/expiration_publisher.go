package mocks

import (
	"github.com/muhammadheryan/promo-admin/thirdparty/rabbitmq"
	mock "github.com/stretchr/testify/mock"
)

// ExpirationPublisher is a testify mock for the ExpirationPublisher interface.
type ExpirationPublisher struct {
	mock.Mock
}

// PublishRuleExpiration provides a mock function with given fields: msg
func (_m *ExpirationPublisher) PublishRuleExpiration(msg rabbitmq.RuleExpirationMessage) error {
	ret := _m.Called(msg)

	if len(ret) == 0 {
		panic("no return value specified for PublishRuleExpiration")
	}

	return ret.Error(0)
}

// NewExpirationPublisher creates a new ExpirationPublisher. It registers a cleanup that asserts the mock expectations.
func NewExpirationPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *ExpirationPublisher {
	m := &ExpirationPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
