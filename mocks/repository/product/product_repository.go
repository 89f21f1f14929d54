package mocks

import (
	"context"

	"github.com/muhammadheryan/promo-admin/model"
	mock "github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock for the ProductRepository interface.
type ProductRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, draft
func (_m *ProductRepository) Create(ctx context.Context, draft *model.ProductDraft) (*model.ProductDraft, error) {
	ret := _m.Called(ctx, draft)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *model.ProductDraft
	if rf, ok := ret.Get(0).(func(context.Context, *model.ProductDraft) *model.ProductDraft); ok {
		r0 = rf(ctx, draft)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductDraft)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, page, perPage
func (_m *ProductRepository) List(ctx context.Context, page int, perPage int) ([]model.ProductDraft, int64, error) {
	ret := _m.Called(ctx, page, perPage)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []model.ProductDraft
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []model.ProductDraft); ok {
		r0 = rf(ctx, page, perPage)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.ProductDraft)
	}

	var r1 int64
	if rf, ok := ret.Get(1).(func(context.Context, int, int) int64); ok {
		r1 = rf(ctx, page, perPage)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int64)
	}

	return r0, r1, ret.Error(2)
}

// NewProductRepository creates a new ProductRepository. It registers a cleanup that asserts the mock expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
