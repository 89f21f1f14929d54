package mocks

import (
	"context"

	"github.com/muhammadheryan/promo-admin/model"
	mock "github.com/stretchr/testify/mock"
)

// ProductApp is a testify mock for the ProductApp interface.
type ProductApp struct {
	mock.Mock
}

// ListProducts provides a mock function with given fields: ctx, req
func (_m *ProductApp) ListProducts(ctx context.Context, req *model.ListProductsRequest) (*model.ListView, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for ListProducts")
	}

	var r0 *model.ListView
	if rf, ok := ret.Get(0).(func(context.Context, *model.ListProductsRequest) *model.ListView); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ListView)
	}

	return r0, ret.Error(1)
}

// GetListView provides a mock function with given fields: ctx, sessionID
func (_m *ProductApp) GetListView(ctx context.Context, sessionID string) (*model.ListViewResponse, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetListView")
	}

	var r0 *model.ListViewResponse
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.ListViewResponse); ok {
		r0 = rf(ctx, sessionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ListViewResponse)
	}

	return r0, ret.Error(1)
}

// UpdateListView provides a mock function with given fields: ctx, sessionID, action
func (_m *ProductApp) UpdateListView(ctx context.Context, sessionID string, action *model.ListAction) (*model.ListViewResponse, error) {
	ret := _m.Called(ctx, sessionID, action)

	if len(ret) == 0 {
		panic("no return value specified for UpdateListView")
	}

	var r0 *model.ListViewResponse
	if rf, ok := ret.Get(0).(func(context.Context, string, *model.ListAction) *model.ListViewResponse); ok {
		r0 = rf(ctx, sessionID, action)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ListViewResponse)
	}

	return r0, ret.Error(1)
}

// CreateProduct provides a mock function with given fields: ctx, req
func (_m *ProductApp) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductDraft, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateProduct")
	}

	var r0 *model.ProductDraft
	if rf, ok := ret.Get(0).(func(context.Context, *model.CreateProductRequest) *model.ProductDraft); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ProductDraft)
	}

	return r0, ret.Error(1)
}

// ListDrafts provides a mock function with given fields: ctx, page, perPage
func (_m *ProductApp) ListDrafts(ctx context.Context, page int, perPage int) (*model.DraftListResponse, error) {
	ret := _m.Called(ctx, page, perPage)

	if len(ret) == 0 {
		panic("no return value specified for ListDrafts")
	}

	var r0 *model.DraftListResponse
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *model.DraftListResponse); ok {
		r0 = rf(ctx, page, perPage)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.DraftListResponse)
	}

	return r0, ret.Error(1)
}

// NewProductApp creates a new ProductApp. It registers a cleanup that asserts the mock expectations.
func NewProductApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductApp {
	m := &ProductApp{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
