package transport_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	dashboardapp "github.com/muhammadheryan/promo-admin/application/dashboard"
	productapp "github.com/muhammadheryan/promo-admin/application/product"
	"github.com/muhammadheryan/promo-admin/constant"
	feedmocks "github.com/muhammadheryan/promo-admin/mocks/application/feed"
	productmocks "github.com/muhammadheryan/promo-admin/mocks/application/product"
	rulemocks "github.com/muhammadheryan/promo-admin/mocks/application/rule"
	productrepomocks "github.com/muhammadheryan/promo-admin/mocks/repository/product"
	redismocks "github.com/muhammadheryan/promo-admin/mocks/repository/redis"
	rulerepomocks "github.com/muhammadheryan/promo-admin/mocks/repository/rule"
	"github.com/muhammadheryan/promo-admin/model"
	"github.com/muhammadheryan/promo-admin/transport"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "secret"

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	productApp *productmocks.ProductApp
	ruleApp    *rulemocks.RuleApp
	feedApp    *feedmocks.FeedApp
}

func newFields(t *testing.T) fields {
	return fields{
		productApp: productmocks.NewProductApp(t),
		ruleApp:    rulemocks.NewRuleApp(t),
		feedApp:    feedmocks.NewFeedApp(t),
	}
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(f.productApp, f.ruleApp, dashboardapp.NewDashboardApp(), f.feedApp, testAPIKey)
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func code(errType constant.ErrorType) string {
	return constant.ErrorTypeCode[errType]
}

func TestRestHandler_ListProducts(t *testing.T) {
	view := &model.ListView{
		Items:        []model.Product{{ID: 1, Title: "Apple"}},
		TotalCount:   1,
		CurrentPage:  1,
		ItemsPerPage: 10,
		RangeStart:   1,
		RangeEnd:     1,
		FeedStatus:   constant.FeedStatusOK,
	}

	tests := []struct {
		name       string
		target     string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "success: query mapped to request",
			target: "/products?search=ap&status=No+rule&per_page=10",
			mockCall: func(f fields) {
				f.productApp.
					On("ListProducts", mock.Anything, &model.ListProductsRequest{
						Search:  "ap",
						Status:  constant.ProductStatusNoRule,
						Page:    1,
						PerPage: 10,
					}).
					Return(view, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   code(constant.Successful),
		},
		{
			name:       "error: non numeric page size",
			target:     "/products?per_page=ten",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   code(constant.ErrInvalidRequest),
		},
		{
			name:       "error: page zero",
			target:     "/products?page=0",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   code(constant.ErrInvalidRequest),
		},
		{
			name:   "error: page size outside options",
			target: "/products?per_page=7",
			mockCall: func(f fields) {
				f.productApp.
					On("ListProducts", mock.Anything, mock.Anything).
					Return(nil, errors.SetCustomError(constant.ErrInvalidPageSize)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   code(constant.ErrInvalidPageSize),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			rec, body := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestRestHandler_ListProductsBody(t *testing.T) {
	f := newFields(t)
	f.productApp.
		On("ListProducts", mock.Anything, mock.Anything).
		Return(&model.ListView{
			Items:        []model.Product{{ID: 2, Title: "Banana", RuleCount: 2}},
			TotalCount:   1,
			CurrentPage:  1,
			ItemsPerPage: 5,
			RangeStart:   1,
			RangeEnd:     1,
			FeedStatus:   constant.FeedStatusOK,
		}, nil).
		Once()

	_, body := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/products", nil))

	var got struct {
		Items []struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Active", got.Items[0].Status)
	assert.Equal(t, 1, got.TotalCount)
}

func TestRestHandler_ListProductsHugePage(t *testing.T) {
	f := newFields(t)
	f.feedApp.
		On("Snapshot").
		Return(model.FeedSnapshot{
			Products: []model.Product{{ID: 1, Title: "Apple"}, {ID: 2, Title: "Banana"}, {ID: 3, Title: "apricot"}},
			Status:   constant.FeedStatusOK,
		}).
		Once()
	ruleRepo := rulerepomocks.NewRuleRepository(t)
	ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{2: 1}, nil).Once()

	app := productapp.NewProductApp(f.feedApp, ruleRepo, productrepomocks.NewProductRepository(t), redismocks.NewRedisRepository(t), time.Minute)
	h := transport.NewTransport(app, f.ruleApp, dashboardapp.NewDashboardApp(), f.feedApp, testAPIKey)

	rec, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/products?page=4611686018427387905&per_page=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.ListView
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Empty(t, got.Items)
	assert.Equal(t, 3, got.TotalCount)
	assert.False(t, got.HasNext)
}

func TestRestHandler_ListView(t *testing.T) {
	res := &model.ListViewResponse{
		SessionID: "abc",
		View:      &model.ListView{Items: []model.Product{}, CurrentPage: 2, ItemsPerPage: 5},
	}

	t.Run("get uses the session header", func(t *testing.T) {
		f := newFields(t)
		f.productApp.On("GetListView", mock.Anything, "abc").Return(res, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/products/view", nil)
		req.Header.Set(constant.SessionIDHeader, "abc")
		rec, body := serve(t, f.handler(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, code(constant.Successful), body.Code)
		assert.Equal(t, "abc", rec.Header().Get(constant.SessionIDHeader))
	})

	t.Run("get without header starts a session", func(t *testing.T) {
		f := newFields(t)
		f.productApp.On("GetListView", mock.Anything, "").Return(res, nil).Once()

		rec, _ := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/products/view", nil))
		assert.Equal(t, "abc", rec.Header().Get(constant.SessionIDHeader))
	})

	t.Run("post applies the action", func(t *testing.T) {
		f := newFields(t)
		f.productApp.
			On("UpdateListView", mock.Anything, "abc", &model.ListAction{Action: "next"}).
			Return(res, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/products/view", strings.NewReader(`{"action":"next"}`))
		req.Header.Set(constant.SessionIDHeader, "abc")
		rec, _ := serve(t, f.handler(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("post rejects unknown action", func(t *testing.T) {
		f := newFields(t)

		req := httptest.NewRequest(http.MethodPost, "/products/view", strings.NewReader(`{"action":"jump"}`))
		rec, body := serve(t, f.handler(), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidRequest), body.Code)
	})
}

func multipartProduct(t *testing.T, price string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Mango"))
	require.NoError(t, mw.WriteField("price", price))
	require.NoError(t, mw.WriteField("description", "Sweet"))
	fw, err := mw.CreateFormFile("image", "mango.png")
	require.NoError(t, err)
	_, err = fw.Write(image)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRestHandler_CreateProduct(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	t.Run("success: content type sniffed from bytes", func(t *testing.T) {
		f := newFields(t)
		f.productApp.
			On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *model.CreateProductRequest) bool {
				return req.Title == "Mango" &&
					req.Price == 12.5 &&
					req.Description == "Sweet" &&
					req.ImageName == "mango.png" &&
					req.ImageType == "image/png"
			})).
			Return(&model.ProductDraft{ID: 1, Title: "Mango"}, nil).
			Once()

		rec, body := serve(t, f.handler(), multipartProduct(t, "12.5", png))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, code(constant.Successful), body.Code)
	})

	t.Run("error: price not a number", func(t *testing.T) {
		f := newFields(t)

		rec, body := serve(t, f.handler(), multipartProduct(t, "free", png))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidRequest), body.Code)
	})

	t.Run("error: price not positive", func(t *testing.T) {
		f := newFields(t)

		rec, _ := serve(t, f.handler(), multipartProduct(t, "0", png))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error: empty image", func(t *testing.T) {
		f := newFields(t)

		rec, body := serve(t, f.handler(), multipartProduct(t, "3", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidRequest), body.Code)
	})

	t.Run("error: image larger than 5MB", func(t *testing.T) {
		f := newFields(t)

		big := append(append([]byte{}, png...), make([]byte, 5<<20)...)
		rec, body := serve(t, f.handler(), multipartProduct(t, "3", big))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidRequest), body.Code)
	})

	t.Run("error: unsupported image passed to app", func(t *testing.T) {
		f := newFields(t)
		f.productApp.
			On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *model.CreateProductRequest) bool {
				return strings.HasPrefix(req.ImageType, "text/plain")
			})).
			Return(nil, errors.SetCustomError(constant.ErrInvalidImageType)).
			Once()

		rec, body := serve(t, f.handler(), multipartProduct(t, "3", []byte("not an image")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidImageType), body.Code)
	})
}

func TestRestHandler_Rules(t *testing.T) {
	t.Run("create binds product id from path", func(t *testing.T) {
		f := newFields(t)
		f.ruleApp.
			On("CreateRule", mock.Anything, &model.CreateRuleRequest{
				ProductID: 12,
				Title:     "Bulk",
				StartDate: "2024-10-01",
				EndDate:   "2024-10-07",
				Tiers:     []model.RuleTierRequest{{BuyFrom: 1, BuyTo: 5, Discount: 10}},
			}).
			Return(&model.RuleResponse{ID: 1, ProductID: 12}, nil).
			Once()

		payload := `{"title":"Bulk","start_date":"2024-10-01","end_date":"2024-10-07","tiers":[{"buy_from":1,"buy_to":5,"discount":10}]}`
		rec, _ := serve(t, f.handler(), httptest.NewRequest(http.MethodPost, "/products/12/rules", strings.NewReader(payload)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create rejects tier with buy_to below buy_from", func(t *testing.T) {
		f := newFields(t)

		payload := `{"title":"Bulk","start_date":"2024-10-01","end_date":"2024-10-07","tiers":[{"buy_from":5,"buy_to":2,"discount":10}]}`
		rec, body := serve(t, f.handler(), httptest.NewRequest(http.MethodPost, "/products/12/rules", strings.NewReader(payload)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, code(constant.ErrInvalidRequest), body.Code)
	})

	t.Run("create rejects missing tiers", func(t *testing.T) {
		f := newFields(t)

		payload := `{"title":"Bulk","start_date":"2024-10-01","end_date":"2024-10-07"}`
		rec, _ := serve(t, f.handler(), httptest.NewRequest(http.MethodPost, "/products/12/rules", strings.NewReader(payload)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		f := newFields(t)
		f.ruleApp.On("ListRules", mock.Anything, int64(12)).Return([]model.RuleResponse{}, nil).Once()

		rec, _ := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/products/12/rules", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRestHandler_Dashboard(t *testing.T) {
	f := newFields(t)

	rec, body := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/dashboard?start=2024-10-02&end=2024-10-03", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.DashboardResponse
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, float64(180), got.Subscription.Total)
	assert.Equal(t, float64(950), got.Revenue.Total)
	assert.Equal(t, "2/10/2024", got.Revenue.Points[0].Label)

	rec, body = serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/dashboard?start=2024-10-05&end=2024-10-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, code(constant.ErrInvalidDateRange), body.Code)
}

func TestRestHandler_Internal(t *testing.T) {
	tests := []struct {
		name       string
		auth       string
		target     string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "error: missing api key",
			target:     "/internal/v1/rules/7/expire",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   code(constant.ErrUnauthorize),
		},
		{
			name:       "error: wrong api key",
			auth:       "Bearer nope",
			target:     "/internal/v1/feed/refresh",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   code(constant.ErrUnauthorize),
		},
		{
			name:   "success: rule expired",
			auth:   "Bearer " + testAPIKey,
			target: "/internal/v1/rules/7/expire",
			mockCall: func(f fields) {
				f.ruleApp.On("ExpireRule", mock.Anything, uint64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   code(constant.Successful),
		},
		{
			name:   "error: rule already expired",
			auth:   "Bearer " + testAPIKey,
			target: "/internal/v1/rules/7/expire",
			mockCall: func(f fields) {
				f.ruleApp.On("ExpireRule", mock.Anything, uint64(7)).Return(errors.SetCustomError(constant.ErrRuleNotActive)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   code(constant.ErrRuleNotActive),
		},
		{
			name:   "success: feed refreshed",
			auth:   "Bearer " + testAPIKey,
			target: "/internal/v1/feed/refresh",
			mockCall: func(f fields) {
				f.feedApp.On("Refresh", mock.Anything).Return(nil).Once()
				f.feedApp.On("Snapshot").Return(model.FeedSnapshot{Status: constant.FeedStatusOK}).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   code(constant.Successful),
		},
		{
			name:   "error: feed unavailable",
			auth:   "Bearer " + testAPIKey,
			target: "/internal/v1/feed/refresh",
			mockCall: func(f fields) {
				f.feedApp.On("Refresh", mock.Anything).Return(errors.SetCustomError(constant.ErrFeedUnavailable)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   code(constant.ErrFeedUnavailable),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec, body := serve(t, f.handler(), req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestRestHandler_Menu(t *testing.T) {
	f := newFields(t)

	_, body := serve(t, f.handler(), httptest.NewRequest(http.MethodGet, "/menu", nil))

	var got []model.MenuItem
	require.NoError(t, json.Unmarshal(body.Data, &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Products", got[1].Title)
}
