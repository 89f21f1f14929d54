package product_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	appproduct "github.com/muhammadheryan/promo-admin/application/product"
	"github.com/muhammadheryan/promo-admin/constant"
	feedmocks "github.com/muhammadheryan/promo-admin/mocks/application/feed"
	productmocks "github.com/muhammadheryan/promo-admin/mocks/repository/product"
	redismocks "github.com/muhammadheryan/promo-admin/mocks/repository/redis"
	rulemocks "github.com/muhammadheryan/promo-admin/mocks/repository/rule"
	"github.com/muhammadheryan/promo-admin/model"
	redisrepo "github.com/muhammadheryan/promo-admin/repository/redis"
	cerr "github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	feed        *feedmocks.FeedApp
	ruleRepo    *rulemocks.RuleRepository
	productRepo *productmocks.ProductRepository
	redisRepo   *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		feed:        feedmocks.NewFeedApp(t),
		ruleRepo:    rulemocks.NewRuleRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
	}
}

func (f fields) app() appproduct.ProductApp {
	return appproduct.NewProductApp(f.feed, f.ruleRepo, f.productRepo, f.redisRepo, sessionTTL)
}

// feedFruits is the feed snapshot: rule counts come from the rule store.
func feedFruits() model.FeedSnapshot {
	return model.FeedSnapshot{
		Products: []model.Product{
			{ID: 1, Title: "Apple"},
			{ID: 2, Title: "Banana"},
			{ID: 3, Title: "apricot"},
		},
		Status: constant.FeedStatusOK,
	}
}

func expectErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ListProductsRequest
		mockCall func(f fields)
		want     *model.ListView
		wantErr  constant.ErrorType
	}{
		{
			name: "success: search with default page size",
			req:  &model.ListProductsRequest{Search: "ap", Page: 1},
			mockCall: func(f fields) {
				f.feed.On("Snapshot").Return(feedFruits()).Once()
				f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{2: 2}, nil).Once()
			},
			want: &model.ListView{
				Items: []model.Product{
					{ID: 1, Title: "Apple"},
					{ID: 3, Title: "apricot"},
				},
				TotalCount:   2,
				CurrentPage:  1,
				ItemsPerPage: 5,
				RangeStart:   1,
				RangeEnd:     2,
				Filter:       model.FilterState{SearchQuery: "ap"},
				FeedStatus:   constant.FeedStatusOK,
			},
		},
		{
			name: "success: active filter uses merged rule counts",
			req:  &model.ListProductsRequest{Status: constant.ProductStatusActive, Page: 1, PerPage: 10},
			mockCall: func(f fields) {
				f.feed.On("Snapshot").Return(feedFruits()).Once()
				f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{2: 2}, nil).Once()
			},
			want: &model.ListView{
				Items:        []model.Product{{ID: 2, Title: "Banana", RuleCount: 2}},
				TotalCount:   1,
				CurrentPage:  1,
				ItemsPerPage: 10,
				RangeStart:   1,
				RangeEnd:     1,
				Filter:       model.FilterState{StatusFilter: constant.ProductStatusActive},
				FeedStatus:   constant.FeedStatusOK,
			},
		},
		{
			name: "success: page past the end is empty",
			req:  &model.ListProductsRequest{Page: 3, PerPage: 5},
			mockCall: func(f fields) {
				f.feed.On("Snapshot").Return(feedFruits()).Once()
				f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{}, nil).Once()
			},
			want: &model.ListView{
				Items:        []model.Product{},
				TotalCount:   3,
				CurrentPage:  3,
				ItemsPerPage: 5,
				HasPrevious:  true,
				FeedStatus:   constant.FeedStatusOK,
			},
		},
		{
			name: "success: unavailable feed renders empty with status",
			req:  &model.ListProductsRequest{Page: 1},
			mockCall: func(f fields) {
				f.feed.On("Snapshot").Return(model.FeedSnapshot{Products: []model.Product{}, Status: constant.FeedStatusUnavailable}).Once()
			},
			want: &model.ListView{
				Items:        []model.Product{},
				CurrentPage:  1,
				ItemsPerPage: 5,
				FeedStatus:   constant.FeedStatusUnavailable,
			},
		},
		{
			name:     "error: page size outside the enumeration",
			req:      &model.ListProductsRequest{Page: 1, PerPage: 7},
			mockCall: func(f fields) {},
			wantErr:  constant.ErrInvalidPageSize,
		},
		{
			name:     "error: unknown status filter",
			req:      &model.ListProductsRequest{Page: 1, Status: "Archived"},
			mockCall: func(f fields) {},
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name: "error: rule store failure",
			req:  &model.ListProductsRequest{Page: 1},
			mockCall: func(f fields) {
				f.feed.On("Snapshot").Return(feedFruits()).Once()
				f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ListProducts(context.Background(), tt.req)
			if tt.wantErr != constant.Successful {
				if err == nil {
					t.Fatalf("ListProducts() error = nil, want %v", tt.wantErr)
				}
				expectErrType(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("ListProducts() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_ListProductsDoesNotMutateFeed(t *testing.T) {
	f := newFields(t)
	snapshot := feedFruits()
	f.feed.On("Snapshot").Return(snapshot).Once()
	f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{1: 4}, nil).Once()

	if _, err := f.app().ListProducts(context.Background(), &model.ListProductsRequest{Page: 1}); err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if snapshot.Products[0].RuleCount != 0 {
		t.Fatalf("feed snapshot mutated: %+v", snapshot.Products[0])
	}
}

func TestProductApp_ListProductsCountsRulesForToday(t *testing.T) {
	f := newFields(t)
	f.feed.On("Snapshot").Return(feedFruits()).Once()
	f.ruleRepo.
		On("CountActiveByProduct", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
			return day.Location() == time.UTC &&
				day.Format(constant.RuleDateLayout) == time.Now().UTC().Format(constant.RuleDateLayout)
		})).
		Return(map[int64]int{}, nil).
		Once()

	got, err := f.app().ListProducts(context.Background(), &model.ListProductsRequest{Page: 1, Status: constant.ProductStatusActive})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if got.TotalCount != 0 {
		t.Fatalf("ListProducts() total = %d, want 0 with no rule in range", got.TotalCount)
	}
}

func storedState(t *testing.T, state appproduct.ListState) string {
	t.Helper()
	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func TestProductApp_GetListView(t *testing.T) {
	t.Run("success: new session starts at page 1", func(t *testing.T) {
		f := newFields(t)
		f.feed.On("Snapshot").Return(feedFruits()).Once()
		f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{}, nil).Once()
		f.redisRepo.
			On("SetWithTTL", mock.Anything, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "listview:") && len(key) > len("listview:")
			}), storedState(t, appproduct.NewListState()), sessionTTL).
			Return(nil).
			Once()

		got, err := f.app().GetListView(context.Background(), "")
		if err != nil {
			t.Fatalf("GetListView() error = %v", err)
		}
		if got.SessionID == "" {
			t.Fatal("GetListView() returned empty session id")
		}
		if got.View.TotalCount != 3 || got.View.CurrentPage != 1 {
			t.Fatalf("GetListView() view = %+v", got.View)
		}
	})

	t.Run("success: stored state is restored", func(t *testing.T) {
		f := newFields(t)
		state := appproduct.NewListState()
		_ = state.SetSearchQuery("ap")
		raw := storedState(t, state)

		f.redisRepo.On("Get", mock.Anything, redisrepo.ListViewKey("s1")).Return(raw, nil).Once()
		f.feed.On("Snapshot").Return(feedFruits()).Once()
		f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{}, nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, redisrepo.ListViewKey("s1"), raw, sessionTTL).Return(nil).Once()

		got, err := f.app().GetListView(context.Background(), "s1")
		if err != nil {
			t.Fatalf("GetListView() error = %v", err)
		}
		if got.SessionID != "s1" || got.View.TotalCount != 2 {
			t.Fatalf("GetListView() = %+v", got)
		}
	})

	t.Run("error: redis failure", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Get", mock.Anything, redisrepo.ListViewKey("s1")).Return("", errors.New("conn refused")).Once()

		_, err := f.app().GetListView(context.Background(), "s1")
		if err == nil {
			t.Fatal("GetListView() error = nil")
		}
		expectErrType(t, err, constant.ErrInternal)
	})
}

func TestProductApp_UpdateListView(t *testing.T) {
	pageTwo := appproduct.NewListState()
	pageTwo.Page.CurrentPage = 2

	tests := []struct {
		name      string
		stored    string
		action    *model.ListAction
		wantState func() appproduct.ListState
		wantErr   constant.ErrorType
	}{
		{
			name:   "search resets to page 1",
			stored: storedState(t, pageTwo),
			action: &model.ListAction{Action: appproduct.ActionSearch, Value: "ap"},
			wantState: func() appproduct.ListState {
				s := appproduct.NewListState()
				s.Filter.SearchQuery = "ap"
				return s
			},
		},
		{
			name:   "status resets to page 1",
			stored: storedState(t, pageTwo),
			action: &model.ListAction{Action: appproduct.ActionStatus, Value: "No rule"},
			wantState: func() appproduct.ListState {
				s := appproduct.NewListState()
				s.Filter.StatusFilter = constant.ProductStatusNoRule
				return s
			},
		},
		{
			name:   "previous moves back",
			stored: storedState(t, pageTwo),
			action: &model.ListAction{Action: appproduct.ActionPrevious},
			wantState: func() appproduct.ListState {
				return appproduct.NewListState()
			},
		},
		{
			name:   "next is a no-op on the last page",
			stored: storedState(t, appproduct.NewListState()),
			action: &model.ListAction{Action: appproduct.ActionNext},
			wantState: func() appproduct.ListState {
				return appproduct.NewListState()
			},
		},
		{
			name:   "page size keeps the page",
			stored: storedState(t, pageTwo),
			action: &model.ListAction{Action: appproduct.ActionPageSize, Value: "20"},
			wantState: func() appproduct.ListState {
				s := pageTwo
				s.Page.ItemsPerPage = 20
				return s
			},
		},
		{
			name:    "page size outside the enumeration",
			stored:  storedState(t, pageTwo),
			action:  &model.ListAction{Action: appproduct.ActionPageSize, Value: "7"},
			wantErr: constant.ErrInvalidPageSize,
		},
		{
			name:    "page must be numeric",
			stored:  storedState(t, pageTwo),
			action:  &model.ListAction{Action: appproduct.ActionPage, Value: "two"},
			wantErr: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.redisRepo.On("Get", mock.Anything, redisrepo.ListViewKey("s1")).Return(tt.stored, nil).Once()
			f.feed.On("Snapshot").Return(feedFruits()).Once()
			f.ruleRepo.On("CountActiveByProduct", mock.Anything, mock.Anything).Return(map[int64]int{2: 1}, nil).Once()
			if tt.wantState != nil {
				f.redisRepo.
					On("SetWithTTL", mock.Anything, redisrepo.ListViewKey("s1"), storedState(t, tt.wantState()), sessionTTL).
					Return(nil).
					Once()
			}

			got, err := f.app().UpdateListView(context.Background(), "s1", tt.action)
			if tt.wantErr != constant.Successful {
				if err == nil {
					t.Fatalf("UpdateListView() error = nil, want %v", tt.wantErr)
				}
				expectErrType(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("UpdateListView() error = %v", err)
			}
			want := tt.wantState()
			if got.View.CurrentPage != want.Page.CurrentPage || got.View.ItemsPerPage != want.Page.ItemsPerPage {
				t.Fatalf("UpdateListView() view page = %d/%d, want %d/%d",
					got.View.CurrentPage, got.View.ItemsPerPage, want.Page.CurrentPage, want.Page.ItemsPerPage)
			}
		})
	}
}

func TestProductApp_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateProductRequest
		mockCall func(f fields)
		want     *model.ProductDraft
		wantErr  constant.ErrorType
	}{
		{
			name: "success: product stored",
			req: &model.CreateProductRequest{
				Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.png", ImageType: "image/png",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Create", mock.Anything, &model.ProductDraft{
						Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.png", ImageType: "image/png",
					}).
					Return(&model.ProductDraft{
						ID: 9, Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.png", ImageType: "image/png",
					}, nil).
					Once()
			},
			want: &model.ProductDraft{
				ID: 9, Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.png", ImageType: "image/png",
			},
		},
		{
			name: "error: unsupported image type",
			req: &model.CreateProductRequest{
				Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.bmp", ImageType: "image/bmp",
			},
			mockCall: func(f fields) {},
			wantErr:  constant.ErrInvalidImageType,
		},
		{
			name: "error: repository failure",
			req: &model.CreateProductRequest{
				Title: "Mug", Price: 12.5, Description: "Blue mug", ImageName: "mug.gif", ImageType: "image/gif",
			},
			mockCall: func(f fields) {
				f.productRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().CreateProduct(context.Background(), tt.req)
			if tt.wantErr != constant.Successful {
				if err == nil {
					t.Fatalf("CreateProduct() error = nil, want %v", tt.wantErr)
				}
				expectErrType(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("CreateProduct() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_ListDrafts(t *testing.T) {
	f := newFields(t)
	f.productRepo.
		On("List", mock.Anything, 1, 5).
		Return([]model.ProductDraft{{ID: 1, Title: "Mug"}}, int64(1), nil).
		Once()

	got, err := f.app().ListDrafts(context.Background(), 0, 7)
	if err != nil {
		t.Fatalf("ListDrafts() error = %v", err)
	}
	want := &model.DraftListResponse{
		Items:      []model.ProductDraft{{ID: 1, Title: "Mug"}},
		TotalCount: 1,
		Page:       1,
		PerPage:    5,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListDrafts() = %+v, want %+v", got, want)
	}
}
