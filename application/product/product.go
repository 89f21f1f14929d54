package product

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	productRepo "github.com/muhammadheryan/promo-admin/repository/product"
	redisrepo "github.com/muhammadheryan/promo-admin/repository/redis"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, req *model.ListProductsRequest) (*model.ListView, error)
	GetListView(ctx context.Context, sessionID string) (*model.ListViewResponse, error)
	UpdateListView(ctx context.Context, sessionID string, action *model.ListAction) (*model.ListViewResponse, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductDraft, error)
	ListDrafts(ctx context.Context, page, perPage int) (*model.DraftListResponse, error)
}

// FeedReader exposes the loaded product feed.
type FeedReader interface {
	Snapshot() model.FeedSnapshot
}

// RuleCounter returns the number of rules per product id that are active on
// the given day.
type RuleCounter interface {
	CountActiveByProduct(ctx context.Context, day time.Time) (map[int64]int, error)
}

type productAppImpl struct {
	feed        FeedReader
	ruleCounter RuleCounter
	productRepo productRepo.ProductRepository
	redisRepo   redisrepo.Repository
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewProductApp(feed FeedReader, ruleCounter RuleCounter, productRepo productRepo.ProductRepository, redisRepo redisrepo.Repository, sessionTTL time.Duration) ProductApp {
	return &productAppImpl{
		feed:        feed,
		ruleCounter: ruleCounter,
		productRepo: productRepo,
		redisRepo:   redisRepo,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

func (s *productAppImpl) ListProducts(ctx context.Context, req *model.ListProductsRequest) (*model.ListView, error) {
	state := NewListState()
	if req.PerPage != 0 {
		if err := state.SetPageSize(req.PerPage); err != nil {
			return nil, err
		}
	}
	if err := state.ApplyFilter(model.FilterState{SearchQuery: req.Search, StatusFilter: req.Status}); err != nil {
		return nil, err
	}
	if req.Page > 1 {
		if err := state.SetCurrentPage(req.Page); err != nil {
			return nil, err
		}
	}

	return s.view(ctx, state)
}

func (s *productAppImpl) GetListView(ctx context.Context, sessionID string) (*model.ListViewResponse, error) {
	sessionID, state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view, err := s.view(ctx, state)
	if err != nil {
		return nil, err
	}

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &model.ListViewResponse{SessionID: sessionID, View: view}, nil
}

func (s *productAppImpl) UpdateListView(ctx context.Context, sessionID string, action *model.ListAction) (*model.ListViewResponse, error) {
	sessionID, state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products, status, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	if err := applyAction(&state, action, products); err != nil {
		return nil, err
	}

	view := state.View(products)
	view.FeedStatus = status

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return &model.ListViewResponse{SessionID: sessionID, View: view}, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductDraft, error) {
	if !allowedImageType(req.ImageType) {
		return nil, errors.SetCustomError(constant.ErrInvalidImageType)
	}

	draft, err := s.productRepo.Create(ctx, &model.ProductDraft{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageName:   req.ImageName,
		ImageType:   req.ImageType,
	})
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[CreateProduct] product created", zap.Uint64("id", draft.ID), zap.String("title", draft.Title))
	return draft, nil
}

func (s *productAppImpl) ListDrafts(ctx context.Context, page, perPage int) (*model.DraftListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if !constant.IsPageSize(perPage) {
		perPage = constant.DefaultPageSize
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListDrafts] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DraftListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) view(ctx context.Context, state ListState) (*model.ListView, error) {
	products, status, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	view := state.View(products)
	view.FeedStatus = status
	return view, nil
}

// products returns the feed snapshot with rule counts merged in. The
// snapshot itself is left untouched.
func (s *productAppImpl) products(ctx context.Context) ([]model.Product, constant.FeedStatus, error) {
	snapshot := s.feed.Snapshot()
	if len(snapshot.Products) == 0 {
		return []model.Product{}, snapshot.Status, nil
	}

	counts, err := s.ruleCounter.CountActiveByProduct(ctx, s.now().UTC())
	if err != nil {
		logger.Error("[ListProducts] err ruleCounter.CountActiveByProduct", zap.String("error", err.Error()))
		return nil, snapshot.Status, errors.SetCustomError(constant.ErrInternal)
	}

	products := make([]model.Product, len(snapshot.Products))
	for i, p := range snapshot.Products {
		p.RuleCount = counts[p.ID]
		products[i] = p
	}
	return products, snapshot.Status, nil
}

func (s *productAppImpl) loadState(ctx context.Context, sessionID string) (string, ListState, error) {
	if sessionID == "" {
		return uuid.NewString(), NewListState(), nil
	}

	raw, err := s.redisRepo.Get(ctx, redisrepo.ListViewKey(sessionID))
	if err != nil {
		if stderrors.Is(err, redisrepo.ErrNil) {
			return sessionID, NewListState(), nil
		}
		logger.Error("[ListView] err redisRepo.Get", zap.String("error", err.Error()))
		return "", ListState{}, errors.SetCustomError(constant.ErrInternal)
	}

	var state ListState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.Warn("[ListView] resetting unreadable state", zap.String("session_id", sessionID), zap.String("error", err.Error()))
		return sessionID, NewListState(), nil
	}
	if !constant.IsPageSize(state.Page.ItemsPerPage) || state.Page.CurrentPage < 1 || !state.Filter.StatusFilter.Valid() {
		return sessionID, NewListState(), nil
	}
	return sessionID, state, nil
}

func (s *productAppImpl) saveState(ctx context.Context, sessionID string, state ListState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		logger.Error("[ListView] err json.Marshal", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.redisRepo.SetWithTTL(ctx, redisrepo.ListViewKey(sessionID), string(raw), s.sessionTTL); err != nil {
		logger.Error("[ListView] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func allowedImageType(contentType string) bool {
	for _, t := range constant.AllowedImageTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
