package feed

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"time"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	redisrepo "github.com/muhammadheryan/promo-admin/repository/redis"
	feedclient "github.com/muhammadheryan/promo-admin/thirdparty/feed"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"go.uber.org/zap"
)

// FeedApp owns the in-memory product list loaded from the upstream feed.
type FeedApp interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Snapshot() model.FeedSnapshot
}

type feedAppImpl struct {
	client    feedclient.Client
	redisRepo redisrepo.Repository
	cacheTTL  time.Duration
	now       func() time.Time

	snapshot atomic.Pointer[model.FeedSnapshot]
}

func NewFeedApp(client feedclient.Client, redisRepo redisrepo.Repository, cacheTTL time.Duration) FeedApp {
	return newFeedApp(client, redisRepo, cacheTTL, time.Now)
}

func newFeedApp(client feedclient.Client, redisRepo redisrepo.Repository, cacheTTL time.Duration, now func() time.Time) *feedAppImpl {
	s := &feedAppImpl{
		client:    client,
		redisRepo: redisRepo,
		cacheTTL:  cacheTTL,
		now:       now,
	}
	s.snapshot.Store(&model.FeedSnapshot{
		Products: []model.Product{},
		Status:   constant.FeedStatusLoading,
	})
	return s
}

// Snapshot returns the current product list. The slice must not be modified.
func (s *feedAppImpl) Snapshot() model.FeedSnapshot {
	return *s.snapshot.Load()
}

// Load reads the feed from the cache, falling back to the upstream feed, and
// swaps in the mapped product list. On failure a previously loaded list is
// kept; otherwise the snapshot becomes unavailable.
func (s *feedAppImpl) Load(ctx context.Context) error {
	body, err := s.cached(ctx)
	if err != nil {
		body, err = s.client.Fetch(ctx)
		if err != nil {
			logger.Error("[FeedLoad] err client.Fetch", zap.String("error", err.Error()))
			s.markUnavailable()
			return errors.SetCustomError(constant.ErrFeedUnavailable)
		}

		if err := s.redisRepo.SetWithTTL(ctx, redisrepo.FeedCacheKey, string(body), s.cacheTTL); err != nil {
			logger.Warn("[FeedLoad] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	posts, err := feedclient.Decode(body)
	if err != nil {
		logger.Error("[FeedLoad] err Decode", zap.String("error", err.Error()))
		s.markUnavailable()
		return errors.SetCustomError(constant.ErrFeedUnavailable)
	}

	products := s.toProducts(posts)
	s.snapshot.Store(&model.FeedSnapshot{
		Products: products,
		Status:   constant.FeedStatusOK,
	})
	logger.Info("[FeedLoad] feed loaded", zap.Int("products", len(products)))
	return nil
}

// Refresh drops the cached feed and loads it again.
func (s *feedAppImpl) Refresh(ctx context.Context) error {
	if err := s.redisRepo.Delete(ctx, redisrepo.FeedCacheKey); err != nil {
		logger.Warn("[FeedRefresh] err redisRepo.Delete", zap.String("error", err.Error()))
	}
	return s.Load(ctx)
}

func (s *feedAppImpl) cached(ctx context.Context) ([]byte, error) {
	val, err := s.redisRepo.Get(ctx, redisrepo.FeedCacheKey)
	if err != nil {
		if !stderrors.Is(err, redisrepo.ErrNil) {
			logger.Warn("[FeedLoad] err redisRepo.Get", zap.String("error", err.Error()))
		}
		return nil, err
	}

	if _, err := feedclient.Decode([]byte(val)); err != nil {
		logger.Warn("[FeedLoad] dropping malformed cache entry", zap.String("error", err.Error()))
		_ = s.redisRepo.Delete(ctx, redisrepo.FeedCacheKey)
		return nil, err
	}
	return []byte(val), nil
}

func (s *feedAppImpl) markUnavailable() {
	if s.Snapshot().Status == constant.FeedStatusOK {
		return
	}
	s.snapshot.Store(&model.FeedSnapshot{
		Products: []model.Product{},
		Status:   constant.FeedStatusUnavailable,
	})
}

// toProducts maps feed posts to products. Rule counts are merged per request
// from the rule store, so they start at zero here.
func (s *feedAppImpl) toProducts(posts []model.FeedPost) []model.Product {
	loadedAt := s.now().Format(constant.LastUpdateLayout)

	products := make([]model.Product, 0, len(posts))
	for _, p := range posts {
		if p.Title == "" {
			continue
		}
		products = append(products, model.Product{
			ID:         p.ID,
			Title:      p.Title,
			Image:      constant.PlaceholderImage,
			LastUpdate: loadedAt,
		})
	}
	return products
}
