package rule

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	rulerepo "github.com/muhammadheryan/promo-admin/repository/rule"
	txrepo "github.com/muhammadheryan/promo-admin/repository/tx"
	"github.com/muhammadheryan/promo-admin/thirdparty/rabbitmq"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"go.uber.org/zap"
)

type RuleApp interface {
	CreateRule(ctx context.Context, req *model.CreateRuleRequest) (*model.RuleResponse, error)
	ListRules(ctx context.Context, productID int64) ([]model.RuleResponse, error)
	ExpireRule(ctx context.Context, ruleID uint64) error
}

// FeedReader exposes the loaded product feed.
type FeedReader interface {
	Snapshot() model.FeedSnapshot
}

type ruleAppImpl struct {
	txRepo    txrepo.TxRepository
	ruleRepo  rulerepo.RuleRepository
	feed      FeedReader
	publisher rabbitmq.ExpirationPublisher
}

func NewRuleApp(txRepo txrepo.TxRepository, ruleRepo rulerepo.RuleRepository, feed FeedReader, publisher rabbitmq.ExpirationPublisher) RuleApp {
	return &ruleAppImpl{txRepo: txRepo, ruleRepo: ruleRepo, feed: feed, publisher: publisher}
}

func (s *ruleAppImpl) CreateRule(ctx context.Context, req *model.CreateRuleRequest) (*model.RuleResponse, error) {
	startDate, err := time.Parse(constant.RuleDateLayout, req.StartDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	endDate, err := time.Parse(constant.RuleDateLayout, req.EndDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if endDate.Before(startDate) {
		return nil, errors.SetCustomError(constant.ErrInvalidDateRange)
	}
	if len(req.Tiers) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tiers := make([]model.RuleTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		if t.BuyFrom <= 0 || t.BuyTo <= t.BuyFrom || t.Discount <= 0 || t.Discount > 100 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		tiers = append(tiers, model.RuleTier{
			BuyFrom:  t.BuyFrom,
			BuyTo:    t.BuyTo,
			Discount: model.DiscountFraction(t.Discount),
		})
	}

	if !s.productKnown(req.ProductID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateRule] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := &model.RuleEntity{
		ProductID: req.ProductID,
		Title:     req.Title,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    constant.RuleStatusActive,
	}
	ruleID, err := s.ruleRepo.InsertRuleTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[CreateRule] insert rule", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.ruleRepo.InsertTiersTx(ctx, tx, ruleID, tiers); err != nil {
		logger.Error("[CreateRule] insert tiers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateRule] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	entity.ID = ruleID
	entity.Tiers = tiers

	// rule stays valid through the whole end date
	msg := rabbitmq.RuleExpirationMessage{
		RuleID:    ruleID,
		ProductID: req.ProductID,
		ExpiresAt: endDate.Add(24 * time.Hour),
	}
	if err := s.publisher.PublishRuleExpiration(msg); err != nil {
		logger.Error("[CreateRule] publish rule expiration", zap.Uint64("rule_id", ruleID), zap.String("error", err.Error()))
	}

	res := toResponse(*entity)
	return &res, nil
}

func (s *ruleAppImpl) ListRules(ctx context.Context, productID int64) ([]model.RuleResponse, error) {
	rules, err := s.ruleRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Error("[ListRules] err ruleRepo.ListByProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	out := make([]model.RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, toResponse(r))
	}
	return out, nil
}

func (s *ruleAppImpl) ExpireRule(ctx context.Context, ruleID uint64) error {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		logger.Error("[ExpireRule] err ruleRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rule == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if rule.Status != constant.RuleStatusActive {
		return errors.SetCustomError(constant.ErrRuleNotActive)
	}

	if err := s.ruleRepo.UpdateStatus(ctx, ruleID, constant.RuleStatusExpired); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ExpireRule] err ruleRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[ExpireRule] rule expired", zap.Uint64("rule_id", ruleID), zap.Int64("product_id", rule.ProductID))
	return nil
}

// productKnown checks the id against a loaded feed. While the feed is not
// loaded every id is accepted.
func (s *ruleAppImpl) productKnown(productID int64) bool {
	snapshot := s.feed.Snapshot()
	if snapshot.Status != constant.FeedStatusOK {
		return true
	}
	for _, p := range snapshot.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func toResponse(r model.RuleEntity) model.RuleResponse {
	tiers := make([]model.RuleTierResponse, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, model.RuleTierResponse{
			BuyFrom:         t.BuyFrom,
			BuyTo:           t.BuyTo,
			Discount:        t.Discount,
			DiscountPercent: t.DiscountPercent(),
		})
	}
	return model.RuleResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Title:     r.Title,
		StartDate: r.StartDate.Format(constant.RuleDateLayout),
		EndDate:   r.EndDate.Format(constant.RuleDateLayout),
		Active:    r.Status == constant.RuleStatusActive,
		Tiers:     tiers,
	}
}
