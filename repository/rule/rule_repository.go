package rule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
)

type RuleRepository interface {
	InsertRuleTx(ctx context.Context, tx *sqlx.Tx, rule *model.RuleEntity) (uint64, error)
	InsertTiersTx(ctx context.Context, tx *sqlx.Tx, ruleID uint64, tiers []model.RuleTier) error
	ListByProduct(ctx context.Context, productID int64) ([]model.RuleEntity, error)
	GetByID(ctx context.Context, ruleID uint64) (*model.RuleEntity, error)
	UpdateStatus(ctx context.Context, ruleID uint64, status constant.RuleStatus) error
	CountActiveByProduct(ctx context.Context, day time.Time) (map[int64]int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRuleRepository(conn *sqlx.DB) RuleRepository {
	return &SQL{conn: conn}
}

const (
	insertRuleQuery = "INSERT INTO promo_rule (product_id, title, start_date, end_date, status) VALUES (?, ?, ?, ?, ?)"
	insertTierQuery = "INSERT INTO promo_rule_tier (rule_id, buy_from, buy_to, discount) VALUES (?, ?, ?, ?)"

	selectRuleBase = "SELECT id, product_id, title, start_date, end_date, status FROM promo_rule"

	selectTiersByRules = "SELECT id, rule_id, buy_from, buy_to, discount FROM promo_rule_tier WHERE rule_id IN (?) ORDER BY rule_id, buy_from"

	countActiveQuery = "SELECT product_id, COUNT(*) AS total FROM promo_rule WHERE status = ? AND start_date <= ? AND end_date >= ? GROUP BY product_id"

	updateStatusQuery = "UPDATE promo_rule SET status = ? WHERE id = ?"
)

func (r *SQL) InsertRuleTx(ctx context.Context, tx *sqlx.Tx, rule *model.RuleEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertRuleQuery, rule.ProductID, rule.Title, rule.StartDate, rule.EndDate, rule.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertTiersTx(ctx context.Context, tx *sqlx.Tx, ruleID uint64, tiers []model.RuleTier) error {
	for _, t := range tiers {
		if _, err := tx.ExecContext(ctx, insertTierQuery, ruleID, t.BuyFrom, t.BuyTo, t.Discount); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ListByProduct(ctx context.Context, productID int64) ([]model.RuleEntity, error) {
	rules := make([]model.RuleEntity, 0)
	if err := r.conn.SelectContext(ctx, &rules, selectRuleBase+" WHERE product_id = ? ORDER BY id", productID); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return rules, nil
	}

	if err := r.attachTiers(ctx, rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *SQL) GetByID(ctx context.Context, ruleID uint64) (*model.RuleEntity, error) {
	var rule model.RuleEntity
	if err := r.conn.GetContext(ctx, &rule, selectRuleBase+" WHERE id = ?", ruleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rules := []model.RuleEntity{rule}
	if err := r.attachTiers(ctx, rules); err != nil {
		return nil, err
	}
	return &rules[0], nil
}

func (r *SQL) UpdateStatus(ctx context.Context, ruleID uint64, status constant.RuleStatus) error {
	res, err := r.conn.ExecContext(ctx, updateStatusQuery, status, ruleID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountActiveByProduct counts the active rules whose date range covers day.
// A rule past its end date stops counting even before its status is flipped.
func (r *SQL) CountActiveByProduct(ctx context.Context, day time.Time) (map[int64]int, error) {
	date := day.Format(constant.RuleDateLayout)

	var rows []model.RuleCount
	if err := r.conn.SelectContext(ctx, &rows, countActiveQuery, constant.RuleStatusActive, date, date); err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.ProductID] = row.Total
	}
	return counts, nil
}

func (r *SQL) attachTiers(ctx context.Context, rules []model.RuleEntity) error {
	ids := make([]uint64, 0, len(rules))
	index := make(map[uint64]int, len(rules))
	for i, rule := range rules {
		ids = append(ids, rule.ID)
		index[rule.ID] = i
		rules[i].Tiers = make([]model.RuleTier, 0)
	}

	query, args, err := sqlx.In(selectTiersByRules, ids)
	if err != nil {
		return err
	}

	var tiers []model.RuleTier
	if err := r.conn.SelectContext(ctx, &tiers, r.conn.Rebind(query), args...); err != nil {
		return err
	}
	for _, t := range tiers {
		if i, ok := index[t.RuleID]; ok {
			rules[i].Tiers = append(rules[i].Tiers, t)
		}
	}
	return nil
}
