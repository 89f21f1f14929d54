package model

import (
	"math"
	"time"

	"github.com/muhammadheryan/promo-admin/constant"
)

type RuleTierRequest struct {
	BuyFrom  int     `json:"buy_from" validate:"required,gt=0"`
	BuyTo    int     `json:"buy_to" validate:"required,gtfield=BuyFrom"`
	Discount float64 `json:"discount" validate:"required,gt=0,lte=100"`
}

// CreateRuleRequest is the "Add Rule" form. Discount is a percentage.
type CreateRuleRequest struct {
	ProductID int64             `json:"-"`
	Title     string            `json:"title" validate:"required,max=255"`
	StartDate string            `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string            `json:"end_date" validate:"required,datetime=2006-01-02"`
	Tiers     []RuleTierRequest `json:"tiers" validate:"required,min=1,dive"`
}

type RuleEntity struct {
	ID        uint64              `db:"id" json:"id"`
	ProductID int64               `db:"product_id" json:"product_id"`
	Title     string              `db:"title" json:"title"`
	StartDate time.Time           `db:"start_date" json:"start_date"`
	EndDate   time.Time           `db:"end_date" json:"end_date"`
	Status    constant.RuleStatus `db:"status" json:"status"`
	Tiers     []RuleTier          `db:"-" json:"tiers"`
}

// RuleTier stores Discount as a fraction in (0, 1].
type RuleTier struct {
	ID       uint64  `db:"id" json:"-"`
	RuleID   uint64  `db:"rule_id" json:"-"`
	BuyFrom  int     `db:"buy_from" json:"buy_from"`
	BuyTo    int     `db:"buy_to" json:"buy_to"`
	Discount float64 `db:"discount" json:"discount"`
}

// DiscountPercent is the display value of the stored fraction.
func (t RuleTier) DiscountPercent() float64 {
	return math.Round(t.Discount*100*100) / 100
}

// DiscountFraction converts a percentage to the stored fraction, rounded to
// the four decimals the column keeps.
func DiscountFraction(percent float64) float64 {
	return math.Round(percent*100) / 10000
}

type RuleTierResponse struct {
	BuyFrom         int     `json:"buy_from"`
	BuyTo           int     `json:"buy_to"`
	Discount        float64 `json:"discount"`
	DiscountPercent float64 `json:"discount_percent"`
}

type RuleResponse struct {
	ID        uint64             `json:"id"`
	ProductID int64              `json:"product_id"`
	Title     string             `json:"title"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Active    bool               `json:"active"`
	Tiers     []RuleTierResponse `json:"tiers"`
}

type RuleCount struct {
	ProductID int64 `db:"product_id"`
	Total     int   `db:"total"`
}
