package model

import (
	"encoding/json"

	"github.com/muhammadheryan/promo-admin/constant"
)

// Product is a catalogue entry as shown in the admin product table.
type Product struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	RuleCount  int    `json:"rule_count"`
	LastUpdate string `json:"last_update"`
}

// Status derives the display status from RuleCount.
func (p Product) Status() constant.ProductStatus {
	if p.RuleCount > 0 {
		return constant.ProductStatusActive
	}
	return constant.ProductStatusNoRule
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Status constant.ProductStatus `json:"status"`
	}{
		plain:  plain(p),
		Status: p.Status(),
	})
}

type FilterState struct {
	SearchQuery  string                 `json:"search_query"`
	StatusFilter constant.ProductStatus `json:"status_filter"`
}

type PageState struct {
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
}

// ListView is the page slice handed to the presentation layer.
type ListView struct {
	Items        []Product           `json:"items"`
	TotalCount   int                 `json:"total_count"`
	CurrentPage  int                 `json:"current_page"`
	ItemsPerPage int                 `json:"items_per_page"`
	HasNext      bool                `json:"has_next"`
	HasPrevious  bool                `json:"has_previous"`
	RangeStart   int                 `json:"range_start"`
	RangeEnd     int                 `json:"range_end"`
	Filter       FilterState         `json:"filter"`
	FeedStatus   constant.FeedStatus `json:"feed_status"`
}

type ListProductsRequest struct {
	Search  string `validate:"max=255"`
	Status  constant.ProductStatus
	Page    int `validate:"gte=1"`
	PerPage int
}

// ListAction is one user interaction with a session list view.
type ListAction struct {
	Action string `json:"action" validate:"required,oneof=search status next previous page page_size reset"`
	Value  string `json:"value"`
}

type ListViewResponse struct {
	SessionID string    `json:"session_id"`
	View      *ListView `json:"view"`
}

// CreateProductRequest is the "Add New Product" form.
type CreateProductRequest struct {
	Title       string  `validate:"required,max=255"`
	Price       float64 `validate:"gt=0"`
	Description string  `validate:"required"`
	ImageName   string  `validate:"required"`
	ImageType   string
	ImageSize   int64   `validate:"gt=0,lte=5242880"`
}

type ProductDraft struct {
	ID          uint64  `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Price       float64 `db:"price" json:"price"`
	Description string  `db:"description" json:"description"`
	ImageName   string  `db:"image_name" json:"image_name"`
	ImageType   string  `db:"image_type" json:"image_type"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

// FeedPost is one record of the upstream placeholder feed.
type FeedPost struct {
	UserID int64  `json:"userId"`
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type FeedSnapshot struct {
	Products []Product
	Status   constant.FeedStatus
}

type DraftListResponse struct {
	Items      []ProductDraft `json:"items"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}
