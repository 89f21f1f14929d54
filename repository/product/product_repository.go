package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/promo-admin/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ProductRepository stores products created from the admin form. Feed
// products are never written here.
type ProductRepository interface {
	Create(ctx context.Context, draft *model.ProductDraft) (*model.ProductDraft, error)
	List(ctx context.Context, page, perPage int) ([]model.ProductDraft, int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO product (title, price, description, image_name, image_type, created_at) VALUES (?, ?, ?, ?, ?, NOW())`

	listProductsQuery = `SELECT id, title, price, description, image_name, image_type, DATE_FORMAT(created_at, '%d-%m-%Y %H:%i:%s') AS created_at
FROM product
ORDER BY id DESC LIMIT ? OFFSET ?`

	countProductsQuery = `SELECT COUNT(*) FROM product`
)

func (s *SQL) Create(ctx context.Context, draft *model.ProductDraft) (*model.ProductDraft, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery, draft.Title, draft.Price, draft.Description, draft.ImageName, draft.ImageType)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	draft.ID = uint64(lastID)
	return draft, nil
}

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductDraft, int64, error) {
	offset := (page - 1) * perPage

	items := make([]model.ProductDraft, 0)
	if err := s.conn.SelectContext(ctx, &items, listProductsQuery, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
