package schema

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Statements creates the tables used by the rule and product repositories.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS product (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	price DECIMAL(15,2) NOT NULL,
	description TEXT NOT NULL,
	image_name VARCHAR(255) NOT NULL,
	image_type VARCHAR(32) NOT NULL,
	created_at DATETIME NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS promo_rule (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	product_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	status TINYINT NOT NULL,
	INDEX idx_promo_rule_product_status (product_id, status)
)`,
	`CREATE TABLE IF NOT EXISTS promo_rule_tier (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	rule_id BIGINT UNSIGNED NOT NULL,
	buy_from INT NOT NULL,
	buy_to INT NOT NULL,
	discount DECIMAL(5,4) NOT NULL,
	INDEX idx_promo_rule_tier_rule (rule_id)
)`,
}

// Migrate runs Statements in order.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range Statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
