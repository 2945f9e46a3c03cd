package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velespak/storefront/internal/store"
)

const (
	upsertProductSQL = `INSERT INTO products
		(uuid, name, sku, description, slug, image, category_uuid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (uuid) DO UPDATE SET
			name = EXCLUDED.name, sku = EXCLUDED.sku,
			description = EXCLUDED.description, slug = EXCLUDED.slug,
			image = EXCLUDED.image, category_uuid = EXCLUDED.category_uuid`

	deleteProductOffersSQL = `DELETE FROM product_offers WHERE product_uuid = $1`

	insertProductOfferSQL = `INSERT INTO product_offers
		(uuid, product_uuid, unit_name, unit_abbr, price, currency, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	countProductsSQL = `SELECT count(*) FROM products`
)

// ProductRepository persists canonical product snapshots imported from
// catalog dumps.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Upsert writes a batch of products and their offers in one transaction.
// Existing products are updated in place; their offers are replaced.
func (r *ProductRepository) Upsert(ctx context.Context, products []store.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("upserting products: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range products {
		if err := upsertProduct(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("upserting products: %w", err)
	}
	return nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, countProductsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

func upsertProduct(ctx context.Context, tx pgx.Tx, p store.Product) error {
	_, err := tx.Exec(ctx, upsertProductSQL,
		p.UUID, p.Name, p.SKU, p.Description, p.Slug, p.Image, p.CategoryUUID,
	)
	if err != nil {
		return fmt.Errorf("upserting product %q: %w", p.UUID, err)
	}

	if _, err := tx.Exec(ctx, deleteProductOffersSQL, p.UUID); err != nil {
		return fmt.Errorf("replacing offers for %q: %w", p.UUID, err)
	}

	for _, o := range p.Offers {
		_, err := tx.Exec(ctx, insertProductOfferSQL,
			o.UUID, p.UUID, o.UnitName, o.UnitAbbr, o.Price, o.Currency, o.Quantity,
		)
		if err != nil {
			return fmt.Errorf("inserting offer %q: %w", o.UUID, err)
		}
	}
	return nil
}
