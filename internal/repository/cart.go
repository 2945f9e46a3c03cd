package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velespak/storefront/internal/cart"
)

const (
	loadCartItemsSQL = `SELECT id, product_uuid, offer_uuid, product_name, product_image,
		offer_name, price, currency, unit, quantity, article
		FROM cart_items WHERE cart_id = $1 ORDER BY position`

	deleteCartItemsSQL = `DELETE FROM cart_items WHERE cart_id = $1`

	insertCartItemSQL = `INSERT INTO cart_items
		(cart_id, id, product_uuid, offer_uuid, product_name, product_image,
		 offer_name, price, currency, unit, quantity, article, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
)

var _ cart.Repository = (*CartRepository)(nil)

// CartRepository implements cart.Repository backed by PostgreSQL. Only the
// lines are persisted; the panel flag is per-session UI state and always
// loads as closed.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a CartRepository that uses the given pool.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// Load returns the persisted state for a cart, in stored display order.
// It returns cart.ErrNotFound when the cart has no rows.
func (r *CartRepository) Load(ctx context.Context, cartID string) (cart.State, error) {
	rows, err := r.pool.Query(ctx, loadCartItemsSQL, cartID)
	if err != nil {
		return cart.State{}, fmt.Errorf("loading cart %q: %w", cartID, err)
	}

	items, err := pgx.CollectRows(rows, scanCartItem)
	if err != nil {
		return cart.State{}, fmt.Errorf("loading cart %q: %w", cartID, err)
	}
	if len(items) == 0 {
		return cart.State{}, cart.ErrNotFound
	}

	return cart.State{Items: items}, nil
}

// Save replaces the persisted lines for a cart with the given state,
// atomically. Positions record display order.
func (r *CartRepository) Save(ctx context.Context, cartID string, s cart.State) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("saving cart %q: %w", cartID, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteCartItemsSQL, cartID); err != nil {
		return fmt.Errorf("clearing cart %q: %w", cartID, err)
	}

	for pos, item := range s.Items {
		_, err := tx.Exec(ctx, insertCartItemSQL,
			cartID, item.ID, item.ProductUUID, item.OfferUUID,
			item.ProductName, item.ProductImage, item.OfferName,
			item.Price, item.Currency, item.Unit, item.Quantity,
			item.Article, pos,
		)
		if err != nil {
			return fmt.Errorf("inserting cart line %q: %w", item.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("saving cart %q: %w", cartID, err)
	}
	return nil
}

func scanCartItem(row pgx.CollectableRow) (cart.Item, error) {
	var item cart.Item
	err := row.Scan(
		&item.ID, &item.ProductUUID, &item.OfferUUID,
		&item.ProductName, &item.ProductImage, &item.OfferName,
		&item.Price, &item.Currency, &item.Unit, &item.Quantity,
		&item.Article,
	)
	return item, err
}
