package cart

import (
	"context"
	"errors"

	"ecommerce-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreateByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	// The DO UPDATE is a no-op write so the existing open cart is returned
	// through RETURNING instead of a conflict error.
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) WHERE NOT checked_out
DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id, user_id, session_id, checked_out, created_at
`
	return r.scanCart(r.pool.QueryRow(ctx, q, userID))
}

func (r *postgresRepo) GetOrCreateBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (session_id)
VALUES ($1)
ON CONFLICT (session_id) WHERE NOT checked_out
DO UPDATE SET session_id = EXCLUDED.session_id
RETURNING id, user_id, session_id, checked_out, created_at
`
	return r.scanCart(r.pool.QueryRow(ctx, q, sessionID))
}

func (r *postgresRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItemDetail, error) {
	const q = `
SELECT ci.id, ci.product_id, p.name, p.price, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.id
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItemDetail, 0)
	for rows.Next() {
		var it domain.CartItemDetail
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) UpsertItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error) {
	// Replace semantics: a second add for the same product overwrites the
	// quantity, it does not accumulate.
	const q = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = EXCLUDED.quantity
RETURNING id, cart_id, product_id, quantity, created_at
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, cartID, productID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // unknown product
				return nil, domain.ErrNotFound
			case "23514": // quantity check
				return nil, domain.ErrInvalidQuantity
			}
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) DeleteItem(ctx context.Context, cartID, itemID int64) (*domain.CartItem, error) {
	// Constraining on cart_id keeps one cart from deleting another cart's
	// item by guessing an id.
	const q = `
DELETE FROM cart_items
WHERE id = $1 AND cart_id = $2
RETURNING id, cart_id, product_id, quantity, created_at
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, itemID, cartID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) ClearItems(ctx context.Context, cartID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

func (r *postgresRepo) scanCart(row pgx.Row) (*domain.Cart, error) {
	var cart domain.Cart
	if err := row.Scan(&cart.ID, &cart.UserID, &cart.SessionID, &cart.CheckedOut, &cart.CreatedAt); err != nil {
		return nil, err
	}
	return &cart, nil
}
