package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const fakeProducts = 10

// Apply inserts demo data for manual testing. Users are idempotent via their
// unique email; fake products are only generated while the catalog is empty.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	userID, err := ensureUser(ctx, pool, "Demo User", "demo@example.com", "Password1")
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	var productCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		if err := insertFakeProducts(ctx, pool); err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
	}

	if err := ensureOrder(ctx, pool, userID); err != nil {
		return fmt.Errorf("ensure order: %w", err)
	}

	// A guest cart keyed by a fresh session id, handy for poking the cart
	// endpoints without logging in.
	sessionID := uuid.NewString()
	if _, err := pool.Exec(ctx, `
INSERT INTO carts (session_id)
VALUES ($1)
ON CONFLICT (session_id) WHERE NOT checked_out DO NOTHING
`, sessionID); err != nil {
		return fmt.Errorf("insert guest cart: %w", err)
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, password string) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	const q = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, name, email, string(hashed)).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func insertFakeProducts(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO products (name, price, stock)
VALUES ($1, $2, $3)
`
	for i := 0; i < fakeProducts; i++ {
		name := gofakeit.ProductName()
		price := decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)
		stock := gofakeit.Number(0, 100)
		if _, err := pool.Exec(ctx, q, name, price, stock); err != nil {
			return err
		}
	}
	return nil
}

func ensureOrder(ctx context.Context, pool *pgxpool.Pool, userID int64) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `
INSERT INTO orders (user_id, total, status)
VALUES ($1, $2, 'pending')
`, userID, decimal.NewFromFloat(gofakeit.Price(10, 200)).Round(2))
	return err
}
