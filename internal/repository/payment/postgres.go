package payment

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, pm domain.PaymentMethod) (*domain.PaymentMethod, error) {
	const q = `
INSERT INTO payment_methods (user_id, name, card_num, cvv, exp_date, balance)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, name, card_num, cvv, exp_date, balance, created_at
`
	var out domain.PaymentMethod
	err := r.pool.QueryRow(ctx, q, pm.UserID, pm.Name, pm.CardNum, pm.CVV, pm.ExpDate, pm.Balance).Scan(
		&out.ID, &out.UserID, &out.Name, &out.CardNum, &out.CVV, &out.ExpDate, &out.Balance, &out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("payment repo: create user_id=%d error=%v", pm.UserID, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	const q = `
SELECT id, user_id, name, card_num, cvv, exp_date, balance, created_at
FROM payment_methods
WHERE user_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("payment repo: list user_id=%d error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.PaymentMethod
	for rows.Next() {
		var pm domain.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.UserID, &pm.Name, &pm.CardNum, &pm.CVV, &pm.ExpDate, &pm.Balance, &pm.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, pm)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("payment repo: list rows user_id=%d error=%v", userID, err)
		return nil, err
	}
	return result, nil
}
