package order

import (
	"context"
	"io"
	"log"

	"github.com/SahakyanGor98/iqos/internal/domain"
	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const headerQ = `
INSERT INTO orders (user_name, user_email, user_phone, user_message, total_amount, status)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
RETURNING id, created_at
`
	res := o
	err = tx.QueryRow(ctx, headerQ,
		o.UserName, o.UserEmail, o.UserPhone, o.UserMessage, o.TotalAmount, o.Status,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert header error=%v", err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, quantity, price_at_time)
VALUES ($1, $2, $3, $4)
`
	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQ, res.ID, item.ProductID, item.Quantity, item.PriceAtTime); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d product_id=%d error=%v", res.ID, item.ProductID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("order repo: commit order_id=%d error=%v", res.ID, err)
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%d items=%d total=%d", res.ID, len(items), res.TotalAmount)
	return &res, nil
}
