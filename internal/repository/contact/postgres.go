package contact

import (
	"context"
	"io"
	"log"

	"github.com/SahakyanGor98/iqos/internal/domain"
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

func (r *postgresRepo) Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	const q = `
INSERT INTO contact_messages (name, email, phone, message, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at
`
	res := m
	err := r.pool.QueryRow(ctx, q, m.Name, m.Email, m.Phone, m.Message, m.Status).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("contact repo: insert error=%v", err)
		return nil, err
	}
	return &res, nil
}
