package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

func (r *postgresRepo) List(ctx context.Context, q ListQuery) ([]domain.Product, int64, error) {
	dataSQL, countSQL, dataArgs, countArgs := buildListSQL(q)

	var count int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		r.logger.Printf("product repo: count category=%s error=%v", q.Category, err)
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		r.logger.Printf("product repo: list category=%s error=%v", q.Category, err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows category=%s error=%v", q.Category, err)
		return nil, 0, err
	}
	return result, count, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	q := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := fmt.Sprintf(`SELECT %s FROM products WHERE id = ANY($1)`, productColumns)

	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: get ids error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Slugs(ctx context.Context, category domain.Category) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM products WHERE category = $1 ORDER BY id`, string(category))
	if err != nil {
		r.logger.Printf("product repo: slugs category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	badges, err := json.Marshal(p.Badges)
	if err != nil {
		return nil, fmt.Errorf("marshal badges for slug %q: %w", p.Slug, err)
	}
	attrs, err := marshalAttributes(p)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO products (slug, title, description, image, price, category, in_stock, badges, attributes, brand)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8::jsonb, $9::jsonb, NULLIF($10, ''))
ON CONFLICT (slug) DO UPDATE SET
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    in_stock = EXCLUDED.in_stock,
    badges = EXCLUDED.badges,
    attributes = EXCLUDED.attributes,
    brand = EXCLUDED.brand
RETURNING id, created_at
`
	res := p
	err = r.pool.QueryRow(ctx, q,
		p.Slug, p.Title, p.Description, p.Image, p.Price, string(p.Category),
		p.InStock, string(badges), string(attrs), p.Brand,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%s error=%v", p.Slug, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted slug=%s id=%d", res.Slug, res.ID)
	return &res, nil
}

func marshalAttributes(p domain.Product) ([]byte, error) {
	attrs := p.Attributes()
	if attrs == nil {
		return []byte("{}"), nil
	}
	doc, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes for slug %q: %w", p.Slug, err)
	}
	return doc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p          domain.Product
		badges     []byte
		attributes []byte
	)
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.Image, &p.Price,
		&p.Category, &p.InStock, &badges, &attributes, &p.Brand, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &p.Badges); err != nil {
			return nil, fmt.Errorf("unmarshal badges for slug %q: %w", p.Slug, err)
		}
	}
	if len(attributes) > 0 {
		if err := unmarshalAttributes(&p, attributes); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func unmarshalAttributes(p *domain.Product, raw []byte) error {
	var err error
	switch p.Category {
	case domain.CategoryGadget:
		var attrs domain.DeviceAttributes
		if err = json.Unmarshal(raw, &attrs); err == nil {
			p.Device = &attrs
		}
	case domain.CategorySticks:
		var attrs domain.StickAttributes
		if err = json.Unmarshal(raw, &attrs); err == nil {
			p.Sticks = &attrs
		}
	}
	if err != nil {
		return fmt.Errorf("unmarshal attributes for slug %q: %w", p.Slug, err)
	}
	return nil
}
