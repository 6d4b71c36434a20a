package product

import (
	"context"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

// Sort is the closed set of listing orders. Anything else falls back to a
// deterministic ascending-by-id order.
type Sort string

const (
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortNewest    Sort = "newest"
	SortTitleAsc  Sort = "title_asc"
	SortTitleDesc Sort = "title_desc"
)

// FilterKind selects how a filter matches against the attributes bag.
type FilterKind int

const (
	// FilterEquals matches a string attribute against any of the values.
	FilterEquals FilterKind = iota
	// FilterContains matches a list attribute containing any of the values.
	FilterContains
	// FilterBool matches a boolean attribute; the single value is compared
	// against the literal string "true".
	FilterBool
)

// Filter is one attribute predicate. Values are OR-combined.
type Filter struct {
	Key    string
	Kind   FilterKind
	Values []string
}

// ListQuery describes one listing-page request.
type ListQuery struct {
	Category domain.Category
	Page     int
	Limit    int
	Sort     Sort
	MinPrice *int64
	MaxPrice *int64
	Filters  []Filter
}

type Repository interface {
	List(ctx context.Context, q ListQuery) ([]domain.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	Slugs(ctx context.Context, category domain.Category) ([]string, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
