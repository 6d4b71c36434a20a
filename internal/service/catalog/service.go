package catalog

import (
	"context"
	"io"
	"log"
	"sort"

	"github.com/SahakyanGor98/iqos/internal/domain"
	productrepo "github.com/SahakyanGor98/iqos/internal/repository/product"
)

type Service struct {
	repo   productrepo.Repository
	logger *log.Logger
}

func New(repo productrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// ListParams is a raw listing request as it arrives from the routing layer.
// Filters carries the remaining query parameters; only keys known for the
// category survive normalization.
type ListParams struct {
	Category domain.Category
	Page     int
	Limit    int
	Sort     string
	MinPrice *int64
	MaxPrice *int64
	Filters  map[string][]string
}

type ListResult struct {
	Data  []domain.Product
	Count int64
}

type filterKind int

const (
	kindString filterKind = iota
	kindArray
	kindBool
)

// Per-category attribute schemas. Unknown keys and empty values are ignored,
// never errors.
var filterSchemas = map[domain.Category]map[string]filterKind{
	domain.CategoryGadget: {
		"color": kindString,
		"line":  kindString,
	},
	domain.CategorySticks: {
		"flavors":    kindArray,
		"strength":   kindString,
		"hasCapsule": kindBool,
		"origin":     kindString,
	},
}

// List resolves a listing page. Backing-store failures are logged and
// reported as an empty result so listing pages degrade instead of erroring.
func (s *Service) List(ctx context.Context, p ListParams) ListResult {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 12
	}

	data, count, err := s.repo.List(ctx, productrepo.ListQuery{
		Category: p.Category,
		Page:     page,
		Limit:    limit,
		Sort:     productrepo.Sort(p.Sort),
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
		Filters:  normalizeFilters(p.Category, p.Filters),
	})
	if err != nil {
		s.logger.Printf("catalog: list category=%s error=%v", p.Category, err)
		return ListResult{Data: []domain.Product{}, Count: 0}
	}
	if data == nil {
		data = []domain.Product{}
	}
	return ListResult{Data: data, Count: count}
}

func normalizeFilters(category domain.Category, raw map[string][]string) []productrepo.Filter {
	schema := filterSchemas[category]
	if len(schema) == 0 || len(raw) == 0 {
		return nil
	}

	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var filters []productrepo.Filter
	for _, key := range keys {
		kind := schema[key]
		values := nonEmpty(raw[key])
		if len(values) == 0 {
			continue
		}
		f := productrepo.Filter{Key: key, Values: values}
		switch kind {
		case kindArray:
			f.Kind = productrepo.FilterContains
		case kindBool:
			f.Kind = productrepo.FilterBool
			f.Values = values[:1]
		default:
			f.Kind = productrepo.FilterEquals
		}
		filters = append(filters, f)
	}
	return filters
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetBySlug returns the product addressed by slug or domain.ErrNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// GetByIDs resolves products by internal id, for cart and checkout use.
func (s *Service) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

// Slugs enumerates every slug in a category for page pre-generation. Failures
// degrade to an empty list.
func (s *Service) Slugs(ctx context.Context, category domain.Category) []string {
	slugs, err := s.repo.Slugs(ctx, category)
	if err != nil {
		s.logger.Printf("catalog: slugs category=%s error=%v", category, err)
		return []string{}
	}
	if slugs == nil {
		return []string{}
	}
	return slugs
}
