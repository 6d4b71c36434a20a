package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/SahakyanGor98/iqos/internal/domain"
	productrepo "github.com/SahakyanGor98/iqos/internal/repository/product"
)

type stubRepo struct {
	lastQuery productrepo.ListQuery
	products  []domain.Product
	count     int64
	err       error
}

func (s *stubRepo) List(_ context.Context, q productrepo.ListQuery) ([]domain.Product, int64, error) {
	s.lastQuery = q
	return s.products, s.count, s.err
}

func (s *stubRepo) GetBySlug(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) GetByIDs(context.Context, []int64) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubRepo) Slugs(context.Context, domain.Category) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"a", "b"}, nil
}

func (s *stubRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func TestList_FailSoftOnRepoError(t *testing.T) {
	repo := &stubRepo{err: errors.New("boom")}
	svc := New(repo, nil)

	res := svc.List(context.Background(), ListParams{Category: domain.CategorySticks})

	if res.Count != 0 || len(res.Data) != 0 || res.Data == nil {
		t.Fatalf("expected empty result on failure, got %+v", res)
	}
}

func TestList_NormalizesPageAndLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	svc.List(context.Background(), ListParams{Category: domain.CategoryGadget, Page: 0, Limit: 0})

	if repo.lastQuery.Page != 1 || repo.lastQuery.Limit != 12 {
		t.Fatalf("expected page=1 limit=12 defaults, got %+v", repo.lastQuery)
	}
}

func TestList_DropsUnknownAndEmptyFilters(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	svc.List(context.Background(), ListParams{
		Category: domain.CategorySticks,
		Filters: map[string][]string{
			"flavors":  {"Ментол", ""},
			"color":    {"Зеленый"}, // gadget-only key, unknown for sticks
			"season":   {"winter"},  // unknown everywhere
			"strength": {""},
		},
	})

	filters := repo.lastQuery.Filters
	if len(filters) != 1 {
		t.Fatalf("expected a single surviving filter, got %+v", filters)
	}
	if filters[0].Key != "flavors" || filters[0].Kind != productrepo.FilterContains {
		t.Fatalf("unexpected filter %+v", filters[0])
	}
	if len(filters[0].Values) != 1 || filters[0].Values[0] != "Ментол" {
		t.Fatalf("empty values must be dropped, got %+v", filters[0].Values)
	}
}

func TestList_MapsFilterKindsPerSchema(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, nil)

	svc.List(context.Background(), ListParams{
		Category: domain.CategorySticks,
		Filters: map[string][]string{
			"hasCapsule": {"true", "false"},
			"strength":   {"легкий", "средний"},
		},
	})

	byKey := map[string]productrepo.Filter{}
	for _, f := range repo.lastQuery.Filters {
		byKey[f.Key] = f
	}

	if f := byKey["hasCapsule"]; f.Kind != productrepo.FilterBool || len(f.Values) != 1 {
		t.Fatalf("boolean filter must keep a single value, got %+v", f)
	}
	if f := byKey["strength"]; f.Kind != productrepo.FilterEquals || len(f.Values) != 2 {
		t.Fatalf("string filter must OR all values, got %+v", f)
	}
}

func TestSlugs_FailSoft(t *testing.T) {
	svc := New(&stubRepo{err: errors.New("boom")}, nil)
	if slugs := svc.Slugs(context.Background(), domain.CategorySticks); len(slugs) != 0 {
		t.Fatalf("expected empty slugs on failure, got %v", slugs)
	}

	svc = New(&stubRepo{}, nil)
	if slugs := svc.Slugs(context.Background(), domain.CategorySticks); len(slugs) != 2 {
		t.Fatalf("expected 2 slugs, got %v", slugs)
	}
}
