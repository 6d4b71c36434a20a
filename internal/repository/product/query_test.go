package product

import (
	"strings"
	"testing"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBuildListSQL_PriceRange(t *testing.T) {
	dataSQL, countSQL, dataArgs, countArgs := buildListSQL(ListQuery{
		Category: domain.CategorySticks,
		MinPrice: int64Ptr(1000),
		MaxPrice: int64Ptr(2000),
	})

	if !strings.Contains(dataSQL, "price >= $2") || !strings.Contains(dataSQL, "price <= $3") {
		t.Fatalf("expected inclusive price bounds, got %q", dataSQL)
	}
	if !strings.Contains(countSQL, "price >= $2") || !strings.Contains(countSQL, "price <= $3") {
		t.Fatalf("count predicate differs from data predicate: %q", countSQL)
	}
	if len(countArgs) != 3 {
		t.Fatalf("expected 3 count args, got %v", countArgs)
	}
	if countArgs[1] != int64(1000) || countArgs[2] != int64(2000) {
		t.Fatalf("unexpected bound args %v", countArgs)
	}
	// Window bounds follow the predicate args.
	if len(dataArgs) != 5 || dataArgs[3] != 12 || dataArgs[4] != 0 {
		t.Fatalf("unexpected data args %v", dataArgs)
	}
}

func TestBuildListSQL_OpenEndedPriceBound(t *testing.T) {
	dataSQL, _, _, countArgs := buildListSQL(ListQuery{
		Category: domain.CategoryGadget,
		MinPrice: int64Ptr(500),
	})
	if strings.Contains(dataSQL, "price <=") {
		t.Fatalf("absent max bound must be open: %q", dataSQL)
	}
	if len(countArgs) != 2 {
		t.Fatalf("expected category + min price args, got %v", countArgs)
	}
}

func TestBuildListSQL_UnknownSortFallsBackToID(t *testing.T) {
	dataSQL, _, _, _ := buildListSQL(ListQuery{Category: domain.CategoryGadget, Sort: Sort("cheapest")})
	if !strings.Contains(dataSQL, "ORDER BY id ASC") {
		t.Fatalf("expected id ASC fallback, got %q", dataSQL)
	}

	dataSQL, _, _, _ = buildListSQL(ListQuery{Category: domain.CategoryGadget})
	if !strings.Contains(dataSQL, "ORDER BY id ASC") {
		t.Fatalf("expected id ASC default, got %q", dataSQL)
	}
}

func TestBuildListSQL_SortVariants(t *testing.T) {
	cases := map[Sort]string{
		SortPriceAsc:  "ORDER BY price ASC",
		SortPriceDesc: "ORDER BY price DESC",
		SortNewest:    "ORDER BY created_at DESC",
		SortTitleAsc:  "ORDER BY title ASC",
		SortTitleDesc: "ORDER BY title DESC",
	}
	for sort, want := range cases {
		dataSQL, _, _, _ := buildListSQL(ListQuery{Category: domain.CategorySticks, Sort: sort})
		if !strings.Contains(dataSQL, want) {
			t.Fatalf("sort %q: expected %q in %q", sort, want, dataSQL)
		}
	}
}

func TestBuildListSQL_Pagination(t *testing.T) {
	_, _, dataArgs, _ := buildListSQL(ListQuery{Category: domain.CategorySticks, Page: 3, Limit: 12})
	if dataArgs[len(dataArgs)-2] != 12 || dataArgs[len(dataArgs)-1] != 24 {
		t.Fatalf("expected limit 12 offset 24, got %v", dataArgs)
	}

	// Page below 1 is treated as the first page.
	_, _, dataArgs, _ = buildListSQL(ListQuery{Category: domain.CategorySticks, Page: 0, Limit: 5})
	if dataArgs[len(dataArgs)-1] != 0 {
		t.Fatalf("expected offset 0 for page 0, got %v", dataArgs)
	}
}

func TestBuildListSQL_ContainsFilterIsDisjunctive(t *testing.T) {
	dataSQL, _, dataArgs, _ := buildListSQL(ListQuery{
		Category: domain.CategorySticks,
		Filters: []Filter{
			{Key: "flavors", Kind: FilterContains, Values: []string{"Ментол", "Экзотические"}},
		},
	})

	if !strings.Contains(dataSQL, `(attributes->'flavors' @> $2::jsonb OR attributes->'flavors' @> $3::jsonb)`) {
		t.Fatalf("expected OR-combined containment, got %q", dataSQL)
	}
	if dataArgs[1] != `["Ментол"]` || dataArgs[2] != `["Экзотические"]` {
		t.Fatalf("unexpected containment args %v", dataArgs)
	}
}

func TestBuildListSQL_BoolFilter(t *testing.T) {
	dataSQL, _, dataArgs, _ := buildListSQL(ListQuery{
		Category: domain.CategorySticks,
		Filters:  []Filter{{Key: "hasCapsule", Kind: FilterBool, Values: []string{"true"}}},
	})
	if !strings.Contains(dataSQL, "attributes @> $2::jsonb") {
		t.Fatalf("expected jsonb containment, got %q", dataSQL)
	}
	if dataArgs[1] != `{"hasCapsule":true}` {
		t.Fatalf("unexpected bool filter arg %v", dataArgs[1])
	}

	// Anything except the literal "true" selects false.
	_, _, dataArgs, _ = buildListSQL(ListQuery{
		Category: domain.CategorySticks,
		Filters:  []Filter{{Key: "hasCapsule", Kind: FilterBool, Values: []string{"1"}}},
	})
	if dataArgs[1] != `{"hasCapsule":false}` {
		t.Fatalf("unexpected bool filter arg %v", dataArgs[1])
	}
}

func TestBuildListSQL_EqualsFilter(t *testing.T) {
	dataSQL, _, dataArgs, _ := buildListSQL(ListQuery{
		Category: domain.CategoryGadget,
		Filters:  []Filter{{Key: "color", Kind: FilterEquals, Values: []string{"Зеленый", "Синий"}}},
	})
	if !strings.Contains(dataSQL, `attributes->>'color' = ANY($2)`) {
		t.Fatalf("expected equality against any value, got %q", dataSQL)
	}
	vals, ok := dataArgs[1].([]string)
	if !ok || len(vals) != 2 {
		t.Fatalf("unexpected equality args %v", dataArgs[1])
	}
}

func TestBuildListSQL_RejectsHostileFilterKey(t *testing.T) {
	dataSQL, _, _, _ := buildListSQL(ListQuery{
		Category: domain.CategorySticks,
		Filters:  []Filter{{Key: "x' OR 1=1 --", Kind: FilterEquals, Values: []string{"v"}}},
	})
	if strings.Contains(dataSQL, "1=1") {
		t.Fatalf("hostile key leaked into SQL: %q", dataSQL)
	}
}
