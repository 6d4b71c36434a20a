package product

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const defaultPageSize = 12

// Attribute keys are interpolated into jsonb path expressions, so only plain
// identifiers are accepted. Anything else is dropped like an unknown filter.
var attrKeyPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

const productColumns = `id, slug, title, COALESCE(description, ''), image, price, category, in_stock, badges, attributes, COALESCE(brand, ''), created_at`

// buildListSQL translates a ListQuery into a windowed data statement and an
// exact-count statement over the same predicate. countArgs is a prefix of
// dataArgs (the window bounds are appended last).
func buildListSQL(q ListQuery) (dataSQL, countSQL string, dataArgs, countArgs []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, "category = "+arg(string(q.Category)))

	for _, f := range q.Filters {
		if clause := filterClause(f, arg); clause != "" {
			where = append(where, clause)
		}
	}

	if q.MinPrice != nil {
		where = append(where, "price >= "+arg(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		where = append(where, "price <= "+arg(*q.MaxPrice))
	}

	predicate := "WHERE " + strings.Join(where, " AND ")
	countSQL = "SELECT COUNT(*) FROM products " + predicate
	countArgs = args

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	dataSQL = fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, predicate, orderBy(q.Sort), len(args)+1, len(args)+2,
	)
	dataArgs = append(append([]interface{}{}, args...), limit, (page-1)*limit)
	return dataSQL, countSQL, dataArgs, countArgs
}

func filterClause(f Filter, arg func(interface{}) string) string {
	if !attrKeyPattern.MatchString(f.Key) || len(f.Values) == 0 {
		return ""
	}

	switch f.Kind {
	case FilterBool:
		// The query value "true" selects true, anything else false.
		doc, err := json.Marshal(map[string]bool{f.Key: f.Values[0] == "true"})
		if err != nil {
			return ""
		}
		return "attributes @> " + arg(string(doc)) + "::jsonb"

	case FilterContains:
		// Disjunctive containment: any requested value present in the list.
		ors := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			doc, err := json.Marshal([]string{v})
			if err != nil {
				continue
			}
			ors = append(ors, fmt.Sprintf("attributes->'%s' @> %s::jsonb", f.Key, arg(string(doc))))
		}
		if len(ors) == 0 {
			return ""
		}
		return "(" + strings.Join(ors, " OR ") + ")"

	default:
		return fmt.Sprintf("attributes->>'%s' = ANY(%s)", f.Key, arg(f.Values))
	}
}

func orderBy(s Sort) string {
	switch s {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortNewest:
		return "created_at DESC"
	case SortTitleAsc:
		return "title ASC"
	case SortTitleDesc:
		return "title DESC"
	default:
		return "id ASC"
	}
}
