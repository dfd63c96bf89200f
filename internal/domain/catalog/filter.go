package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/params"

	"github.com/shopspring/decimal"
)

type SortOrder string

const (
	SortNatural    SortOrder = ""
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortNewest     SortOrder = "newest"
	SortPopularity SortOrder = "popularity"
)

// Price bounds reported when the category/brand scope is empty.
var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(1000)
)

// ProductFilter is the parsed form of /products/filter. Nil pointers and empty
// values mean "no filter".
type ProductFilter struct {
	CategorySlug string
	BrandSlugs   []string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	SortBy       SortOrder
	InStock      *bool
	IsSale       *bool
	Pagination   params.Pagination
}

// ParseProductFilter reads the filter from query values. It never fails:
// anything it cannot parse is treated as absent.
func ParseProductFilter(q url.Values) ProductFilter {
	f := ProductFilter{
		CategorySlug: strings.TrimSpace(q.Get("category_slug")),
		Pagination:   params.ParsePagination(q, params.Storefront),
	}

	if raw := q.Get("brand_slugs"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.BrandSlugs = append(f.BrandSlugs, s)
			}
		}
	}

	f.MinPrice = parseDecimal(q, "min_price")
	f.MaxPrice = parseDecimal(q, "max_price")
	f.InStock = parseTriState(q, "in_stock")
	f.IsSale = parseTriState(q, "is_sale")

	switch s := SortOrder(q.Get("sort_by")); s {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortPopularity:
		f.SortBy = s
	}

	return f
}

func parseDecimal(q url.Values, key string) *decimal.Decimal {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// parseTriState: absent → nil, "true" (any case) → true, any other value → false.
func parseTriState(q url.Values, key string) *bool {
	if !q.Has(key) {
		return nil
	}
	v := strings.EqualFold(strings.TrimSpace(q.Get(key)), "true")
	return &v
}

// filterQuery holds the SQL fragments for one filter request. scope covers the
// category and brand restrictions only; where adds the narrowing filters.
type filterQuery struct {
	scope     string
	scopeArgs []any
	where     string
	args      []any
	orderBy   string
}

func buildFilterQuery(f ProductFilter, categoryID *int64) filterQuery {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if categoryID != nil {
		add("b.category_id = $%d", *categoryID)
	}
	if len(f.BrandSlugs) > 0 {
		add("b.slug = ANY($%d)", f.BrandSlugs)
	}

	q := filterQuery{
		scope:     whereClause(conds),
		scopeArgs: append([]any(nil), args...),
	}

	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}
	if f.InStock != nil {
		add("p.in_stock = $%d", *f.InStock)
	}
	if f.IsSale != nil {
		add("p.is_sale = $%d", *f.IsSale)
	}

	q.where = whereClause(conds)
	q.args = args
	q.orderBy = orderClause(f.SortBy)
	return q
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func orderClause(s SortOrder) string {
	switch s {
	case SortPriceAsc:
		return " ORDER BY p.price ASC, p.id ASC"
	case SortPriceDesc:
		return " ORDER BY p.price DESC, p.id ASC"
	case SortNewest:
		return " ORDER BY p.created_at DESC, p.id DESC"
	case SortPopularity:
		return " ORDER BY p.sales_count DESC, p.id ASC"
	default:
		return " ORDER BY p.id ASC"
	}
}

// priceBounds applies the empty-scope defaults.
func priceBounds(min, max decimal.NullDecimal) (decimal.Decimal, decimal.Decimal) {
	lo, hi := DefaultMinPrice, DefaultMaxPrice
	if min.Valid {
		lo = min.Decimal
	}
	if max.Valid {
		hi = max.Decimal
	}
	return lo, hi
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
