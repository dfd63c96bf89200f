package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}

func TestParseProductFilterDefaults(t *testing.T) {
	f := ParseProductFilter(url.Values{})

	assert.Empty(t, f.CategorySlug)
	assert.Empty(t, f.BrandSlugs)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.InStock)
	assert.Nil(t, f.IsSale)
	assert.Equal(t, SortNatural, f.SortBy)
	assert.Equal(t, 1, f.Pagination.Page)
	assert.Equal(t, 12, f.Pagination.Limit)
}

func TestParseProductFilter(t *testing.T) {
	f := ParseProductFilter(mustQuery(t,
		"category_slug=phones&brand_slugs=apple,%20samsung,,&min_price=10.5&max_price=abc&sort_by=price_desc&in_stock=TRUE&is_sale=yes&page=2&limit=5"))

	assert.Equal(t, "phones", f.CategorySlug)
	assert.Equal(t, []string{"apple", "samsung"}, f.BrandSlugs)
	require.NotNil(t, f.MinPrice)
	assert.True(t, decimal.RequireFromString("10.5").Equal(*f.MinPrice))
	assert.Nil(t, f.MaxPrice, "unparsable price is ignored")
	assert.Equal(t, SortPriceDesc, f.SortBy)
	require.NotNil(t, f.InStock)
	assert.True(t, *f.InStock)
	require.NotNil(t, f.IsSale)
	assert.False(t, *f.IsSale, "anything but true means false")
	assert.Equal(t, 2, f.Pagination.Page)
	assert.Equal(t, 5, f.Pagination.Offset)
}

func TestParseProductFilterUnknownSort(t *testing.T) {
	f := ParseProductFilter(mustQuery(t, "sort_by=cheapest"))
	assert.Equal(t, SortNatural, f.SortBy)
}

func TestBuildFilterQueryEmpty(t *testing.T) {
	q := buildFilterQuery(ProductFilter{}, nil)

	assert.Empty(t, q.scope)
	assert.Empty(t, q.where)
	assert.Empty(t, q.args)
	assert.Equal(t, " ORDER BY p.id ASC", q.orderBy)
}

func TestBuildFilterQueryScopeExcludesNarrowing(t *testing.T) {
	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(500)
	inStock := true
	isSale := false
	catID := int64(3)

	q := buildFilterQuery(ProductFilter{
		BrandSlugs: []string{"apple"},
		MinPrice:   &min,
		MaxPrice:   &max,
		InStock:    &inStock,
		IsSale:     &isSale,
		SortBy:     SortPopularity,
	}, &catID)

	assert.Equal(t, " WHERE b.category_id = $1 AND b.slug = ANY($2)", q.scope)
	assert.Equal(t, []any{int64(3), []string{"apple"}}, q.scopeArgs)

	assert.Equal(t,
		" WHERE b.category_id = $1 AND b.slug = ANY($2) AND p.price >= $3 AND p.price <= $4 AND p.in_stock = $5 AND p.is_sale = $6",
		q.where)
	require.Len(t, q.args, 6)
	assert.Equal(t, true, q.args[4])
	assert.Equal(t, false, q.args[5])
	assert.Equal(t, " ORDER BY p.sales_count DESC, p.id ASC", q.orderBy)
}

func TestOrderClause(t *testing.T) {
	assert.Contains(t, orderClause(SortPriceAsc), "p.price ASC")
	assert.Contains(t, orderClause(SortPriceDesc), "p.price DESC")
	assert.Contains(t, orderClause(SortNewest), "p.created_at DESC")
}

func TestPriceBounds(t *testing.T) {
	lo, hi := priceBounds(decimal.NullDecimal{}, decimal.NullDecimal{})
	assert.True(t, lo.Equal(decimal.Zero))
	assert.True(t, hi.Equal(decimal.NewFromInt(1000)))

	lo, hi = priceBounds(
		decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		decimal.NewNullDecimal(decimal.RequireFromString("1299.00")),
	)
	assert.Equal(t, "9.99", lo.String())
	assert.Equal(t, "1299", hi.String())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 12))
	assert.Equal(t, 1, totalPages(12, 12))
	assert.Equal(t, 2, totalPages(13, 12))
	assert.Equal(t, 0, totalPages(5, 0))
}
