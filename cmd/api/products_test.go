package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/catalogview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProducts(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Laptops")
	b := app.catalog.addBrand(t, "Asus", c.ID)
	app.catalog.addProduct(t, "ZenBook 14", 999, b.ID)
	app.catalog.addProduct(t, "ROG Strix", 1499, b.ID)

	t.Run("empty query returns empty array", func(t *testing.T) {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/search?query=", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("case insensitive match", func(t *testing.T) {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/search?query=zenbook", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		got := decode[[]catalogview.ProductRecord](t, rr)
		require.Len(t, got, 1)
		assert.Equal(t, "ZenBook 14", got[0].Title)
		assert.Equal(t, []string{}, got[0].Images)
	})
}

func TestGetProduct(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Phones")
	b := app.catalog.addBrand(t, "Samsung", c.ID)
	p := app.catalog.addProduct(t, "Galaxy S24", 899, b.ID)

	t.Run("detail embeds brand and category", func(t *testing.T) {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/"+itoa(p.ID), nil))
		require.Equal(t, http.StatusOK, rr.Code)

		got := decode[catalogview.ProductDetail](t, rr)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, 899.0, got.Price)
		require.NotNil(t, got.Brand)
		assert.Equal(t, "samsung", got.Brand.Slug)
		require.NotNil(t, got.Category)
		assert.Equal(t, "Phones", got.Category.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/9999", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)

		body := decode[errorBody](t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusNotFound, body.Status)
	})

	t.Run("non numeric id", func(t *testing.T) {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecordClick(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Phones")
	b := app.catalog.addBrand(t, "Apple", c.ID)
	p := app.catalog.addProduct(t, "iPhone 15", 799, b.ID)

	for want := 1; want <= 3; want++ {
		rr := app.do(t, httptest.NewRequest(http.MethodPost, "/api/products/"+itoa(p.ID)+"/click", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		got := decode[clickResponse](t, rr)
		assert.Equal(t, "Click recorded", got.Message)
		assert.Equal(t, want, got.SalesCount)
	}

	rr := app.do(t, httptest.NewRequest(http.MethodPost, "/api/products/424242/click", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRecordClickRateLimited(t *testing.T) {
	app := newTestApplication(t, func(c *config) {
		c.rateLimiter.RequestsPerTimeFrame = 2
	})
	c := app.catalog.addCategory(t, "Phones")
	b := app.catalog.addBrand(t, "Apple", c.ID)
	p := app.catalog.addProduct(t, "iPhone 15", 799, b.ID)

	target := "/api/products/" + itoa(p.ID) + "/click"
	for range 2 {
		rr := app.do(t, httptest.NewRequest(http.MethodPost, target, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := app.do(t, httptest.NewRequest(http.MethodPost, target, nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestSimilarProducts(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Laptops")
	apple := app.catalog.addBrand(t, "Apple", c.ID)
	asus := app.catalog.addBrand(t, "Asus", c.ID)

	target := app.catalog.addProduct(t, "MacBook Air", 1099, apple.ID)
	app.catalog.addProduct(t, "MacBook Pro", 1999, apple.ID)
	app.catalog.addProduct(t, "ZenBook", 999, asus.ID)
	app.catalog.addProduct(t, "VivoBook", 599, asus.ID)
	app.catalog.addProduct(t, "ROG", 1499, asus.ID)

	rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/"+itoa(target.ID)+"/similar", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[[]catalogview.ProductRecord](t, rr)
	require.Len(t, got, 4)
	assert.Equal(t, "MacBook Pro", got[0].Title, "same brand comes first")
	for _, p := range got {
		assert.NotEqual(t, target.ID, p.ID)
	}
}

func TestProductsByBrand(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Phones")
	b := app.catalog.addBrand(t, "Apple", c.ID)
	app.catalog.addProduct(t, "iPhone 15", 799, b.ID)
	app.catalog.addProduct(t, "iPhone 15 Pro", 999, b.ID)

	rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/minifilter?brand_id="+itoa(b.ID), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]catalogview.ProductRecord](t, rr), 2)

	rr = app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/minifilter?brand_id=nope", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestFilterProductsResponseShape(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Laptops")
	b := app.catalog.addBrand(t, "Asus", c.ID)
	for _, title := range []string{"A", "B", "C"} {
		app.catalog.addProduct(t, title, 100, b.ID)
	}

	rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/filter?brand_slugs=asus&limit=2&page=2", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	got := decode[catalogview.FilterResponse](t, rr)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "C", got.Products[0].Title)
	assert.Equal(t, "Asus", got.Products[0].Brand)
	assert.Nil(t, got.Products[0].Image)
	assert.Equal(t, catalogview.FilterMeta{
		MinPrice:   0,
		MaxPrice:   1000,
		Total:      3,
		Page:       2,
		Limit:      2,
		TotalPages: 2,
	}, got.Meta)
}

func TestFilterProductsPagePastEnd(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Laptops")
	b := app.catalog.addBrand(t, "Asus", c.ID)
	app.catalog.addProduct(t, "A", 100, b.ID)

	for _, page := range []string{"50", "9223372036854775807"} {
		rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/filter?limit=100&page="+page, nil))
		require.Equal(t, http.StatusOK, rr.Code, page)

		got := decode[catalogview.FilterResponse](t, rr)
		assert.Empty(t, got.Products, page)
		assert.Equal(t, 1, got.Meta.Total, page)
	}
}

func TestSaleProductsLimit(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Phones")
	b := app.catalog.addBrand(t, "Apple", c.ID)
	for range 8 {
		p := app.catalog.addProduct(t, "Deal", 10, b.ID)
		app.catalog.products[p.ID].IsSale = true
	}

	rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/sale", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]catalogview.ProductRecord](t, rr), defaultSaleLimit)

	rr = app.do(t, httptest.NewRequest(http.MethodGet, "/api/products/sale?limit=2", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]catalogview.ProductRecord](t, rr), 2)
}

func TestListCategoriesAndBrands(t *testing.T) {
	app := newTestApplication(t)
	c := app.catalog.addCategory(t, "Home Audio")
	app.catalog.addBrand(t, "Bang & Olufsen", c.ID)

	rr := app.do(t, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []catalogview.CategoryDTO{{ID: c.ID, Name: "Home Audio", Slug: "home-audio"}},
		decode[[]catalogview.CategoryDTO](t, rr))

	rr = app.do(t, httptest.NewRequest(http.MethodGet, "/api/brands", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	brands := decode[[]catalogview.BrandDTO](t, rr)
	require.Len(t, brands, 1)
	assert.Equal(t, c.ID, brands[0].CategoryID)
}
