package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/helpers"
)

const (
	homepageListSize = 3
	defaultSaleLimit = 6
	maxSaleLimit     = 100
)

// newestProductsHandler godoc
//
//	@Summary	Three most recently created products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	catalogview.ProductRecord
//	@Router		/products/newest [get]
func (app *application) newestProductsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Catalog.ListNewestProducts(r.Context(), homepageListSize)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// bestsellersHandler godoc
//
//	@Summary	Three most clicked products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	catalogview.ProductRecord
//	@Router		/products/bestsellers [get]
func (app *application) bestsellersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Catalog.ListBestsellers(r.Context(), homepageListSize)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// saleProductsHandler godoc
//
//	@Summary	Products on sale
//	@Tags		products
//	@Produce	json
//	@Param		limit	query	int	false	"Max items (default 6)"
//	@Success	200		{array}	catalogview.ProductRecord
//	@Router		/products/sale [get]
func (app *application) saleProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultSaleLimit
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = min(n, maxSaleLimit)
	}

	list, err := app.store.Catalog.ListSaleProducts(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// productsByBrandHandler godoc
//
//	@Summary	All products of one brand
//	@Tags		products
//	@Produce	json
//	@Param		brand_id	query	int	true	"Brand id"
//	@Success	200			{array}	catalogview.ProductRecord
//	@Router		/products/minifilter [get]
func (app *application) productsByBrandHandler(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.ParseInt(r.URL.Query().Get("brand_id"), 10, 64)
	if err != nil || brandID <= 0 {
		if err := writeJSON(w, http.StatusOK, []any{}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	list, err := app.store.Catalog.ListProductsByBrand(r.Context(), brandID, nil, 0)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// filterProductsHandler godoc
//
//	@Summary		Filtered, sorted, paginated product listing
//	@Description	Unparsable parameters are ignored. Price bounds in meta cover the category and brand scope only.
//	@Tags			products
//	@Produce		json
//	@Param			category_slug	query		string	false	"Category slug; unknown slugs are ignored"
//	@Param			brand_slugs		query		string	false	"Comma separated brand slugs"
//	@Param			min_price		query		number	false	"Minimum price"
//	@Param			max_price		query		number	false	"Maximum price"
//	@Param			sort_by			query		string	false	"price_asc, price_desc, newest or popularity"
//	@Param			in_stock		query		string	false	"true or false"
//	@Param			is_sale			query		string	false	"true or false"
//	@Param			page			query		int		false	"Page (default 1)"
//	@Param			limit			query		int		false	"Page size (default 12)"
//	@Success		200				{object}	catalogview.FilterResponse
//	@Router			/products/filter [get]
func (app *application) filterProductsHandler(w http.ResponseWriter, r *http.Request) {
	f := catalog.ParseProductFilter(r.URL.Query())

	page, err := app.store.Catalog.FilterProducts(r.Context(), f)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToFilterResponse(page)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchProductsHandler godoc
//
//	@Summary	Case-insensitive title search
//	@Tags		products
//	@Produce	json
//	@Param		query	query	string	false	"Substring of the title; empty returns []"
//	@Success	200		{array}	catalogview.ProductRecord
//	@Router		/products/search [get]
func (app *application) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	list, err := app.store.Catalog.SearchProducts(r.Context(), query)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary	Product detail with brand and category
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"Product id"
//	@Success	200			{object}	catalogview.ProductDetail
//	@Failure	404			{object}	error
//	@Router		/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	detail, err := app.store.Catalog.GetProductDetail(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductDetail(detail)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// similarProductsHandler godoc
//
//	@Summary		Up to four similar products
//	@Description	Same brand first, then same category.
//	@Tags			products
//	@Produce		json
//	@Param			productID	path	int	true	"Product id"
//	@Success		200			{array}	catalogview.ProductRecord
//	@Failure		404			{object}	error
//	@Router			/products/{productID}/similar [get]
func (app *application) similarProductsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	list, err := catalog.SimilarProducts(r.Context(), app.store.Catalog, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecords(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type clickResponse struct {
	Message    string `json:"message"`
	SalesCount int    `json:"sales_count"`
}

// recordClickHandler godoc
//
//	@Summary	Record a product click
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"Product id"
//	@Success	200			{object}	clickResponse
//	@Failure	404			{object}	error
//	@Failure	429			{object}	error
//	@Router		/products/{productID}/click [post]
func (app *application) recordClickHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	count, err := app.store.Catalog.IncrementSalesCount(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, clickResponse{Message: "Click recorded", SalesCount: count}); err != nil {
		app.internalServerError(w, r, err)
	}
}
