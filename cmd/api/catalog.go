package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/cache"
	"storefront/internal/domain/catalogview"
	"storefront/internal/helpers"

	"github.com/go-chi/chi/v5"
)

var errInvalidID = errors.New("invalid id")

// parseIDParam reads a positive integer path parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, chi.URLParam(r, name))
	}
	return id, nil
}

// listCategoriesHandler godoc
//
//	@Summary	List categories
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	catalogview.CategoryDTO
//	@Router		/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	views, err := app.categoryViews(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listBrandsHandler godoc
//
//	@Summary	List brands
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	catalogview.BrandDTO
//	@Router		/brands [get]
func (app *application) listBrandsHandler(w http.ResponseWriter, r *http.Request) {
	views, err := app.brandViews(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// categoryViews reads through the listing cache. Cache failures only log.
func (app *application) categoryViews(ctx context.Context) ([]catalogview.CategoryDTO, error) {
	var views []catalogview.CategoryDTO
	hit, err := app.cache.GetJSON(ctx, cache.KeyCategories, &views)
	if err != nil {
		app.logger.Warnw("cache read failed", "key", cache.KeyCategories, "error", err)
	}
	if hit {
		return views, nil
	}

	list, err := app.store.Catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	views = helpers.ToCategoryViews(list)

	if err := app.cache.SetJSON(ctx, cache.KeyCategories, views); err != nil {
		app.logger.Warnw("cache write failed", "key", cache.KeyCategories, "error", err)
	}
	return views, nil
}

func (app *application) brandViews(ctx context.Context) ([]catalogview.BrandDTO, error) {
	var views []catalogview.BrandDTO
	hit, err := app.cache.GetJSON(ctx, cache.KeyBrands, &views)
	if err != nil {
		app.logger.Warnw("cache read failed", "key", cache.KeyBrands, "error", err)
	}
	if hit {
		return views, nil
	}

	list, err := app.store.Catalog.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	views = helpers.ToBrandViews(list)

	if err := app.cache.SetJSON(ctx, cache.KeyBrands, views); err != nil {
		app.logger.Warnw("cache write failed", "key", cache.KeyBrands, "error", err)
	}
	return views, nil
}

// invalidateListings drops both cached listings; brands embed category ids so
// either kind of mutation can stale both.
func (app *application) invalidateListings(ctx context.Context) {
	if err := app.cache.Delete(ctx, cache.KeyCategories, cache.KeyBrands); err != nil {
		app.logger.Warnw("cache invalidation failed", "error", err)
	}
}
