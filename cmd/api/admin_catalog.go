package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/helpers"
)

var errEmptySlug = errors.New("name must contain at least one letter or digit")

type CreateCategoryPayload struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateCategoryPayload struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

type CreateBrandPayload struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

type UpdateBrandPayload struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

// adminListCategoriesHandler godoc
//
//	@Summary	List categories (admin)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}	catalogview.CategoryDTO
//	@Security	AdminCookie
//	@Router		/admin/categories [get]
func (app *application) adminListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Catalog.ListCategories(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToCategoryViews(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCategoryHandler godoc
//
//	@Summary	Create a category
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		CreateCategoryPayload	true	"Category"
//	@Success	201		{object}	catalogview.CategoryDTO
//	@Failure	400		{object}	error	"Missing or duplicate name"
//	@Security	AdminCookie
//	@Router		/admin/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateCategoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slug := catalog.Slugify(payload.Name)
	if slug == "" {
		app.badRequestResponse(w, r, errEmptySlug)
		return
	}

	ctx := r.Context()

	exists, err := app.store.Catalog.CategoryNameExists(ctx, payload.Name, 0)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("check category name: %w", err))
		return
	}
	if exists {
		app.badRequestResponse(w, r, catalog.ErrDuplicateCategory)
		return
	}

	created, err := app.store.Catalog.CreateCategory(ctx, &catalog.Category{Name: payload.Name, Slug: slug})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusCreated, helpers.ToCategoryView(created)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCategoryHandler godoc
//
//	@Summary		Rename a category
//	@Description	The slug is recomputed from the new name.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			categoryID	path		int						true	"Category id"
//	@Param			payload		body		UpdateCategoryPayload	true	"Fields to change"
//	@Success		200			{object}	catalogview.CategoryDTO
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		AdminCookie
//	@Router			/admin/categories/{categoryID} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrCategoryNotFound)
		return
	}

	var payload UpdateCategoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	category, err := app.store.Catalog.GetCategoryByID(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			app.badRequestResponse(w, r, errors.New("name must not be empty"))
			return
		}
		slug := catalog.Slugify(name)
		if slug == "" {
			app.badRequestResponse(w, r, errEmptySlug)
			return
		}

		exists, err := app.store.Catalog.CategoryNameExists(ctx, name, id)
		if err != nil {
			app.internalServerError(w, r, fmt.Errorf("check category name: %w", err))
			return
		}
		if exists {
			app.badRequestResponse(w, r, catalog.ErrDuplicateCategory)
			return
		}

		category.Name = name
		category.Slug = slug
	}

	updated, err := app.store.Catalog.UpdateCategory(ctx, category)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusOK, helpers.ToCategoryView(updated)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary	Delete a category
//	@Tags		admin
//	@Produce	json
//	@Param		categoryID	path		int	true	"Category id"
//	@Success	200			{object}	messageResponse
//	@Failure	404			{object}	error
//	@Failure	409			{object}	error	"Category still has brands"
//	@Security	AdminCookie
//	@Router		/admin/categories/{categoryID} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrCategoryNotFound)
		return
	}

	ctx := r.Context()

	hasBrands, err := app.store.Catalog.CategoryHasBrands(ctx, id)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if hasBrands {
		app.conflictResponse(w, r, catalog.ErrCategoryHasBrands)
		return
	}

	if err := app.store.Catalog.DeleteCategory(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusOK, messageResponse{Message: "Category deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminListBrandsHandler godoc
//
//	@Summary	List brands (admin)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}	catalogview.BrandDTO
//	@Security	AdminCookie
//	@Router		/admin/brands [get]
func (app *application) adminListBrandsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Catalog.ListBrands(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToBrandViews(list)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createBrandHandler godoc
//
//	@Summary	Create a brand
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		CreateBrandPayload	true	"Brand"
//	@Success	201		{object}	catalogview.BrandDTO
//	@Failure	400		{object}	error	"Missing fields, duplicate name or unknown category"
//	@Security	AdminCookie
//	@Router		/admin/brands [post]
func (app *application) createBrandHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateBrandPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slug := catalog.Slugify(payload.Name)
	if slug == "" {
		app.badRequestResponse(w, r, errEmptySlug)
		return
	}

	ctx := r.Context()

	if err := app.requireCategory(ctx, payload.CategoryID); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	exists, err := app.store.Catalog.BrandNameExists(ctx, payload.Name, 0)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("check brand name: %w", err))
		return
	}
	if exists {
		app.badRequestResponse(w, r, catalog.ErrDuplicateBrand)
		return
	}

	created, err := app.store.Catalog.CreateBrand(ctx, &catalog.Brand{
		Name:       payload.Name,
		Slug:       slug,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusCreated, helpers.ToBrandView(created)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateBrandHandler godoc
//
//	@Summary		Update a brand
//	@Description	Renaming recomputes the slug.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			brandID	path		int					true	"Brand id"
//	@Param			payload	body		UpdateBrandPayload	true	"Fields to change"
//	@Success		200		{object}	catalogview.BrandDTO
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Security		AdminCookie
//	@Router			/admin/brands/{brandID} [put]
func (app *application) updateBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "brandID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrBrandNotFound)
		return
	}

	var payload UpdateBrandPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	brand, err := app.store.Catalog.GetBrandByID(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			app.badRequestResponse(w, r, errors.New("name must not be empty"))
			return
		}
		slug := catalog.Slugify(name)
		if slug == "" {
			app.badRequestResponse(w, r, errEmptySlug)
			return
		}

		exists, err := app.store.Catalog.BrandNameExists(ctx, name, id)
		if err != nil {
			app.internalServerError(w, r, fmt.Errorf("check brand name: %w", err))
			return
		}
		if exists {
			app.badRequestResponse(w, r, catalog.ErrDuplicateBrand)
			return
		}

		brand.Name = name
		brand.Slug = slug
	}

	if payload.CategoryID != nil {
		if err := app.requireCategory(ctx, *payload.CategoryID); err != nil {
			app.catalogErrorResponse(w, r, err)
			return
		}
		brand.CategoryID = *payload.CategoryID
	}

	updated, err := app.store.Catalog.UpdateBrand(ctx, brand)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusOK, helpers.ToBrandView(updated)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBrandHandler godoc
//
//	@Summary	Delete a brand
//	@Tags		admin
//	@Produce	json
//	@Param		brandID	path		int	true	"Brand id"
//	@Success	200		{object}	messageResponse
//	@Failure	404		{object}	error
//	@Failure	409		{object}	error	"Brand still has products"
//	@Security	AdminCookie
//	@Router		/admin/brands/{brandID} [delete]
func (app *application) deleteBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "brandID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrBrandNotFound)
		return
	}

	ctx := r.Context()

	hasProducts, err := app.store.Catalog.BrandHasProducts(ctx, id)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if hasProducts {
		app.conflictResponse(w, r, catalog.ErrBrandHasProducts)
		return
	}

	if err := app.store.Catalog.DeleteBrand(ctx, id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	app.invalidateListings(ctx)

	if err := writeJSON(w, http.StatusOK, messageResponse{Message: "Brand deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// requireCategory turns a missing category into ErrInvalidCategory (400).
func (app *application) requireCategory(ctx context.Context, id int64) error {
	if _, err := app.store.Catalog.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return catalog.ErrInvalidCategory
		}
		return err
	}
	return nil
}
