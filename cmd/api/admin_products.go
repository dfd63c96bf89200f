package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/helpers"
	"storefront/internal/params"

	"github.com/shopspring/decimal"
)

// optional tells an explicit JSON null apart from an absent key.
type optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

type CreateProductPayload struct {
	Title         string           `json:"title" validate:"required,max=255"`
	Description   *string          `json:"description"`
	Images        []string         `json:"images" validate:"omitempty,dive,required"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	ReviewCount   int              `json:"review_count" validate:"gte=0"`
	InStock       *bool            `json:"in_stock"`
	IsNew         bool             `json:"is_new"`
	IsSale        bool             `json:"is_sale"`
	SalesCount    int              `json:"sales_count" validate:"gte=0"`
	BrandID       int64            `json:"brand_id" validate:"required,gt=0"`
}

type UpdateProductPayload struct {
	Title         *string                   `json:"title" validate:"omitempty,max=255"`
	Description   optional[string]          `json:"description"`
	Images        *[]string                 `json:"images" validate:"omitempty,dive,required"`
	Price         *decimal.Decimal          `json:"price"`
	OriginalPrice optional[decimal.Decimal] `json:"original_price"`
	ReviewCount   *int                      `json:"review_count" validate:"omitempty,gte=0"`
	InStock       *bool                     `json:"in_stock"`
	IsNew         *bool                     `json:"is_new"`
	IsSale        *bool                     `json:"is_sale"`
	SalesCount    *int                      `json:"sales_count" validate:"omitempty,gte=0"`
	BrandID       *int64                    `json:"brand_id" validate:"omitempty,gt=0"`
}

func (p UpdateProductPayload) patch() catalog.ProductPatch {
	patch := catalog.ProductPatch{
		Title:       p.Title,
		Images:      p.Images,
		Price:       p.Price,
		ReviewCount: p.ReviewCount,
		InStock:     p.InStock,
		IsNew:       p.IsNew,
		IsSale:      p.IsSale,
		SalesCount:  p.SalesCount,
		BrandID:     p.BrandID,
	}
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		patch.Title = &t
	}
	if p.Description.Set {
		if p.Description.Null {
			patch.ClearDescription = true
		} else {
			patch.Description = &p.Description.Value
		}
	}
	if p.OriginalPrice.Set {
		nd := decimal.NullDecimal{Decimal: p.OriginalPrice.Value, Valid: !p.OriginalPrice.Null}
		patch.OriginalPrice = &nd
	}
	return patch
}

type createProductResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// adminListProductsHandler godoc
//
//	@Summary	Paginated product list (admin)
//	@Tags		admin
//	@Produce	json
//	@Param		page		query		int	false	"Page (default 1)"
//	@Param		per_page	query		int	false	"Page size (default 10)"
//	@Success	200			{object}	catalogview.AdminProductPage
//	@Security	AdminCookie
//	@Router		/admin/products [get]
func (app *application) adminListProductsHandler(w http.ResponseWriter, r *http.Request) {
	pg := params.ParsePagination(r.URL.Query(), params.Admin)

	list, total, err := app.store.Catalog.ListProducts(r.Context(), pg.Limit, pg.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	pg.ComputeMeta(total)

	if err := writeJSON(w, http.StatusOK, helpers.ToAdminProductPage(list, pg)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminGetProductHandler godoc
//
//	@Summary	Product record (admin)
//	@Tags		admin
//	@Produce	json
//	@Param		productID	path		int	true	"Product id"
//	@Success	200			{object}	catalogview.ProductRecord
//	@Failure	404			{object}	error
//	@Security	AdminCookie
//	@Router		/admin/products/{productID} [get]
func (app *application) adminGetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	p, err := app.store.Catalog.GetProductByID(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecord(p)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createProductHandler godoc
//
//	@Summary	Create a product
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		CreateProductPayload	true	"Product"
//	@Success	201		{object}	createProductResponse
//	@Failure	400		{object}	error	"Missing or invalid fields, or unknown brand"
//	@Security	AdminCookie
//	@Router		/admin/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p := &catalog.Product{
		Title:       payload.Title,
		Description: payload.Description,
		Images:      payload.Images,
		Price:       *payload.Price,
		ReviewCount: payload.ReviewCount,
		InStock:     true,
		IsNew:       payload.IsNew,
		IsSale:      payload.IsSale,
		SalesCount:  payload.SalesCount,
		BrandID:     payload.BrandID,
	}
	if payload.OriginalPrice != nil {
		p.OriginalPrice = decimal.NewNullDecimal(*payload.OriginalPrice)
	}
	if payload.InStock != nil {
		p.InStock = *payload.InStock
	}
	if err := p.Validate(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	created, err := app.store.Catalog.CreateProduct(r.Context(), p)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := createProductResponse{ID: created.ID, Title: created.Title}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProductHandler godoc
//
//	@Summary		Partially update a product
//	@Description	Only the fields present in the body change. created_at is never modified.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product id"
//	@Param			payload		body		UpdateProductPayload	true	"Fields to change"
//	@Success		200			{object}	catalogview.ProductRecord
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		AdminCookie
//	@Router			/admin/products/{productID} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	var payload UpdateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	patch := payload.patch()

	// validate the merged result before taking the row lock
	current, err := app.store.Catalog.GetProductByID(ctx, id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}
	patch.Apply(current)
	if err := current.Validate(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updated, err := app.store.Catalog.UpdateProduct(ctx, id, patch)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, helpers.ToProductRecord(updated)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary	Delete a product
//	@Tags		admin
//	@Produce	json
//	@Param		productID	path		int	true	"Product id"
//	@Success	200			{object}	messageResponse
//	@Failure	404			{object}	error
//	@Security	AdminCookie
//	@Router		/admin/products/{productID} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "productID")
	if err != nil {
		app.notFoundResponse(w, r, catalog.ErrProductNotFound)
		return
	}

	if err := app.store.Catalog.DeleteProduct(r.Context(), id); err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, messageResponse{Message: "Product deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
