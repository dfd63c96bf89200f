package helpers

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/catalogview"
	"storefront/internal/params"

	"github.com/shopspring/decimal"
)

func ToCategoryView(c *catalog.Category) catalogview.CategoryDTO {
	return catalogview.CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func ToCategoryViews(cs []*catalog.Category) []catalogview.CategoryDTO {
	out := make([]catalogview.CategoryDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCategoryView(c))
	}
	return out
}

func ToBrandView(b *catalog.Brand) catalogview.BrandDTO {
	return catalogview.BrandDTO{ID: b.ID, Name: b.Name, Slug: b.Slug, CategoryID: b.CategoryID}
}

func ToBrandViews(bs []*catalog.Brand) []catalogview.BrandDTO {
	out := make([]catalogview.BrandDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToBrandView(b))
	}
	return out
}

func ToProductSummary(c *catalog.ProductCard) catalogview.ProductSummary {
	var image *string
	if len(c.Images) > 0 {
		img := c.Images[0]
		image = &img
	}

	return catalogview.ProductSummary{
		ID:            c.ID,
		Title:         c.Title,
		Image:         image,
		Description:   c.Description,
		Price:         c.Price.InexactFloat64(),
		OriginalPrice: nullableFloat(c.OriginalPrice),
		ReviewCount:   c.ReviewCount,
		Category:      c.CategoryName,
		Brand:         c.BrandName,
		InStock:       c.InStock,
		IsNew:         c.IsNew,
		IsSale:        c.IsSale,
	}
}

func ToProductRecord(p *catalog.Product) catalogview.ProductRecord {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return catalogview.ProductRecord{
		ID:            p.ID,
		Title:         p.Title,
		Images:        images,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		OriginalPrice: nullableFloat(p.OriginalPrice),
		ReviewCount:   p.ReviewCount,
		InStock:       p.InStock,
		IsNew:         p.IsNew,
		IsSale:        p.IsSale,
		SalesCount:    p.SalesCount,
		CreatedAt:     p.CreatedAt,
		BrandID:       p.BrandID,
	}
}

func ToProductRecords(ps []*catalog.Product) []catalogview.ProductRecord {
	out := make([]catalogview.ProductRecord, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToProductRecord(p))
	}
	return out
}

// ToProductDetail nests brand and category; either is null when it could not
// be resolved.
func ToProductDetail(d *catalog.ProductDetail) catalogview.ProductDetail {
	out := catalogview.ProductDetail{ProductRecord: ToProductRecord(d.Product)}
	if d.Brand != nil {
		b := ToBrandView(d.Brand)
		out.Brand = &b
	}
	if d.Category != nil {
		c := ToCategoryView(d.Category)
		out.Category = &c
	}
	return out
}

func ToFilterResponse(page *catalog.ProductPage) catalogview.FilterResponse {
	products := make([]catalogview.ProductSummary, 0, len(page.Products))
	for _, c := range page.Products {
		products = append(products, ToProductSummary(c))
	}

	return catalogview.FilterResponse{
		Products: products,
		Meta: catalogview.FilterMeta{
			MinPrice:   page.Meta.MinPrice.InexactFloat64(),
			MaxPrice:   page.Meta.MaxPrice.InexactFloat64(),
			Total:      page.Meta.Total,
			Page:       page.Meta.Page,
			Limit:      page.Meta.Limit,
			TotalPages: page.Meta.TotalPages,
		},
	}
}

func ToAdminProductPage(ps []*catalog.Product, p params.Pagination) catalogview.AdminProductPage {
	return catalogview.AdminProductPage{
		Products:   ToProductRecords(ps),
		Page:       p.Page,
		PerPage:    p.Limit,
		TotalPages: p.TotalPages,
		TotalItems: p.Total,
	}
}

func nullableFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
