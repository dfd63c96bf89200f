package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Brand struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int64  `json:"category_id"`
}

type Product struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description"`
	Images        []string            `json:"images"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	ReviewCount   int                 `json:"review_count"`
	InStock       bool                `json:"in_stock"`
	IsNew         bool                `json:"is_new"`
	IsSale        bool                `json:"is_sale"`
	SalesCount    int                 `json:"sales_count"`
	CreatedAt     time.Time           `json:"created_at"`
	BrandID       int64               `json:"brand_id"`
}

// ProductCard is a product row joined with its brand and category names.
type ProductCard struct {
	Product
	BrandName    string `json:"brand_name"`
	CategoryName string `json:"category_name"`
}

// ProductDetail carries a product plus whatever brand/category could be resolved.
type ProductDetail struct {
	Product  *Product
	Brand    *Brand
	Category *Category
}

// ProductPatch holds the fields of a partial update; nil means "keep".
// ClearDescription sets the description to NULL.
type ProductPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Images           *[]string
	Price            *decimal.Decimal
	OriginalPrice    *decimal.NullDecimal
	ReviewCount      *int
	InStock          *bool
	IsNew            *bool
	IsSale           *bool
	SalesCount       *int
	BrandID          *int64
}

// Apply copies every set field of the patch onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.ClearDescription {
		p.Description = nil
	} else if pp.Description != nil {
		p.Description = pp.Description
	}
	if pp.Images != nil {
		p.Images = *pp.Images
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.OriginalPrice != nil {
		p.OriginalPrice = *pp.OriginalPrice
	}
	if pp.ReviewCount != nil {
		p.ReviewCount = *pp.ReviewCount
	}
	if pp.InStock != nil {
		p.InStock = *pp.InStock
	}
	if pp.IsNew != nil {
		p.IsNew = *pp.IsNew
	}
	if pp.IsSale != nil {
		p.IsSale = *pp.IsSale
	}
	if pp.SalesCount != nil {
		p.SalesCount = *pp.SalesCount
	}
	if pp.BrandID != nil {
		p.BrandID = *pp.BrandID
	}
}

type FilterMeta struct {
	MinPrice   decimal.Decimal `json:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type ProductPage struct {
	Products []*ProductCard
	Meta     FilterMeta
}

var ErrInvalidProduct = errors.New("invalid product")

// Validate checks the invariants the schema also enforces, so callers get a
// readable error instead of a constraint violation.
func (p *Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidProduct)
	case len(p.Title) > 255:
		return fmt.Errorf("%w: title must be at most 255 characters", ErrInvalidProduct)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	case p.OriginalPrice.Valid && p.OriginalPrice.Decimal.IsNegative():
		return fmt.Errorf("%w: original_price must not be negative", ErrInvalidProduct)
	case p.ReviewCount < 0:
		return fmt.Errorf("%w: review_count must not be negative", ErrInvalidProduct)
	case p.SalesCount < 0:
		return fmt.Errorf("%w: sales_count must not be negative", ErrInvalidProduct)
	case p.BrandID <= 0:
		return fmt.Errorf("%w: brand_id is required", ErrInvalidProduct)
	}
	return nil
}
