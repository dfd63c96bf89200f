package catalogview

import "time"

type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BrandDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int64  `json:"category_id"`
}

// ProductSummary is one card of a filtered listing.
type ProductSummary struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Image         *string  `json:"image"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	ReviewCount   int      `json:"review_count"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	InStock       bool     `json:"in_stock"`
	IsNew         bool     `json:"is_new"`
	IsSale        bool     `json:"is_sale"`
}

// ProductRecord is the full stored row.
type ProductRecord struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Images        []string  `json:"images"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	ReviewCount   int       `json:"review_count"`
	InStock       bool      `json:"in_stock"`
	IsNew         bool      `json:"is_new"`
	IsSale        bool      `json:"is_sale"`
	SalesCount    int       `json:"sales_count"`
	CreatedAt     time.Time `json:"created_at"`
	BrandID       int64     `json:"brand_id"`
}

type ProductDetail struct {
	ProductRecord
	Brand    *BrandDTO    `json:"brand"`
	Category *CategoryDTO `json:"category"`
}

type FilterMeta struct {
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

type FilterResponse struct {
	Products []ProductSummary `json:"products"`
	Meta     FilterMeta       `json:"meta"`
}

type AdminProductPage struct {
	Products   []ProductRecord `json:"products"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
}
