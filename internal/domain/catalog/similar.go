package catalog

import (
	"context"
	"errors"
	"fmt"
)

// SimilarLimit is the size of a recommendation list.
const SimilarLimit = 4

// SimilarSource is the part of the store the similarity resolver reads from.
// List methods return rows in primary-key order.
type SimilarSource interface {
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	GetBrandByID(ctx context.Context, id int64) (*Brand, error)
	ListProductsByBrand(ctx context.Context, brandID int64, excludeIDs []int64, limit int) ([]*Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64, excludeIDs []int64, limit int) ([]*Product, error)
}

// SimilarProducts returns up to SimilarLimit products like productID: first
// other products of the same brand, then, only if those fall short, products
// from the brand's category. It returns ErrProductNotFound for an unknown id
// and an empty list when the product's brand no longer exists.
func SimilarProducts(ctx context.Context, src SimilarSource, productID int64) ([]*Product, error) {
	product, err := src.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	brand, err := src.GetBrandByID(ctx, product.BrandID)
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return []*Product{}, nil
		}
		return nil, err
	}

	sameBrand, err := src.ListProductsByBrand(ctx, brand.ID, []int64{product.ID}, SimilarLimit)
	if err != nil {
		return nil, fmt.Errorf("similar by brand: %w", err)
	}
	if len(sameBrand) >= SimilarLimit {
		return sameBrand[:SimilarLimit], nil
	}

	exclude := make([]int64, 0, len(sameBrand)+1)
	exclude = append(exclude, product.ID)
	for _, p := range sameBrand {
		exclude = append(exclude, p.ID)
	}

	sameCategory, err := src.ListProductsByCategory(ctx, brand.CategoryID, exclude, SimilarLimit-len(sameBrand))
	if err != nil {
		return nil, fmt.Errorf("similar by category: %w", err)
	}

	out := make([]*Product, 0, len(sameBrand)+len(sameCategory))
	out = append(out, sameBrand...)
	out = append(out, sameCategory...)
	return out, nil
}
