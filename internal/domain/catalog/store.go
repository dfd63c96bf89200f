package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"storefront/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrDuplicateBrand    = errors.New("brand already exists")
	ErrCategoryHasBrands = errors.New("cannot delete category with associated brands")
	ErrBrandHasProducts  = errors.New("cannot delete brand with associated products")
	ErrInvalidCategory   = errors.New("category does not exist")
	ErrInvalidBrand      = errors.New("brand does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Store is the data access abstraction for the catalog.
// Implemented by Repository (pgx).
type Store interface {
	SimilarSource

	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error

	// Categories
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	CategoryHasBrands(ctx context.Context, id int64) (bool, error)
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Brands
	ListBrands(ctx context.Context) ([]*Brand, error)
	BrandNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	BrandHasProducts(ctx context.Context, id int64) (bool, error)
	CreateBrand(ctx context.Context, b *Brand) (*Brand, error)
	UpdateBrand(ctx context.Context, b *Brand) (*Brand, error)
	DeleteBrand(ctx context.Context, id int64) error

	// Products
	GetProductDetail(ctx context.Context, id int64) (*ProductDetail, error)
	ListNewestProducts(ctx context.Context, limit int) ([]*Product, error)
	ListBestsellers(ctx context.Context, limit int) ([]*Product, error)
	ListSaleProducts(ctx context.Context, limit int) ([]*Product, error)
	SearchProducts(ctx context.Context, query string) ([]*Product, error)
	FilterProducts(ctx context.Context, f ProductFilter) (*ProductPage, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	IncrementSalesCount(ctx context.Context, id int64) (int, error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Store {
	return &Repository{db: q}
}

// ------------------------------------
// Transaction helper
// ------------------------------------
func (r *Repository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Printf("warning: rollback failed: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ------------------------------------
// Categories
// ------------------------------------
func (r *Repository) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*Category, error) {
	c := &Category{}
	err := r.db.QueryRow(ctx, `SELECT id, name, slug FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// categoryIDBySlug returns nil when no category has the slug.
func (r *Repository) categoryIDBySlug(ctx context.Context, slug string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM categories WHERE slug = $1`, slug).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve category slug: %w", err)
	}
	return &id, nil
}

func (r *Repository) CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID).Scan(&exists)
	return exists, err
}

func (r *Repository) CategoryHasBrands(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM brands WHERE category_id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *Repository) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	out := &Category{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug`, c.Name, c.Slug).
		Scan(&out.ID, &out.Name, &out.Slug)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return out, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, c *Category) (*Category, error) {
	out := &Category{}
	err := r.db.QueryRow(ctx, `
		UPDATE categories
		SET name = $1, slug = $2
		WHERE id = $3
		RETURNING id, name, slug`, c.Name, c.Slug, c.ID).
		Scan(&out.ID, &out.Name, &out.Slug)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrCategoryNotFound
		case pgCode(err) == pgUniqueViolation:
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return out, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return ErrCategoryHasBrands
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ------------------------------------
// Brands
// ------------------------------------
func (r *Repository) ListBrands(ctx context.Context) ([]*Brand, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, category_id FROM brands ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	list := []*Brand{}
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CategoryID); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetBrandByID(ctx context.Context, id int64) (*Brand, error) {
	b := &Brand{}
	err := r.db.QueryRow(ctx, `SELECT id, name, slug, category_id FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Slug, &b.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

func (r *Repository) BrandNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID).Scan(&exists)
	return exists, err
}

func (r *Repository) BrandHasProducts(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE brand_id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *Repository) CreateBrand(ctx context.Context, b *Brand) (*Brand, error) {
	out := &Brand{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO brands (name, slug, category_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, category_id`, b.Name, b.Slug, b.CategoryID).
		Scan(&out.ID, &out.Name, &out.Slug, &out.CategoryID)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return nil, ErrDuplicateBrand
		case pgForeignKeyViolation:
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return out, nil
}

func (r *Repository) UpdateBrand(ctx context.Context, b *Brand) (*Brand, error) {
	out := &Brand{}
	err := r.db.QueryRow(ctx, `
		UPDATE brands
		SET name = $1, slug = $2, category_id = $3
		WHERE id = $4
		RETURNING id, name, slug, category_id`, b.Name, b.Slug, b.CategoryID, b.ID).
		Scan(&out.ID, &out.Name, &out.Slug, &out.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		switch pgCode(err) {
		case pgUniqueViolation:
			return nil, ErrDuplicateBrand
		case pgForeignKeyViolation:
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return out, nil
}

func (r *Repository) DeleteBrand(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return ErrBrandHasProducts
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBrandNotFound
	}
	return nil
}

// ------------------------------------
// Products
// ------------------------------------
const productColumns = `p.id, p.title, p.description, p.images, p.price, p.original_price,
	p.review_count, p.in_stock, p.is_new, p.is_sale, p.sales_count, p.created_at, p.brand_id`

func productDest(p *Product) []any {
	return []any{
		&p.ID, &p.Title, &p.Description, &p.Images, &p.Price, &p.OriginalPrice,
		&p.ReviewCount, &p.InStock, &p.IsNew, &p.IsSale, &p.SalesCount, &p.CreatedAt, &p.BrandID,
	}
}

func (r *Repository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(productDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return list, nil
}

func (r *Repository) GetProductByID(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id).
		Scan(productDest(p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetProductDetail loads a product with its brand and category; either may be
// nil if the reference cannot be resolved.
func (r *Repository) GetProductDetail(ctx context.Context, id int64) (*ProductDetail, error) {
	var (
		p                          Product
		brandID, brandCatID, catID *int64
		brandName, brandSlug       *string
		catName, catSlug           *string
	)
	dest := append(productDest(&p), &brandID, &brandName, &brandSlug, &brandCatID, &catID, &catName, &catSlug)

	err := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`,
		       b.id, b.name, b.slug, b.category_id,
		       c.id, c.name, c.slug
		FROM products p
		LEFT JOIN brands b     ON b.id = p.brand_id
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE p.id = $1`, id).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}

	detail := &ProductDetail{Product: &p}
	if brandID != nil {
		detail.Brand = &Brand{ID: *brandID, Name: *brandName, Slug: *brandSlug, CategoryID: *brandCatID}
	}
	if catID != nil {
		detail.Category = &Category{ID: *catID, Name: *catName, Slug: *catSlug}
	}
	return detail, nil
}

func (r *Repository) ListNewestProducts(ctx context.Context, limit int) ([]*Product, error) {
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list newest products: %w", err)
	}
	return list, nil
}

func (r *Repository) ListBestsellers(ctx context.Context, limit int) ([]*Product, error) {
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		ORDER BY p.sales_count DESC, p.id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list bestsellers: %w", err)
	}
	return list, nil
}

func (r *Repository) ListSaleProducts(ctx context.Context, limit int) ([]*Product, error) {
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		WHERE p.is_sale = TRUE
		ORDER BY p.id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sale products: %w", err)
	}
	return list, nil
}

// ListProductsByBrand returns products of brandID in id order. limit <= 0
// means no limit.
func (r *Repository) ListProductsByBrand(ctx context.Context, brandID int64, excludeIDs []int64, limit int) ([]*Product, error) {
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		WHERE p.brand_id = $1
		  AND p.id <> ALL($2)
		ORDER BY p.id ASC
		LIMIT NULLIF($3, 0)`, brandID, excludeIDs, max(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list products by brand: %w", err)
	}
	return list, nil
}

func (r *Repository) ListProductsByCategory(ctx context.Context, categoryID int64, excludeIDs []int64, limit int) ([]*Product, error) {
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		JOIN brands b ON b.id = p.brand_id
		WHERE b.category_id = $1
		  AND p.id <> ALL($2)
		ORDER BY p.id ASC
		LIMIT NULLIF($3, 0)`, categoryID, excludeIDs, max(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return list, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchProducts matches query as a case-insensitive substring of the title.
// An empty query matches nothing.
func (r *Repository) SearchProducts(ctx context.Context, query string) ([]*Product, error) {
	if query == "" {
		return []*Product{}, nil
	}
	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		WHERE p.title ILIKE '%' || $1 || '%'
		ORDER BY p.id ASC`, likeEscaper.Replace(query))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

// FilterProducts resolves the category, scopes by category and brands,
// reads the price bounds of that scope, then narrows, sorts, counts and pages.
func (r *Repository) FilterProducts(ctx context.Context, f ProductFilter) (*ProductPage, error) {
	var categoryID *int64
	if f.CategorySlug != "" {
		id, err := r.categoryIDBySlug(ctx, f.CategorySlug)
		if err != nil {
			return nil, err
		}
		categoryID = id
	}

	q := buildFilterQuery(f, categoryID)
	const from = `
		FROM products p
		JOIN brands b     ON b.id = p.brand_id
		JOIN categories c ON c.id = b.category_id`

	var minPrice, maxPrice decimal.NullDecimal
	if err := r.db.QueryRow(ctx, `SELECT MIN(p.price), MAX(p.price)`+from+q.scope, q.scopeArgs...).
		Scan(&minPrice, &maxPrice); err != nil {
		return nil, fmt.Errorf("filter price bounds: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+from+q.where, q.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("filter count: %w", err)
	}

	pg := f.Pagination
	args := append(q.args, pg.Limit, pg.Offset)
	dataSQL := `SELECT ` + productColumns + `, b.name, c.name` + from + q.where + q.orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("filter products: %w", err)
	}
	defer rows.Close()

	cards := make([]*ProductCard, 0, pg.Limit)
	for rows.Next() {
		var pc ProductCard
		dest := append(productDest(&pc.Product), &pc.BrandName, &pc.CategoryName)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan product card: %w", err)
		}
		cards = append(cards, &pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	lo, hi := priceBounds(minPrice, maxPrice)
	return &ProductPage{
		Products: cards,
		Meta: FilterMeta{
			MinPrice:   lo,
			MaxPrice:   hi,
			Total:      total,
			Page:       pg.Page,
			Limit:      pg.Limit,
			TotalPages: totalPages(total, pg.Limit),
		},
	}, nil
}

// ListProducts returns a page of products in id order and the true total.
func (r *Repository) ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	list, err := r.queryProducts(ctx, `SELECT `+productColumns+`
		FROM products p
		ORDER BY p.id ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return list, total, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	if p.Images == nil {
		p.Images = []string{}
	}
	out := &Product{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (images, title, description, price, original_price, review_count,
		                      in_stock, is_new, is_sale, sales_count, brand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+strings.ReplaceAll(productColumns, "p.", ""),
		p.Images, p.Title, p.Description, p.Price, p.OriginalPrice, p.ReviewCount,
		p.InStock, p.IsNew, p.IsSale, p.SalesCount, p.BrandID).
		Scan(productDest(out)...)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, ErrInvalidBrand
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return out, nil
}

// UpdateProduct applies patch to the stored product under a row lock so
// concurrent patches do not overwrite each other's fields.
func (r *Repository) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error) {
	var out *Product
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		p := &Product{}
		err := tx.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1 FOR UPDATE`, id).
			Scan(productDest(p)...)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrProductNotFound
			}
			return fmt.Errorf("lock product: %w", err)
		}

		patch.Apply(p)
		if p.Images == nil {
			p.Images = []string{}
		}

		out = &Product{}
		err = tx.QueryRow(ctx, `
			UPDATE products
			SET images = $1, title = $2, description = $3, price = $4, original_price = $5,
			    review_count = $6, in_stock = $7, is_new = $8, is_sale = $9, sales_count = $10,
			    brand_id = $11
			WHERE id = $12
			RETURNING `+strings.ReplaceAll(productColumns, "p.", ""),
			p.Images, p.Title, p.Description, p.Price, p.OriginalPrice, p.ReviewCount,
			p.InStock, p.IsNew, p.IsSale, p.SalesCount, p.BrandID, id).
			Scan(productDest(out)...)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return ErrInvalidBrand
			}
			return fmt.Errorf("update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// IncrementSalesCount bumps the counter in a single statement and returns the
// new value.
func (r *Repository) IncrementSalesCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`UPDATE products SET sales_count = sales_count + 1 WHERE id = $1 RETURNING sales_count`, id).
		Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, fmt.Errorf("increment sales count: %w", err)
	}
	return count, nil
}
