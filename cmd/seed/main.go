package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"storefront/internal/db"
	"storefront/internal/domain/admins"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/storage"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type demoProduct struct {
	title    string
	price    string
	original string
	isNew    bool
	isSale   bool
	inStock  bool
	reviews  int
}

type demoBrand struct {
	name     string
	category string
	products []demoProduct
}

var demoCategories = []string{"Laptops", "Phones", "Accessories"}

var demoBrands = []demoBrand{
	{name: "Apple", category: "Laptops", products: []demoProduct{
		{title: "MacBook Air 13", price: "1099", inStock: true, isNew: true, reviews: 48},
		{title: "MacBook Pro 14", price: "1799", original: "1999", inStock: true, isSale: true, reviews: 112},
		{title: "MacBook Pro 16", price: "2499", inStock: false, reviews: 37},
	}},
	{name: "Samsung", category: "Phones", products: []demoProduct{
		{title: "Galaxy S24", price: "799", inStock: true, isNew: true, reviews: 203},
		{title: "Galaxy A55", price: "379", original: "449", inStock: true, isSale: true, reviews: 88},
		{title: "Galaxy Z Flip 6", price: "1099", inStock: true, reviews: 41},
	}},
	{name: "Asus", category: "Accessories", products: []demoProduct{
		{title: "ROG Gladius III Mouse", price: "79.99", inStock: true, reviews: 19},
		{title: "ROG Strix Scope Keyboard", price: "99.99", original: "129.99", inStock: true, isSale: true, reviews: 27},
		{title: "ZenScreen Portable Monitor", price: "249", inStock: false, isNew: true, reviews: 6},
	}},
}

func main() {
	username := flag.String("username", "", "Admin username to create or reset")
	password := flag.String("password", "", "Admin password")
	demo := flag.Bool("demo", false, "Also load a small demo catalog")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -username <name> -password <pass> [-demo]")
		os.Exit(2)
	}

	addr := os.Getenv("DB_ADDR")
	if addr == "" {
		logger.Fatal("DB_ADDR is required")
	}

	pool, err := db.New(addr, 4, "1m")
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	store := storage.NewContainer(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdmin(ctx, store.Admins, *username, *password); err != nil {
		logger.Fatalw("seed admin", "error", err)
	}
	logger.Infow("admin ready", "username", *username)

	if *demo {
		n, err := seedCatalog(ctx, store)
		if err != nil {
			logger.Fatalw("seed demo catalog", "error", err)
		}
		logger.Infow("demo catalog loaded", "products", n)
	}
}

// seedAdmin creates the admin, or resets the password of an existing one.
func seedAdmin(ctx context.Context, store admins.Store, username, password string) error {
	a := &admins.Admin{Username: username}
	if err := a.Password.Set(password); err != nil {
		return err
	}

	err := store.Create(ctx, a)
	if !errors.Is(err, admins.ErrDuplicateUsername) {
		return err
	}

	existing, err := store.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	existing.Password = a.Password
	return store.UpdatePassword(ctx, existing)
}

// seedCatalog loads the demo catalog in one transaction. It does nothing when
// the catalog already has categories.
func seedCatalog(ctx context.Context, store *storage.Container) (int, error) {
	existing, err := store.Catalog.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	err = store.WithTx(ctx, func(tx *storage.Tx) error {
		categoryIDs := make(map[string]int64, len(demoCategories))
		for _, name := range demoCategories {
			c, err := tx.Catalog.CreateCategory(ctx, &catalog.Category{Name: name, Slug: catalog.Slugify(name)})
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			categoryIDs[name] = c.ID
		}

		for _, bd := range demoBrands {
			b, err := tx.Catalog.CreateBrand(ctx, &catalog.Brand{
				Name:       bd.name,
				Slug:       catalog.Slugify(bd.name),
				CategoryID: categoryIDs[bd.category],
			})
			if err != nil {
				return fmt.Errorf("brand %q: %w", bd.name, err)
			}

			for _, dp := range bd.products {
				p := &catalog.Product{
					Title:       dp.title,
					Images:      []string{},
					Price:       decimal.RequireFromString(dp.price),
					ReviewCount: dp.reviews,
					InStock:     dp.inStock,
					IsNew:       dp.isNew,
					IsSale:      dp.isSale,
					BrandID:     b.ID,
				}
				if dp.original != "" {
					p.OriginalPrice = decimal.NewNullDecimal(decimal.RequireFromString(dp.original))
				}
				if err := p.Validate(); err != nil {
					return err
				}
				if _, err := tx.Catalog.CreateProduct(ctx, p); err != nil {
					return fmt.Errorf("product %q: %w", dp.title, err)
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
