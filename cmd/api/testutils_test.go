package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/blob"
	"storefront/internal/cache"
	"storefront/internal/domain/admins"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/storage"
	"storefront/internal/ratelimiter"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// memCatalog is an in-memory catalog.Store.
type memCatalog struct {
	mu         sync.Mutex
	categories map[int64]*catalog.Category
	brands     map[int64]*catalog.Brand
	products   map[int64]*catalog.Product
	nextID     int64
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		categories: map[int64]*catalog.Category{},
		brands:     map[int64]*catalog.Brand{},
		products:   map[int64]*catalog.Product{},
	}
}

func (m *memCatalog) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memCatalog) WithTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func (m *memCatalog) ListCategories(context.Context) ([]*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*catalog.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCatalog) GetCategoryByID(_ context.Context, id int64) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, catalog.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCatalog) CategoryNameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCatalog) CategoryHasBrands(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.brands {
		if b.CategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCatalog) CreateCategory(_ context.Context, c *catalog.Category) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	cp.ID = m.id()
	m.categories[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCatalog) UpdateCategory(_ context.Context, c *catalog.Category) (*catalog.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[c.ID]; !ok {
		return nil, catalog.ErrCategoryNotFound
	}
	cp := *c
	m.categories[c.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCatalog) DeleteCategory(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return catalog.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memCatalog) ListBrands(context.Context) ([]*catalog.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*catalog.Brand, 0, len(m.brands))
	for _, b := range m.brands {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCatalog) GetBrandByID(_ context.Context, id int64) (*catalog.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.brands[id]
	if !ok {
		return nil, catalog.ErrBrandNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memCatalog) BrandNameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.brands {
		if b.ID != excludeID && strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCatalog) BrandHasProducts(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.BrandID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCatalog) CreateBrand(_ context.Context, b *catalog.Brand) (*catalog.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[b.CategoryID]; !ok {
		return nil, catalog.ErrInvalidCategory
	}
	cp := *b
	cp.ID = m.id()
	m.brands[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCatalog) UpdateBrand(_ context.Context, b *catalog.Brand) (*catalog.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[b.ID]; !ok {
		return nil, catalog.ErrBrandNotFound
	}
	cp := *b
	m.brands[b.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCatalog) DeleteBrand(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[id]; !ok {
		return catalog.ErrBrandNotFound
	}
	delete(m.brands, id)
	return nil
}

func (m *memCatalog) GetProductByID(_ context.Context, id int64) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memCatalog) GetProductDetail(ctx context.Context, id int64) (*catalog.ProductDetail, error) {
	p, err := m.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &catalog.ProductDetail{Product: p}
	if b, err := m.GetBrandByID(ctx, p.BrandID); err == nil {
		d.Brand = b
		if c, err := m.GetCategoryByID(ctx, b.CategoryID); err == nil {
			d.Category = c
		}
	}
	return d, nil
}

// sortedProducts returns copies in id order, keeping those keep accepts.
func (m *memCatalog) sortedProducts(keep func(*catalog.Product) bool) []*catalog.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*catalog.Product{}
	for _, p := range m.products {
		if keep == nil || keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func head(ps []*catalog.Product, limit int) []*catalog.Product {
	if limit > 0 && len(ps) > limit {
		return ps[:limit]
	}
	return ps
}

func (m *memCatalog) ListNewestProducts(_ context.Context, limit int) ([]*catalog.Product, error) {
	ps := m.sortedProducts(nil)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
	return head(ps, limit), nil
}

func (m *memCatalog) ListBestsellers(_ context.Context, limit int) ([]*catalog.Product, error) {
	ps := m.sortedProducts(nil)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].SalesCount > ps[j].SalesCount })
	return head(ps, limit), nil
}

func (m *memCatalog) ListSaleProducts(_ context.Context, limit int) ([]*catalog.Product, error) {
	return head(m.sortedProducts(func(p *catalog.Product) bool { return p.IsSale }), limit), nil
}

func (m *memCatalog) ListProductsByBrand(_ context.Context, brandID int64, excludeIDs []int64, limit int) ([]*catalog.Product, error) {
	ps := m.sortedProducts(func(p *catalog.Product) bool {
		return p.BrandID == brandID && !slices.Contains(excludeIDs, p.ID)
	})
	return head(ps, limit), nil
}

func (m *memCatalog) ListProductsByCategory(_ context.Context, categoryID int64, excludeIDs []int64, limit int) ([]*catalog.Product, error) {
	m.mu.Lock()
	inCategory := map[int64]bool{}
	for _, b := range m.brands {
		if b.CategoryID == categoryID {
			inCategory[b.ID] = true
		}
	}
	m.mu.Unlock()

	ps := m.sortedProducts(func(p *catalog.Product) bool {
		return inCategory[p.BrandID] && !slices.Contains(excludeIDs, p.ID)
	})
	return head(ps, limit), nil
}

func (m *memCatalog) SearchProducts(_ context.Context, query string) ([]*catalog.Product, error) {
	if query == "" {
		return []*catalog.Product{}, nil
	}
	q := strings.ToLower(query)
	return m.sortedProducts(func(p *catalog.Product) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	}), nil
}

// FilterProducts covers brand slugs, stock, sale and pagination; enough to
// exercise the handler's response shape.
func (m *memCatalog) FilterProducts(_ context.Context, f catalog.ProductFilter) (*catalog.ProductPage, error) {
	m.mu.Lock()
	slugs := map[int64]*catalog.Brand{}
	for _, b := range m.brands {
		if len(f.BrandSlugs) == 0 || slices.Contains(f.BrandSlugs, b.Slug) {
			slugs[b.ID] = b
		}
	}
	m.mu.Unlock()

	ps := m.sortedProducts(func(p *catalog.Product) bool {
		if _, ok := slugs[p.BrandID]; !ok {
			return false
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			return false
		}
		if f.IsSale != nil && p.IsSale != *f.IsSale {
			return false
		}
		return true
	})

	meta := catalog.FilterMeta{
		MinPrice: catalog.DefaultMinPrice,
		MaxPrice: catalog.DefaultMaxPrice,
		Total:    len(ps),
		Page:     f.Pagination.Page,
		Limit:    f.Pagination.Limit,
	}
	if f.Pagination.Limit > 0 {
		meta.TotalPages = (len(ps) + f.Pagination.Limit - 1) / f.Pagination.Limit
	}

	cards := []*catalog.ProductCard{}
	start := min(f.Pagination.Offset, len(ps))
	end := min(start+f.Pagination.Limit, len(ps))
	for _, p := range ps[start:end] {
		cards = append(cards, &catalog.ProductCard{Product: *p, BrandName: slugs[p.BrandID].Name})
	}
	return &catalog.ProductPage{Products: cards, Meta: meta}, nil
}

func (m *memCatalog) ListProducts(_ context.Context, limit, offset int) ([]*catalog.Product, int, error) {
	ps := m.sortedProducts(nil)
	start := min(offset, len(ps))
	end := min(start+limit, len(ps))
	return ps[start:end], len(ps), nil
}

func (m *memCatalog) CreateProduct(_ context.Context, p *catalog.Product) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[p.BrandID]; !ok {
		return nil, catalog.ErrInvalidBrand
	}
	cp := *p
	cp.ID = m.id()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	m.products[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCatalog) UpdateProduct(_ context.Context, id int64, patch catalog.ProductPatch) (*catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	if patch.BrandID != nil {
		if _, ok := m.brands[*patch.BrandID]; !ok {
			return nil, catalog.ErrInvalidBrand
		}
	}
	patch.Apply(p)
	out := *p
	return &out, nil
}

func (m *memCatalog) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return catalog.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memCatalog) IncrementSalesCount(_ context.Context, id int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return 0, catalog.ErrProductNotFound
	}
	p.SalesCount++
	return p.SalesCount, nil
}

// seeding helpers

func (m *memCatalog) addCategory(t *testing.T, name string) *catalog.Category {
	t.Helper()
	c, err := m.CreateCategory(context.Background(), &catalog.Category{Name: name, Slug: catalog.Slugify(name)})
	require.NoError(t, err)
	return c
}

func (m *memCatalog) addBrand(t *testing.T, name string, categoryID int64) *catalog.Brand {
	t.Helper()
	b, err := m.CreateBrand(context.Background(), &catalog.Brand{Name: name, Slug: catalog.Slugify(name), CategoryID: categoryID})
	require.NoError(t, err)
	return b
}

func (m *memCatalog) addProduct(t *testing.T, title string, price int64, brandID int64) *catalog.Product {
	t.Helper()
	p, err := m.CreateProduct(context.Background(), &catalog.Product{
		Title:   title,
		Price:   decimal.NewFromInt(price),
		InStock: true,
		BrandID: brandID,
	})
	require.NoError(t, err)
	return p
}

// memAdmins is an in-memory admins.Store.
type memAdmins struct {
	mu     sync.Mutex
	byID   map[int64]*admins.Admin
	nextID int64
}

func newMemAdmins() *memAdmins {
	return &memAdmins{byID: map[int64]*admins.Admin{}}
}

func (m *memAdmins) GetByID(_ context.Context, id int64) (*admins.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, admins.ErrNotFound
	}
	return a, nil
}

func (m *memAdmins) GetByUsername(_ context.Context, username string) (*admins.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, admins.ErrNotFound
}

func (m *memAdmins) Create(_ context.Context, a *admins.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Username == a.Username {
			return admins.ErrDuplicateUsername
		}
	}
	m.nextID++
	a.ID = m.nextID
	m.byID[a.ID] = a
	return nil
}

func (m *memAdmins) UpdatePassword(_ context.Context, a *admins.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[a.ID]; !ok {
		return admins.ErrNotFound
	}
	m.byID[a.ID] = a
	return nil
}

func (m *memAdmins) remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

func (m *memAdmins) add(t *testing.T, username, password string) *admins.Admin {
	t.Helper()
	a := &admins.Admin{Username: username}
	require.NoError(t, a.Password.Set(password))
	require.NoError(t, m.Create(context.Background(), a))
	return a
}

// fakeUploader records the last upload and returns url or err.
type fakeUploader struct {
	url         string
	err         error
	key         string
	contentType string
	body        []byte
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key, f.contentType = key, contentType
	f.body, _ = io.ReadAll(r)
	return f.url, nil
}

var (
	_ blob.Uploader = (*fakeUploader)(nil)
	_ catalog.Store = (*memCatalog)(nil)
	_ admins.Store  = (*memAdmins)(nil)
)

type testApp struct {
	*application
	catalog  *memCatalog
	admins   *memAdmins
	uploader *fakeUploader
	handler  http.Handler
}

func newTestApplication(t *testing.T, mutate ...func(*config)) *testApp {
	t.Helper()

	cfg := config{
		env: "test",
		auth: authConfig{
			basic: basicConfig{user: "ops", pass: "secret"},
			token: tokenConfig{
				secret:          testSecret,
				iss:             "storefront",
				accessTokenExp:  30 * time.Minute,
				sessionTokenExp: 24 * time.Hour,
			},
			cookie: cookieConfig{csrfEnabled: true},
		},
		upload:      uploadConfig{folder: "products"},
		rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 1000, TimeFrame: time.Minute, Enabled: true},
	}
	for _, fn := range mutate {
		fn(&cfg)
	}

	limiter := ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
	t.Cleanup(limiter.Stop)

	cat := newMemCatalog()
	adm := newMemAdmins()
	up := &fakeUploader{url: "https://cdn.example.com/products/img.png"}

	app := &application{
		config:        cfg,
		store:         &storage.Container{Catalog: cat, Admins: adm},
		logger:        zap.NewNop().Sugar(),
		uploader:      up,
		cache:         cache.Noop{},
		authenticator: auth.NewJWTAuthenticator(cfg.auth.token.secret, cfg.auth.token.iss, cfg.auth.token.iss),
		rateLimiter:   limiter,
	}

	return &testApp{application: app, catalog: cat, admins: adm, uploader: up, handler: app.mount()}
}

func (ta *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	ta.handler.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// session holds the cookies a successful login sets.
type session struct {
	token string
	csrf  string
}

// authorize attaches the session cookies and, for unsafe methods, the CSRF header.
func (s session) authorize(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: s.token})
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: s.csrf})
	if !isSafeMethod(req.Method) {
		req.Header.Set(csrfHeaderName, s.csrf)
	}
	return req
}

func (ta *testApp) login(t *testing.T, username, password string) session {
	t.Helper()
	rr := ta.do(t, jsonRequest(t, http.MethodPost, "/api/admin/login", LoginPayload{Username: username, Password: password}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var s session
	for _, c := range rr.Result().Cookies() {
		switch c.Name {
		case adminCookieName:
			s.token = c.Value
		case csrfCookieName:
			s.csrf = c.Value
		}
	}
	require.NotEmpty(t, s.token)
	require.NotEmpty(t, s.csrf)
	return s
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
