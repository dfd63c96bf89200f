package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// URL: /products/filter?page=2&limit=12
// → ParsePagination() → Pagination{Limit:12, Page:2, Offset:12}
// → SQL: SELECT ... LIMIT 12 OFFSET 12
// → ComputeMeta(total) fills TotalPages, HasNext, HasPrev.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"-"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Options names the limit key and its bounds. Keys are case sensitive.
type Options struct {
	LimitKey     string
	DefaultLimit int
	MaxLimit     int
}

var (
	// Storefront listings: ?page=&limit=, 12 per page.
	Storefront = Options{LimitKey: "limit", DefaultLimit: 12, MaxLimit: 100}
	// Admin listings: ?page=&per_page=, 10 per page.
	Admin = Options{LimitKey: "per_page", DefaultLimit: 10, MaxLimit: 100}
)

// ParsePagination never fails: unparsable or out-of-range values fall back to
// the defaults in opts.
func ParsePagination(q url.Values, opts Options) Pagination {
	p := Pagination{
		Limit: opts.DefaultLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get(opts.LimitKey)); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = opts.DefaultLimit
			case opts.MaxLimit > 0 && limit > opts.MaxLimit:
				p.Limit = opts.MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	// keep (page-1)*limit inside int; such pages are past the end anyway
	if p.Limit > 0 && p.Page > math.MaxInt/p.Limit {
		p.Page = math.MaxInt / p.Limit
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}
