// Package pagination pages already-ordered result sets for display.
// Feed queries return every matching record; paging happens after ordering,
// so page N is always the same slice of the same ordered result.
package pagination

import "fmt"

// Config bounds the page size.
type Config struct {
	DefaultPage int
	MaxLimit    int
}

// DefaultConfig returns page=1 and a maximum of 100 items per page.
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		MaxLimit:    100,
	}
}

// Params selects one page. A zero Limit disables paging.
type Params struct {
	Page  int // 1-based
	Limit int
}

// Enabled reports whether the params request paging at all.
func (p Params) Enabled() bool {
	return p.Limit > 0
}

// Validate checks the params against cfg. Disabled paging is always valid.
func (p Params) Validate(cfg Config) error {
	if !p.Enabled() {
		return nil
	}
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit > cfg.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", cfg.MaxLimit)
	}
	return nil
}

// WithDefaults fills a missing page number.
func (p Params) WithDefaults(cfg Config) Params {
	if p.Page <= 0 {
		p.Page = cfg.DefaultPage
	}
	return p
}

// CalculateOffset returns the index of the first item on page.
//
//   - Page 1, Limit 20 -> Offset 0
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages uses ceiling division. An empty result still has one page.
func CalculateTotalPages(total, limit int) int {
	if total == 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// Metadata describes the page that was cut.
type Metadata struct {
	Total      int `json:"total" yaml:"total"`
	Page       int `json:"page" yaml:"page"`
	Limit      int `json:"limit" yaml:"limit"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// Response wraps one page of items with its metadata.
type Response[T any] struct {
	Data       []T      `json:"data" yaml:"data"`
	Pagination Metadata `json:"pagination" yaml:"pagination"`
}

// Paginate cuts the requested page out of items. A page past the end is empty, not an error.
func Paginate[T any](items []T, p Params) Response[T] {
	total := len(items)
	start := min(CalculateOffset(p.Page, p.Limit), total)
	end := min(start+p.Limit, total)

	page := make([]T, end-start)
	copy(page, items[start:end])
	return Response[T]{
		Data: page,
		Pagination: Metadata{
			Total:      total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: CalculateTotalPages(total, p.Limit),
		},
	}
}
