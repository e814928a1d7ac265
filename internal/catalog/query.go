// Package catalog implements the in-memory catalog query engine: filtering,
// stable sorting, and pagination over product snapshots, plus the
// favorite-set and comment-ordering helpers that share its id-relationship
// rules. Everything here is pure: inputs are never mutated, outputs are
// freshly allocated, and results are deterministic for a given input.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// NoPriceCap disables the upper price bound.
const NoPriceCap = int64(math.MaxInt64)

// FilterSpec selects products by price range and minimum rating. Prices
// are in cents. The zero-filter is {0, NoPriceCap, 0}.
type FilterSpec struct {
	PriceMin  int64
	PriceMax  int64
	MinRating float64
}

// DefaultFilter returns a filter that matches everything.
func DefaultFilter() FilterSpec {
	return FilterSpec{PriceMin: 0, PriceMax: NoPriceCap, MinRating: 0}
}

func (f FilterSpec) validate() error {
	if f.PriceMin < 0 {
		return apperrors.InvalidInput("price minimum must not be negative")
	}
	if f.PriceMax < f.PriceMin {
		return apperrors.InvalidInput("price maximum must not be below price minimum")
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return apperrors.InvalidInput("minimum rating must be between 0 and 5")
	}
	return nil
}

func (f FilterSpec) matches(p domain.Product) bool {
	return p.Price >= f.PriceMin && p.Price <= f.PriceMax && p.Rating >= f.MinRating
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortLatest    SortKey = "latest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey validates a raw sort key string.
func ParseSortKey(raw string) (SortKey, error) {
	switch key := SortKey(raw); key {
	case SortLatest, SortPriceLow, SortPriceHigh, SortRating:
		return key, nil
	default:
		return "", apperrors.InvalidInput(fmt.Sprintf("unknown sort key %q", raw))
	}
}

// Page selects the half-open slice [Offset, Offset+Limit) of the sorted
// result. A nil *Page means no pagination.
type Page struct {
	Offset int
	Limit  int
}

func (p *Page) validate() error {
	if p == nil {
		return nil
	}
	if p.Offset < 0 {
		return apperrors.InvalidInput("pagination offset must not be negative")
	}
	if p.Limit < 0 {
		return apperrors.InvalidInput("pagination limit must not be negative")
	}
	return nil
}

// Result is the outcome of a catalog query. Total counts all items that
// matched the filter, before pagination.
type Result struct {
	Products []domain.Product
	Total    int
}

// Query filters, sorts, and optionally paginates a product snapshot.
//
// The input slice is never modified. Sorting is stable: products with
// equal sort keys keep their relative input order. An offset past the end
// of the filtered set yields an empty result, not an error. Calling Query
// twice with the same arguments yields identical output.
func Query(items []domain.Product, filter FilterSpec, sortKey SortKey, page *Page) (Result, error) {
	if err := filter.validate(); err != nil {
		return Result{}, err
	}
	if _, err := ParseSortKey(string(sortKey)); err != nil {
		return Result{}, err
	}
	if err := page.validate(); err != nil {
		return Result{}, err
	}

	filtered := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if filter.matches(p) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, less(sortKey, filtered))

	total := len(filtered)
	if page != nil {
		if page.Offset >= total {
			return Result{Products: []domain.Product{}, Total: total}, nil
		}
		end := page.Offset + page.Limit
		if end > total {
			end = total
		}
		filtered = filtered[page.Offset:end]
	}

	return Result{Products: filtered, Total: total}, nil
}

func less(key SortKey, items []domain.Product) func(i, j int) bool {
	switch key {
	case SortPriceLow:
		return func(i, j int) bool { return items[i].Price < items[j].Price }
	case SortPriceHigh:
		return func(i, j int) bool { return items[i].Price > items[j].Price }
	case SortRating:
		return func(i, j int) bool { return items[i].Rating > items[j].Rating }
	default: // SortLatest
		return func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) }
	}
}

// ResolveCategory maps each product id to its category, or nil when the
// product's CategoryID matches no supplied category. A dangling reference
// is expected data drift, never an error.
func ResolveCategory(items []domain.Product, categories []domain.Category) map[string]*domain.Category {
	byID := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	resolved := make(map[string]*domain.Category, len(items))
	for _, p := range items {
		resolved[p.ID] = byID[p.CategoryID]
	}
	return resolved
}
