package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

func productAt(id string, price int64, rating float64, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Title:     "product " + id,
		Price:     price,
		Rating:    rating,
		CreatedAt: createdAt,
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQuery_FilterByPriceRange(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("cheap", 1000, 4.0, t1),
		productAt("mid", 5000, 2.0, t1),
	}

	tests := []struct {
		name    string
		filter  FilterSpec
		wantIDs []string
	}{
		{
			name:    "open filter keeps everything",
			filter:  DefaultFilter(),
			wantIDs: []string{"cheap", "mid"},
		},
		{
			name:    "lower bound excludes cheaper item",
			filter:  FilterSpec{PriceMin: 2000, PriceMax: 10000},
			wantIDs: []string{"mid"},
		},
		{
			name:    "upper bound excludes pricier item",
			filter:  FilterSpec{PriceMin: 0, PriceMax: 2000},
			wantIDs: []string{"cheap"},
		},
		{
			name:    "bounds are inclusive",
			filter:  FilterSpec{PriceMin: 1000, PriceMax: 5000},
			wantIDs: []string{"cheap", "mid"},
		},
		{
			name:    "minimum rating excludes low-rated item",
			filter:  FilterSpec{PriceMin: 0, PriceMax: NoPriceCap, MinRating: 3.0},
			wantIDs: []string{"cheap"},
		},
		{
			name:    "no item matches",
			filter:  FilterSpec{PriceMin: 9000, PriceMax: 10000},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Query(items, tt.filter, SortPriceLow, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(result.Products))
			assert.Equal(t, len(tt.wantIDs), result.Total)
		})
	}
}

func TestQuery_FilterMatchesAppearExactlyOnce(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("a", 100, 1.0, t1),
		productAt("b", 200, 2.0, t1),
		productAt("c", 300, 3.0, t1),
		productAt("d", 400, 4.0, t1),
	}
	filter := FilterSpec{PriceMin: 150, PriceMax: 350, MinRating: 2.0}

	result, err := Query(items, filter, SortLatest, nil)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, p := range result.Products {
		assert.GreaterOrEqual(t, p.Price, filter.PriceMin)
		assert.LessOrEqual(t, p.Price, filter.PriceMax)
		assert.GreaterOrEqual(t, p.Rating, filter.MinRating)
		seen[p.ID]++
	}
	for _, p := range items {
		if p.Price >= filter.PriceMin && p.Price <= filter.PriceMax && p.Rating >= filter.MinRating {
			assert.Equal(t, 1, seen[p.ID], "item %s should appear exactly once", p.ID)
		} else {
			assert.Zero(t, seen[p.ID], "item %s should be excluded", p.ID)
		}
	}
}

func TestQuery_SortOrders(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("oldest-cheap", 1000, 3.0, base),
		productAt("newest-mid", 2500, 5.0, base.Add(2*time.Hour)),
		productAt("middle-pricey", 9000, 4.0, base.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		sortKey SortKey
		wantIDs []string
	}{
		{"latest is newest first", SortLatest, []string{"newest-mid", "middle-pricey", "oldest-cheap"}},
		{"price-low is ascending", SortPriceLow, []string{"oldest-cheap", "newest-mid", "middle-pricey"}},
		{"price-high is descending", SortPriceHigh, []string{"middle-pricey", "newest-mid", "oldest-cheap"}},
		{"rating is descending", SortRating, []string{"newest-mid", "middle-pricey", "oldest-cheap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Query(items, DefaultFilter(), tt.sortKey, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(result.Products))
		})
	}
}

func TestQuery_SortIsStable(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// All four share the same price, rating, and timestamp, so every sort
	// key must preserve the input order.
	items := []domain.Product{
		productAt("first", 1500, 4.0, t1),
		productAt("second", 1500, 4.0, t1),
		productAt("third", 1500, 4.0, t1),
		productAt("fourth", 1500, 4.0, t1),
	}

	for _, key := range []SortKey{SortLatest, SortPriceLow, SortPriceHigh, SortRating} {
		t.Run(string(key), func(t *testing.T) {
			result, err := Query(items, DefaultFilter(), key, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"first", "second", "third", "fourth"}, ids(result.Products))
		})
	}
}

func TestQuery_Pagination(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("a", 100, 0, t1),
		productAt("b", 200, 0, t1),
		productAt("c", 300, 0, t1),
		productAt("d", 400, 0, t1),
		productAt("e", 500, 0, t1),
	}

	tests := []struct {
		name      string
		page      *Page
		wantIDs   []string
		wantTotal int
	}{
		{"nil page returns everything", nil, []string{"a", "b", "c", "d", "e"}, 5},
		{"first page", &Page{Offset: 0, Limit: 2}, []string{"a", "b"}, 5},
		{"middle page", &Page{Offset: 2, Limit: 2}, []string{"c", "d"}, 5},
		{"short final page", &Page{Offset: 4, Limit: 2}, []string{"e"}, 5},
		{"offset at end is empty", &Page{Offset: 5, Limit: 2}, []string{}, 5},
		{"offset past end is empty", &Page{Offset: 100, Limit: 2}, []string{}, 5},
		{"zero limit is empty", &Page{Offset: 1, Limit: 0}, []string{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Query(items, DefaultFilter(), SortPriceLow, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(result.Products))
			assert.Equal(t, tt.wantTotal, result.Total)
		})
	}
}

func TestQuery_InvalidArguments(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{productAt("a", 100, 4.0, t1)}

	tests := []struct {
		name    string
		filter  FilterSpec
		sortKey SortKey
		page    *Page
	}{
		{"negative price minimum", FilterSpec{PriceMin: -1, PriceMax: 100}, SortLatest, nil},
		{"max below min", FilterSpec{PriceMin: 500, PriceMax: 100}, SortLatest, nil},
		{"rating below range", FilterSpec{PriceMax: NoPriceCap, MinRating: -0.1}, SortLatest, nil},
		{"rating above range", FilterSpec{PriceMax: NoPriceCap, MinRating: 5.1}, SortLatest, nil},
		{"unknown sort key", DefaultFilter(), SortKey("alphabetical"), nil},
		{"empty sort key", DefaultFilter(), SortKey(""), nil},
		{"negative offset", DefaultFilter(), SortLatest, &Page{Offset: -1, Limit: 10}},
		{"negative limit", DefaultFilter(), SortLatest, &Page{Offset: 0, Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Query(items, tt.filter, tt.sortKey, tt.page)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestQuery_EmptyInput(t *testing.T) {
	result, err := Query(nil, DefaultFilter(), SortLatest, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Zero(t, result.Total)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("z", 900, 1.0, base),
		productAt("a", 100, 5.0, base.Add(time.Hour)),
		productAt("m", 500, 3.0, base.Add(2*time.Hour)),
	}
	original := make([]domain.Product, len(items))
	copy(original, items)

	_, err := Query(items, DefaultFilter(), SortPriceLow, &Page{Offset: 0, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, original, items)
}

func TestQuery_Idempotent(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Product{
		productAt("b", 300, 4.0, base),
		productAt("a", 300, 4.0, base),
		productAt("c", 100, 2.0, base.Add(time.Minute)),
	}
	filter := FilterSpec{PriceMin: 0, PriceMax: 400, MinRating: 1.0}
	page := &Page{Offset: 0, Limit: 10}

	first, err := Query(items, filter, SortRating, page)
	require.NoError(t, err)
	second, err := Query(items, filter, SortRating, page)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseSortKey(t *testing.T) {
	for _, raw := range []string{"latest", "price-low", "price-high", "rating"} {
		key, err := ParseSortKey(raw)
		require.NoError(t, err)
		assert.Equal(t, SortKey(raw), key)
	}

	_, err := ParseSortKey("popularity")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestResolveCategory(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-1", Name: "Smart Home", Slug: "smart-home"},
		{ID: "cat-2", Name: "Gadgets", Slug: "gadgets"},
	}
	items := []domain.Product{
		{ID: "p1", CategoryID: "cat-1"},
		{ID: "p2", CategoryID: "cat-2"},
		{ID: "p3", CategoryID: "cat-deleted"},
		{ID: "p4", CategoryID: ""},
	}

	resolved := ResolveCategory(items, categories)

	require.Len(t, resolved, 4)
	require.NotNil(t, resolved["p1"])
	assert.Equal(t, "Smart Home", resolved["p1"].Name)
	require.NotNil(t, resolved["p2"])
	assert.Equal(t, "gadgets", resolved["p2"].Slug)
	assert.Nil(t, resolved["p3"], "dangling category reference resolves to nil, not an error")
	assert.Nil(t, resolved["p4"])
}
