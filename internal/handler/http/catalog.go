package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/2bleO/CoolStff.com/internal/catalog"
	"github.com/2bleO/CoolStff.com/internal/service"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/pagination"
)

// CatalogHandler serves the public read endpoints.
type CatalogHandler struct {
	catalog  *service.CatalogService
	articles *service.ArticleService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(catalog *service.CatalogService, articles *service.ArticleService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, articles: articles}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to list categories")
		return
	}
	httputil.WriteData(w, http.StatusOK, categories)
}

// CategoryListing runs the catalog query for one category. Filter, sort,
// and pagination come from query parameters; invalid values surface as
// 400s straight from the query engine.
func (h *CatalogHandler) CategoryListing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	filter, err := parseFilter(r)
	if err != nil {
		httputil.WriteError(w, r, err, "invalid filter")
		return
	}

	sortKey := catalog.SortLatest
	if raw := r.URL.Query().Get("sort"); raw != "" {
		sortKey, err = catalog.ParseSortKey(raw)
		if err != nil {
			httputil.WriteError(w, r, err, "invalid sort key")
			return
		}
	}

	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, r, err, "invalid pagination")
		return
	}

	listing, err := h.catalog.CategoryListing(r.Context(), slug, filter, sortKey, page)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to load category")
		return
	}

	httputil.WriteData(w, http.StatusOK, map[string]any{
		"category": listing.Category,
		"products": listing.Products,
		"articles": listing.Articles,
		"total":    listing.Total,
	})
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.AllProducts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to list products")
		return
	}

	out := make([]map[string]any, len(products))
	for i, p := range products {
		out[i] = map[string]any{
			"product":  p.Product,
			"category": p.Category,
		}
	}
	httputil.WriteData(w, http.StatusOK, out)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "product id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid product id")
		return
	}

	detail, err := h.catalog.ProductDetail(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to load product")
		return
	}
	httputil.WriteData(w, http.StatusOK, map[string]any{
		"product":  detail.Product,
		"category": detail.Category,
	})
}

func (h *CatalogHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "article id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid article id")
		return
	}

	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to load article")
		return
	}
	httputil.WriteData(w, http.StatusOK, article)
}

func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 6)
	products, err := h.catalog.FeaturedProducts(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to load featured products")
		return
	}
	httputil.WriteData(w, http.StatusOK, products)
}

func (h *CatalogHandler) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 3)
	articles, err := h.catalog.FeaturedArticles(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to load featured articles")
		return
	}
	httputil.WriteData(w, http.StatusOK, articles)
}

func parseFilter(r *http.Request) (catalog.FilterSpec, error) {
	filter := catalog.DefaultFilter()
	q := r.URL.Query()

	if raw := q.Get("price_min"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, apperrors.InvalidInput("price_min must be an integer number of cents")
		}
		filter.PriceMin = v
	}
	if raw := q.Get("price_max"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, apperrors.InvalidInput("price_max must be an integer number of cents")
		}
		filter.PriceMax = v
	}
	if raw := q.Get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, apperrors.InvalidInput("min_rating must be a number")
		}
		filter.MinRating = v
	}
	return filter, nil
}

// parsePage maps offset/limit query parameters to a page, with
// page/per_page accepted as an alternate style. Absent all of them the
// listing is unpaginated. Bounds checking on offset/limit is left to
// the query engine so negative values get its invalid-argument
// treatment.
func parsePage(r *http.Request) (*catalog.Page, error) {
	q := r.URL.Query()
	rawOffset, rawLimit := q.Get("offset"), q.Get("limit")
	if rawOffset == "" && rawLimit == "" {
		if q.Get("page") == "" && q.Get("per_page") == "" {
			return nil, nil
		}
		p := pagination.FromRequest(r)
		return &catalog.Page{Offset: p.Offset, Limit: p.PerPage}, nil
	}

	page := &catalog.Page{Offset: 0, Limit: 20}
	if rawOffset != "" {
		v, err := strconv.Atoi(rawOffset)
		if err != nil {
			return nil, apperrors.InvalidInput("offset must be an integer")
		}
		page.Offset = v
	}
	if rawLimit != "" {
		v, err := strconv.Atoi(rawLimit)
		if err != nil {
			return nil, apperrors.InvalidInput("limit must be an integer")
		}
		page.Limit = v
	}
	return page, nil
}

func parseLimit(r *http.Request, fallback int) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 50 {
			return v
		}
	}
	return fallback
}
