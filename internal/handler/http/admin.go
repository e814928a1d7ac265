package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/scraper"
	"github.com/2bleO/CoolStff.com/internal/service"
	"github.com/2bleO/CoolStff.com/internal/social"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/validator"
)

// AdminHandler serves the admin-only write endpoints: catalog CRUD,
// scraping, and social caption drafts.
type AdminHandler struct {
	products   *service.ProductService
	articles   *service.ArticleService
	categories *service.CategoryService
	scraper    *scraper.Service
	social     *service.SocialService
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(
	products *service.ProductService,
	articles *service.ArticleService,
	categories *service.CategoryService,
	scrape *scraper.Service,
	socialSvc *service.SocialService,
) *AdminHandler {
	return &AdminHandler{
		products:   products,
		articles:   articles,
		categories: categories,
		scraper:    scrape,
		social:     socialSvc,
	}
}

type affiliateLinkRequest struct {
	Store string `json:"store" validate:"required,oneof=amazon aliexpress other"`
	URL   string `json:"url" validate:"required,url"`
	Price int64  `json:"price" validate:"gte=0"`
}

type productRequest struct {
	Title          string                 `json:"title" validate:"required,min=2,max=200"`
	Description    string                 `json:"description" validate:"required"`
	Price          int64                  `json:"price" validate:"gte=0"`
	Images         []string               `json:"images" validate:"dive,url"`
	CategoryID     string                 `json:"category_id" validate:"required,uuid"`
	AffiliateLinks []affiliateLinkRequest `json:"affiliate_links" validate:"dive"`
	Featured       bool                   `json:"featured"`
	Rating         float64                `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int                    `json:"review_count" validate:"gte=0"`
}

func (req productRequest) toInput() service.ProductInput {
	links := make([]service.AffiliateLinkInput, len(req.AffiliateLinks))
	for i, l := range req.AffiliateLinks {
		links[i] = service.AffiliateLinkInput{Store: l.Store, URL: l.URL, Price: l.Price}
	}
	return service.ProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Images:         req.Images,
		CategoryID:     req.CategoryID,
		AffiliateLinks: links,
		Featured:       req.Featured,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
	}
}

type articleRequest struct {
	Title      string `json:"title" validate:"required,min=2,max=200"`
	Content    string `json:"content" validate:"required"`
	Excerpt    string `json:"excerpt" validate:"max=500"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Featured   bool   `json:"featured"`
	Source     string `json:"source" validate:"max=100"`
	SourceURL  string `json:"source_url" validate:"omitempty,url"`
}

func (req articleRequest) toInput() service.ArticleInput {
	return service.ArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Source:     req.Source,
		SourceURL:  req.SourceURL,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type scrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type socialPostRequest struct {
	ContentID   string `json:"content_id" validate:"required,uuid"`
	ContentType string `json:"content_type" validate:"required,oneof=product article"`
	Platform    string `json:"platform" validate:"omitempty,oneof=facebook twitter instagram pinterest"`
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	product, err := h.products.Create(r.Context(), req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to create product")
		return
	}
	httputil.WriteData(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "product id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid product id")
		return
	}

	var req productRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	product, err := h.products.Update(r.Context(), id, req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to update product")
		return
	}
	httputil.WriteData(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "product id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid product id")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	article, err := h.articles.Create(r.Context(), req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to create article")
		return
	}
	httputil.WriteData(w, http.StatusCreated, article)
}

func (h *AdminHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "article id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid article id")
		return
	}

	var req articleRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	article, err := h.articles.Update(r.Context(), id, req.toInput())
	if err != nil {
		httputil.WriteError(w, r, err, "failed to update article")
		return
	}
	httputil.WriteData(w, http.StatusOK, article)
}

func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "article id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid article id")
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, "failed to delete article")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	category, err := h.categories.Create(r.Context(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to create category")
		return
	}
	httputil.WriteData(w, http.StatusCreated, category)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "category id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid category id")
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Scrape fetches affiliate content from a supported site and returns
// the extracted draft without persisting it. The admin reviews the
// draft and saves it through the product or article endpoints.
func (h *AdminHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	content, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to scrape content")
		return
	}
	httputil.WriteData(w, http.StatusOK, content)
}

func (h *AdminHandler) SocialPosts(w http.ResponseWriter, r *http.Request) {
	var req socialPostRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	var platform *social.Platform
	if req.Platform != "" {
		p := social.Platform(req.Platform)
		platform = &p
	}

	contentType := domain.ContentType(req.ContentType)
	if !contentType.Valid() {
		httputil.WriteError(w, r, apperrors.InvalidInput("content_type must be product or article"), "invalid request")
		return
	}

	posts, err := h.social.Drafts(r.Context(), contentType, req.ContentID, platform)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to generate drafts")
		return
	}
	httputil.WriteData(w, http.StatusOK, posts)
}
