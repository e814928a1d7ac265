package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

const (
	catID     = "a9f0d9e1-5b1c-4c5e-9f0a-8d4c2b1a0e9f"
	productID = "4f8b1c2d-3e4a-4b5c-8d9e-0f1a2b3c4d5e"
	userID    = "7c6b5a49-3827-4161-b0a9-f8e7d6c5b4a3"
)

func doJSON(t *testing.T, env *testEnv, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestCategoryListing(t *testing.T) {
	env := newTestEnv()
	now := time.Now().UTC()

	env.categories.On("GetBySlug", mock.Anything, "smart-home").Return(&domain.Category{
		ID: catID, Name: "Smart Home", Slug: "smart-home",
	}, nil)
	env.products.On("ListByCategory", mock.Anything, catID).Return([]domain.Product{
		{ID: "p1", Title: "Hub", Price: 4999, Rating: 4.0, CategoryID: catID, CreatedAt: now},
		{ID: "p2", Title: "Bulb", Price: 1299, Rating: 4.8, CategoryID: catID, CreatedAt: now.Add(time.Hour)},
	}, nil)
	env.articles.On("ListByCategory", mock.Anything, catID).Return([]domain.Article{}, nil)

	rec := doJSON(t, env, http.MethodGet, "/api/v1/categories/smart-home?sort=price-low", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Products []domain.Product `json:"products"`
			Total    int              `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Products, 2)
	assert.Equal(t, "p2", resp.Data.Products[0].ID, "cheapest first")
	assert.Equal(t, 2, resp.Data.Total)
}

func TestCategoryListing_UnknownSortKey(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env, http.MethodGet, "/api/v1/categories/smart-home?sort=popularity", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.categories.AssertNotCalled(t, "GetBySlug")
}

func TestCategoryListing_NegativeOffset(t *testing.T) {
	env := newTestEnv()

	env.categories.On("GetBySlug", mock.Anything, "smart-home").Return(&domain.Category{ID: catID, Slug: "smart-home"}, nil)
	env.products.On("ListByCategory", mock.Anything, catID).Return([]domain.Product{}, nil)
	env.articles.On("ListByCategory", mock.Anything, catID).Return([]domain.Article{}, nil)

	rec := doJSON(t, env, http.MethodGet, "/api/v1/categories/smart-home?offset=-1&limit=10", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryListing_OffsetPastEnd(t *testing.T) {
	env := newTestEnv()

	env.categories.On("GetBySlug", mock.Anything, "smart-home").Return(&domain.Category{ID: catID, Slug: "smart-home"}, nil)
	env.products.On("ListByCategory", mock.Anything, catID).Return([]domain.Product{
		{ID: "p1", CategoryID: catID},
	}, nil)
	env.articles.On("ListByCategory", mock.Anything, catID).Return([]domain.Article{}, nil)

	rec := doJSON(t, env, http.MethodGet, "/api/v1/categories/smart-home?offset=50&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Products []domain.Product `json:"products"`
			Total    int              `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Products)
	assert.Equal(t, 1, resp.Data.Total)
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	env := newTestEnv()
	body := map[string]any{"name": "Gadgets"}

	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/categories", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "no token")

	userToken := env.tokenFor(&domain.User{ID: userID, Email: "u@example.com", Role: domain.RoleUser})
	rec = doJSON(t, env, http.MethodPost, "/api/v1/admin/categories", userToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code, "non-admin token")
}

func TestAdminCreateCategory(t *testing.T) {
	env := newTestEnv()

	env.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "Gadgets" && c.Slug == "gadgets" && c.ID != ""
	})).Return(nil)

	adminToken := env.tokenFor(&domain.User{ID: userID, Email: "a@example.com", Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/categories", adminToken, map[string]any{"name": "Gadgets"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env.categories.AssertExpectations(t)
}

func TestAdminCreateProduct(t *testing.T) {
	env := newTestEnv()

	env.products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Title == "Levitating Pot" && len(p.AffiliateLinks) == 1
	})).Return(nil)

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/products", adminToken, map[string]any{
		"title":       "Levitating Pot",
		"description": "Floats",
		"price":       3450,
		"category_id": catID,
		"affiliate_links": []map[string]any{
			{"store": "amazon", "url": "https://amazon.com/dp/X", "price": 3299},
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env.products.AssertExpectations(t)
}

func TestAdminCreateProduct_UnknownStore(t *testing.T) {
	env := newTestEnv()

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/products", adminToken, map[string]any{
		"title":       "Levitating Pot",
		"description": "Floats",
		"price":       3450,
		"category_id": catID,
		"affiliate_links": []map[string]any{
			{"store": "ebay", "url": "https://ebay.com/itm/X", "price": 3299},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.products.AssertNotCalled(t, "Create")
}

func TestToggleFavorite(t *testing.T) {
	env := newTestEnv()

	env.users.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, Favorites: []string{}}, nil)
	env.users.On("ReplaceFavorites", mock.Anything, userID, []string{productID}).Return(nil)

	token := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleUser})
	rec := doJSON(t, env, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%s/toggle", productID), token, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Favorited bool     `json:"favorited"`
			Favorites []string `json:"favorites"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Favorited)
	assert.Equal(t, []string{productID}, resp.Data.Favorites)
}

func TestToggleFavorite_Unauthenticated(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%s/toggle", productID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListComments_MissingContentType(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env, http.MethodGet, "/api/v1/comments?content_id="+productID, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateComment(t *testing.T) {
	env := newTestEnv()

	env.users.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, DisplayName: "Ada"}, nil)
	env.comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.UserName == "Ada" && c.ContentID == productID && c.ContentType == domain.ContentTypeProduct
	})).Return(nil)

	token := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleUser})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/comments", token, map[string]any{
		"content_id":   productID,
		"content_type": "product",
		"text":         "love it",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env.comments.AssertExpectations(t)
}

func TestSocialPosts_PinterestRejected(t *testing.T) {
	env := newTestEnv()

	env.products.On("GetByID", mock.Anything, productID).Return(&domain.Product{
		ID: productID, Title: "Widget", Price: 999,
	}, nil)

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/social-posts", adminToken, map[string]any{
		"content_id":   productID,
		"content_type": "product",
		"platform":     "pinterest",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSocialPosts_AllPlatforms(t *testing.T) {
	env := newTestEnv()

	env.products.On("GetByID", mock.Anything, productID).Return(&domain.Product{
		ID: productID, Title: "Widget", Price: 999,
	}, nil)

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/social-posts", adminToken, map[string]any{
		"content_id":   productID,
		"content_type": "product",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data []struct {
			Platform string `json:"platform"`
			Caption  string `json:"caption"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Contains(t, resp.Data[0].Caption, "Widget")
}

func TestRegister_InvalidEmail(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(t, env, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":        "not-an-email",
		"display_name": "Ada",
		"password":     "long-enough-pass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.users.AssertNotCalled(t, "Create")
}

func TestNewsletterSubscribe_Duplicate(t *testing.T) {
	env := newTestEnv()

	env.subscribers.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.AlreadyExists("subscriber", "email", "ada@example.com"))

	rec := doJSON(t, env, http.MethodPost, "/api/v1/newsletter/subscribe", "", map[string]any{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminScrape_FixtureMode(t *testing.T) {
	env := newTestEnv()

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/scrape", adminToken, map[string]any{
		"url": "https://www.amazon.com/dp/B0TEST",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data domain.ScrapedContent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Title)
}

func TestAdminScrape_UnsupportedSite(t *testing.T) {
	env := newTestEnv()

	adminToken := env.tokenFor(&domain.User{ID: userID, Role: domain.RoleAdmin})
	rec := doJSON(t, env, http.MethodPost, "/api/v1/admin/scrape", adminToken, map[string]any{
		"url": "https://example.org/widget",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
