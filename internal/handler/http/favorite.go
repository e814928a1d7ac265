package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/2bleO/CoolStff.com/internal/service"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/middleware"
)

// FavoriteHandler serves the per-user favorites endpoints.
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// NewFavoriteHandler creates the favorites handler.
func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), "unauthorized")
		return
	}

	productID, err := httputil.ParseUUID(chi.URLParam(r, "productID"), "product id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid product id")
		return
	}

	result, err := h.favorites.Toggle(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to toggle favorite")
		return
	}
	httputil.WriteData(w, http.StatusOK, result)
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), "unauthorized")
		return
	}

	products, err := h.favorites.List(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to list favorites")
		return
	}
	httputil.WriteData(w, http.StatusOK, products)
}
