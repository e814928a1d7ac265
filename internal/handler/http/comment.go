package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/internal/service"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/middleware"
	"github.com/2bleO/CoolStff.com/pkg/validator"
)

// CommentHandler serves comment listing and creation.
type CommentHandler struct {
	comments *service.CommentService
	users    *service.UserService
}

// NewCommentHandler creates the comment handler.
func NewCommentHandler(comments *service.CommentService, users *service.UserService) *CommentHandler {
	return &CommentHandler{comments: comments, users: users}
}

type createCommentRequest struct {
	ContentID   string `json:"content_id" validate:"required,uuid"`
	ContentType string `json:"content_type" validate:"required,oneof=product article"`
	Text        string `json:"text" validate:"required,min=1,max=2000"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contentID := q.Get("content_id")
	contentType := domain.ContentType(q.Get("content_type"))

	if contentID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("content_id is required"), "invalid request")
		return
	}
	if !contentType.Valid() {
		httputil.WriteError(w, r, apperrors.InvalidInput("content_type must be product or article"), "invalid request")
		return
	}

	comments, err := h.comments.ListForContent(r.Context(), contentID, contentType)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to list comments")
		return
	}
	httputil.WriteData(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), "unauthorized")
		return
	}

	var req createCommentRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to resolve user")
		return
	}

	comment, err := h.comments.Create(r.Context(), user.ID, user.DisplayName, req.ContentID, domain.ContentType(req.ContentType), req.Text)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to create comment")
		return
	}
	httputil.WriteData(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.ParseUUID(chi.URLParam(r, "id"), "comment id")
	if err != nil {
		httputil.WriteError(w, r, err, "invalid comment id")
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, "failed to delete comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
