package http

import (
	"net/http"

	"github.com/2bleO/CoolStff.com/internal/service"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/validator"
)

// NewsletterHandler serves newsletter signups.
type NewsletterHandler struct {
	newsletter *service.NewsletterService
}

// NewNewsletterHandler creates the newsletter handler.
func NewNewsletterHandler(newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	subscriber, err := h.newsletter.Subscribe(r.Context(), req.Email)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to subscribe")
		return
	}
	httputil.WriteData(w, http.StatusCreated, subscriber)
}
