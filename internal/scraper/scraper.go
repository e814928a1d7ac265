// Package scraper turns a URL from a supported site into a content
// preview an admin can publish. When a scrape API endpoint is configured
// the work is delegated to it; otherwise demo fixtures stand in.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2bleO/CoolStff.com/internal/domain"
	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
)

// Poster issues the scrape request downstream. Satisfied by
// httpclient.CircuitBreakerClient.
type Poster interface {
	Post(ctx context.Context, url string, body []byte) (*http.Response, error)
}

// Service resolves scrape requests for supported sites.
type Service struct {
	client   Poster
	endpoint string
	logger   *slog.Logger
}

// NewService creates a scrape service. An empty endpoint switches the
// service to fixture mode.
func NewService(client Poster, endpoint string, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		endpoint: endpoint,
		logger:   logger.With(slog.String("component", "scraper")),
	}
}

type scrapeRequest struct {
	URL       string    `json:"url"`
	Selectors Selectors `json:"config"`
}

type scrapeResponse struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	Content     string          `json:"content"`
	Images      json.RawMessage `json:"images"`
}

// Scrape produces a content preview for the URL. Unsupported hosts and
// malformed URLs are invalid input; a failing downstream scrape API maps
// to a store-unavailable error so admins see a retryable condition.
func (s *Service) Scrape(ctx context.Context, rawURL string) (domain.ScrapedContent, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return domain.ScrapedContent{}, apperrors.InvalidInput("malformed url")
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	cfg, ok := siteConfigs[host]
	if !ok {
		return domain.ScrapedContent{}, apperrors.InvalidInput(fmt.Sprintf("unsupported website %q", host))
	}

	if s.endpoint == "" || s.client == nil {
		s.logger.InfoContext(ctx, "no scrape endpoint configured, serving fixture",
			slog.String("host", host),
			slog.String("content_type", string(cfg.Type)),
		)
		if cfg.Type == domain.ContentTypeProduct {
			return productFixture(rawURL), nil
		}
		return articleFixture(rawURL), nil
	}

	return s.scrapeRemote(ctx, rawURL, host, cfg)
}

// Supports reports whether the URL points at a site with a scrape config.
func (s *Service) Supports(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	_, ok := siteConfigs[strings.TrimPrefix(parsed.Hostname(), "www.")]
	return ok
}

func (s *Service) scrapeRemote(ctx context.Context, rawURL, host string, cfg SiteConfig) (domain.ScrapedContent, error) {
	body, err := json.Marshal(scrapeRequest{URL: rawURL, Selectors: cfg.Selectors})
	if err != nil {
		return domain.ScrapedContent{}, apperrors.Internal(err)
	}

	resp, err := s.client.Post(ctx, s.endpoint, body)
	if err != nil {
		s.logger.ErrorContext(ctx, "scrape request failed",
			slog.String("host", host),
			slog.String("error", err.Error()),
		)
		return domain.ScrapedContent{}, apperrors.StoreUnavailable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.ScrapedContent{}, apperrors.StoreUnavailable(fmt.Errorf("scrape api returned status %d", resp.StatusCode))
	}

	var payload scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ScrapedContent{}, apperrors.Internal(fmt.Errorf("decode scrape response: %w", err))
	}

	content := domain.ScrapedContent{
		Type:        cfg.Type,
		Title:       payload.Title,
		Description: payload.Description,
		Images:      decodeImages(payload.Images),
		Source:      host,
		SourceURL:   rawURL,
	}

	switch cfg.Type {
	case domain.ContentTypeProduct:
		content.Price = parsePriceCents(payload.Price)
	case domain.ContentTypeArticle:
		content.Content = payload.Content
		if len(content.Images) > 0 {
			content.CoverImage = content.Images[0]
		}
	}

	return content, nil
}

// decodeImages accepts either a JSON array of URLs or a single URL string,
// matching what scrape workers return for single-image pages.
func decodeImages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}

	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

func parsePriceCents(raw string) int64 {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	dollars, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || dollars < 0 {
		return 0
	}
	return int64(math.Round(dollars * 100))
}
