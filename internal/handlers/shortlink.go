package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"go.uber.org/zap"
)

const basePath = "/api/shorturl"

// ShortLinkHandler serves the short-link registry over HTTP.
type ShortLinkHandler struct {
	registry   *shortlink.Registry
	publishers analytics.Publishers
	logger     *zap.Logger
	now        func() time.Time
}

// NewShortLinkHandler creates a handler backed by registry.
func NewShortLinkHandler(
	registry *shortlink.Registry,
	publishers analytics.Publishers,
	logger *zap.Logger,
) *ShortLinkHandler {
	return &ShortLinkHandler{
		registry:   registry,
		publishers: publishers,
		logger:     logger,
		now:        time.Now,
	}
}

// Register validates the submitted url field and allocates a short code for it.
func (h *ShortLinkHandler) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	link, err := h.registry.Register(ctx, submittedURL(req.ContentType, req.RawBody))
	if err != nil {
		if errors.Is(err, shortlink.ErrInvalidURL) {
			return &RegisterResponse{
				Status: http.StatusBadRequest,
				Body:   RegisterBody{Error: shortlink.ErrInvalidURL.Error()},
			}, nil
		}

		h.logger.Error("failed to register short link", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to save url")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkRegisteredEvent{
		Code:        string(link.Code),
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishers.Registered(ctx, event); err != nil {
		h.logger.Error("failed to publish analytics event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return &RegisterResponse{
		Status:   http.StatusCreated,
		Location: basePath + "/" + string(link.Code),
		Body: RegisterBody{
			OriginalURL: link.OriginalURL,
			ShortURL:    string(link.Code),
		},
	}, nil
}

// Redirect sends the client to the original URL of a short code.
func (h *ShortLinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.registry.Resolve(ctx, shortlink.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortlink.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve short link", zap.String("code", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkResolvedEvent{
		Code:        req.Code,
		OriginalURL: link.OriginalURL,
		ResolvedAt:  h.now(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
	}

	if err = h.publishers.Resolved(ctx, event); err != nil {
		h.logger.Error("failed to publish access event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return &RedirectResponse{
		Status:   http.StatusFound,
		Location: redirectTarget(link.OriginalURL),
	}, nil
}

// submittedURL extracts the url field from a form or JSON body.
// An unreadable body yields the empty string, which fails validation.
func submittedURL(contentType string, body []byte) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if mediaType == "application/json" {
		var payload struct {
			URL string `json:"url"`
		}

		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}

		return payload.URL
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return ""
	}

	return values.Get("url")
}

// redirectTarget makes a scheme-less URL absolute so browsers do not treat
// it as a relative path.
func redirectTarget(originalURL string) string {
	if shortlink.HasScheme(originalURL) {
		return originalURL
	}

	return "http://" + originalURL
}
