package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the short-link routes.
func RegisterRoutes(api huma.API, h *ShortLinkHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-short-link",
		Method:        http.MethodPost,
		Path:          basePath + "/new",
		Summary:       "Register short link",
		Description:   "Validates the url form field and allocates a short code for it.",
		Tags:          []string{"Short links"},
		DefaultStatus: http.StatusCreated,
	}, h.Register)

	huma.Register(api, huma.Operation{
		OperationID:   "follow-short-link",
		Method:        http.MethodGet,
		Path:          basePath + "/{code}",
		Summary:       "Follow short link",
		Description:   "Redirects to the original URL registered under the code.",
		Tags:          []string{"Short links"},
		DefaultStatus: http.StatusFound,
		Errors:        []int{http.StatusNotFound},
	}, h.Redirect)
}
