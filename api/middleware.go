package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS wraps a handler with the cross-origin policy for the configured
// allow-list of origins. All methods and headers the API serves are allowed
// and credentials are permitted.
func CORS(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)
}
