package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gamefeed/gamefeed/shared/csrf"
	"github.com/gamefeed/gamefeed/shared/logger"
)

// CSRFConfig holds CSRF middleware configuration
type CSRFConfig struct {
	SecureCookies bool // Use Secure flag on cookies (requires HTTPS)
	MaxFormSize   int64 // Multipart parse limit when the token comes in the form body
}

// GenerateCSRFToken middleware generates and sets CSRF token cookie
func GenerateCSRFToken(config CSRFConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check if token already exists in cookie
			cookie, err := r.Cookie(csrf.CookieName)
			var token string

			if err != nil || cookie.Value == "" {
				// Generate new token
				token, err = csrf.GenerateToken()
				if err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}

				// Set CSRF token cookie
				http.SetCookie(w, &http.Cookie{
					Name:     csrf.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   config.SecureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   86400, // 24 hours
				})
			} else {
				token = cookie.Value
			}

			// Store token in context for template rendering
			next.ServeHTTP(w, r.WithContext(csrf.WithToken(r.Context(), token)))
		})
	}
}

// ValidateCSRFToken middleware validates the token of state-changing requests.
// Scripts send it in the X-CSRF-Token header, plain forms in a form field.
func ValidateCSRFToken(config CSRFConfig) func(http.Handler) http.Handler {
	maxFormSize := config.MaxFormSize
	if maxFormSize <= 0 {
		maxFormSize = 32 << 20
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut &&
				r.Method != http.MethodPatch && r.Method != http.MethodDelete {
				// Safe methods carry no state change
				next.ServeHTTP(w, r)
				return
			}

			// Get token from cookie
			cookie, err := r.Cookie(csrf.CookieName)
			if err != nil {
				logger.Log.Warn("CSRF token cookie missing", "path", r.URL.Path)
				http.Error(w, "CSRF token missing", http.StatusForbidden)
				return
			}

			// Scripts send the header; plain form posts carry the hidden field
			submitted := r.Header.Get(csrf.HeaderName)
			if submitted == "" {
				// Check Content-Type to determine parsing method
				contentType := r.Header.Get("Content-Type")
				if strings.HasPrefix(contentType, "multipart/form-data") {
					// Multipart form (file uploads); the handler's own parse is then a no-op
					if err := r.ParseMultipartForm(maxFormSize); err != nil {
						logger.Log.Warn("failed to parse multipart form", "error", err)
						var maxBytesErr *http.MaxBytesError
						if errors.As(err, &maxBytesErr) {
							http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
							return
						}
						http.Error(w, "Invalid form data", http.StatusBadRequest)
						return
					}
				} else if r.Form == nil {
					// URL-encoded form
					if err := r.ParseForm(); err != nil {
						logger.Log.Warn("failed to parse form", "error", err)
						http.Error(w, "Invalid form data", http.StatusBadRequest)
						return
					}
				}
				submitted = r.FormValue(csrf.FormField)
			}

			// Validate tokens match
			if !csrf.ValidateToken(cookie.Value, submitted) {
				logger.Log.Warn("CSRF token validation failed", "path", r.URL.Path)
				http.Error(w, "CSRF token invalid", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetCSRFTokenFromContext retrieves CSRF token from request context
func GetCSRFTokenFromContext(r *http.Request) string {
	return csrf.TokenFromContext(r.Context())
}
