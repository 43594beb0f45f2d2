package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersWithCSP(t *testing.T) {
	t.Run("https with csp", func(t *testing.T) {
		w := httptest.NewRecorder()
		SecurityHeadersWithCSP(true, FrontendCSP)(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, FrontendCSP, w.Header().Get("Content-Security-Policy"))
		assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("plain http without csp", func(t *testing.T) {
		w := httptest.NewRecorder()
		SecurityHeadersWithCSP(false, "")(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	})
}
