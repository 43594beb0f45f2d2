package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamefeed/gamefeed/shared/csrf"
)

func TestGenerateCSRFToken(t *testing.T) {
	t.Run("new token", func(t *testing.T) {
		var seen string
		handler := GenerateCSRFToken(CSRFConfig{})(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetCSRFTokenFromContext(r)
				w.WriteHeader(http.StatusOK)
			}),
		)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		var cookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == csrf.CookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie, "expected CSRF cookie to be set")
		assert.Equal(t, seen, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		var seen string
		handler := GenerateCSRFToken(CSRFConfig{})(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = csrf.TokenFromContext(r.Context())
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: csrf.CookieName, Value: "kept"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "kept", seen)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestValidateCSRFToken(t *testing.T) {
	const token = "test-token-123"
	cookie := &http.Cookie{Name: csrf.CookieName, Value: token}

	tests := []struct {
		name           string
		method         string
		cookie         *http.Cookie
		formToken      string
		headerToken    string
		expectedStatus int
	}{
		{name: "valid POST request", method: http.MethodPost, cookie: cookie, formToken: token, expectedStatus: http.StatusOK},
		{name: "valid header token", method: http.MethodPost, cookie: cookie, headerToken: token, expectedStatus: http.StatusOK},
		{name: "GET request (no validation)", method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "missing cookie", method: http.MethodPost, formToken: token, expectedStatus: http.StatusForbidden},
		{name: "missing form token", method: http.MethodPost, cookie: cookie, expectedStatus: http.StatusForbidden},
		{name: "mismatched tokens", method: http.MethodPost, cookie: cookie, formToken: "different-token", expectedStatus: http.StatusForbidden},
		{name: "mismatched header", method: http.MethodPost, cookie: cookie, formToken: token, headerToken: "other", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ValidateCSRFToken(CSRFConfig{})(okHandler())

			form := url.Values{}
			if tt.formToken != "" {
				form.Set(csrf.FormField, tt.formToken)
			}

			req := httptest.NewRequest(tt.method, "/", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.headerToken != "" {
				req.Header.Set(csrf.HeaderName, tt.headerToken)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("multipart form", func(t *testing.T) {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField(csrf.FormField, token))
		require.NoError(t, mw.WriteField("game", "Chess"))
		require.NoError(t, mw.Close())

		var game string
		handler := ValidateCSRFToken(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			game = r.FormValue("game")
		}))

		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Chess", game)
	})

	t.Run("multipart over body limit", func(t *testing.T) {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField("review", strings.Repeat("a", 1024)))
		require.NoError(t, mw.WriteField(csrf.FormField, token))
		require.NoError(t, mw.Close())

		validate := ValidateCSRFToken(CSRFConfig{})(okHandler())
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 64)
			validate.ServeHTTP(w, r)
		})

		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("malformed multipart", func(t *testing.T) {
		handler := ValidateCSRFToken(CSRFConfig{})(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader("garbage"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
