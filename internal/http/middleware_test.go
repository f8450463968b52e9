package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/i18n"
)

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("echoes caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("generates id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", 200))
		router.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(i18n.NewCatalog("en")))
	router.GET("/panic", func(c *gin.Context) {
		panic("secret detail")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), CodeInternal)
	assert.NotContains(t, w.Body.String(), "secret detail")
}

func TestLanguageMiddleware(t *testing.T) {
	catalog := i18n.NewCatalog("en")
	router := gin.New()
	router.Use(LanguageMiddleware(catalog))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, catalog.Message(requestLanguage(c, catalog), i18n.BookNotFound))
	})

	tests := map[string]string{
		"":               "Book not found",
		"ru":             "Книга не найдена",
		"ru-RU,en;q=0.5": "Книга не найдена",
		"de-DE":          "Book not found",
		"en-US,ru;q=0.1": "Book not found",
	}
	for header, want := range tests {
		t.Run("accept-language "+header, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/", nil)
			if header != "" {
				req.Header.Set("Accept-Language", header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, want, w.Body.String())
		})
	}
}
