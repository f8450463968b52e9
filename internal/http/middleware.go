package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/mrlokans/library/internal/i18n"
)

const (
	HeaderRequestID = "X-Request-ID"

	contextKeyRequestID = "request_id"
	contextKeyLanguage  = "language"

	maxRequestIDLength = 128
)

// RequestIDMiddleware keeps the caller's X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the request id set by RequestIDMiddleware, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

// LanguageMiddleware negotiates the response language once per request.
func LanguageMiddleware(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyLanguage, catalog.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// requestLanguage returns the negotiated language, negotiating on the spot
// when LanguageMiddleware is not installed.
func requestLanguage(c *gin.Context, catalog *i18n.Catalog) language.Tag {
	if v, ok := c.Get(contextKeyLanguage); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return catalog.Negotiate(c.GetHeader("Accept-Language"))
}

// RecoveryMiddleware turns a panic into the standard 500 error body.
func RecoveryMiddleware(catalog *i18n.Catalog) gin.HandlerFunc {
	r := newResponder(catalog)
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Panic recovered (request %s): %v", GetRequestID(c), recovered)
		r.respondError(c, http.StatusInternalServerError, CodeInternal, i18n.InternalError, nil)
		c.Abort()
	})
}
