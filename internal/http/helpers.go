package http

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/i18n"
)

// Machine-readable error codes returned in ErrorResponse.Code.
const (
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeValidation       = "validation_error"
	CodeStoreUnavailable = "store_unavailable"
	CodeInternal         = "internal_error"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"` // validation errors
}

// responder renders localized success messages and error bodies.
// Controllers embed it.
type responder struct {
	catalog *i18n.Catalog
}

func newResponder(catalog *i18n.Catalog) responder {
	if catalog == nil {
		catalog = i18n.NewCatalog("")
	}
	return responder{catalog: catalog}
}

// message returns key in the language negotiated for this request.
func (r responder) message(c *gin.Context, key i18n.Key) string {
	return r.catalog.Message(requestLanguage(c, r.catalog), key)
}

func (r responder) respondError(c *gin.Context, status int, code string, key i18n.Key, details any) {
	c.JSON(status, ErrorResponse{
		Error:     r.message(c, key),
		Code:      code,
		RequestID: GetRequestID(c),
		Details:   details,
	})
}

// respondBadRequest sends a 400 Bad Request response.
func (r responder) respondBadRequest(c *gin.Context, key i18n.Key, details any) {
	r.respondError(c, http.StatusBadRequest, CodeValidation, key, details)
}

// respondStoreError maps a repository error onto a status code. notFound and
// conflict are the messages used for database.ErrNotFound and
// database.ErrConflict. Unclassified errors are logged and answered with a
// generic 500; their text never reaches the client.
func (r responder) respondStoreError(c *gin.Context, err error, notFound, conflict i18n.Key, context string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		r.respondError(c, http.StatusNotFound, CodeNotFound, notFound, nil)
	case errors.Is(err, database.ErrConflict):
		log.Printf("Conflict (%s, request %s): %v", context, GetRequestID(c), err)
		r.respondError(c, http.StatusConflict, CodeConflict, conflict, nil)
	case errors.Is(err, database.ErrUnavailable):
		log.Printf("Store unavailable (%s, request %s): %v", context, GetRequestID(c), err)
		r.respondError(c, http.StatusServiceUnavailable, CodeStoreUnavailable, i18n.StoreUnavailable, nil)
	default:
		log.Printf("Internal error (%s, request %s): %v", context, GetRequestID(c), err)
		r.respondError(c, http.StatusInternalServerError, CodeInternal, i18n.InternalError, nil)
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
// Negative ids are a 400 as well. SQLite rowids are signed 64-bit, so
// anything above math.MaxInt64 cannot name a row and is rejected too.
func (r responder) parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id > math.MaxInt64 {
		r.respondBadRequest(c, i18n.InvalidID, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
