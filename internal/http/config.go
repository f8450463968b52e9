package http

import (
	"github.com/mrlokans/library/internal/i18n"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore   BookStore
	AuthorStore AuthorStore
	Database    Pinger

	// Response messages; defaults to English when nil
	Catalog *i18n.Catalog

	// Application info
	Version string

	// Access logging through gin.Logger; off in tests
	AccessLog bool
}
