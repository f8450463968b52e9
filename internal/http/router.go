package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/i18n"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = i18n.NewCatalog("")
	}

	router := gin.New()
	if cfg.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(catalog))
	router.Use(LanguageMiddleware(catalog))

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore, catalog)
	authorsController := NewAuthorsController(cfg.AuthorStore, catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	// Books
	router.POST("/add_book", booksController.AddBook)
	router.GET("/get_all_books", booksController.GetAllBooks)
	router.GET("/get_book/:book_id", booksController.GetBook)
	router.DELETE("/delete_book/:book_id", booksController.DeleteBook)

	// Authors
	router.POST("/add_author", authorsController.AddAuthor)
	router.GET("/get_all_authors", authorsController.GetAllAuthors)
	router.GET("/get_author/:author_id", authorsController.GetAuthor)

	return router
}
