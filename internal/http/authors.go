package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/i18n"
)

// AuthorStore defines database operations for authors.
type AuthorStore interface {
	CreateAuthor(ctx context.Context, name string) (*entities.Author, error)
	GetAllAuthors(ctx context.Context) ([]entities.Author, error)
	GetAuthorByID(ctx context.Context, id uint) (*entities.Author, error)
}

type AddAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddAuthorResponse struct {
	Message    string `json:"message"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
}

// AuthorSummary is an author listed without books.
type AuthorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AuthorsController struct {
	responder
	store AuthorStore
}

func NewAuthorsController(store AuthorStore, catalog *i18n.Catalog) *AuthorsController {
	return &AuthorsController{
		responder: newResponder(catalog),
		store:     store,
	}
}

// AddAuthor creates an author. A name that already exists is a 409.
// POST /add_author
func (ac *AuthorsController) AddAuthor(c *gin.Context) {
	var req AddAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.respondBadRequest(c, i18n.InvalidRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		ac.respondBadRequest(c, i18n.InvalidRequest, "name must not be blank")
		return
	}

	author, err := ac.store.CreateAuthor(c.Request.Context(), req.Name)
	if err != nil {
		ac.respondStoreError(c, err, i18n.AuthorNotFound, i18n.AuthorExists, "add author")
		return
	}

	c.JSON(http.StatusOK, AddAuthorResponse{
		Message:    ac.message(c, i18n.AuthorAdded),
		AuthorID:   author.ID,
		AuthorName: author.Name,
	})
}

// GetAllAuthors lists authors without their books
// GET /get_all_authors
func (ac *AuthorsController) GetAllAuthors(c *gin.Context) {
	authors, err := ac.store.GetAllAuthors(c.Request.Context())
	if err != nil {
		ac.respondStoreError(c, err, i18n.AuthorNotFound, i18n.Conflict, "get all authors")
		return
	}

	summaries := make([]AuthorSummary, 0, len(authors))
	for _, a := range authors {
		summaries = append(summaries, AuthorSummary{ID: a.ID, Name: a.Name})
	}
	c.JSON(http.StatusOK, summaries)
}

// GetAuthor returns an author with all of its books
// GET /get_author/:author_id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := ac.parseIDParam(c, "author_id")
	if !ok {
		return
	}

	author, err := ac.store.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		ac.respondStoreError(c, err, i18n.AuthorNotFound, i18n.Conflict, "get author")
		return
	}

	result := entities.AuthorWithBooks{
		ID:    author.ID,
		Name:  author.Name,
		Books: make([]entities.BookSummary, 0, len(author.Books)),
	}
	for _, b := range author.Books {
		result.Books = append(result.Books, entities.BookSummary{
			ID:        b.ID,
			Title:     b.Title,
			PageCount: b.PageCount,
		})
	}
	c.JSON(http.StatusOK, result)
}
