package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/i18n"
)

// BookStore defines database operations for books.
type BookStore interface {
	AddBook(ctx context.Context, title, authorName string, pageCount int) (*entities.Book, error)
	GetAllBooks(ctx context.Context) ([]entities.BookWithAuthor, error)
	GetBookByID(ctx context.Context, id uint) (*entities.BookWithAuthor, error)
	DeleteBook(ctx context.Context, id uint) error
}

// AddBookRequest requires all three fields to be present. Only the author
// name must be non-blank, since it is the lookup key.
type AddBookRequest struct {
	Title      *string    `json:"title" binding:"required"`
	AuthorName string     `json:"author_name" binding:"required"`
	PageCount  *PageCount `json:"page_count" binding:"required"`
}

// PageCount accepts a JSON integer or a string holding one, so "5" and 5
// are the same page count.
type PageCount int

func (p *PageCount) UnmarshalJSON(data []byte) error {
	var n int
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("page_count: %q is not an integer", s)
		}
		n = v
	} else if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PageCount(n)
	return nil
}

type AddBookResponse struct {
	Message string `json:"message"`
	BookID  uint   `json:"book_id"`
	Author  string `json:"author"`
}

type DeleteBookResponse struct {
	Message       string `json:"message"`
	DeletedBookID uint   `json:"deleted_book_id"`
}

type BooksController struct {
	responder
	store BookStore
}

func NewBooksController(store BookStore, catalog *i18n.Catalog) *BooksController {
	return &BooksController{
		responder: newResponder(catalog),
		store:     store,
	}
}

// AddBook stores a book, creating its author on first use
// POST /add_book
func (bc *BooksController) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bc.respondBadRequest(c, i18n.InvalidRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.AuthorName) == "" {
		bc.respondBadRequest(c, i18n.InvalidRequest, "author_name must not be blank")
		return
	}

	book, err := bc.store.AddBook(c.Request.Context(), *req.Title, req.AuthorName, int(*req.PageCount))
	if err != nil {
		bc.respondStoreError(c, err, i18n.BookNotFound, i18n.Conflict, "add book")
		return
	}

	c.JSON(http.StatusOK, AddBookResponse{
		Message: bc.message(c, i18n.BookAdded),
		BookID:  book.ID,
		Author:  book.Author.Name,
	})
}

// GetAllBooks lists every book with its author's name
// GET /get_all_books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.store.GetAllBooks(c.Request.Context())
	if err != nil {
		bc.respondStoreError(c, err, i18n.BookNotFound, i18n.Conflict, "get all books")
		return
	}
	if books == nil {
		books = []entities.BookWithAuthor{}
	}
	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book
// GET /get_book/:book_id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := bc.parseIDParam(c, "book_id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(c.Request.Context(), id)
	if err != nil {
		bc.respondStoreError(c, err, i18n.BookNotFound, i18n.Conflict, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book permanently; its author is kept
// DELETE /delete_book/:book_id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := bc.parseIDParam(c, "book_id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(c.Request.Context(), id); err != nil {
		bc.respondStoreError(c, err, i18n.BookNotFound, i18n.Conflict, "delete book")
		return
	}

	c.JSON(http.StatusOK, DeleteBookResponse{
		Message:       bc.message(c, i18n.BookDeleted),
		DeletedBookID: id,
	})
}
