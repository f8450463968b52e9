package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/i18n"
)

type mockAuthorStore struct {
	createdName string
	authors     []entities.Author
	author      *entities.Author
	err         error
}

func (m *mockAuthorStore) CreateAuthor(ctx context.Context, name string) (*entities.Author, error) {
	m.createdName = name
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Author{ID: 1, Name: name}, nil
}

func (m *mockAuthorStore) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	return m.authors, m.err
}

func (m *mockAuthorStore) GetAuthorByID(ctx context.Context, id uint) (*entities.Author, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.author, nil
}

func newAuthorsRouter(store AuthorStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := i18n.NewCatalog("en")
	controller := NewAuthorsController(store, catalog)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LanguageMiddleware(catalog))
	router.POST("/add_author", controller.AddAuthor)
	router.GET("/get_all_authors", controller.GetAllAuthors)
	router.GET("/get_author/:author_id", controller.GetAuthor)
	return router
}

func TestAuthorsController_AddAuthor(t *testing.T) {
	t.Run("creates author", func(t *testing.T) {
		store := &mockAuthorStore{}
		router := newAuthorsRouter(store)

		w := doRequest(router, "POST", "/add_author", `{"name":"Tolstoy"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp AddAuthorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(1), resp.AuthorID)
		assert.Equal(t, "Tolstoy", resp.AuthorName)
		assert.Equal(t, "Author added successfully!", resp.Message)
		assert.Equal(t, "Tolstoy", store.createdName)
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{err: fmt.Errorf("%w: UNIQUE constraint failed", database.ErrConflict)})

		w := doRequest(router, "POST", "/add_author", `{"name":"Tolstoy"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, CodeConflict, resp.Code)
		assert.Equal(t, "Author already exists", resp.Error)
		assert.NotContains(t, w.Body.String(), "UNIQUE")
	})

	t.Run("rejects missing name", func(t *testing.T) {
		store := &mockAuthorStore{}
		router := newAuthorsRouter(store)

		w := doRequest(router, "POST", "/add_author", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.createdName)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{})

		w := doRequest(router, "POST", "/add_author", `{"name":"  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorsController_GetAllAuthors(t *testing.T) {
	t.Run("returns empty array", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{})

		w := doRequest(router, "GET", "/get_all_authors", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("omits books", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{authors: []entities.Author{
			{ID: 1, Name: "Tolstoy", Books: []entities.Book{{ID: 1, Title: "War and Peace"}}},
			{ID: 2, Name: "Chekhov"},
		}})

		w := doRequest(router, "GET", "/get_all_authors", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Tolstoy"},{"id":2,"name":"Chekhov"}]`, w.Body.String())
	})
}

func TestAuthorsController_GetAuthor(t *testing.T) {
	t.Run("embeds books", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{author: &entities.Author{
			ID:   1,
			Name: "Tolstoy",
			Books: []entities.Book{
				{ID: 1, Title: "War and Peace", PageCount: 1225, AuthorID: 1},
				{ID: 2, Title: "Anna Karenina", PageCount: 864, AuthorID: 1},
			},
		}})

		w := doRequest(router, "GET", "/get_author/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Tolstoy","books":[
			{"id":1,"title":"War and Peace","page_count":1225},
			{"id":2,"title":"Anna Karenina","page_count":864}]}`, w.Body.String())
	})

	t.Run("returns empty books list", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{author: &entities.Author{ID: 2, Name: "Chekhov"}})

		w := doRequest(router, "GET", "/get_author/2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":2,"name":"Chekhov","books":[]}`, w.Body.String())
	})

	t.Run("returns localized 404", func(t *testing.T) {
		router := newAuthorsRouter(&mockAuthorStore{err: database.ErrNotFound})

		req, _ := http.NewRequest("GET", "/get_author/9", nil)
		req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Автор не найден", decodeError(t, w).Error)
	})
}
