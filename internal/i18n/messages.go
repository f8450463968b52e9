// Package i18n holds the user-facing messages of the HTTP API in every
// supported language and picks one per request from Accept-Language.
package i18n

import (
	"golang.org/x/text/language"
)

type Key string

const (
	BookAdded        Key = "book_added"
	BookDeleted      Key = "book_deleted"
	AuthorAdded      Key = "author_added"
	BookNotFound     Key = "book_not_found"
	AuthorNotFound   Key = "author_not_found"
	AuthorExists     Key = "author_exists"
	Conflict         Key = "conflict"
	InvalidRequest   Key = "invalid_request"
	InvalidID        Key = "invalid_id"
	StoreUnavailable Key = "store_unavailable"
	InternalError    Key = "internal_error"
)

var available = []language.Tag{language.English, language.Russian}

var messages = map[language.Tag]map[Key]string{
	language.English: {
		BookAdded:        "Book added successfully!",
		BookDeleted:      "Book deleted successfully",
		AuthorAdded:      "Author added successfully!",
		BookNotFound:     "Book not found",
		AuthorNotFound:   "Author not found",
		AuthorExists:     "Author already exists",
		Conflict:         "Request conflicts with existing data",
		InvalidRequest:   "Invalid request",
		InvalidID:        "Invalid id",
		StoreUnavailable: "Storage is temporarily unavailable",
		InternalError:    "Internal Server Error",
	},
	language.Russian: {
		BookAdded:        "Книга добавлена успешно!",
		BookDeleted:      "Книга успешно удалена",
		AuthorAdded:      "Автор добавлен успешно!",
		BookNotFound:     "Книга не найдена",
		AuthorNotFound:   "Автор не найден",
		AuthorExists:     "Автор уже существует",
		Conflict:         "Запрос конфликтует с существующими данными",
		InvalidRequest:   "Некорректный запрос",
		InvalidID:        "Некорректный идентификатор",
		StoreUnavailable: "Хранилище временно недоступно",
		InternalError:    "Внутренняя ошибка сервера",
	},
}

// Catalog resolves messages for a negotiated language.
type Catalog struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewCatalog creates a catalog whose fallback is defaultLang. Unknown or
// unsupported values fall back to English.
func NewCatalog(defaultLang string) *Catalog {
	fallback := language.English
	if tag, err := language.Parse(defaultLang); err == nil {
		if _, idx, conf := language.NewMatcher(available).Match(tag); conf != language.No {
			fallback = available[idx]
		}
	}

	// The matcher treats the first tag as the default.
	supported := []language.Tag{fallback}
	for _, tag := range available {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}

	return &Catalog{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Default returns the fallback language.
func (c *Catalog) Default() language.Tag {
	return c.supported[0]
}

// Negotiate picks the best supported language for an Accept-Language header.
func (c *Catalog) Negotiate(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.Default()
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.Default()
	}
	return c.supported[idx]
}

// Message returns the text for key in lang, falling back to the default
// language and finally to the key itself.
func (c *Catalog) Message(lang language.Tag, key Key) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[c.Default()][key]; ok {
		return msg
	}
	return string(key)
}
