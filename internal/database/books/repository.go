// Package books provides database operations for book management.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.AddBook(ctx, "War and Peace", "Tolstoy", 1225)
//	rows, err := repo.GetAllBooks(ctx)
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddBook resolves the author by name, creating it if needed, and inserts the
// book in the same transaction. The returned book has Author populated.
func (r *Repository) AddBook(ctx context.Context, title, authorName string, pageCount int) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		author, err := authors.GetOrCreate(tx, authorName)
		if err != nil {
			return err
		}

		book = entities.Book{
			Title:     title,
			PageCount: pageCount,
			AuthorID:  author.ID,
		}
		if err := tx.Omit("Author").Create(&book).Error; err != nil {
			return err
		}
		book.Author = *author
		return nil
	})
	if err != nil {
		return nil, database.Translate(err)
	}
	return &book, nil
}

// joined selects book rows together with the author name.
func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Book{}).
		Select("books.id, books.title, books.page_count, authors.name AS author").
		Joins("JOIN authors ON authors.id = books.author_id")
}

// GetAllBooks returns every book joined with its author's name, ordered by id.
func (r *Repository) GetAllBooks(ctx context.Context) ([]entities.BookWithAuthor, error) {
	rows := make([]entities.BookWithAuthor, 0)
	if err := r.joined(ctx).Order("books.id ASC").Scan(&rows).Error; err != nil {
		return nil, database.Translate(err)
	}
	return rows, nil
}

// GetBookByID returns one book joined with its author's name.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.BookWithAuthor, error) {
	var row entities.BookWithAuthor
	result := r.joined(ctx).Where("books.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, database.Translate(result.Error)
	}
	// Scan does not report a missing row.
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return &row, nil
}

// DeleteBook removes a book permanently. The owning author is kept.
func (r *Repository) DeleteBook(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// CountBooks returns the number of books.
func (r *Repository) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, database.Translate(err)
}
