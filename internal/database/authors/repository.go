// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetOrCreate(ctx, "Tolstoy")
package authors

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAuthor inserts an author without checking for an existing name.
// A duplicate name fails with database.ErrConflict.
func (r *Repository) CreateAuthor(ctx context.Context, name string) (*entities.Author, error) {
	author := &entities.Author{Name: name}
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return nil, database.Translate(err)
	}
	return author, nil
}

// GetOrCreate returns the author with the given name, creating it if absent.
func (r *Repository) GetOrCreate(ctx context.Context, name string) (*entities.Author, error) {
	return GetOrCreate(r.db.WithContext(ctx), name)
}

// GetOrCreate resolves an author by name on tx, which may be a transaction.
// Concurrent callers with the same new name all get the same row: the insert
// does nothing on a name conflict and the winner's row is read back.
func GetOrCreate(tx *gorm.DB, name string) (*entities.Author, error) {
	var author entities.Author
	err := tx.Where("name = ?", name).First(&author).Error
	if err == nil {
		return &author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.Translate(err)
	}

	author = entities.Author{Name: name}
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&author)
	if result.Error != nil {
		return nil, database.Translate(result.Error)
	}
	if result.RowsAffected > 0 && author.ID != 0 {
		return &author, nil
	}

	// Lost the race to another insert.
	author = entities.Author{}
	if err := tx.Where("name = ?", name).First(&author).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &author, nil
}

// GetAuthorByID returns the author with all of its books. The books are only
// queried once the author is known to exist.
func (r *Repository) GetAuthorByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.id ASC")
		}).
		First(&author, id).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &author, nil
}

// GetAllAuthors returns every author without books, ordered by id.
func (r *Repository) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := r.db.WithContext(ctx).Select("id", "name").Order("id ASC").Find(&authors).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return authors, nil
}

// CountAuthors returns the number of authors.
func (r *Repository) CountAuthors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, database.Translate(err)
}
