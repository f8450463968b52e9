package entities

type Author struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null;size:256" json:"name"`
	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

type Book struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"index;not null;size:512" json:"title"`
	PageCount int    `json:"page_count"`
	AuthorID  uint   `gorm:"index;not null" json:"author_id"`
	Author    Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"-"`
}

// BookWithAuthor is a book row joined with the name of its author.
type BookWithAuthor struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
}

// BookSummary is the shape of a book nested under its author.
type BookSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	PageCount int    `json:"page_count"`
}

// AuthorWithBooks is an author together with every book it owns.
type AuthorWithBooks struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Books []BookSummary `json:"books"`
}
