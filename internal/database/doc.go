// Package database provides the data access layer for the library service.
//
// # Architecture
//
//	database/
//	├── database.go   # Connection setup, migrate, reset
//	├── errors.go     # ErrNotFound / ErrConflict / ErrUnavailable
//	├── authors/      # Author lookups, creation and get-or-create
//	└── books/        # Book creation, joined reads and deletion
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(database.Options{Path: "./library.db"})
//	if err := db.Migrate(); err != nil { ... }
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	book, err := booksRepo.AddBook(ctx, "War and Peace", "Tolstoy", 1225)
//
// Repository methods take a context and run on a session bound to it, so a
// cancelled request releases its connection. Every returned error has been
// through Translate; callers branch on the sentinels with errors.Is.
//
// # Schema Lifecycle
//
// Opening a database never changes the schema. Migrate is additive; Reset
// drops every table first and is only reachable through `library migrate
// --reset`.
package database
