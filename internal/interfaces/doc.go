// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
// Declared next to the HTTP controllers that consume them:
//
//   - BookStore: add, list, fetch and delete books (internal/http/books.go)
//   - AuthorStore: create, list and fetch authors (internal/http/authors.go)
//
// Both are implemented by gorm repositories under internal/database, which
// translate driver errors into database.ErrNotFound, database.ErrConflict and
// database.ErrUnavailable. Controllers map those onto 404, 409 and 503.
//
// ## Health
//
//   - Pinger: checks the database connection (internal/http/health.go),
//     implemented by *database.Database.
//
// # Compile-time Checks
//
// checks.go asserts that every concrete type satisfies its interface, so a
// missing method fails the build instead of a request.
package interfaces
