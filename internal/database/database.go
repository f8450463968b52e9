package database

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/entities"
)

// models lists every table in creation order. Authors must exist before books
// because of the foreign key.
var models = []any{
	&entities.Author{},
	&entities.Book{},
}

type Options struct {
	Path         string
	MaxOpenConns int
	LogLevel     string
	LogOutput    io.Writer // SQL log destination; stdout when nil
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite database at opts.Path. It does not touch the
// schema; call Migrate or Reset for that.
func NewDatabase(opts Options) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn(opts.Path)), &gorm.Config{
		Logger:         newLogger(opts.LogOutput, opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", Translate(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	return &Database{DB: db}, nil
}

// dsn enables foreign key enforcement and a busy timeout on every connection.
// Transactions begin IMMEDIATE so that two read-then-write transactions on
// different connections queue on the busy timeout instead of deadlocking on
// the lock upgrade.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
}

// newLogger logs SQL at level. A missing row is an expected outcome of
// lookups and get-or-create, so it is not logged as an error.
func newLogger(out io.Writer, level string) logger.Interface {
	if out == nil {
		out = os.Stdout
	}
	return logger.New(log.New(out, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Migrate creates missing tables and indexes. Existing data is kept.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Printf("Database schema is up to date")
	return nil
}

// Reset drops every table and recreates the schema. All data is lost.
func (d *Database) Reset() error {
	// Drop in reverse order so books go before the authors they reference.
	for i := len(models) - 1; i >= 0; i-- {
		if err := d.DB.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}
	log.Printf("Dropped all tables")
	return d.Migrate()
}

// HasSchema reports whether every table exists.
func (d *Database) HasSchema() bool {
	for _, m := range models {
		if !d.DB.Migrator().HasTable(m) {
			return false
		}
	}
	return true
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
