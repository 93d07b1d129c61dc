package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookstore/internal/entities"
)

// cheapestBooksView mirrors the one-time view migration: per book, the
// listing(s) at the book's minimum price, kept only when that price is also
// the minimum across every listing of any book by the same author. Ties at
// the minimum produce one row per qualifying listing.
const cheapestBooksView = `
CREATE VIEW IF NOT EXISTS cheapest_books_by_author AS
SELECT
    b.id AS book_id,
    b.name AS book_name,
    a.id AS author_id,
    a.name AS author_name,
    sb.price AS min_price
FROM books b
JOIN authors a ON b.author_id = a.id
JOIN store_books sb ON b.id = sb.book_id
WHERE sb.price = (
        SELECT MIN(price)
        FROM store_books
        WHERE book_id = b.id
    )
AND sb.price = (
        SELECT MIN(sb2.price)
        FROM store_books sb2
        JOIN books b2 ON sb2.book_id = b2.id
        WHERE b2.author_id = a.id
    )`

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
		&entities.Store{},
		&entities.StoreBook{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := db.Exec(cheapestBooksView).Error; err != nil {
		return nil, fmt.Errorf("failed to create cheapest-books view: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
