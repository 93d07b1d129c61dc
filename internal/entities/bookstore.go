package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Pages     *int      `json:"pages,omitempty"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	Author    Author    `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:512" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreBook is the listing record: a store sells a book at a price.
// The same (store, book) pair may be listed more than once.
type StoreBook struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	StoreID   uint            `gorm:"index;not null" json:"store_id"`
	BookID    uint            `gorm:"index;not null" json:"book_id"`
	Store     Store           `gorm:"foreignKey:StoreID" json:"-"`
	Book      Book            `gorm:"foreignKey:BookID" json:"-"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CheapestBookByAuthor is a row of the cheapest_books_by_author view: the
// listing(s) whose price is both the cheapest for the book and the cheapest
// across all of the author's books. Read-only, never migrated.
type CheapestBookByAuthor struct {
	BookID     uint            `json:"book_id"`
	BookName   string          `json:"book_name"`
	AuthorID   uint            `json:"author_id"`
	AuthorName string          `json:"author_name"`
	MinPrice   decimal.Decimal `json:"min_price"`
}

func (CheapestBookByAuthor) TableName() string {
	return "cheapest_books_by_author"
}
