// Package listings provides database operations for store-book listings and
// the cheapest-books-by-author view.
package listings

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles listing database operations. Listings are never
// updated in place; each create writes exactly one new row.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new listings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateListing persists a new store-book listing. Duplicate (store, book)
// pairs are allowed; there is no uniqueness constraint.
func (r *Repository) CreateListing(storeID, bookID uint, price decimal.Decimal) (*entities.StoreBook, error) {
	listing := &entities.StoreBook{
		StoreID: storeID,
		BookID:  bookID,
		Price:   price,
	}
	if err := r.db.Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

// GetListingsForStore retrieves all listings for the given store.
func (r *Repository) GetListingsForStore(storeID uint) ([]entities.StoreBook, error) {
	var listings []entities.StoreBook
	err := r.db.Where("store_id = ?", storeID).Find(&listings).Error
	return listings, err
}

// GetCheapestBooksByAuthor reads the cheapest_books_by_author view, ordered
// by author ID ascending. The view is recomputed by the database on every
// read, so results always reflect the current listings.
func (r *Repository) GetCheapestBooksByAuthor() ([]entities.CheapestBookByAuthor, error) {
	var rows []entities.CheapestBookByAuthor
	err := r.db.Order("author_id ASC").Find(&rows).Error
	return rows, err
}
