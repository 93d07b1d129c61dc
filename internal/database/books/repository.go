// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in
// internal/catalog/service.go.
package books

import (
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook persists a new book under the given author.
func (r *Repository) CreateBook(name string, pages *int, authorID uint) (*entities.Book, error) {
	book := &entities.Book{
		Name:     name,
		Pages:    pages,
		AuthorID: authorID,
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// GetBookByID retrieves a book by ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBooksByAuthor retrieves all books with the given author ID.
func (r *Repository) GetBooksByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Find(&books).Error
	return books, err
}

// GetBooksByIDs retrieves the books whose IDs are in the given set.
// Result order is not guaranteed to match the input order.
func (r *Repository) GetBooksByIDs(ids []uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("id IN ?", ids).Find(&books).Error
	return books, err
}
