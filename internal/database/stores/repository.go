// Package stores provides database operations for store management.
package stores

import (
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Repository handles all store database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new stores repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateStore persists a new store and assigns its ID.
func (r *Repository) CreateStore(name, address string) (*entities.Store, error) {
	store := &entities.Store{Name: name, Address: address}
	if err := r.db.Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

// GetStoreByID retrieves a store by ID.
func (r *Repository) GetStoreByID(id uint) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}
