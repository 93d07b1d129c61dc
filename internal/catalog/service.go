// Package catalog implements the bookstore query service: entity creation
// with referential checks, and the read queries over stores, authors and the
// cheapest-books-by-author view.
package catalog

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bookstore/internal/entities"
)

// Validation failures (HTTP 400).
var (
	ErrNameRequired           = errors.New("Name is required")
	ErrNameAndAddressRequired = errors.New("Name and address are required")
	ErrPriceRequired          = errors.New("Price is required")
	ErrPriceNegative          = errors.New("Price must be non-negative")
)

// Missing parents and empty query results (HTTP 404).
var (
	ErrAuthorNotFound  = errors.New("Author not found")
	ErrStoreNotFound   = errors.New("Store not found")
	ErrBookNotFound    = errors.New("Book not found")
	ErrNoBooksInStore  = errors.New("No books found for this store.")
	ErrNoBooksByAuthor = errors.New("No books found for this author.")
	ErrNoBooks         = errors.New("No books found.")
)

// AuthorStore defines author persistence operations.
type AuthorStore interface {
	CreateAuthor(name string) (*entities.Author, error)
	GetAuthorByID(id uint) (*entities.Author, error)
}

// BookStore defines book persistence operations.
type BookStore interface {
	CreateBook(name string, pages *int, authorID uint) (*entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	GetBooksByAuthor(authorID uint) ([]entities.Book, error)
	GetBooksByIDs(ids []uint) ([]entities.Book, error)
}

// StoreStore defines store persistence operations.
type StoreStore interface {
	CreateStore(name, address string) (*entities.Store, error)
	GetStoreByID(id uint) (*entities.Store, error)
}

// ListingStore defines store-book listing persistence operations.
type ListingStore interface {
	CreateListing(storeID, bookID uint, price decimal.Decimal) (*entities.StoreBook, error)
	GetListingsForStore(storeID uint) ([]entities.StoreBook, error)
	GetCheapestBooksByAuthor() ([]entities.CheapestBookByAuthor, error)
}

// StoreBookItem is one entry of the books-in-store query.
type StoreBookItem struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// AuthorBookItem is one entry of the books-by-author query.
type AuthorBookItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Pages *int   `json:"pages"`
}

// Service orchestrates the repositories and holds all business rules.
// Parent existence is checked here explicitly, before any write, so a
// missing author/store/book surfaces as a not-found error rather than a
// foreign-key constraint failure.
type Service struct {
	authors  AuthorStore
	books    BookStore
	stores   StoreStore
	listings ListingStore
}

// NewService creates a new catalog service.
func NewService(authors AuthorStore, books BookStore, stores StoreStore, listings ListingStore) *Service {
	return &Service{
		authors:  authors,
		books:    books,
		stores:   stores,
		listings: listings,
	}
}

// CreateAuthor registers a new author.
func (s *Service) CreateAuthor(name string) (*entities.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	return s.authors.CreateAuthor(name)
}

// AddBook creates a book under an existing author.
func (s *Service) AddBook(authorID uint, name string, pages *int) (*entities.Book, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.authors.GetAuthorByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return s.books.CreateBook(name, pages, authorID)
}

// CreateStore registers a new store.
func (s *Service) CreateStore(name, address string) (*entities.Store, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(address) == "" {
		return nil, ErrNameAndAddressRequired
	}
	return s.stores.CreateStore(name, address)
}

// AddListing records that a store sells a book at a price. Checks run in a
// fixed order so the reported error is deterministic: price presence, price
// sign, store existence, book existence. Nothing is written until every
// check has passed.
func (s *Service) AddListing(storeID, bookID uint, price *decimal.Decimal) (*entities.StoreBook, error) {
	if price == nil {
		return nil, ErrPriceRequired
	}
	if price.IsNegative() {
		return nil, ErrPriceNegative
	}
	if _, err := s.stores.GetStoreByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if _, err := s.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return s.listings.CreateListing(storeID, bookID, *price)
}

// BooksInStore returns every book listed by the store with its listed price.
// When the same (store, book) pair has several listings, the last one wins,
// keeping one entry per book. A listing whose book no longer resolves is
// omitted rather than failing the query.
func (s *Service) BooksInStore(storeID uint) ([]StoreBookItem, error) {
	storeListings, err := s.listings.GetListingsForStore(storeID)
	if err != nil {
		return nil, err
	}
	if len(storeListings) == 0 {
		return nil, ErrNoBooksInStore
	}

	bookIDs := lo.Uniq(lo.Map(storeListings, func(l entities.StoreBook, _ int) uint {
		return l.BookID
	}))
	prices := make(map[uint]decimal.Decimal, len(storeListings))
	for _, listing := range storeListings {
		prices[listing.BookID] = listing.Price
	}

	booksInStore, err := s.books.GetBooksByIDs(bookIDs)
	if err != nil {
		return nil, err
	}

	return lo.Map(booksInStore, func(b entities.Book, _ int) StoreBookItem {
		return StoreBookItem{ID: b.ID, Name: b.Name, Price: prices[b.ID]}
	}), nil
}

// BooksByAuthor returns every book owned by the author.
func (s *Service) BooksByAuthor(authorID uint) ([]AuthorBookItem, error) {
	authorBooks, err := s.books.GetBooksByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	if len(authorBooks) == 0 {
		return nil, ErrNoBooksByAuthor
	}

	return lo.Map(authorBooks, func(b entities.Book, _ int) AuthorBookItem {
		return AuthorBookItem{ID: b.ID, Name: b.Name, Pages: b.Pages}
	}), nil
}

// CheapestBooksByAuthor returns, per author, the book(s) and listing price(s)
// achieving the author-wide minimum, ordered by author ID. Ties at the
// minimum are all included.
func (s *Service) CheapestBooksByAuthor() ([]entities.CheapestBookByAuthor, error) {
	rows, err := s.listings.GetCheapestBooksByAuthor()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoBooks
	}
	return rows, nil
}
