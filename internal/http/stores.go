package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookstore/internal/catalog"
	"bookstore/internal/entities"
)

// StoreService defines the catalog operations the stores endpoints need.
type StoreService interface {
	CreateStore(name, address string) (*entities.Store, error)
	AddListing(storeID, bookID uint, price *decimal.Decimal) (*entities.StoreBook, error)
	BooksInStore(storeID uint) ([]catalog.StoreBookItem, error)
}

// CreateStoreRequest is the body of POST /stores.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AddListingRequest is the body of POST /stores/{storeId}/books/{bookId}.
// Price is a pointer so a missing field is distinguishable from zero.
type AddListingRequest struct {
	Price *decimal.Decimal `json:"price"`
}

type StoresController struct {
	service StoreService
}

func NewStoresController(service StoreService) *StoresController {
	return &StoresController{service: service}
}

// CreateStore registers a new store.
//
//	@Summary	Create a new store
//	@Tags		stores
//	@Accept		json
//	@Produce	json
//	@Param		store	body		CreateStoreRequest	true	"Store to create"
//	@Success	201		{object}	entities.Store
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/stores [post]
func (sc *StoresController) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	store, err := sc.service.CreateStore(req.Name, req.Address)
	if err != nil {
		if errors.Is(err, catalog.ErrNameAndAddressRequired) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create store")
		return
	}

	respondCreated(c, store)
}

// AddBookToStore lists a book in a store at a price.
//
//	@Summary	Add a specific book to a specific store
//	@Tags		stores
//	@Accept		json
//	@Produce	json
//	@Param		storeId	path		int					true	"Store ID"
//	@Param		bookId	path		int					true	"Book ID"
//	@Param		listing	body		AddListingRequest	true	"Listing price"
//	@Success	201		{object}	entities.StoreBook
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/stores/{storeId}/books/{bookId} [post]
func (sc *StoresController) AddBookToStore(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var req AddListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	listing, err := sc.service.AddListing(storeID, bookID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPriceRequired), errors.Is(err, catalog.ErrPriceNegative):
			respondBadRequest(c, err.Error())
		case errors.Is(err, catalog.ErrStoreNotFound), errors.Is(err, catalog.ErrBookNotFound):
			respondNotFound(c, err.Error())
		default:
			respondInternalError(c, err, "add book to store")
		}
		return
	}

	respondCreated(c, listing)
}

// GetStoreBooks returns all books listed in a store with their prices.
//
//	@Summary	Get all books in a specific store
//	@Tags		stores
//	@Produce	json
//	@Param		storeId	path		int	true	"Store ID"
//	@Success	200		{array}		catalog.StoreBookItem
//	@Failure	404		{object}	MessageResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/stores/{storeId}/books [get]
func (sc *StoresController) GetStoreBooks(c *gin.Context) {
	storeID, ok := parseIDParam(c, "storeId")
	if !ok {
		return
	}

	items, err := sc.service.BooksInStore(storeID)
	if err != nil {
		if errors.Is(err, catalog.ErrNoBooksInStore) {
			respondNotFoundMessage(c, err.Error())
			return
		}
		respondInternalError(c, err, "get store books")
		return
	}

	c.JSON(http.StatusOK, items)
}
