package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/catalog"
	"bookstore/internal/entities"
)

// CheapestBooksLister defines the aggregation query the endpoint needs.
type CheapestBooksLister interface {
	CheapestBooksByAuthor() ([]entities.CheapestBookByAuthor, error)
}

type CheapestBooksController struct {
	service CheapestBooksLister
}

func NewCheapestBooksController(service CheapestBooksLister) *CheapestBooksController {
	return &CheapestBooksController{service: service}
}

// GetCheapestBooksByAuthor returns, per author, the book(s) achieving the
// author-wide minimum listing price, ordered by author ID.
//
//	@Summary	Get cheapest books by author
//	@Tags		books
//	@Produce	json
//	@Success	200	{array}		entities.CheapestBookByAuthor
//	@Failure	404	{object}	MessageResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cheapest-books-by-author [get]
func (cc *CheapestBooksController) GetCheapestBooksByAuthor(c *gin.Context) {
	rows, err := cc.service.CheapestBooksByAuthor()
	if err != nil {
		if errors.Is(err, catalog.ErrNoBooks) {
			respondNotFoundMessage(c, err.Error())
			return
		}
		respondInternalError(c, err, "get cheapest books by author")
		return
	}

	c.JSON(http.StatusOK, rows)
}
