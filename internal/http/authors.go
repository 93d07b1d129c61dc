package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/catalog"
	"bookstore/internal/entities"
)

// AuthorService defines the catalog operations the authors endpoints need.
type AuthorService interface {
	CreateAuthor(name string) (*entities.Author, error)
	AddBook(authorID uint, name string, pages *int) (*entities.Book, error)
	BooksByAuthor(authorID uint) ([]catalog.AuthorBookItem, error)
}

// CreateAuthorRequest is the body of POST /authors.
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// CreateBookRequest is the body of POST /authors/{authorId}/books.
type CreateBookRequest struct {
	Name  string `json:"name"`
	Pages *int   `json:"pages"`
}

type AuthorsController struct {
	service AuthorService
}

func NewAuthorsController(service AuthorService) *AuthorsController {
	return &AuthorsController{service: service}
}

// CreateAuthor registers a new author.
//
//	@Summary	Create an author
//	@Tags		authors
//	@Accept		json
//	@Produce	json
//	@Param		author	body		CreateAuthorRequest	true	"Author to create"
//	@Success	201		{object}	entities.Author
//	@Failure	400		{object}	ErrorResponse
//	@Router		/authors [post]
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := ac.service.CreateAuthor(req.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrNameRequired) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create author")
		return
	}

	respondCreated(c, author)
}

// CreateBook creates a book for an existing author.
//
//	@Summary	Create a book for an author
//	@Tags		authors
//	@Accept		json
//	@Produce	json
//	@Param		authorId	path		int					true	"Author ID"
//	@Param		book		body		CreateBookRequest	true	"Book to create"
//	@Success	201			{object}	entities.Book
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/authors/{authorId}/books [post]
func (ac *AuthorsController) CreateBook(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := ac.service.AddBook(authorID, req.Name, req.Pages)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNameRequired):
			respondBadRequest(c, err.Error())
		case errors.Is(err, catalog.ErrAuthorNotFound):
			respondNotFound(c, err.Error())
		default:
			respondInternalError(c, err, "create book")
		}
		return
	}

	respondCreated(c, book)
}

// GetAuthorBooks returns all books by a specific author.
//
//	@Summary	Get all books by a specific author
//	@Tags		authors
//	@Produce	json
//	@Param		authorId	path		int	true	"Author ID"
//	@Success	200			{array}		catalog.AuthorBookItem
//	@Failure	404			{object}	MessageResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/authors/{authorId}/books [get]
func (ac *AuthorsController) GetAuthorBooks(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	items, err := ac.service.BooksByAuthor(authorID)
	if err != nil {
		if errors.Is(err, catalog.ErrNoBooksByAuthor) {
			respondNotFoundMessage(c, err.Error())
			return
		}
		respondInternalError(c, err, "get author books")
		return
	}

	c.JSON(http.StatusOK, items)
}
