package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstore/internal/catalog"

	_ "bookstore/docs"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(service *catalog.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Interactive API docs, generated from the handler annotations.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorsController := NewAuthorsController(service)
	storesController := NewStoresController(service)
	cheapestController := NewCheapestBooksController(service)

	router.GET("/start", Start)

	router.POST("/authors", authorsController.CreateAuthor)
	router.POST("/authors/:authorId/books", authorsController.CreateBook)
	router.GET("/authors/:authorId/books", authorsController.GetAuthorBooks)

	router.POST("/stores", storesController.CreateStore)
	router.POST("/stores/:storeId/books/:bookId", storesController.AddBookToStore)
	router.GET("/stores/:storeId/books", storesController.GetStoreBooks)

	router.GET("/cheapest-books-by-author", cheapestController.GetCheapestBooksByAuthor)

	return router
}
