package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/database/authors"
	"bookstore/internal/database/books"
	"bookstore/internal/database/listings"
	"bookstore/internal/database/stores"
	bookstorehttp "bookstore/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown func()) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown()
	}

	log.Println("Server exiting")
}

// Run wires the database, repositories, service and router, then serves.
// The database handle is opened once here and closed on shutdown.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookstore API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	service := catalog.NewService(
		authors.NewRepository(db.DB),
		books.NewRepository(db.DB),
		stores.NewRepository(db.DB),
		listings.NewRepository(db.DB),
	)

	router := bookstorehttp.NewRouter(service)

	Serve(router, cfg, func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
