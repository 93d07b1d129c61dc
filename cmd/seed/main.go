// Command seed creates a database with sample bookstore data.
// Usage: go run cmd/seed/main.go [-db path/to/bookstore.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/database/authors"
	"bookstore/internal/database/books"
	"bookstore/internal/database/listings"
	"bookstore/internal/database/stores"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	// Delete any existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	service := catalog.NewService(
		authors.NewRepository(db.DB),
		books.NewRepository(db.DB),
		stores.NewRepository(db.DB),
		listings.NewRepository(db.DB),
	)

	orwell, err := service.CreateAuthor("George Orwell")
	if err != nil {
		log.Fatalf("Failed to create author: %v", err)
	}
	huxley, err := service.CreateAuthor("Aldous Huxley")
	if err != nil {
		log.Fatalf("Failed to create author: %v", err)
	}

	pages1984 := 328
	pagesAnimalFarm := 112
	pagesBraveNewWorld := 311

	seedBooks := []struct {
		authorID uint
		name     string
		pages    *int
	}{
		{orwell.ID, "1984", &pages1984},
		{orwell.ID, "Animal Farm", &pagesAnimalFarm},
		{huxley.ID, "Brave New World", &pagesBraveNewWorld},
	}

	bookIDs := make(map[string]uint, len(seedBooks))
	for _, b := range seedBooks {
		book, err := service.AddBook(b.authorID, b.name, b.pages)
		if err != nil {
			log.Fatalf("Failed to create book %s: %v", b.name, err)
		}
		bookIDs[b.name] = book.ID
		log.Printf("Created: %s (id=%d)", b.name, book.ID)
	}

	central, err := service.CreateStore("Central", "1 Main Street")
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	corner, err := service.CreateStore("Corner Books", "42 Side Avenue")
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	seedListings := []struct {
		storeID uint
		book    string
		price   string
	}{
		{central.ID, "1984", "9.99"},
		{central.ID, "Animal Farm", "7.50"},
		{corner.ID, "1984", "11.25"},
		{corner.ID, "Brave New World", "8.99"},
	}

	for _, l := range seedListings {
		price := decimal.RequireFromString(l.price)
		if _, err := service.AddListing(l.storeID, bookIDs[l.book], &price); err != nil {
			log.Fatalf("Failed to create listing for %s: %v", l.book, err)
		}
	}

	log.Println("Database seeded successfully!")
}
