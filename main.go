package main

import (
	"bookstore/internal/config"
	"bookstore/internal/entrypoint"
)

// Version information - set at build time via ldflags
var Version = "dev"

//	@title			Bookstore API
//	@version		1.0
//	@description	API documentation for the Bookstore application

//	@BasePath	/

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
