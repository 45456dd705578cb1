package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/raushankrgupta/product-clipper/api"
	"github.com/raushankrgupta/product-clipper/config"
	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
	"github.com/raushankrgupta/product-clipper/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	settings, err := store.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	if c, ok := settings.(store.Closer); ok {
		defer c.Close(ctx)
	}

	fetcher := base.NewFetcher(cfg.ChromeDriverPath, cfg.FetchTimeout)
	fetcher.UseBrowsers = cfg.UseBrowsers

	server := &api.Server{
		Settings: settings,
		Fetcher:  fetcher,
	}
	if cfg.EmailEnabled() {
		server.Notifier = notify.NewSendGrid(cfg)
	}

	port := cfg.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Usage: curl -X POST \"http://localhost:%s/copy/all\" -d '{\"url\":\"<product_url>\"}'\n", port)
	if err := http.ListenAndServe(":"+port, server.Routes()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
