package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/raushankrgupta/product-clipper/formatter"
	"github.com/raushankrgupta/product-clipper/scrapers"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
)

// Dumps the extracted record and popup rows for each saved page given on the command line
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: test_scraper page.html [page.html...]")
	}

	for _, path := range os.Args[1:] {
		fmt.Printf("Testing page: %s\n", path)

		page, err := base.FileSource{Path: path}.Page(context.Background())
		if err != nil {
			log.Printf("Failed to load %s: %v\n", path, err)
			continue
		}

		scraper, err := scrapers.GetScraper(page.URL)
		if err != nil {
			log.Printf("Failed to get scraper: %v\n", err)
			continue
		}
		fmt.Printf("Scraper: %T\n", scraper)

		product, err := scraper.Extract(page.Doc)
		if err != nil {
			log.Printf("Failed to scrape product: %v\n", err)
			continue
		}

		b, _ := json.MarshalIndent(product, "", "  ")
		fmt.Printf("Product: %s\n", string(b))
		for _, row := range formatter.Rows(product) {
			fmt.Printf("  %-18s %s\n", row.Label+":", row.Value)
		}
		fmt.Println("--------------------------------------------------")
	}
}
