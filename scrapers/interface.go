package scrapers

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-clipper/models"
)

// Extractor defines the interface for all product page extractors
type Extractor interface {
	// CanScrape checks if the extractor can handle the given URL
	CanScrape(url string) bool
	// Extract reads the product details from an already rendered document.
	// It fails with models.ErrNotProductPage when the page has no title.
	Extract(doc *goquery.Document) (*models.Product, error)
}
