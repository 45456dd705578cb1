package scrapers

import (
	"fmt"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/scrapers/amazon"
)

// Registered extractors, tried in order
var extractors = []Extractor{
	amazon.NewAmazonScraper(),
}

// GetScraper returns the extractor for the page address.
// An empty address (a saved page without its URL) falls back to the first
// registered extractor, whose title check decides whether it is a product page.
func GetScraper(url string) (Extractor, error) {
	if url == "" {
		return extractors[0], nil
	}

	for _, s := range extractors {
		if s.CanScrape(url) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedPage, url)
}

// Supported reports whether a registered extractor handles the address
func Supported(url string) bool {
	_, err := GetScraper(url)
	return err == nil
}
