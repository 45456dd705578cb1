package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/product-clipper/formatter"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/scrapers"
	"github.com/raushankrgupta/product-clipper/scrapers/amazon"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
	"github.com/raushankrgupta/product-clipper/utils"
)

type scrapeResponse struct {
	Product *models.Product   `json:"product"`
	Rows    []formatter.Field `json:"rows"`
}

// ScrapeHandler extracts the product record and the popup rows from a page
func (s *Server) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Scrape API]")

	source, err := s.decodeSource(r)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := source.Page(r.Context())
	if errors.Is(err, models.ErrUnsupportedPage) {
		utils.RespondError(w, &logMessageBuilder, "Navigate to an Amazon product page to begin.", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Could not load page: %v", err), http.StatusBadGateway)
		return
	}

	extractor, err := scrapers.GetScraper(page.URL)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Navigate to an Amazon product page to begin.", http.StatusUnprocessableEntity)
		return
	}

	product, err := extractor.Extract(page.Doc)
	if errors.Is(err, models.ErrNotProductPage) {
		utils.RespondError(w, &logMessageBuilder, "This page does not contain product data.", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Scraping failed: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Scraped %q", product.Title))
	utils.RespondJSON(w, http.StatusOK, scrapeResponse{Product: product, Rows: formatter.Rows(product)})
}

// decodeSource turns the request body into a page source
func (s *Server) decodeSource(r *http.Request) (base.Source, error) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("Invalid request body")
	}

	if req.HTML != "" {
		return base.ReaderSource{Reader: strings.NewReader(req.HTML), URL: req.URL}, nil
	}
	if req.URL == "" {
		return nil, fmt.Errorf("Please provide 'url' or 'html' in the JSON body")
	}
	if s.Fetcher == nil {
		return nil, fmt.Errorf("Fetching is disabled, send the page 'html'")
	}
	return base.URLSource{
		URL:       req.URL,
		Fetcher:   s.Fetcher,
		Validator: amazon.NewAmazonScraper().IsProductPage,
		CanScrape: scrapers.Supported,
	}, nil
}
