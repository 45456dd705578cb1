package base

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/utils"
)

// Page is a loaded document and the address it came from.
// URL is empty when the address is unknown.
type Page struct {
	URL string
	Doc *goquery.Document
}

// Source produces the page a copy action runs against
type Source interface {
	Page(ctx context.Context) (*Page, error)
}

// FileSource reads a saved HTML page from disk
type FileSource struct {
	Path string
	URL  string
}

func (s FileSource) Page(ctx context.Context) (*Page, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	return ReaderSource{Reader: f, URL: s.URL}.Page(ctx)
}

// ReaderSource parses HTML from a reader, e.g. a request body or stdin
type ReaderSource struct {
	Reader io.Reader
	URL    string
}

func (s ReaderSource) Page(ctx context.Context) (*Page, error) {
	if s.Reader == nil {
		return nil, errors.New("no page content")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(s.Reader)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Page{URL: s.URL, Doc: doc}, nil
}

// URLSource fetches a live page. Short links are resolved first so the
// final address can be checked against the supported sites.
type URLSource struct {
	URL       string
	Fetcher   *Fetcher
	Validator Validator

	// CanScrape rejects a resolved address before anything is fetched. Nil accepts all.
	CanScrape func(url string) bool
}

func (s URLSource) Page(ctx context.Context) (*Page, error) {
	if s.Fetcher == nil {
		return nil, errors.New("no fetcher configured")
	}

	target := s.URL
	if resolved, err := utils.ResolveShortenedURL(ctx, s.URL); err == nil {
		target = resolved
	} else {
		fmt.Printf("[URLSource] Could not resolve %s, using it as is: %v\n", s.URL, err)
	}

	if s.CanScrape != nil && !s.CanScrape(target) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedPage, target)
	}

	doc, err := s.Fetcher.FetchDocument(ctx, target, s.Validator)
	if err != nil {
		return nil, err
	}
	return &Page{URL: target, Doc: doc}, nil
}
