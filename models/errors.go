package models

import "errors"

var (
	// ErrNotProductPage is returned when the document has no product title
	ErrNotProductPage = errors.New("page does not contain product data")

	// ErrUnsupportedPage is returned when no extractor handles the page address
	ErrUnsupportedPage = errors.New("not a supported product page")
)
