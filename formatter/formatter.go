// Package formatter turns product records into the labelled text that is
// copied to the clipboard and shown in the popup view. Every call site goes
// through these functions so the output stays identical across them.
package formatter

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/product-clipper/models"
)

const (
	// DescriptionSeparator joins feature bullets in copied text
	DescriptionSeparator = "\n• "
	// NoneAvailable is shown for an empty list or rating breakdown
	NoneAvailable = "None available"
)

// Field is one labelled value ready to be written out
type Field struct {
	Key   models.FieldKey `json:"key"`
	Label string          `json:"label"`
	Value string          `json:"value"`
}

// CatalogEntry describes a field of the copy-all output
type CatalogEntry struct {
	Key   models.FieldKey
	Label string
}

// Catalog is the copy-all field order. The image URL is not part of it: it is
// appended after the catalog fields, see ImageEntry.
var Catalog = []CatalogEntry{
	{models.FieldTitle, "Title"},
	{models.FieldPrice, "Price"},
	{models.FieldListPrice, "List Price"},
	{models.FieldRating, "Rating"},
	{models.FieldAffiliateLink, "Affiliate Link"},
	{models.FieldASIN, "ASIN"},
	{models.FieldSeller, "Seller"},
	{models.FieldBestSeller, "Best Seller Rank"},
	{models.FieldDescription, "Description"},
	{models.FieldDetailedRating, "Detailed Rating"},
}

// ImageEntry is always appended to copy-all output when the image was found
var ImageEntry = CatalogEntry{models.FieldImageURL, "Image URL"}

// Label returns the display label of a field key
func Label(key models.FieldKey) string {
	if key == ImageEntry.Key {
		return ImageEntry.Label
	}
	for _, e := range Catalog {
		if e.Key == key {
			return e.Label
		}
	}
	return string(key)
}

// Value returns the copy text of a field and whether the field is present.
// Empty lists and an empty detailed rating count as absent.
func Value(p *models.Product, key models.FieldKey) (string, bool) {
	if p == nil {
		return "", false
	}

	var v string
	switch key {
	case models.FieldTitle:
		v = p.Title
	case models.FieldPrice:
		v = p.Price
	case models.FieldListPrice:
		v = p.ListPrice
	case models.FieldRating:
		v = p.Rating
	case models.FieldAffiliateLink:
		v = p.AffiliateLink
	case models.FieldImageURL:
		v = p.ImageURL
	case models.FieldASIN:
		v = p.ASIN
	case models.FieldSeller:
		v = p.Seller
	case models.FieldBestSeller:
		v = p.BestSeller
	case models.FieldDescription:
		v = strings.Join(p.Description, DescriptionSeparator)
	case models.FieldDetailedRating:
		v = FormatDetailedRating(p.DetailedRating)
	}
	return v, v != ""
}

// Display returns the value shown for a single field in the popup view.
// Unlike Value it never returns "" for the list and rating fields, and the
// rating is paired with the review count.
func Display(p *models.Product, key models.FieldKey) string {
	if p == nil {
		return ""
	}
	switch key {
	case models.FieldDescription:
		return FormatDescription(p.Description)
	case models.FieldDetailedRating:
		if s := FormatDetailedRating(p.DetailedRating); s != "" {
			return s
		}
		return NoneAvailable
	case models.FieldRating:
		if p.Rating == "" {
			return ""
		}
		return FormatRating(p.Rating, p.ReviewCount)
	}
	v, _ := Value(p, key)
	return v
}

// FormatDescription joins the bullets, or reports that there are none
func FormatDescription(items []string) string {
	if len(items) == 0 {
		return NoneAvailable
	}
	return strings.Join(items, DescriptionSeparator)
}

// FormatDetailedRating renders the rating on one line, e.g.
// "Overall: 4.5 out of 5 stars | Breakdown: 5 star: 70%, 4 star: 20%".
// Parts that were not found are left out. Returns "" when the rating is empty.
func FormatDetailedRating(d models.DetailedRating) string {
	var parts []string
	if d.Overall != "" {
		parts = append(parts, "Overall: "+d.Overall)
	}
	if d.ReviewCount != "" {
		parts = append(parts, "Reviews: "+d.ReviewCount)
	}
	if len(d.Breakdown) > 0 {
		shares := make([]string, 0, len(d.Breakdown))
		for _, s := range d.Breakdown {
			shares = append(shares, s.Stars+": "+s.Percentage)
		}
		parts = append(parts, "Breakdown: "+strings.Join(shares, ", "))
	}
	return strings.Join(parts, " | ")
}

// FormatRating pairs the rating label with the review count, "4.5 out of 5 stars (1,024 ratings)"
func FormatRating(rating, reviewCount string) string {
	if reviewCount == "" {
		reviewCount = "0"
	}
	return fmt.Sprintf("%s (%s)", rating, reviewCount)
}

// Lines writes one "Label: value" line per field
func Lines(fields []Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// Rows returns the popup view rows: every catalog field that was found, plus the image URL.
func Rows(p *models.Product) []Field {
	entries := append(append([]CatalogEntry{}, Catalog...), ImageEntry)

	var rows []Field
	for _, e := range entries {
		if _, ok := Value(p, e.Key); !ok {
			continue
		}
		rows = append(rows, Field{Key: e.Key, Label: e.Label, Value: Display(p, e.Key)})
	}
	return rows
}
