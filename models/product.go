package models

// StarShare is one row of the star histogram, e.g. "5 star" -> "70%"
type StarShare struct {
	Stars      string `json:"stars"`
	Percentage string `json:"percentage"`
}

// DetailedRating groups the aggregate rating, the review count and the star histogram.
// Sub-fields that were not found are left empty and omitted when serialized.
type DetailedRating struct {
	Overall     string      `json:"overall,omitempty"`
	ReviewCount string      `json:"reviewCount,omitempty"`
	Breakdown   []StarShare `json:"breakdown,omitempty"` // Table-scan order
}

// IsEmpty reports whether there is nothing to show
func (d DetailedRating) IsEmpty() bool {
	return d.Overall == "" && d.ReviewCount == "" && len(d.Breakdown) == 0
}

// SetShare records a star/percentage pair. A repeated star label keeps its
// original position and takes the newer percentage.
func (d *DetailedRating) SetShare(stars, percentage string) {
	for i := range d.Breakdown {
		if d.Breakdown[i].Stars == stars {
			d.Breakdown[i].Percentage = percentage
			return
		}
	}
	d.Breakdown = append(d.Breakdown, StarShare{Stars: stars, Percentage: percentage})
}

// Product represents the details extracted from one product page.
// An empty string means the field was not found on the page.
type Product struct {
	Title          string         `json:"title,omitempty"`
	Price          string         `json:"price,omitempty"`         // Current (discounted) price
	ListPrice      string         `json:"listPrice,omitempty"`     // Pre-discount price
	Rating         string         `json:"rating,omitempty"`
	ReviewCount    string         `json:"reviewCount,omitempty"`
	Description    []string       `json:"description"`             // "About this item" bullets
	ImageURL       string         `json:"imageUrl,omitempty"`
	AffiliateLink  string         `json:"affiliateLink,omitempty"`
	Seller         string         `json:"seller,omitempty"`
	ASIN           string         `json:"asin,omitempty"`
	BestSeller     string         `json:"bestSeller,omitempty"`
	ColorOptions   []string       `json:"colorOptions"`
	ItemOptions    []string       `json:"itemOptions"`             // Size / style variants
	DetailedRating DetailedRating `json:"detailedRating"`
}
