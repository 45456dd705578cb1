package amazon

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-clipper/models"
)

// readMode says which part of the first matching element holds the value
type readMode int

const (
	readText readMode = iota
	readAttr
	readValue // form control value (textarea content or value attribute)
)

// strategy is one candidate lookup for a scalar field
type strategy struct {
	selector string
	mode     readMode
	attr     string
}

func text(selector string) strategy { return strategy{selector: selector, mode: readText} }

func attr(selector, name string) strategy {
	return strategy{selector: selector, mode: readAttr, attr: name}
}

func value(selector string) strategy { return strategy{selector: selector, mode: readValue} }

// scalarField binds a fallback chain to the product field it fills
type scalarField struct {
	name       string
	strategies []strategy
	set        func(p *models.Product, v string)
}

// Fallback chains for the scalar fields, highest priority first.
// Layout and locale variants of the product page are absorbed here.
var scalarFields = []scalarField{
	{
		name: "title",
		strategies: []strategy{
			text("#productTitle"),
			text("#ebooksProductTitle"),
		},
		set: func(p *models.Product, v string) { p.Title = v },
	},
	{
		name: "price",
		strategies: []strategy{
			text("#corePrice_feature_div .a-offscreen"),
			text(".priceToPay .a-offscreen"),
			text("#corePriceDisplay_desktop_feature_div .a-price.apexPriceToPay .a-offscreen"),
			text("#priceblock_dealprice"),
			text("#priceblock_ourprice"),
		},
		set: func(p *models.Product, v string) { p.Price = v },
	},
	{
		name: "listPrice",
		strategies: []strategy{
			text(`span[data-a-strike="true"] .a-offscreen`),
			text(".basisPrice .a-offscreen"),
		},
		set: func(p *models.Product, v string) { p.ListPrice = v },
	},
	{
		name:       "rating",
		strategies: []strategy{attr("#acrPopover", "title")},
		set:        func(p *models.Product, v string) { p.Rating = v },
	},
	{
		name:       "reviewCount",
		strategies: []strategy{text("#acrCustomerReviewText")},
		set:        func(p *models.Product, v string) { p.ReviewCount = v },
	},
	{
		name: "imageUrl",
		strategies: []strategy{
			attr("#landingImage", "src"),
			attr("#imgBlkFront", "src"),
			attr("#landingImage", "data-old-hires"),
		},
		set: func(p *models.Product, v string) { p.ImageURL = v },
	},
	{
		name:       "affiliateLink",
		strategies: []strategy{value("#amzn-ss-text-shortlink-textarea")},
		set:        func(p *models.Product, v string) { p.AffiliateLink = v },
	},
	{
		name:       "seller",
		strategies: []strategy{text("#bylineInfo")},
		set:        func(p *models.Product, v string) { p.Seller = CleanSeller(v) },
	},
}

// AmazonScraper handles the HTML parsing for Amazon product pages
type AmazonScraper struct{}

func NewAmazonScraper() *AmazonScraper {
	return &AmazonScraper{}
}

// CanScrape accepts the Amazon storefronts and short-link hosts:
// amazon.<tld>, amazon.co.<cc>, amazon.com.<cc>, amzn.<tld> and their subdomains.
func (s *AmazonScraper) CanScrape(pageURL string) bool {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return false
	}

	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	for i, label := range labels {
		if label != "amazon" && label != "amzn" {
			continue
		}
		return isStoreSuffix(labels[i+1:])
	}
	return false
}

// isStoreSuffix reports whether the labels after "amazon" form a public
// suffix: "com", "in", "co.uk", "com.au".
func isStoreSuffix(suffix []string) bool {
	switch len(suffix) {
	case 1:
		return suffix[0] != ""
	case 2:
		return (suffix[0] == "co" || suffix[0] == "com") && len(suffix[1]) == 2
	}
	return false
}

// IsProductPage is the validator used while fetching: a rendered product page has a title
func (s *AmazonScraper) IsProductPage(doc *goquery.Document) bool {
	return firstMatch(doc.Selection, scalarFields[0].strategies) != ""
}

// Extract builds the product record from the document. Missing elements leave
// the corresponding field empty; only a missing title is an error.
// The document is only read, never modified.
func (s *AmazonScraper) Extract(doc *goquery.Document) (*models.Product, error) {
	root := doc.Selection
	product := &models.Product{}

	// 1. Scalar fields
	for _, f := range scalarFields {
		f.set(product, firstMatch(root, f.strategies))
	}
	if product.Title == "" {
		return nil, models.ErrNotProductPage
	}

	// 2. About this item
	product.Description = aboutThisItem(root)

	// 3. Details table (ASIN, Best Sellers Rank)
	product.ASIN, product.BestSeller = productDetails(root)

	// 4. Variants
	product.ColorOptions = colorOptions(root)
	product.ItemOptions = itemOptions(root)

	// 5. Rating breakdown
	product.DetailedRating = detailedRating(root)

	return product, nil
}

// firstMatch returns the first non-empty value produced by the chain
func firstMatch(root *goquery.Selection, chain []strategy) string {
	for _, st := range chain {
		if v := read(root, st); v != "" {
			return v
		}
	}
	return ""
}

// read applies one strategy to the first element matching its selector
func read(root *goquery.Selection, st strategy) string {
	el := root.Find(st.selector).First()
	if el.Length() == 0 {
		return ""
	}

	switch st.mode {
	case readAttr:
		return strings.TrimSpace(el.AttrOr(st.attr, ""))
	case readValue:
		if v, ok := el.Attr("value"); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(el.Text())
	default:
		return strings.TrimSpace(el.Text())
	}
}
