package amazon

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-clipper/models"
)

// Patterns tried against the "About this item" block, in order.
var featureBulletSelectors = []string{
	"#feature-bullets .a-list-item",
	"#feature-bullets ul li",
	"#feature-bullets .a-spacing-mini",
	"#feature-bullets .a-text-bold + span",
	"#feature-bullets .a-list-item span",
	"#feature-bullets li span",
	"#feature-bullets .a-spacing-base",
	"#feature-bullets .a-spacing-mini span",
}

const (
	featureBulletsContainer = "#feature-bullets"
	detailsTableRows        = "#productDetails_detailBullets_sections1 tr"
	detailBulletItems       = "#detailBullets_feature_div li"
	colorOptionItems        = "#variation_color_name li, .imgSwatch"
	itemOptionItems         = "#variation_size_name li, #variation_style_name li, .a-button-text"
	histogramRows           = "#histogramTable tr, #histogramTable li, .a-histogram-row"
)

// aboutThisItem returns the feature bullets. Never nil.
func aboutThisItem(root *goquery.Selection) []string {
	// Tier 1: structured patterns, the first one with any text wins
	for _, selector := range featureBulletSelectors {
		elements := root.Find(selector)
		if elements.Length() == 0 {
			continue
		}

		items := make([]string, 0, elements.Length())
		elements.Each(func(i int, s *goquery.Selection) {
			if text := normalizeSpace(s.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) > 0 {
			return items
		}
	}

	// Tier 2: split the raw container text at bullet markers
	container := root.Find(featureBulletsContainer).First()
	if container.Length() == 0 {
		return []string{}
	}
	return splitBullets(strings.TrimSpace(container.Text()))
}

// productDetails scans the details table for the ASIN and the best sellers rank.
// The bullet-list layout is used when the table gives neither.
func productDetails(root *goquery.Selection) (asin, bestSeller string) {
	match := func(label, value string) {
		label = strings.ToLower(label)
		if label == "" || value == "" {
			return
		}
		if strings.Contains(label, "asin") {
			asin = value
		}
		if strings.Contains(label, "best sellers rank") {
			bestSeller = rankBeforeQualifier(value)
		}
	}

	root.Find(detailsTableRows).Each(func(i int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		match(label, value)
	})
	if asin != "" || bestSeller != "" {
		return asin, bestSeller
	}

	root.Find(detailBulletItems).Each(func(i int, item *goquery.Selection) {
		labelEl := item.Find(".a-text-bold").First()
		if labelEl.Length() == 0 {
			return
		}
		label := cleanLabel(labelEl.Text())
		value := strings.TrimSpace(labelEl.Next().Text())
		match(label, value)
	})
	return asin, bestSeller
}

// rankBeforeQualifier keeps the rank up to the first parenthetical note,
// "#1,234 in Widgets (See Top 100)" -> "#1,234 in Widgets".
func rankBeforeQualifier(value string) string {
	if i := strings.Index(value, " ("); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

func colorOptions(root *goquery.Selection) []string {
	var names orderedSet
	root.Find(colorOptionItems).Each(func(i int, el *goquery.Selection) {
		name := strings.TrimSpace(el.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(el.Text())
		}
		names.add(name)
	})
	return names.items()
}

func itemOptions(root *goquery.Selection) []string {
	var names orderedSet
	root.Find(itemOptionItems).Each(func(i int, el *goquery.Selection) {
		names.add(strings.TrimSpace(el.Text()))
	})
	return names.items()
}

// detailedRating composes the three independent rating probes.
// Nothing found yields the zero value.
func detailedRating(root *goquery.Selection) models.DetailedRating {
	var rating models.DetailedRating

	rating.Overall = read(root, attr("#acrPopover", "title"))
	rating.ReviewCount = read(root, text("#acrCustomerReviewText"))

	root.Find(histogramRows).Each(func(i int, row *goquery.Selection) {
		stars := strings.TrimSpace(row.Find(".a-text-right").First().Text())
		percentage := strings.TrimSpace(row.Find(".a-text-left").First().Text())
		if stars != "" && percentage != "" {
			rating.SetShare(stars, percentage)
		}
	})

	return rating
}

// orderedSet keeps the first occurrence of each non-empty string
type orderedSet struct {
	seen map[string]bool
	list []string
}

func (o *orderedSet) add(s string) {
	if s == "" || o.seen[s] {
		return
	}
	if o.seen == nil {
		o.seen = make(map[string]bool)
	}
	o.seen[s] = true
	o.list = append(o.list, s)
}

func (o *orderedSet) items() []string {
	if o.list == nil {
		return []string{}
	}
	return o.list
}
