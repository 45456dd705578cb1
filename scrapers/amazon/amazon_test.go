package amazon

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `<html><body>
<span id="productTitle">
   Acme Widget Pro, 2-Pack
</span>
<a id="bylineInfo" href="/stores/acme">Visit the Acme Store</a>
<div id="corePrice_feature_div"><span class="a-price"><span class="a-offscreen">$19.99</span></span></div>
<span class="a-price a-text-price" data-a-strike="true"><span class="a-offscreen">$29.99</span></span>
<span id="acrPopover" title="4.5 out of 5 stars"><span class="a-icon-alt">4.5</span></span>
<span id="acrCustomerReviewText">1,024 ratings</span>
<div id="imgTagWrapperId"><img id="landingImage" src="https://m.media-amazon.com/images/I/71abc.jpg"></div>
<textarea id="amzn-ss-text-shortlink-textarea">https://amzn.to/3xyz</textarea>
<div id="feature-bullets">
  <ul>
    <li><span class="a-list-item">  Durable   steel
        frame </span></li>
    <li><span class="a-list-item">Fits most desks</span></li>
    <li><span class="a-list-item">   </span></li>
  </ul>
</div>
<table id="productDetails_detailBullets_sections1">
  <tr><th> ASIN </th><td> B0TEST1234 </td></tr>
  <tr><th>Best Sellers Rank</th><td>#1,234 in Widgets (See Top 100 in Widgets)</td></tr>
  <tr><th>Date First Available</th><td>May 1, 2024</td></tr>
</table>
<ul id="variation_color_name">
  <li title="Black"><img alt=""></li>
  <li title="Silver"></li>
  <li>Black</li>
</ul>
<ul id="variation_size_name"><li>Small</li><li>Large</li><li>Small</li></ul>
<table id="histogramTable">
  <tr><td class="a-text-right">5 star</td><td class="a-text-left">70%</td></tr>
  <tr><td class="a-text-right">4 star</td><td class="a-text-left">20%</td></tr>
  <tr><td class="a-text-right">3 star</td><td class="a-text-left"> </td></tr>
</table>
</body></html>`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtract_FullPage(t *testing.T) {
	p, err := NewAmazonScraper().Extract(mustDoc(t, productPage))
	require.NoError(t, err)

	assert.Equal(t, "Acme Widget Pro, 2-Pack", p.Title)
	assert.Equal(t, "$19.99", p.Price)
	assert.Equal(t, "$29.99", p.ListPrice)
	assert.Equal(t, "4.5 out of 5 stars", p.Rating)
	assert.Equal(t, "1,024 ratings", p.ReviewCount)
	assert.Equal(t, "https://m.media-amazon.com/images/I/71abc.jpg", p.ImageURL)
	assert.Equal(t, "https://amzn.to/3xyz", p.AffiliateLink)
	assert.Equal(t, "Acme", p.Seller)
	assert.Equal(t, "B0TEST1234", p.ASIN)
	assert.Equal(t, "#1,234 in Widgets", p.BestSeller)
	assert.Equal(t, []string{"Durable steel frame", "Fits most desks"}, p.Description)
	assert.Equal(t, []string{"Black", "Silver"}, p.ColorOptions)
	assert.Equal(t, []string{"Small", "Large"}, p.ItemOptions)
	assert.Equal(t, models.DetailedRating{
		Overall:     "4.5 out of 5 stars",
		ReviewCount: "1,024 ratings",
		Breakdown: []models.StarShare{
			{Stars: "5 star", Percentage: "70%"},
			{Stars: "4 star", Percentage: "20%"},
		},
	}, p.DetailedRating)
}

func TestExtract_MissingTitle(t *testing.T) {
	doc := mustDoc(t, `<html><body><span id="productTitle">   </span><span id="acrCustomerReviewText">3 ratings</span></body></html>`)

	p, err := NewAmazonScraper().Extract(doc)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, models.ErrNotProductPage)
}

func TestExtract_MinimalPage(t *testing.T) {
	doc := mustDoc(t, `<html><body><h1><span id="productTitle">Lonely Item</span></h1></body></html>`)

	p, err := NewAmazonScraper().Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "Lonely Item", p.Title)
	assert.Empty(t, p.Price)
	assert.Empty(t, p.Seller)
	assert.NotNil(t, p.Description)
	assert.Empty(t, p.Description)
	assert.NotNil(t, p.ColorOptions)
	assert.True(t, p.DetailedRating.IsEmpty())
}

func TestExtract_PriceFallbackChain(t *testing.T) {
	doc := mustDoc(t, `<html><body>
<span id="productTitle">Item</span>
<div id="corePrice_feature_div"><span class="a-offscreen">  </span></div>
<span id="priceblock_dealprice">$5.00</span>
<span id="priceblock_ourprice">$6.00</span>
<img id="imgBlkFront" src="https://img.example/front.jpg">
</body></html>`)

	p, err := NewAmazonScraper().Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "$5.00", p.Price)
	assert.Equal(t, "https://img.example/front.jpg", p.ImageURL)
}

func TestExtract_WhitespaceNeverSurfaces(t *testing.T) {
	doc := mustDoc(t, `<html><body>
<span id="productTitle">Item</span>
<a id="bylineInfo">  Visit the   Store </a>
<span id="acrPopover" title="   "></span>
<span id="acrCustomerReviewText">
</span>
<textarea id="amzn-ss-text-shortlink-textarea">  </textarea>
<img id="landingImage" src=" ">
</body></html>`)

	p, err := NewAmazonScraper().Extract(doc)
	require.NoError(t, err)

	for name, v := range map[string]string{
		"title": p.Title, "price": p.Price, "listPrice": p.ListPrice, "rating": p.Rating,
		"reviewCount": p.ReviewCount, "imageUrl": p.ImageURL, "affiliateLink": p.AffiliateLink,
		"seller": p.Seller, "asin": p.ASIN, "bestSeller": p.BestSeller,
	} {
		assert.Equal(t, strings.TrimSpace(v), v, name)
	}
	assert.Empty(t, p.Rating)
	assert.Empty(t, p.ReviewCount)
	assert.Empty(t, p.AffiliateLink)
	assert.Empty(t, p.ImageURL)
	assert.Equal(t, "Store", p.Seller)
	assert.True(t, p.DetailedRating.IsEmpty())
}

func TestExtract_DescriptionTiers(t *testing.T) {
	t.Run("later pattern used when earlier ones are empty", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><span id="productTitle">Item</span>
<div id="feature-bullets"><ul><li>  First   point </li><li>Second point</li></ul></div>
</body></html>`)

		p, err := NewAmazonScraper().Extract(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"First point", "Second point"}, p.Description)
	})

	t.Run("raw text split at bullet markers", func(t *testing.T) {
		doc := mustDoc(t, `<html><body><span id="productTitle">Item</span>
<div id="feature-bullets">About this item
• Strong • Light
* Cheap · Small</div>
</body></html>`)

		p, err := NewAmazonScraper().Extract(doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"About this item", "• Strong", "• Light", "* Cheap", "· Small"}, p.Description)
	})

	t.Run("idempotent on an unchanged document", func(t *testing.T) {
		doc := mustDoc(t, productPage)
		s := NewAmazonScraper()

		first, err := s.Extract(doc)
		require.NoError(t, err)
		second, err := s.Extract(doc)
		require.NoError(t, err)

		assert.Equal(t, first.Description, second.Description)
		assert.Equal(t, first, second)
	})
}

func TestExtract_DetailBulletsLayout(t *testing.T) {
	doc := mustDoc(t, "<html><body><span id=\"productTitle\">Book</span>\n"+
		"<div id=\"detailBullets_feature_div\"><ul>\n"+
		"<li><span class=\"a-list-item\"><span class=\"a-text-bold\">ASIN \u200f : \u200e</span><span>B0BOOK0001</span></span></li>\n"+
		"<li><span class=\"a-list-item\"><span class=\"a-text-bold\">Best Sellers Rank:</span><span>#7 in Books (See Top 100 in Books)</span></span></li>\n"+
		"</ul></div></body></html>")

	p, err := NewAmazonScraper().Extract(doc)
	require.NoError(t, err)

	assert.Equal(t, "B0BOOK0001", p.ASIN)
	assert.Equal(t, "#7 in Books", p.BestSeller)
}

func TestExtract_DoesNotMutateDocument(t *testing.T) {
	doc := mustDoc(t, productPage)
	before, err := doc.Html()
	require.NoError(t, err)

	_, err = NewAmazonScraper().Extract(doc)
	require.NoError(t, err)

	after, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCanScrape(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.amazon.com/dp/B0TEST1234", true},
		{"https://amazon.in/dp/B0TEST1234", true},
		{"https://www.amazon.co.uk/gp/product/B0TEST1234", true},
		{"https://www.amazon.com.au/dp/B0TEST1234", true},
		{"https://smile.amazon.de/dp/B0TEST1234", true},
		{"https://WWW.AMAZON.COM:443/dp/B0TEST1234", true},
		{"https://amzn.to/3xyz", true},
		{"https://amzn.eu/d/abc", true},
		{"https://www.example.com/amazon.html", false},
		{"https://notamazon.com/dp/B0TEST1234", false},
		{"https://amazon.evil.com/dp/B0TEST1234", false},
		{"https://www.amazon.com.evil.net/dp/B0TEST1234", false},
		{"https://amazonaws.com/bucket", false},
		{"chrome://extensions", false},
		{"not a url", false},
	}

	s := NewAmazonScraper()
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CanScrape(tt.url))
		})
	}
}
