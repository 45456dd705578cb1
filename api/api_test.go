package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `<html><body>
<span id="productTitle">Acme Widget</span>
<div id="corePrice_feature_div"><span class="a-offscreen">$19.99</span></div>
<span id="acrPopover" title="4.5 out of 5 stars"></span>
<span id="acrCustomerReviewText">12 ratings</span>
<img id="landingImage" src="https://img.example/w.jpg">
</body></html>`

func newServer() (*Server, *notify.Recorder) {
	rec := &notify.Recorder{}
	return &Server{Settings: &store.Memory{}, Notifier: rec}, rec
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload string
	switch b := body.(type) {
	case string:
		payload = b
	case nil:
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		payload = string(raw)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(payload)))
	return rec
}

func TestScrapeHandler(t *testing.T) {
	s, _ := newServer()

	rec := do(t, s.Routes(), http.MethodPost, "/scrape", pageRequest{URL: "https://www.amazon.com/dp/B0", HTML: productHTML})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Product models.Product `json:"product"`
		Rows    []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Acme Widget", resp.Product.Title)
	require.Len(t, resp.Rows, 5)
	assert.Equal(t, "Rating", resp.Rows[2].Label)
	assert.Equal(t, "4.5 out of 5 stars (12 ratings)", resp.Rows[2].Value)
	assert.Equal(t, "Detailed Rating", resp.Rows[3].Label)
	assert.Equal(t, "Overall: 4.5 out of 5 stars | Reviews: 12 ratings", resp.Rows[3].Value)
	assert.Equal(t, "Image URL", resp.Rows[4].Label)
}

func TestScrapeHandler_Errors(t *testing.T) {
	s, _ := newServer()
	h := s.Routes()

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/scrape", "{bad").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/scrape", pageRequest{}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/scrape", pageRequest{URL: "https://www.amazon.com/dp/B0"}).Code, "no fetcher configured")

	rec := do(t, h, http.MethodPost, "/scrape", pageRequest{HTML: "<html><body>nothing</body></html>"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "does not contain product data")

	rec = do(t, h, http.MethodPost, "/scrape", pageRequest{URL: "https://www.example.com/", HTML: productHTML})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCopyHandler(t *testing.T) {
	s, notes := newServer()

	rec := do(t, s.Routes(), http.MethodPost, "/copy/copy-title", pageRequest{HTML: productHTML})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Acme Widget", resp["text"])
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "title", resp["action"])

	last, ok := notes.Last()
	require.True(t, ok)
	assert.Equal(t, "Title Copied!", last.Title)
}

func TestCopyHandler_Statuses(t *testing.T) {
	s, _ := newServer()
	h := s.Routes()

	rec := do(t, h, http.MethodPost, "/copy/all", pageRequest{HTML: productHTML})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"partial"`)

	rec = do(t, h, http.MethodPost, "/copy/affiliate", pageRequest{HTML: productHTML})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"field-missing"`)

	rec = do(t, h, http.MethodPost, "/copy/title", pageRequest{HTML: "<html><body></body></html>"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/copy/everything", pageRequest{HTML: productHTML})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsHandlers(t *testing.T) {
	s, _ := newServer()
	h := s.Routes()

	rec := do(t, h, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.DefaultSettings(), got)

	rec = do(t, h, http.MethodPut, "/settings", map[string]bool{"seller": true, "price": false})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/settings", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Enabled(models.FieldSeller))
	assert.False(t, got.Enabled(models.FieldPrice))

	// Settings change what copy-all writes
	rec = do(t, h, http.MethodPost, "/copy/all", pageRequest{HTML: productHTML})
	assert.NotContains(t, rec.Body.String(), "Price: $19.99")

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/settings", "[1,2]").Code)
}

func TestRoutes_CORS(t *testing.T) {
	s, _ := newServer()

	rec := do(t, s.Routes(), http.MethodOptions, "/copy/all", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
