package base

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ErrAllStrategiesFailed is returned when no fetch strategy produced a valid page
var ErrAllStrategiesFailed = errors.New("all fetch strategies failed")

// Validator decides whether a fetched document is the page we asked for
type Validator func(*goquery.Document) bool

// Fetcher loads live pages, falling back from plain HTTP to headless browsers
type Fetcher struct {
	Client           *http.Client
	ChromeDriverPath string
	Ports            *PortManager

	// Browser strategies are skipped when false, e.g. on a server without Chrome
	UseBrowsers bool
}

// NewFetcher creates a Fetcher with the default HTTP client
func NewFetcher(chromeDriverPath string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		ChromeDriverPath: chromeDriverPath,
		Ports:            NewPortManager(4444, 16),
		UseBrowsers:      true,
	}
}

// FetchDocument tries each strategy in turn and returns the first document the validator accepts
func (f *Fetcher) FetchDocument(ctx context.Context, url string, validator Validator) (*goquery.Document, error) {
	if validator == nil {
		validator = IsValidDocument
	}

	// Strategy 1: HTTP Client (Fastest)
	doc, err := f.FetchDocumentHTTP(ctx, url)
	if err == nil {
		if validator(doc) {
			fmt.Printf("[Fetcher] HTTP Success: %s\n", url)
			return doc, nil
		}
		fmt.Printf("[Fetcher] HTTP yielded invalid content (validator failed), trying fallbacks...\n")
	} else {
		fmt.Printf("[Fetcher] HTTP Failed: %v\n", err)
	}

	if !f.UseBrowsers {
		return nil, fmt.Errorf("%w for %s", ErrAllStrategiesFailed, url)
	}

	// Strategy 2: ChromeDP (Headless)
	if ctx.Err() == nil {
		fmt.Printf("[Fetcher] Trying ChromeDP: %s\n", url)
		doc, err = f.FetchDocumentChromeDP(ctx, url)
		if err == nil && validator(doc) {
			fmt.Printf("[Fetcher] ChromeDP Success\n")
			return doc, nil
		}
		if err != nil {
			fmt.Printf("[Fetcher] ChromeDP Failed: %v\n", err)
		}
	}

	// Strategy 3: Selenium (Full Browser)
	if ctx.Err() == nil {
		fmt.Printf("[Fetcher] Trying Selenium: %s\n", url)
		doc, err = f.FetchDocumentSelenium(ctx, url)
		if err == nil && validator(doc) {
			fmt.Printf("[Fetcher] Selenium Success\n")
			return doc, nil
		}
		if err != nil {
			fmt.Printf("[Fetcher] Selenium Failed: %v\n", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w for %s", ErrAllStrategiesFailed, url)
}

// IsValidDocument rejects bot walls and near-empty bodies
func IsValidDocument(doc *goquery.Document) bool {
	title := strings.ToLower(strings.TrimSpace(doc.Find("title").Text()))
	if strings.Contains(title, "robot check") ||
		strings.Contains(title, "captcha") ||
		strings.Contains(title, "access denied") {
		return false
	}

	body := strings.TrimSpace(doc.Find("body").Text())
	return len(body) > 200
}

// FetchDocumentHTTP fetches the URL with a plain GET
func (f *Fetcher) FetchDocumentHTTP(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "cross-site")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}
