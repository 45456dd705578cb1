package base

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// DefaultChromeDriverPath is used when no driver path is configured
const DefaultChromeDriverPath = "/usr/local/bin/chromedriver"

// FetchDocumentSelenium loads the URL in a full Chrome driven over WebDriver.
// The driver does not take a context, so ctx is checked between steps.
func (f *Fetcher) FetchDocumentSelenium(ctx context.Context, url string) (*goquery.Document, error) {
	if f.Ports == nil {
		return nil, fmt.Errorf("selenium: no port manager configured")
	}
	port, err := f.Ports.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer f.Ports.ReleasePort(port)

	driverPath := f.ChromeDriverPath
	if driverPath == "" {
		driverPath = DefaultChromeDriverPath
	}

	service, err := selenium.NewChromeDriverService(driverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %w", err)
	}
	defer service.Stop()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-extensions",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %w", err)
	}
	defer driver.Quit()

	timeout, err := pageLoadTimeout(ctx)
	if err != nil {
		return nil, err
	}
	if err := driver.SetPageLoadTimeout(timeout); err != nil {
		return nil, fmt.Errorf("page load timeout: %w", err)
	}

	if err := driver.Get(url); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := driver.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// pageLoadTimeout is what is left of the context budget, capped at one minute.
// A spent budget is an error rather than a zero or negative timeout.
func pageLoadTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	timeout := 60 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		timeout = min(timeout, remaining)
	}
	return timeout, nil
}
