// Command productclip copies product data from an Amazon product page to the clipboard.
//
//	productclip [flags] copy-all|copy-image-link|copy-affiliate-link|copy-title
//
// The page is read from -file, fetched from -url, or read from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/raushankrgupta/product-clipper/clipboard"
	"github.com/raushankrgupta/product-clipper/config"
	"github.com/raushankrgupta/product-clipper/dispatch"
	"github.com/raushankrgupta/product-clipper/intent"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/scrapers"
	"github.com/raushankrgupta/product-clipper/scrapers/amazon"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
	"github.com/raushankrgupta/product-clipper/store"
)

func main() {
	file := flag.String("file", "", "saved product page (HTML)")
	pageURL := flag.String("url", "", "product page URL; with -file it is only used for the site check")
	printText := flag.Bool("print", false, "also print the copied text to stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: productclip [flags] copy-all|copy-image-link|copy-affiliate-link|copy-title\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	name := "copy-all"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	action, err := models.ParseAction(name)
	if err != nil {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := store.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	if c, ok := settings.(store.Closer); ok {
		defer c.Close(context.Background())
	}

	var writer clipboard.Writer = clipboard.System{}
	buffer := &clipboard.Buffer{}
	if !clipboard.Available() {
		log.Println("No clipboard utility found, use -print to see the copied text")
		writer = buffer
	}

	notifiers := notify.Multi{notify.NewConsole()}
	if cfg.EmailEnabled() {
		notifiers = append(notifiers, notify.NewSendGrid(cfg))
	}

	d := dispatch.New(settings, writer, notifiers)
	d.Intent = intent.NewSlot()

	res, err := d.Run(ctx, pageSource(cfg, *file, *pageURL), action)
	if *printText && res.Text != "" {
		fmt.Println(res.Text)
	}
	if err != nil {
		os.Exit(exitCode(err))
	}
}

func pageSource(cfg *config.Config, file, pageURL string) base.Source {
	switch {
	case file != "":
		return base.FileSource{Path: file, URL: pageURL}
	case pageURL != "":
		fetcher := base.NewFetcher(cfg.ChromeDriverPath, cfg.FetchTimeout)
		fetcher.UseBrowsers = cfg.UseBrowsers
		return base.URLSource{
			URL:       pageURL,
			Fetcher:   fetcher,
			Validator: amazon.NewAmazonScraper().IsProductPage,
			CanScrape: scrapers.Supported,
		}
	}
	return base.ReaderSource{Reader: os.Stdin}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrFieldMissing):
		return 3
	case errors.Is(err, models.ErrUnsupportedPage):
		return 4
	}
	return 1
}
