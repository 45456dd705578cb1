// Package dispatch runs one copy action end to end: it loads the page, has the
// extractor deliver a record, applies the selection policy and hands the text
// to the clipboard and the notification surface.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raushankrgupta/product-clipper/clipboard"
	"github.com/raushankrgupta/product-clipper/intent"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/scrapers"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
	"github.com/raushankrgupta/product-clipper/selection"
	"github.com/raushankrgupta/product-clipper/store"
	"github.com/raushankrgupta/product-clipper/utils"
)

var (
	// ErrPageUnavailable means the page could not be loaded at all
	ErrPageUnavailable = errors.New("page unavailable")
	// ErrFieldMissing means a single-field action found nothing to copy
	ErrFieldMissing = errors.New("requested field not found")
)

// State of a run
type State string

const (
	StateIdle      State = "idle"
	StateScraping  State = "scraping"
	StateDelivered State = "delivered"
	StateRejected  State = "rejected"
)

// Status classifies how a run ended
type Status string

const (
	StatusSuccess      Status = "success"
	StatusPartial      Status = "partial"
	StatusFieldMissing Status = "field-missing"
	StatusUnsupported  Status = "unsupported"
	StatusUnavailable  Status = "unavailable"
)

// Result describes a finished run
type Result struct {
	Action       models.Action       `json:"action"`
	State        State               `json:"state"`
	Status       Status              `json:"status"`
	Text         string              `json:"text,omitempty"`
	Missing      []string            `json:"missing,omitempty"`
	Product      *models.Product     `json:"product,omitempty"`
	Notification notify.Notification `json:"notification"`
}

// Dispatcher wires the collaborators of a copy run. It keeps no per-run
// state, so one Dispatcher may serve concurrent runs unless Intent is shared.
type Dispatcher struct {
	Settings  store.SettingsStore
	Clipboard clipboard.Writer
	Notifier  notify.Notifier

	// Intent is the slot a trigger writes before extraction. Nil gives each run its own.
	Intent *intent.Slot
}

// New creates a Dispatcher
func New(settings store.SettingsStore, clip clipboard.Writer, notifier notify.Notifier) *Dispatcher {
	return &Dispatcher{
		Settings:  settings,
		Clipboard: clip,
		Notifier:  notifier,
	}
}

// extraction is the one record a run delivers
type extraction struct {
	product *models.Product
	err     error
}

// Run performs one copy action against the page from source.
// The Result is always returned, also alongside an error.
func (d *Dispatcher) Run(ctx context.Context, source base.Source, action models.Action) (*Result, error) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog("Dispatch", &logMessageBuilder)

	slot := d.Intent
	if slot == nil {
		slot = intent.NewSlot()
	}
	slot.Set(action)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Action requested: %s", action))

	res := &Result{Action: action, State: StateScraping}

	page, err := source.Page(ctx)
	if errors.Is(err, models.ErrUnsupportedPage) {
		slot.Consume()
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Unsupported page: %v", err))
		d.reject(ctx, &logMessageBuilder, res, StatusUnsupported, unsupportedSite)
		return res, err
	}
	if err != nil {
		slot.Consume()
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Page load failed: %v", err))
		d.reject(ctx, &logMessageBuilder, res, StatusUnavailable, permissionError)
		return res, fmt.Errorf("%w: %v", ErrPageUnavailable, err)
	}

	extractor, err := scrapers.GetScraper(page.URL)
	if err != nil {
		slot.Consume()
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Unsupported page: %s", page.URL))
		d.reject(ctx, &logMessageBuilder, res, StatusUnsupported, unsupportedSite)
		return res, err
	}

	records := make(chan extraction, 1)
	go func() {
		p, err := extractor.Extract(page.Doc)
		records <- extraction{product: p, err: err}
	}()

	var rec extraction
	select {
	case rec = <-records:
	case <-ctx.Done():
		slot.Consume()
		utils.AddToLogMessage(&logMessageBuilder, "Run cancelled while extracting")
		res.State = StateRejected
		res.Status = StatusUnavailable
		return res, ctx.Err()
	}

	// The action travels separately from the record
	action = slot.Consume()
	res.Action = action

	if rec.err != nil || rec.product == nil || rec.product.Title == "" {
		utils.AddToLogMessage(&logMessageBuilder, "No product data on page")
		d.reject(ctx, &logMessageBuilder, res, StatusUnsupported, noProductData)
		if rec.err == nil {
			rec.err = models.ErrNotProductPage
		}
		return res, fmt.Errorf("%w: %v", models.ErrUnsupportedPage, rec.err)
	}
	res.Product = rec.product

	settings := d.loadSettings(ctx, &logMessageBuilder)
	sel := selection.SelectFields(action, settings, rec.product)
	res.Missing = sel.Missing

	if key, single := selection.SingleField(action); single && sel.Partial() {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Field %s not found", key))
		d.reject(ctx, &logMessageBuilder, res, StatusFieldMissing, singleFieldMessages[action].missing)
		return res, fmt.Errorf("%w: %s", ErrFieldMissing, key)
	}

	res.Text = sel.Text()
	if d.Clipboard != nil {
		if err := d.Clipboard.WriteText(res.Text); err != nil {
			// Reported as copied anyway
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Clipboard write failed: %v", err))
		}
	}

	res.State = StateDelivered
	res.Status = StatusSuccess
	n := successNotification(action)
	if action == models.ActionAll && sel.Partial() {
		res.Status = StatusPartial
		n = partialNotification(sel.Missing)
	}
	d.notify(ctx, &logMessageBuilder, res, n)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Delivered %d fields", len(sel.Fields)))

	return res, nil
}

// loadSettings reads the toggles once per run. A failing store falls back to defaults.
func (d *Dispatcher) loadSettings(ctx context.Context, log *strings.Builder) models.Settings {
	if d.Settings == nil {
		return models.DefaultSettings()
	}
	settings, err := d.Settings.Load(ctx)
	if err != nil {
		utils.AddToLogMessage(log, fmt.Sprintf("Settings load failed, using defaults: %v", err))
		return models.DefaultSettings()
	}
	return settings
}

func (d *Dispatcher) reject(ctx context.Context, log *strings.Builder, res *Result, status Status, n notify.Notification) {
	res.State = StateRejected
	res.Status = status
	d.notify(ctx, log, res, n)
}

func (d *Dispatcher) notify(ctx context.Context, log *strings.Builder, res *Result, n notify.Notification) {
	res.Notification = n
	if d.Notifier == nil {
		return
	}
	if err := d.Notifier.Notify(ctx, n); err != nil {
		utils.AddToLogMessage(log, fmt.Sprintf("Notification failed: %v", err))
	}
}
