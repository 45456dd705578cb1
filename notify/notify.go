package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Severity of a notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Default display durations
const (
	DurationShort = 3 * time.Second
	DurationLong  = 4 * time.Second
)

// Notification is a finished classification of a run, ready to render
type Notification struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"duration"`
}

// Notifier renders notifications to the user
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Icon returns the marker shown before the title
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✕"
	default:
		return "ℹ"
	}
}

// Console prints notifications, one per line
type Console struct {
	Out io.Writer
	mu  sync.Mutex
}

// NewConsole writes to stderr so stdout stays free for piped output
func NewConsole() *Console {
	return &Console{Out: os.Stderr}
}

func (c *Console) Notify(ctx context.Context, n Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	_, err := fmt.Fprintf(out, "%s %s\n  %s\n", n.Severity.Icon(), n.Title, n.Message)
	return err
}

// Multi fans a notification out to several notifiers.
// Every notifier is tried; the errors are joined.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps notifications in memory, for the HTTP API responses
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(ctx context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
	return nil
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.list) == 0 {
		return Notification{}, false
	}
	return r.list[len(r.list)-1], true
}

// All returns every recorded notification
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}
