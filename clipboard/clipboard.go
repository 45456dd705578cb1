package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer receives the text of a successful run
type Writer interface {
	WriteText(text string) error
}

// System writes to the desktop clipboard
type System struct{}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this machine
func Available() bool {
	return !clipboard.Unsupported
}

// Buffer keeps the last written text in memory. The HTTP API uses it to hand
// the copy text back to the caller.
type Buffer struct {
	mu   sync.Mutex
	text string
	n    int
}

func (b *Buffer) WriteText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.n++
	return nil
}

// Text returns the last written text
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Writes returns how many times the buffer was written
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}
