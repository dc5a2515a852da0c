// Package clipboard connects cut/copy/paste to the system clipboard with a
// local register for sessions that have none (SSH, headless CI).
package clipboard

import (
	"fmt"

	"example.com/simpleeditor/pkg/history"
	"github.com/atotto/clipboard"
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type system struct{}

// System returns the desktop clipboard.
func System() Clipboard { return system{} }

func (system) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("system clipboard unsupported")
	}
	return clipboard.ReadAll()
}

func (system) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

// Local keeps clipboard text in a kill ring.
type Local struct {
	Ring history.KillRing
}

func (l *Local) ReadAll() (string, error) { return l.Ring.Current(), nil }

func (l *Local) WriteAll(text string) error {
	l.Ring.Push(text)
	return nil
}

// WithFallback mirrors every write into a local register and serves reads
// from it when the primary clipboard fails. Errors from the primary are
// passed to onError (which may be nil).
type WithFallback struct {
	Primary Clipboard
	Local   Local
	OnError func(op string, err error)
}

// NewWithFallback wraps primary.
func NewWithFallback(primary Clipboard) *WithFallback {
	return &WithFallback{Primary: primary}
}

func (c *WithFallback) ReadAll() (string, error) {
	if c.Primary != nil {
		text, err := c.Primary.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			c.report("read", err)
		}
	}
	return c.Local.ReadAll()
}

func (c *WithFallback) WriteAll(text string) error {
	_ = c.Local.WriteAll(text)
	if c.Primary != nil {
		if err := c.Primary.WriteAll(text); err != nil {
			c.report("write", err)
		}
	}
	return nil
}

func (c *WithFallback) report(op string, err error) {
	if c.OnError != nil {
		c.OnError(op, err)
	}
}
