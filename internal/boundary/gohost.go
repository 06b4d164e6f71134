package boundary

import (
	"fmt"
	"slices"
	"sync"
)

// Exception is an exception raised into a GoHost.
type Exception struct {
	Class   string
	Message string
}

func (e *Exception) Error() string {
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

// GoHost is an in-process Host that builds plain Go values.
// Raised exceptions are held until TakeException collects them.
type GoHost struct {
	mu      sync.Mutex
	pending *Exception
}

func (h *GoHost) NewString(s string) (Value, error) { return s, nil }

func (h *GoHost) NewStringList(items []string) (Value, error) {
	return slices.Clone(items), nil
}

func (h *GoHost) NewBool(b bool) (Value, error) { return b, nil }

func (h *GoHost) NewUint(n uint32) (Value, error) { return n, nil }

// Throw records the exception. The first one raised wins until it is taken.
func (h *GoHost) Throw(class, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		h.pending = &Exception{Class: class, Message: message}
	}
	return nil
}

// TakeException returns and clears the pending exception, or nil.
func (h *GoHost) TakeException() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := h.pending
	h.pending = nil
	if e == nil {
		return nil
	}
	return e
}
