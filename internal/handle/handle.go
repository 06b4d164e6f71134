// Package handle hands out opaque integer handles for values owned on behalf
// of a foreign caller.
//
// A Table takes exclusive ownership of a value when it is stored and gives it
// up exactly once, on Release. Handles are never reused, so a handle that was
// released is reported as such instead of silently resolving to a newer value.
package handle

import (
	"errors"
	"fmt"
	"sync"
)

// Handle identifies a value stored in a Table. The zero Handle is never issued.
type Handle uint64

// Null is the handle returned when there is nothing to own.
const Null Handle = 0

var (
	// ErrInvalidHandle is returned for handles the table never issued.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrUsedAfterClose is returned for handles that were already released.
	ErrUsedAfterClose = errors.New("attempted to use a configuration after it was cleaned up")
)

// Table maps handles to owned values. It is safe for concurrent use.
type Table[T any] struct {
	mu   sync.Mutex
	last Handle
	live map[Handle]T
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{live: make(map[Handle]T)}
}

// Put stores v and returns a fresh handle for it.
func (t *Table[T]) Put(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last++
	t.live[t.last] = v
	return t.last
}

// Get returns the value behind h without affecting ownership.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.live[h]; ok {
		return v, nil
	}
	var zero T
	return zero, t.missing(h)
}

// Release removes h from the table and returns the value it owned.
// Releasing the same handle twice fails with ErrUsedAfterClose.
func (t *Table[T]) Release(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.live[h]
	if !ok {
		var zero T
		return zero, t.missing(h)
	}
	delete(t.live, h)
	return v, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// missing classifies a handle that is not live. Callers hold t.mu.
func (t *Table[T]) missing(h Handle) error {
	if h == Null || h > t.last {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return fmt.Errorf("%w (handle %d)", ErrUsedAfterClose, h)
}
