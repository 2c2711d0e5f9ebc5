package store

import "errors"

// ErrNotFound is returned when a lookup or mutation matched no document,
// including the not-owned case for notes.
var ErrNotFound = errors.New("document not found")
