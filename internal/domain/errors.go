package domain

import "errors"

// ErrNotFound signals an absent entity (e.g. a product slug nobody owns).
// Detail lookups return it instead of an error result.
var ErrNotFound = errors.New("not found")
