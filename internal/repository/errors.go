package repository

import "errors"

// ErrNotFound is returned when no row matches the lookup. GORM's own
// not-found error never escapes this package.
var ErrNotFound = errors.New("record not found")
