package repositories

import "errors"

// ErrNotFound is wrapped into lookup errors for rows that do not exist, so
// callers can branch with errors.Is instead of matching message strings.
var ErrNotFound = errors.New("record not found")
