package question

import "errors"

// ErrUnreadable indicates the questions file could not be opened or read.
var ErrUnreadable = errors.New("input unreadable")

// ErrMalformed indicates the questions file is not a single JSON array.
var ErrMalformed = errors.New("input malformed")
