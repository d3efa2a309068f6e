package domain

import "errors"

// ErrNotFound is returned when a record index is outside the store's bounds.
var ErrNotFound = errors.New("record not found")

// ErrNoSchema is returned when a record is added before any schema is set.
var ErrNoSchema = errors.New("no schema defined")

// ErrExit is returned by a command that ends the session.
var ErrExit = errors.New("exit requested")
