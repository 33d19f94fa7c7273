package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidCategory is returned when an attraction names a category that does not exist.
var ErrInvalidCategory = errors.New("invalid category")

var ErrNoIDs = errors.New("no ids provided")
