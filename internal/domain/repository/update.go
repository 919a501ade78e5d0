package repository

import "errors"

// ErrNoFieldsToUpdate is returned by partial updates when none of the
// submitted keys belong to the recognized column set.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// UpdateFields is a submitted key/value mapping for a partial update.
// Repositories restrict it to their recognized column set before executing
// a single update statement keyed by record id.
type UpdateFields map[string]any
