package rest

import "errors"

var (
	errArchiveDisabled = errors.New("game archive is disabled")
	errInvalidLimit    = errors.New("limit must be a positive integer")
)
