// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	// ErrInvalidRange indicates a negative start or an end before start.
	ErrInvalidRange = errors.New("invalid byte range")

	// ErrUnknownScheme indicates no opener is registered for a location.
	ErrUnknownScheme = errors.New("unknown source scheme")

	// ErrRangeNotSupported indicates an HTTP server ignored the Range header.
	ErrRangeNotSupported = errors.New("server does not support range requests")

	// ErrNotFound indicates no in-memory blob is stored under a "mem" name.
	ErrNotFound = errors.New("source not found")

	// ErrClosed indicates a read against a closed source.
	ErrClosed = errors.New("source is closed")
)
