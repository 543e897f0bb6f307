// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates a missing "RIFF" or "WAVE" tag.
	ErrUnsupportedFormat = errors.New("not a RIFF/WAVE stream")

	// ErrNonCanonicalFormat is matched by every *NonCanonicalFormatError.
	ErrNonCanonicalFormat = errors.New("non-canonical WAVE layout")

	// ErrShortHeader indicates fewer than HeaderSize bytes were available.
	ErrShortHeader = errors.New("short WAVE header")

	// ErrNotReady indicates a slice on a handle that was not opened successfully.
	ErrNotReady = errors.New("handle is not ready")

	// ErrCompressed indicates a slice on non-PCM data.
	ErrCompressed = errors.New("slicing compressed WAVE data is not supported")

	// ErrZeroByteRate indicates a header with a byte rate of 0.
	ErrZeroByteRate = errors.New("byte rate is zero")

	// ErrInvalidRange indicates negative or non-finite slice bounds.
	ErrInvalidRange = errors.New("invalid slice range")
)

// NonCanonicalFormatError reports the chunk found at byte 36 when it is not
// the "data" chunk.
type NonCanonicalFormatError struct {
	ChunkID string
}

func (e *NonCanonicalFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported %q chunk, was expecting data", ErrNonCanonicalFormat, e.ChunkID)
}

func (e *NonCanonicalFormatError) Is(target error) bool {
	return target == ErrNonCanonicalFormat
}
