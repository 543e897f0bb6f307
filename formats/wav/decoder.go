// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// ReadHeader reads exactly HeaderSize bytes from r and decodes them. It is the
// streaming counterpart of Handle.Open for inputs that are not range-readable,
// such as stdin.
func ReadHeader(r io.Reader) (WaveFormat, DataChunk, error) {
	header := make([]byte, HeaderSize)

	n, err := io.ReadFull(r, header)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return WaveFormat{}, DataChunk{}, fmt.Errorf("%w: got %d of %d bytes: %w", ErrShortHeader, n, HeaderSize, err)
	}

	if err != nil {
		return WaveFormat{}, DataChunk{}, fmt.Errorf("%w", err)
	}

	return DecodeHeader(header)
}
