// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one top-level chunk of a RIFF/WAVE stream.
type ChunkInfo struct {
	ID     string
	Offset int64 // offset of the chunk header
	Size   int   // payload size, including the RIFF pad byte for odd sizes
}

// ListChunks walks the top-level chunks of r. It is a diagnostic for streams
// rejected with a NonCanonicalFormatError: it shows what sits before "data"
// but does not make such streams sliceable.
//
// The walk stops quietly at the end of r, so a stream whose declared sizes
// run past its real length (such as an unpatched slice) lists what is there.
func ListChunks(r io.Reader) ([]ChunkInfo, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedFormat, asciiText(p.Format[:]))
	}

	var chunks []ChunkInfo
	offset := int64(12)

	for {
		ch, err := p.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return chunks, nil
			}

			return chunks, fmt.Errorf("%w", err)
		}

		chunks = append(chunks, ChunkInfo{
			ID:     asciiText(ch.ID[:]),
			Offset: offset,
			Size:   ch.Size,
		})

		ch.Drain()
		offset += 8 + int64(ch.Size)
	}
}
