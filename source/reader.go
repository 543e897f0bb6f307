// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"io"
)

const defaultReadSize = 32 * 1024

// Reader reads a ByteSource sequentially from offset 0 with bounded range
// reads.
type Reader struct {
	ctx context.Context
	src ByteSource
	off int64
	buf []byte
}

// NewReader returns an io.Reader over src. ctx is used for every range read.
func NewReader(ctx context.Context, src ByteSource) *Reader {
	return &Reader{ctx: ctx, src: src}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(r.buf) == 0 {
		if r.off >= r.src.Size() {
			return 0, io.EOF
		}

		chunk, err := r.src.ReadRange(r.ctx, r.off, r.off+defaultReadSize)
		if err != nil {
			return 0, err
		}

		if len(chunk) == 0 {
			return 0, io.EOF
		}

		r.off += int64(len(chunk))
		r.buf = chunk
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]

	return n, nil
}
