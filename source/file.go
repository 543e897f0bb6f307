// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
)

// File is a ByteSource backed by an *os.File using positional reads, so
// concurrent ReadRange calls do not share a cursor.
type File struct {
	f      *os.File
	name   string
	size   int64
	closed atomic.Bool
}

// OpenFile opens path for range reads. The size is taken once at open.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return &File{
		f:    f,
		name: filepath.Base(path),
		size: info.Size(),
	}, nil
}

func (s *File) Name() string { return s.name }
func (s *File) Size() int64  { return s.size }

func (s *File) ReadRange(ctx context.Context, start, end int64) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end, err := clamp(start, end, s.size)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, end-start)
	n, err := s.f.ReadAt(buf, start)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s [%d, %d): %w", s.name, start, end, err)
	}

	return buf[:n], nil
}

// Close releases the file handle. Further reads fail with ErrClosed.
func (s *File) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
