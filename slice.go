// SPDX-License-Identifier: EPL-2.0

package wavslice

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/wavslice/formats/wav"
	"github.com/ik5/wavslice/source"
)

// Open is a high-level convenience function that opens location through reg
// and decodes its WAVE header.
//
// Parameters:
//   - reg: Registry used to pick the byte source (nil means source.NewDefaultRegistry())
//   - location: A file path, file:// URL or http(s):// URL
//   - opts: Handle options such as wav.WithSizePatching()
//
// Returns:
//   - *wav.Handle: A Ready handle
//   - func() error: Releases the underlying source; always non-nil
//   - error: Source or header errors, wrapped
//
// Example:
//
//	h, closeFn, err := wavslice.Open(ctx, nil, "take1.wav")
//	if err != nil {
//	    return err
//	}
//	defer closeFn()
func Open(ctx context.Context, reg *source.Registry, location string, opts ...wav.Option) (*wav.Handle, func() error, error) {
	if reg == nil {
		reg = source.NewDefaultRegistry()
	}

	src, err := reg.Open(ctx, location)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	closeFn := func() error { return nil }
	if c, ok := src.(io.Closer); ok {
		closeFn = c.Close
	}

	h := wav.NewHandle(src, opts...)
	if err := h.Open(ctx); err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("%w", err)
	}

	return h, closeFn, nil
}

// SliceFile cuts lengthSeconds of audio starting startSeconds into the data
// chunk of the WAVE file at path, and returns it as a new RIFF/WAVE blob.
//
// This function:
//  1. Opens the file for range reads
//  2. Decodes the canonical 44-byte header
//  3. Reads the header and the requested byte range
//  4. Returns header + range
//
// The header is copied as is, so its sizes describe the whole file unless
// wav.WithSizePatching() is passed.
//
// Example:
//
//	blob, err := wavslice.SliceFile(ctx, "take1.wav", 12.5, 3)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("take1-cut.wav", blob, 0o644)
func SliceFile(ctx context.Context, path string, startSeconds, lengthSeconds float64, opts ...wav.Option) ([]byte, error) {
	h, closeFn, err := openFile(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	blob, err := h.Slice(ctx, startSeconds, lengthSeconds)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return blob, nil
}

// DescribeFile returns the multi-line summary of the WAVE file at path.
func DescribeFile(ctx context.Context, path string) (string, error) {
	h, closeFn, err := openFile(ctx, path)
	if err != nil {
		return "", err
	}
	defer closeFn()

	return h.Describe(), nil
}

func openFile(ctx context.Context, path string, opts ...wav.Option) (*wav.Handle, func() error, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	h := wav.NewHandle(src, opts...)
	if err := h.Open(ctx); err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("%w", err)
	}

	return h, src.Close, nil
}
