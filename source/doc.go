// SPDX-License-Identifier: EPL-2.0

// Package source provides byte-addressable sources that support random-access
// range reads.
//
// This package contains:
//   - ByteSource interface consumed by the WAVE handle
//   - Memory, File and HTTP implementations
//   - Opener registry keyed by location scheme
//
// # ByteSource Interface
//
//	type ByteSource interface {
//	    Name() string
//	    Size() int64
//	    ReadRange(ctx context.Context, start, end int64) ([]byte, error)
//	}
//
// ReadRange returns bytes [start, end). A range that runs past the end of the
// source is clamped, so callers get a short (or empty) slice and no error.
// A negative start, or an end before start, fails with ErrInvalidRange.
//
// # Registry
//
//	reg := source.NewDefaultRegistry()
//	src, err := reg.Open(ctx, "https://example.com/take1.wav")
//
// Plain paths and "file://" URLs open a File; "http" and "https" open an
// HTTP source that issues Range requests; "mem://name" opens a Memory over a
// blob stored with AddMemory. Additional schemes can be added with Register.
//
// # Concurrency
//
// All implementations allow concurrent ReadRange calls. File uses positional
// reads and never moves a shared cursor.
package source
