// SPDX-License-Identifier: EPL-2.0

package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

type ByteSource interface {
	// Name identifies the source in summaries (file name, URL, label).
	Name() string
	// Size of the source in bytes.
	Size() int64
	// ReadRange returns bytes [start, end). Ranges reaching past Size are
	// clamped, so a read near the end returns fewer bytes without an error.
	ReadRange(ctx context.Context, start, end int64) ([]byte, error)
}

// Opener constructs a ByteSource from a location.
type Opener interface {
	Open(ctx context.Context, location string) (ByteSource, error)
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(ctx context.Context, location string) (ByteSource, error)

func (f OpenerFunc) Open(ctx context.Context, location string) (ByteSource, error) {
	return f(ctx, location)
}

// Registry for openers by scheme (e.g., "file", "http", "https", "mem").
type Registry struct {
	openers map[string]Opener
	blobs   map[string][]byte

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		blobs:   make(map[string][]byte),
		mtx:     &sync.Mutex{},
	}
}

// NewDefaultRegistry returns a registry with the file, HTTP and "mem"
// openers registered. "mem://name" resolves blobs stored with AddMemory.
func NewDefaultRegistry(opts ...HTTPOption) *Registry {
	reg := NewRegistry()
	reg.Register("mem", OpenerFunc(reg.openMemory))
	reg.Register("file", OpenerFunc(func(_ context.Context, location string) (ByteSource, error) {
		return OpenFile(location)
	}))

	httpOpener := OpenerFunc(func(ctx context.Context, location string) (ByteSource, error) {
		return OpenHTTP(ctx, location, opts...)
	})
	reg.Register("http", httpOpener)
	reg.Register("https", httpOpener)

	return reg
}

func (r *Registry) Register(scheme string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[strings.ToLower(scheme)] = o
}

// AddMemory stores data under name for the "mem" opener. The slice is
// borrowed, as with NewMemory. Storing under an existing name replaces it.
func (r *Registry) AddMemory(name string, data []byte) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.blobs[name] = data
}

func (r *Registry) openMemory(_ context.Context, name string) (ByteSource, error) {
	r.mtx.Lock()
	data, ok := r.blobs[name]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: mem://%s", ErrNotFound, name)
	}

	return NewMemory(name, data), nil
}

func (r *Registry) Get(scheme string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[strings.ToLower(scheme)]
	return o, ok
}

// Open picks an opener by the scheme of location. Plain paths and
// "file://" URLs go to the "file" opener.
func (r *Registry) Open(ctx context.Context, location string) (ByteSource, error) {
	scheme, target := splitScheme(location)

	o, ok := r.Get(scheme)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}

	src, err := o.Open(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", location, err)
	}

	return src, nil
}

func splitScheme(location string) (string, string) {
	u, err := url.Parse(location)
	// single letter schemes are windows drive letters
	if err != nil || len(u.Scheme) < 2 {
		return "file", location
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return "file", u.Path
	case "http", "https":
		return u.Scheme, location
	}

	// u.Scheme is lower-cased, so cut the original text instead
	if _, rest, ok := strings.Cut(location, "://"); ok {
		return u.Scheme, rest
	}

	return u.Scheme, u.Opaque
}

// clamp limits [start, end) to [0, size). The returned range is empty when
// start is at or beyond size.
func clamp(start, end, size int64) (int64, int64, error) {
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}

	start = min(start, size)
	end = min(end, size)

	return start, end, nil
}
