// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/wavslice/source"
)

// State of a Handle.
type State int32

const (
	StateEmpty   State = iota // nothing loaded yet
	StateLoading              // header read issued
	StateReady                // header decoded, terminal
	StateFailed               // header read or decode failed, terminal
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}

	return fmt.Sprintf("State(%d)", int32(s))
}

// maxOffset keeps byte positions derived from seconds inside int64.
const maxOffset = 1 << 62

// Handle owns the decoded header of one source and carves slices out of it.
//
// The decoded fields are written once, inside Open, and only read afterwards,
// so any number of Slice calls may run concurrently.
type Handle struct {
	src        source.ByteSource
	onLoad     func(*Handle, error)
	patchSizes bool

	state    atomic.Int32
	once     sync.Once
	notified atomic.Bool
	openErr  error

	format WaveFormat
	data   *DataChunk
}

type Option func(*Handle)

// WithOnLoad registers fn to run exactly once when Open finishes, with the
// handle already Ready (err == nil) or Failed. fn runs on the goroutine of
// one Open call and may call Open itself; concurrent Open calls do not wait
// for it to return.
func WithOnLoad(fn func(h *Handle, err error)) Option {
	return func(h *Handle) {
		h.onLoad = fn
	}
}

// WithSizePatching makes Slice rewrite the RIFF and data chunk sizes of the
// emitted header to match the carved region. Without it the header is copied
// verbatim and still advertises the sizes of the whole source.
func WithSizePatching() Option {
	return func(h *Handle) {
		h.patchSizes = true
	}
}

// NewHandle allocates a handle in StateEmpty. It performs no I/O.
func NewHandle(src source.ByteSource, opts ...Option) *Handle {
	h := &Handle{src: src}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Open reads and decodes the first HeaderSize bytes of the source. Only the
// first call does any work; later calls return its result.
func (h *Handle) Open(ctx context.Context) error {
	h.once.Do(func() {
		h.openErr = h.load(ctx)
	})

	// outside once.Do, and not a second Once, so the callback may call Open
	if h.onLoad != nil && h.notified.CompareAndSwap(false, true) {
		h.onLoad(h, h.openErr)
	}

	return h.openErr
}

func (h *Handle) load(ctx context.Context) error {
	h.state.Store(int32(StateLoading))

	header, err := h.src.ReadRange(ctx, 0, HeaderSize)
	if err != nil {
		h.state.Store(int32(StateFailed))
		return fmt.Errorf("read header of %s: %w", h.src.Name(), err)
	}

	format, data, err := DecodeHeader(header)
	if err != nil {
		h.state.Store(int32(StateFailed))
		return fmt.Errorf("%s: %w", h.src.Name(), err)
	}

	h.format = format
	h.data = &data
	h.state.Store(int32(StateReady))

	return nil
}

func (h *Handle) State() State { return State(h.state.Load()) }
func (h *Handle) Name() string { return h.src.Name() }

func (h *Handle) ready() bool { return h.State() == StateReady }

// Format returns the decoded header fields, or false before the handle is
// Ready.
func (h *Handle) Format() (WaveFormat, bool) {
	if !h.ready() {
		return WaveFormat{}, false
	}

	return h.format, true
}

// Data returns the location of the data chunk, or false while it is unknown.
func (h *Handle) Data() (DataChunk, bool) {
	if !h.ready() || h.data == nil {
		return DataChunk{}, false
	}

	return *h.data, true
}

func (h *Handle) IsCompressed() bool {
	f, _ := h.Format()
	return f.IsCompressed()
}

func (h *Handle) IsMono() bool {
	f, _ := h.Format()
	return f.IsMono()
}

func (h *Handle) IsStereo() bool {
	f, _ := h.Format()
	return f.IsStereo()
}

// DurationSeconds is DataLength / ByteRate, unrounded. It reports false while
// the data chunk is unknown and when ByteRate is 0.
func (h *Handle) DurationSeconds() (float64, bool) {
	d, ok := h.Data()
	if !ok || h.format.ByteRate == 0 {
		return 0, false
	}

	return float64(d.Length) / float64(h.format.ByteRate), true
}

func (h *Handle) Duration() (time.Duration, bool) {
	secs, ok := h.DurationSeconds()
	if !ok {
		return 0, false
	}

	return time.Duration(secs * float64(time.Second)), true
}

// Describe returns a multi-line human readable summary.
func (h *Handle) Describe() string {
	f, _ := h.Format()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s/%s)\n", h.Name(), f.ChunkID, f.Format)

	if f.IsCompressed() {
		sb.WriteString("Compression: yes\n")
	} else {
		sb.WriteString("Compression: no (PCM)\n")
	}

	fmt.Fprintf(&sb, "Number of channels: %d (%s)\n", f.NumChannels, channelLayout(f))
	fmt.Fprintf(&sb, "Sample rate: %d Hz\n", f.SampleRate)
	fmt.Fprintf(&sb, "Sample size: %d-bit\n", f.BitsPerSample)

	if secs, ok := h.DurationSeconds(); ok {
		fmt.Fprintf(&sb, "Duration: %d seconds", int64(math.Floor(secs+0.5)))
	} else {
		sb.WriteString("Duration: unknown")
	}

	return sb.String()
}

func (h *Handle) String() string { return h.Describe() }

func channelLayout(f WaveFormat) string {
	switch {
	case f.IsMono():
		return "mono"
	case f.IsStereo():
		return "stereo"
	}

	return "multichannel"
}

// ByteRange converts a start time and a length, both in seconds, into the
// absolute byte range [start, end) of the source. Each bound is truncated
// to a whole byte on its own. The range is not checked against the data
// chunk length.
func (h *Handle) ByteRange(startSeconds, lengthSeconds float64) (int64, int64, error) {
	f, ok := h.Format()
	if !ok {
		return 0, 0, ErrNotReady
	}

	if f.IsCompressed() {
		return 0, 0, fmt.Errorf("%w: compression code %d", ErrCompressed, f.Compression)
	}

	if f.ByteRate == 0 {
		return 0, 0, ErrZeroByteRate
	}

	if err := checkSeconds(startSeconds); err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}

	if err := checkSeconds(lengthSeconds); err != nil {
		return 0, 0, fmt.Errorf("length: %w", err)
	}

	// a fractional start carries into the end
	rate := float64(f.ByteRate)
	startPos := float64(h.data.Offset) + startSeconds*rate
	endPos := startPos + lengthSeconds*rate
	if endPos >= maxOffset {
		return 0, 0, fmt.Errorf("%w: %v+%v seconds is out of range", ErrInvalidRange, startSeconds, lengthSeconds)
	}

	return int64(math.Trunc(startPos)), int64(math.Trunc(endPos)), nil
}

func checkSeconds(secs float64) error {
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return fmt.Errorf("%w: %v seconds", ErrInvalidRange, secs)
	}

	return nil
}

// Slice returns a new RIFF/WAVE blob: the original 44-byte header followed by
// lengthSeconds of data starting startSeconds into the data chunk. A range
// past the end of the source yields a short or empty data region.
//
// Unless the handle was built WithSizePatching, the header still carries the
// chunk sizes of the full source.
func (h *Handle) Slice(ctx context.Context, startSeconds, lengthSeconds float64) ([]byte, error) {
	start, end, err := h.ByteRange(startSeconds, lengthSeconds)
	if err != nil {
		return nil, err
	}

	header, err := h.src.ReadRange(ctx, 0, HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", h.src.Name(), err)
	}

	region, err := h.src.ReadRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("read %s [%d, %d): %w", h.src.Name(), start, end, err)
	}

	blob := make([]byte, 0, len(header)+len(region))
	blob = append(blob, header...)
	blob = append(blob, region...)

	if h.patchSizes {
		if err := PatchSizes(blob, len(region)); err != nil {
			return nil, err
		}
	}

	return blob, nil
}

// SliceAsync runs Slice on its own goroutine and calls done exactly once with
// the result.
func (h *Handle) SliceAsync(ctx context.Context, startSeconds, lengthSeconds float64, done func(blob []byte, err error)) {
	go func() {
		done(h.Slice(ctx, startSeconds, lengthSeconds))
	}()
}
