// SPDX-License-Identifier: EPL-2.0

// Package wav decodes canonical RIFF/WAVE headers and carves time-bounded
// slices out of the data chunk without decoding samples.
//
// # Canonical Layout
//
// Only the 44-byte canonical layout is supported: a RIFF descriptor, a
// 16-byte fmt chunk, and the data chunk header at byte 36.
//
//	[0,4)   "RIFF"            [4,8)   chunk size
//	[8,12)  "WAVE"            [12,20) fmt chunk header (not validated)
//	[20,22) compression       [22,24) channels
//	[24,28) sample rate       [28,32) byte rate
//	[32,34) block align       [34,36) bits per sample
//	[36,40) "data"            [40,44) data length
//
// Fields are taken verbatim. The decoder never recomputes the byte rate or
// the block alignment, and never walks past a chunk other than "data".
//
// # Handles
//
// A Handle reads the header of a source.ByteSource once and answers queries
// about it:
//
//	h := wav.NewHandle(src)
//	if err := h.Open(ctx); err != nil {
//	    // not a WAVE file, or a fact/LIST chunk before data
//	}
//	secs, ok := h.DurationSeconds()
//
// Slice returns a new RIFF/WAVE blob with the original header followed by the
// requested region of the data chunk:
//
//	blob, err := h.Slice(ctx, 1.5, 2) // 2 seconds starting at 1.5s
//
// The copied header still advertises the sizes of the whole source. Most
// players do not care; use WithSizePatching when they do.
//
// # Error Handling
//
//   - ErrUnsupportedFormat: missing "RIFF" or "WAVE" tag
//   - ErrNonCanonicalFormat: byte 36 does not start a data chunk; the
//     concrete *NonCanonicalFormatError carries the tag found
//   - ErrShortHeader: fewer than 44 bytes available
//   - ErrCompressed, ErrZeroByteRate, ErrInvalidRange: the slice cannot be
//     computed
//
// ListChunks lists the top-level chunks of a rejected stream, which helps
// telling what an editor put in front of the data chunk.
package wav
