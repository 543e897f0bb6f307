// SPDX-License-Identifier: EPL-2.0

// Package wavslice cuts time-bounded clips out of RIFF/WAVE files without
// decoding samples.
//
// A clip is the original 44-byte header followed by the bytes of the data
// chunk that cover the requested time range. The byte range is derived from
// the byte rate in the header, so nothing but the header and the range itself
// is ever read.
//
// # Supported Files
//
// Only the canonical layout is supported: "RIFF", "WAVE", a 16-byte fmt chunk
// and the data chunk right after it at byte 36. Files where an editor put a
// fact or LIST chunk before the data chunk are rejected with
// wav.ErrNonCanonicalFormat. Compressed data can be described but not sliced.
//
// # Quick Start
//
//	blob, err := wavslice.SliceFile(ctx, "interview.wav", 90, 15)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("quote.wav", blob, 0o644)
//
// # Sources
//
// Open accepts any location known to a source.Registry: plain paths,
// file:// URLs and http(s):// URLs served with range requests.
//
//	h, closeFn, err := wavslice.Open(ctx, nil, "https://example.com/interview.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer closeFn()
//
//	fmt.Println(h.Describe())
//	blob, err := h.Slice(ctx, 90, 15)
//
// # Header Sizes
//
// By default the clip keeps the header of the source verbatim, so its RIFF and
// data sizes still describe the full file. Pass wav.WithSizePatching() to get
// sizes that match the clip.
//
// See the formats/wav and source subpackages for the details.
package wavslice
