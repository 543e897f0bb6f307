// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size of the canonical header: RIFF descriptor,
	// 16-byte fmt chunk and the data chunk header.
	HeaderSize = 44

	// PCM is the compression code of uncompressed data.
	PCM = 1

	riffID = "RIFF"
	waveID = "WAVE"
	fmtID  = "fmt "
	dataID = "data"
)

// WaveFormat holds the fixed-layout fields of a canonical header, taken
// verbatim. ByteRate and BlockAlign are never recomputed.
type WaveFormat struct {
	ChunkID       string // must be RIFF
	ChunkSize     uint32 // size of file after this field
	Format        string // must be WAVE
	Compression   uint16 // 1=PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func (f WaveFormat) IsCompressed() bool { return f.Compression != PCM }
func (f WaveFormat) IsMono() bool       { return f.NumChannels == 1 }
func (f WaveFormat) IsStereo() bool     { return f.NumChannels == 2 }

// DataChunk locates the PCM bytes inside the source.
type DataChunk struct {
	Offset int64
	Length int64
}

// DecodeHeader decodes the first HeaderSize bytes of a canonical RIFF/WAVE
// stream. Bytes past HeaderSize are ignored.
func DecodeHeader(b []byte) (WaveFormat, DataChunk, error) {
	var f WaveFormat

	if len(b) < HeaderSize {
		return f, DataChunk{}, fmt.Errorf("%w: got %d of %d bytes", ErrShortHeader, len(b), HeaderSize)
	}

	f.ChunkID = asciiText(b[0:4])
	if f.ChunkID != riffID {
		return WaveFormat{}, DataChunk{}, fmt.Errorf("%w: chunk id %q", ErrUnsupportedFormat, f.ChunkID)
	}
	f.ChunkSize = binary.LittleEndian.Uint32(b[4:8])

	f.Format = asciiText(b[8:12])
	if f.Format != waveID {
		return WaveFormat{}, DataChunk{}, fmt.Errorf("%w: format %q", ErrUnsupportedFormat, f.Format)
	}

	// [12,20) is the fmt chunk header, assumed to announce 16 bytes.
	f.Compression = binary.LittleEndian.Uint16(b[20:22])
	f.NumChannels = binary.LittleEndian.Uint16(b[22:24])
	f.SampleRate = binary.LittleEndian.Uint32(b[24:28])
	// == SampleRate * NumChannels * BitsPerSample/8
	f.ByteRate = binary.LittleEndian.Uint32(b[28:32])
	// == NumChannels * BitsPerSample/8
	f.BlockAlign = binary.LittleEndian.Uint16(b[32:34])
	f.BitsPerSample = binary.LittleEndian.Uint16(b[34:36])

	d, err := LocateData(b[36:HeaderSize])
	if err != nil {
		return WaveFormat{}, DataChunk{}, err
	}

	return f, d, nil
}

// LocateData reads the chunk header that follows the fmt chunk. Only the
// canonical layout, with "data" right at byte 36, is accepted; other chunks
// are reported, never skipped.
func LocateData(b []byte) (DataChunk, error) {
	if len(b) < 8 {
		return DataChunk{}, fmt.Errorf("%w: data chunk header has %d bytes", ErrShortHeader, len(b))
	}

	chunkType := asciiText(b[0:4])
	if chunkType != dataID {
		return DataChunk{}, &NonCanonicalFormatError{ChunkID: chunkType}
	}

	return DataChunk{
		Offset: HeaderSize,
		Length: int64(binary.LittleEndian.Uint32(b[4:8])),
	}, nil
}

// asciiText maps every byte to the rune with the same code point, so tags
// holding bytes >= 0x80 still come back with one rune per byte.
func asciiText(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}

	return string(r)
}
