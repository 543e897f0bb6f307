// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Fixture describes a canonical 44-byte header field by field. It does not
// import the wav package so that package can use it in its own tests.
type Fixture struct {
	ChunkID       string
	Format        string
	FmtID         string
	Compression   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        string

	// ChunkSize and DataLength are written verbatim when >= 0; a negative
	// value derives them from the payload passed to Bytes.
	ChunkSize  int64
	DataLength int64
}

// NewFixture returns a PCM fixture with consistent byte rate and block align.
func NewFixture(sampleRate, channels, bitsPerSample int) *Fixture {
	blockAlign := channels * bitsPerSample / 8

	return &Fixture{
		ChunkID:       "RIFF",
		Format:        "WAVE",
		FmtID:         "fmt ",
		Compression:   1,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bitsPerSample),
		DataID:        "data",
		ChunkSize:     -1,
		DataLength:    -1,
	}
}

// Header returns the 44 header bytes for a payload of payloadLen bytes.
func (f *Fixture) Header(payloadLen int) []byte {
	chunkSize := uint32(36 + payloadLen)
	if f.ChunkSize >= 0 {
		chunkSize = uint32(f.ChunkSize)
	}

	dataLength := uint32(payloadLen)
	if f.DataLength >= 0 {
		dataLength = uint32(f.DataLength)
	}

	header := make([]byte, 44)
	copy(header[0:4], f.ChunkID)
	binary.LittleEndian.PutUint32(header[4:8], chunkSize)
	copy(header[8:12], f.Format)
	copy(header[12:16], f.FmtID)
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], f.Compression)
	binary.LittleEndian.PutUint16(header[22:24], f.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], f.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], f.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], f.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], f.BitsPerSample)
	copy(header[36:40], f.DataID)
	binary.LittleEndian.PutUint32(header[40:44], dataLength)

	return header
}

// Bytes returns the header followed by payload.
func (f *Fixture) Bytes(payload []byte) []byte {
	out := make([]byte, 0, 44+len(payload))
	out = append(out, f.Header(len(payload))...)
	return append(out, payload...)
}

// Ramp returns n bytes counting up from 0 and wrapping at 256, so any carved
// region can be located by its first byte value.
func Ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}

// WriteSineFile encodes frames of a 440 Hz sine with the go-audio WAV encoder
// into a file under t.TempDir() and returns its path and contents.
func WriteSineFile(tb testing.TB, sampleRate, channels, bitDepth, frames int) (string, []byte) {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "sine.wav")
	out, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create fixture: %v", err)
	}

	enc := gowav.NewEncoder(out, sampleRate, bitDepth, channels, 1)

	peak := float64(int(1)<<(bitDepth-1) - 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, frames*channels),
		SourceBitDepth: bitDepth,
	}
	for i := 0; i < frames; i++ {
		v := int(peak * 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		for c := 0; c < channels; c++ {
			buf.Data[i*channels+c] = v
		}
	}

	if err := enc.Write(buf); err != nil {
		tb.Fatalf("encode fixture: %v", err)
	}

	if err := enc.Close(); err != nil {
		tb.Fatalf("close encoder: %v", err)
	}

	if err := out.Close(); err != nil {
		tb.Fatalf("close fixture: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture: %v", err)
	}

	return path, data
}
