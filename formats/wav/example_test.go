// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ik5/wavslice/formats/wav"
	"github.com/ik5/wavslice/source"
)

// oneSecondMono builds one second of 8-bit mono audio at 8 kHz.
func oneSecondMono() []byte {
	f := wav.WaveFormat{
		ChunkSize:     36 + 8000,
		Compression:   wav.PCM,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      8000,
		BlockAlign:    1,
		BitsPerSample: 8,
	}

	buf := new(bytes.Buffer)
	wav.WriteHeader(buf, f, wav.DataChunk{Length: 8000})
	buf.Write(make([]byte, 8000))

	return buf.Bytes()
}

// Example_describe opens a handle and prints its summary.
func Example_describe() {
	h := wav.NewHandle(source.NewMemory("tone.wav", oneSecondMono()))
	if err := h.Open(context.Background()); err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	fmt.Println(h)
	// Output:
	// tone.wav (RIFF/WAVE)
	// Compression: no (PCM)
	// Number of channels: 1 (mono)
	// Sample rate: 8000 Hz
	// Sample size: 8-bit
	// Duration: 1 seconds
}

// Example_slice carves a quarter of a second out of the data chunk.
func Example_slice() {
	h := wav.NewHandle(source.NewMemory("tone.wav", oneSecondMono()))
	if err := h.Open(context.Background()); err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	blob, err := h.Slice(context.Background(), 0.5, 0.25)
	if err != nil {
		fmt.Printf("Slice error: %v\n", err)
		return
	}

	_, data, _ := wav.DecodeHeader(blob)
	fmt.Printf("Slice: %d bytes\n", len(blob))
	fmt.Printf("Declared data length: %d\n", data.Length)
	// Output:
	// Slice: 2044 bytes
	// Declared data length: 8000
}

// Example_sizePatching rewrites the header sizes of each slice.
func Example_sizePatching() {
	h := wav.NewHandle(source.NewMemory("tone.wav", oneSecondMono()), wav.WithSizePatching())
	if err := h.Open(context.Background()); err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	blob, _ := h.Slice(context.Background(), 0.5, 0.25)

	f, data, _ := wav.DecodeHeader(blob)
	fmt.Printf("Chunk size: %d\n", f.ChunkSize)
	fmt.Printf("Declared data length: %d\n", data.Length)
	// Output:
	// Chunk size: 2036
	// Declared data length: 2000
}

// Example_nonCanonical shows the error for a file with a fact chunk before data.
func Example_nonCanonical() {
	header := oneSecondMono()[:wav.HeaderSize]
	copy(header[36:40], "fact")

	_, _, err := wav.DecodeHeader(header)

	var nce *wav.NonCanonicalFormatError
	if errors.As(err, &nce) {
		fmt.Printf("Found %q chunk\n", nce.ChunkID)
	}
	fmt.Println(errors.Is(err, wav.ErrNonCanonicalFormat))
	// Output:
	// Found "fact" chunk
	// true
}
