// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeHeader builds the canonical 44-byte header for f with a data chunk of
// d.Length bytes. ChunkSize is written as given in f.
func EncodeHeader(f WaveFormat, d DataChunk) []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], riffID)
	binary.LittleEndian.PutUint32(header[4:8], f.ChunkSize)
	copy(header[8:12], waveID)

	// fmt chunk (24 bytes)
	copy(header[12:16], fmtID)
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], f.Compression)
	binary.LittleEndian.PutUint16(header[22:24], f.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], f.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], f.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], f.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], f.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], dataID)
	binary.LittleEndian.PutUint32(header[40:44], uint32(d.Length))

	return header
}

// WriteHeader writes EncodeHeader(f, d) to w in one call.
func WriteHeader(w io.Writer, f WaveFormat, d DataChunk) error {
	if _, err := w.Write(EncodeHeader(f, d)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// PatchSizes rewrites the RIFF chunk size and the data chunk size of a
// canonical header in place so they describe dataLen bytes of audio.
func PatchSizes(header []byte, dataLen int) error {
	if len(header) < HeaderSize {
		return fmt.Errorf("%w: got %d of %d bytes", ErrShortHeader, len(header), HeaderSize)
	}

	binary.LittleEndian.PutUint32(header[4:8], uint32(HeaderSize-8+dataLen))
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataLen))

	return nil
}
