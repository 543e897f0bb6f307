// SPDX-License-Identifier: EPL-2.0

package source

import "context"

// Memory is a ByteSource over an in-memory byte slice.
type Memory struct {
	name string
	data []byte
}

// NewMemory wraps data. The slice is borrowed, not copied; callers must not
// modify it while reads are in flight.
func NewMemory(name string, data []byte) *Memory {
	return &Memory{name: name, data: data}
}

func (m *Memory) Name() string { return m.name }
func (m *Memory) Size() int64  { return int64(len(m.data)) }

func (m *Memory) ReadRange(ctx context.Context, start, end int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end, err := clamp(start, end, m.Size())
	if err != nil {
		return nil, err
	}

	out := make([]byte, end-start)
	copy(out, m.data[start:end])

	return out, nil
}
