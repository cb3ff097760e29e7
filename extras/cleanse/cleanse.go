// Package cleanse provides scratch buffers that are overwritten with zeros when released, so
// that key material and other sensitive payloads do not linger in reusable memory.
package cleanse

import "runtime"

// Memory overwrites the whole backing array of b, up to its capacity, with zeros.
func Memory(b []byte) {
	b = b[:cap(b)]
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Buffer owns a byte slice until Release is called. Use it with defer so every exit path wipes
// the memory:
//
//	buf := cleanse.From(decoded)
//	defer buf.Release()
type Buffer struct {
	b []byte
}

// New allocates a zeroed buffer of length n.
func New(n int) *Buffer {
	return &Buffer{b: make([]byte, n)}
}

// From takes ownership of b. The caller must not use b after Release.
func From(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Bytes returns the owned slice, or nil after Release.
func (c *Buffer) Bytes() []byte {
	return c.b
}

// Len returns the length of the owned slice.
func (c *Buffer) Len() int {
	return len(c.b)
}

// Release zeroes the owned memory and drops the reference. It is safe to call more than once.
func (c *Buffer) Release() {
	if c == nil || c.b == nil {
		return
	}
	Memory(c.b)
	c.b = nil
}
