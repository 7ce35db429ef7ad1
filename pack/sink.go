package pack

import "errors"

// ErrBufferFull is returned when a write does not fit into the remaining
// capacity of a Buffer.
var ErrBufferFull = errors.New("pack: buffer full")

// Sink is an append-only destination for encoded bytes. A *bytes.Buffer
// satisfies it, as does any writer with the three byte-oriented methods.
type Sink interface {
	WriteByte(c byte) error
	Write(p []byte) (int, error)
	WriteString(v string) (int, error)
}

// Discard is a Sink that accepts and ignores everything written to it.
// Packing into Discard measures encoded size without allocating.
var Discard Sink = discard{}

type discard struct{}

func (discard) WriteByte(byte) error              { return nil }
func (discard) Write(p []byte) (int, error)       { return len(p), nil }
func (discard) WriteString(v string) (int, error) { return len(v), nil }

// Buffer is a fixed-capacity Sink over a preallocated byte slice. Writes
// are all or nothing: a write that does not fit returns ErrBufferFull and
// leaves the contents unchanged.
type Buffer struct {
	buf []byte
	off int
}

// NewBuffer returns a Buffer with the given fixed capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

func (b *Buffer) WriteByte(c byte) error {
	if b.off >= len(b.buf) {
		return ErrBufferFull
	}
	b.buf[b.off] = c
	b.off++
	return nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > len(b.buf)-b.off {
		return 0, ErrBufferFull
	}
	copy(b.buf[b.off:], p)
	b.off += len(p)
	return len(p), nil
}

func (b *Buffer) WriteString(v string) (int, error) {
	if len(v) > len(b.buf)-b.off {
		return 0, ErrBufferFull
	}
	copy(b.buf[b.off:], v)
	b.off += len(v)
	return len(v), nil
}

// Bytes returns the written prefix of the underlying slice. The result is
// valid until the next write or Reset.
func (b *Buffer) Bytes() []byte { return b.buf[:b.off] }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.off }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Reset discards the written bytes, keeping the capacity.
func (b *Buffer) Reset() { b.off = 0 }
