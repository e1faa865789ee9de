// Package xbuf provides a growable byte buffer for the record writer path.
//
// It is adapted from the amortized-growth ByteBuffer used by the wider
// corpus's binary encoders, but without sync.Pool-backed reuse: STDF files
// are written far less frequently than a per-metric hot loop, so a whole
// file's worth of records is typically appended to one buffer and then
// handed to the caller, making pool lifetime management not worth the
// complexity (see DESIGN.md).
package xbuf

// DefaultSize is the initial capacity given to a Buffer when the caller does
// not size it explicitly.
const DefaultSize = 4096

// Buffer is a growable byte slice with an amortized growth strategy suited
// to repeated small appends (one per field) punctuated by occasional large
// ones (Cn/Bn/Dn payloads).
type Buffer struct {
	b []byte
}

// New creates a Buffer with the given initial capacity.
func New(initialCap int) *Buffer {
	if initialCap <= 0 {
		initialCap = DefaultSize
	}

	return &Buffer{b: make([]byte, 0, initialCap)}
}

// Bytes returns the buffer's contents. The returned slice is valid until the
// next mutating call; callers must not retain it across further writes.
func (buf *Buffer) Bytes() []byte {
	return buf.b
}

// Len returns the number of bytes currently held.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Reset empties the buffer but keeps the underlying array for reuse.
func (buf *Buffer) Reset() {
	buf.b = buf.b[:0]
}

// Grow ensures at least n more bytes can be appended without reallocating.
//
// Growth strategy: small buffers grow by DefaultSize to minimize the number
// of reallocations during the header-by-header encode of a typical file;
// larger buffers grow by 25% of their current capacity.
func (buf *Buffer) Grow(n int) {
	available := cap(buf.b) - len(buf.b)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(buf.b) > 4*DefaultSize {
		growBy = cap(buf.b) / 4
	}

	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(buf.b), len(buf.b)+growBy)
	copy(newBuf, buf.b)
	buf.b = newBuf
}

// Append grows the buffer as needed and appends data to it.
func (buf *Buffer) Append(data []byte) {
	buf.Grow(len(data))
	buf.b = append(buf.b, data...)
}

// AppendByte grows the buffer as needed and appends a single byte.
func (buf *Buffer) AppendByte(b byte) {
	buf.Grow(1)
	buf.b = append(buf.b, b)
}

// Reserve grows the buffer by n bytes and returns a slice view over the
// newly reserved region so the caller can fill it in place (used by
// fixed-width primitive writers to avoid an intermediate allocation).
func (buf *Buffer) Reserve(n int) []byte {
	buf.Grow(n)
	start := len(buf.b)
	buf.b = buf.b[:start+n]

	return buf.b[start : start+n]
}
