package field

import (
	"math"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/xbuf"
)

// ReadB1 reads a single opaque byte. Endianness does not apply.
func ReadB1(data []byte, offset int) (byte, int, error) {
	if offset+1 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return data[offset], offset + 1, nil
}

// WriteB1 appends a single opaque byte.
func WriteB1(buf *xbuf.Buffer, v byte) {
	buf.AppendByte(v)
}

// ReadC1 reads a single ASCII character byte.
func ReadC1(data []byte, offset int) (byte, int, error) {
	return ReadB1(data, offset)
}

// WriteC1 appends a single ASCII character byte.
func WriteC1(buf *xbuf.Buffer, v byte) {
	buf.AppendByte(v)
}

// ReadU1 reads an unsigned 8-bit integer.
func ReadU1(data []byte, offset int) (uint8, int, error) {
	if offset+1 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return data[offset], offset + 1, nil
}

// WriteU1 appends an unsigned 8-bit integer.
func WriteU1(buf *xbuf.Buffer, v uint8) {
	buf.AppendByte(v)
}

// ReadI1 reads a signed 8-bit integer.
func ReadI1(data []byte, offset int) (int8, int, error) {
	if offset+1 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return int8(data[offset]), offset + 1, nil
}

// WriteI1 appends a signed 8-bit integer.
func WriteI1(buf *xbuf.Buffer, v int8) {
	buf.AppendByte(byte(v))
}

// ReadU2 reads an unsigned 16-bit integer in the given byte order.
func ReadU2(data []byte, offset int, eng endian.EndianEngine) (uint16, int, error) {
	if offset+2 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return eng.Uint16(data[offset : offset+2]), offset + 2, nil
}

// WriteU2 appends an unsigned 16-bit integer in the given byte order.
func WriteU2(buf *xbuf.Buffer, v uint16, eng endian.EndianEngine) {
	eng.PutUint16(buf.Reserve(2), v)
}

// ReadU4 reads an unsigned 32-bit integer in the given byte order.
func ReadU4(data []byte, offset int, eng endian.EndianEngine) (uint32, int, error) {
	if offset+4 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return eng.Uint32(data[offset : offset+4]), offset + 4, nil
}

// WriteU4 appends an unsigned 32-bit integer in the given byte order.
func WriteU4(buf *xbuf.Buffer, v uint32, eng endian.EndianEngine) {
	eng.PutUint32(buf.Reserve(4), v)
}

// ReadU4E reads a U4 field whose logical meaning is a Unix-epoch timestamp
// in seconds. The wire representation is identical to U4.
func ReadU4E(data []byte, offset int, eng endian.EndianEngine) (uint32, int, error) {
	return ReadU4(data, offset, eng)
}

// WriteU4E appends a U4E field.
func WriteU4E(buf *xbuf.Buffer, v uint32, eng endian.EndianEngine) {
	WriteU4(buf, v, eng)
}

// ReadU8 reads an unsigned 64-bit integer in the given byte order.
func ReadU8(data []byte, offset int, eng endian.EndianEngine) (uint64, int, error) {
	if offset+8 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return eng.Uint64(data[offset : offset+8]), offset + 8, nil
}

// WriteU8 appends an unsigned 64-bit integer in the given byte order.
func WriteU8(buf *xbuf.Buffer, v uint64, eng endian.EndianEngine) {
	eng.PutUint64(buf.Reserve(8), v)
}

// ReadI2 reads a signed 16-bit integer in the given byte order.
func ReadI2(data []byte, offset int, eng endian.EndianEngine) (int16, int, error) {
	u, next, err := ReadU2(data, offset, eng)
	return int16(u), next, err
}

// WriteI2 appends a signed 16-bit integer in the given byte order.
func WriteI2(buf *xbuf.Buffer, v int16, eng endian.EndianEngine) {
	WriteU2(buf, uint16(v), eng)
}

// ReadI4 reads a signed 32-bit integer in the given byte order.
func ReadI4(data []byte, offset int, eng endian.EndianEngine) (int32, int, error) {
	u, next, err := ReadU4(data, offset, eng)
	return int32(u), next, err
}

// WriteI4 appends a signed 32-bit integer in the given byte order.
func WriteI4(buf *xbuf.Buffer, v int32, eng endian.EndianEngine) {
	WriteU4(buf, uint32(v), eng)
}

// ReadI8 reads a signed 64-bit integer in the given byte order.
func ReadI8(data []byte, offset int, eng endian.EndianEngine) (int64, int, error) {
	u, next, err := ReadU8(data, offset, eng)
	return int64(u), next, err
}

// WriteI8 appends a signed 64-bit integer in the given byte order.
func WriteI8(buf *xbuf.Buffer, v int64, eng endian.EndianEngine) {
	WriteU8(buf, uint64(v), eng)
}

// ReadR4 reads an IEEE-754 single-precision float in the given byte order.
// NaN bit patterns round-trip exactly: the raw bits are preserved, never
// normalized through a floating-point comparison.
func ReadR4(data []byte, offset int, eng endian.EndianEngine) (float32, int, error) {
	bits, next, err := ReadU4(data, offset, eng)
	if err != nil {
		return 0, offset, err
	}

	return math.Float32frombits(bits), next, nil
}

// WriteR4 appends an IEEE-754 single-precision float in the given byte order.
func WriteR4(buf *xbuf.Buffer, v float32, eng endian.EndianEngine) {
	WriteU4(buf, math.Float32bits(v), eng)
}

// ReadR8 reads an IEEE-754 double-precision float in the given byte order.
func ReadR8(data []byte, offset int, eng endian.EndianEngine) (float64, int, error) {
	bits, next, err := ReadU8(data, offset, eng)
	if err != nil {
		return 0, offset, err
	}

	return math.Float64frombits(bits), next, nil
}

// WriteR8 appends an IEEE-754 double-precision float in the given byte order.
func WriteR8(buf *xbuf.Buffer, v float64, eng endian.EndianEngine) {
	WriteU8(buf, math.Float64bits(v), eng)
}
