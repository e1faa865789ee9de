package field

import (
	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/xbuf"
)

// ReadCn reads a length-prefixed ASCII string: one length byte followed by
// that many bytes. The returned string is a copy of those bytes and does
// not alias data.
func ReadCn(data []byte, offset int) (string, int, error) {
	b, next, err := readLenPrefixed(data, offset)
	if err != nil {
		return "", offset, err
	}

	return string(b), next, nil
}

// WriteCn appends a length byte followed by the string's bytes. The caller
// must ensure len(s) fits in a uint8; exceeding that is a programming error
// (spec.md §4.1), reported by panicking rather than returning a wire error.
func WriteCn(buf *xbuf.Buffer, s string) {
	writeLenPrefixed(buf, []byte(s))
}

// ReadBn reads a length-prefixed opaque byte array: one length byte
// followed by that many bytes. The returned slice aliases data.
func ReadBn(data []byte, offset int) ([]byte, int, error) {
	return readLenPrefixed(data, offset)
}

// WriteBn appends a length byte followed by the raw bytes. Same length
// precondition as WriteCn.
func WriteBn(buf *xbuf.Buffer, b []byte) {
	writeLenPrefixed(buf, b)
}

func readLenPrefixed(data []byte, offset int) ([]byte, int, error) {
	if offset+1 > len(data) {
		return nil, offset, errs.ErrInsufficientBytes
	}

	n := int(data[offset])
	offset++

	if n == 0 {
		return nil, offset, nil
	}

	if offset+n > len(data) {
		return nil, offset, errs.ErrInsufficientBytes
	}

	return data[offset : offset+n], offset + n, nil
}

func writeLenPrefixed(buf *xbuf.Buffer, b []byte) {
	if len(b) > 255 {
		panic("field: Cn/Bn payload exceeds 255 bytes")
	}

	buf.AppendByte(byte(len(b)))
	if len(b) > 0 {
		buf.Append(b)
	}
}

// ReadDn reads a bit-length-prefixed bitfield: a two-byte bit length d,
// followed by ceil(d/8) bytes. The returned slice aliases data.
func ReadDn(data []byte, offset int, eng endian.EndianEngine) ([]byte, int, error) {
	bitLen, next, err := ReadU2(data, offset, eng)
	if err != nil {
		return nil, offset, err
	}

	nbytes := int(bitLen)/8 + boolToInt(int(bitLen)%8 != 0)
	if next+nbytes > len(data) {
		return nil, offset, errs.ErrInsufficientBytes
	}

	return data[next : next+nbytes], next + nbytes, nil
}

// WriteDn appends a Dn field with the declared bit length bitLen, followed
// by the first ceil(bitLen/8) bytes of b. If bitLen implies more bytes than
// len(b) holds, it is clamped down to 8*len(b) per spec.md §3.2/§4.1.
func WriteDn(buf *xbuf.Buffer, bitLen int, b []byte, eng endian.EndianEngine) {
	maxBytes := bitLen/8 + boolToInt(bitLen%8 != 0)
	if maxBytes > len(b) {
		bitLen = len(b) * 8
		maxBytes = len(b)
	}

	WriteU2(buf, uint16(bitLen), eng)
	buf.Append(b[:maxBytes])
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
