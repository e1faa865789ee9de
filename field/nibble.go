package field

import (
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/xbuf"
)

// ReadN1 reads a single unsigned nibble occupying a whole byte. The upper
// nibble of the byte is ignored; only the low 4 bits are significant.
func ReadN1(data []byte, offset int) (uint8, int, error) {
	if offset+1 > len(data) {
		return 0, offset, errs.ErrInsufficientBytes
	}

	return data[offset] & 0x0F, offset + 1, nil
}

// WriteN1 appends a single nibble as a whole byte, upper nibble zeroed.
func WriteN1(buf *xbuf.Buffer, v uint8) {
	buf.AppendByte(v & 0x0F)
}

// ReadN1Array reads count nibble-packed N1 values, two per byte, low nibble
// first. When count is odd, the final byte's upper nibble is consumed by
// the packing but its value is not part of the decoded sequence.
func ReadN1Array(data []byte, offset int, count int) ([]uint8, int, error) {
	if count == 0 {
		return nil, offset, nil
	}

	nbytes := count/2 + count%2
	if offset+nbytes > len(data) {
		return nil, offset, errs.ErrInsufficientBytes
	}

	out := make([]uint8, count)
	for i := range count {
		b := data[offset+i/2]
		if i%2 == 0 {
			out[i] = b & 0x0F
		} else {
			out[i] = (b >> 4) & 0x0F
		}
	}

	return out, offset + nbytes, nil
}

// WriteN1Array appends count nibble-packed N1 values, two per byte, low
// nibble first. When count is odd, the upper nibble of the final byte is
// left at zero.
func WriteN1Array(buf *xbuf.Buffer, values []uint8) {
	n := len(values)
	nbytes := n/2 + n%2
	out := buf.Reserve(nbytes)

	for i := range nbytes {
		out[i] = 0
	}

	for i, v := range values {
		nibble := v & 0x0F
		if i%2 == 0 {
			out[i/2] |= nibble
		} else {
			out[i/2] |= nibble << 4
		}
	}
}
