package field

import (
	"fmt"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/xbuf"
)

// VnKind identifies which scalar or variable-length alternative a Vn value
// holds. The numeric values are the wire tag bytes themselves, taken from
// the STDF V4 generic-data encoding (0 = pad, 1..8 = scalars, 10..12 =
// variable-length, 13 = N1); there is deliberately no tag 9.
type VnKind uint8

const (
	VnPad VnKind = 0
	VnU1  VnKind = 1
	VnU2  VnKind = 2
	VnU4  VnKind = 3
	VnI1  VnKind = 4
	VnI2  VnKind = 5
	VnI4  VnKind = 6
	VnR4  VnKind = 7
	VnR8  VnKind = 8
	VnCn  VnKind = 10
	VnBn  VnKind = 11
	VnDn  VnKind = 12
	VnN1  VnKind = 13
)

// Vn is the tagged union "generic data" field: a one-byte type tag followed
// by the payload of that tag. GDR records carry an array of Vn values.
//
// Only one of the typed fields is meaningful, selected by Kind. Bn and Dn
// are zero-copy views into the decoding buffer and Cn is a copied string,
// like their standalone counterparts.
type Vn struct {
	Kind VnKind

	U1 uint8
	U2 uint16
	U4 uint32
	I1 int8
	I2 int16
	I4 int32
	R4 float32
	R8 float64
	Cn string
	Bn []byte
	Dn []byte

	// DnBitLen is the declared bit length when Kind == VnDn.
	DnBitLen int
}

// ReadVn reads a single tagged-union value. An unrecognized tag byte yields
// errs.ErrBadInput, matching spec.md §4.1.
func ReadVn(data []byte, offset int, eng endian.EndianEngine) (Vn, int, error) {
	tagByte, next, err := ReadU1(data, offset)
	if err != nil {
		return Vn{}, offset, err
	}

	kind := VnKind(tagByte)

	switch kind {
	case VnPad:
		return Vn{Kind: VnPad}, next, nil
	case VnU1:
		v, n, err := ReadU1(data, next)
		return Vn{Kind: kind, U1: v}, n, err
	case VnU2:
		v, n, err := ReadU2(data, next, eng)
		return Vn{Kind: kind, U2: v}, n, err
	case VnU4:
		v, n, err := ReadU4(data, next, eng)
		return Vn{Kind: kind, U4: v}, n, err
	case VnI1:
		v, n, err := ReadI1(data, next)
		return Vn{Kind: kind, I1: v}, n, err
	case VnI2:
		v, n, err := ReadI2(data, next, eng)
		return Vn{Kind: kind, I2: v}, n, err
	case VnI4:
		v, n, err := ReadI4(data, next, eng)
		return Vn{Kind: kind, I4: v}, n, err
	case VnR4:
		v, n, err := ReadR4(data, next, eng)
		return Vn{Kind: kind, R4: v}, n, err
	case VnR8:
		v, n, err := ReadR8(data, next, eng)
		return Vn{Kind: kind, R8: v}, n, err
	case VnCn:
		v, n, err := ReadCn(data, next)
		return Vn{Kind: kind, Cn: v}, n, err
	case VnBn:
		v, n, err := ReadBn(data, next)
		return Vn{Kind: kind, Bn: v}, n, err
	case VnDn:
		bitLen, dnNext, err := ReadU2(data, next, eng)
		if err != nil {
			return Vn{}, offset, err
		}

		nbytes := int(bitLen)/8 + boolToInt(int(bitLen)%8 != 0)
		if dnNext+nbytes > len(data) {
			return Vn{}, offset, errs.ErrInsufficientBytes
		}

		return Vn{Kind: kind, Dn: data[dnNext : dnNext+nbytes], DnBitLen: int(bitLen)}, dnNext + nbytes, nil
	case VnN1:
		v, n, err := ReadN1(data, next)
		return Vn{Kind: kind, U1: v}, n, err
	default:
		return Vn{}, offset, fmt.Errorf("%w: unknown type", errs.ErrBadInput)
	}
}

// WriteVn appends the tag byte followed by the payload of the selected
// alternative.
func WriteVn(buf *xbuf.Buffer, v Vn, eng endian.EndianEngine) {
	WriteU1(buf, uint8(v.Kind))

	switch v.Kind {
	case VnPad:
	case VnU1:
		WriteU1(buf, v.U1)
	case VnU2:
		WriteU2(buf, v.U2, eng)
	case VnU4:
		WriteU4(buf, v.U4, eng)
	case VnI1:
		WriteI1(buf, v.I1)
	case VnI2:
		WriteI2(buf, v.I2, eng)
	case VnI4:
		WriteI4(buf, v.I4, eng)
	case VnR4:
		WriteR4(buf, v.R4, eng)
	case VnR8:
		WriteR8(buf, v.R8, eng)
	case VnCn:
		WriteCn(buf, v.Cn)
	case VnBn:
		WriteBn(buf, v.Bn)
	case VnDn:
		WriteDn(buf, v.DnBitLen, v.Dn, eng)
	case VnN1:
		WriteN1(buf, v.U1)
	}
}
