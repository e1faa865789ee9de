// Package field implements the STDF V4 primitive wire types: fixed-size
// scalars (B1, C1, U1, I1, N1, U2, U4, U8, I2, I4, I8, R4, R8, U4E),
// length-prefixed variable types (Cn, Bn, Dn), and the tagged union Vn.
//
// Every primitive exposes a matched pair of free functions rather than a
// method on a value type:
//
//	ReadXxx(data []byte, offset int, eng endian.EndianEngine) (value, next int, err error)
//	WriteXxx(buf *xbuf.Buffer, value, eng endian.EndianEngine)
//
// Reads are total given sufficient bytes: they return errs.ErrInsufficientBytes
// only when the slice is too short, and never otherwise fail except Vn on an
// unrecognized tag (errs.ErrBadInput). Writes assume the caller respects the
// documented preconditions (e.g. a Cn/Bn payload under 256 bytes); violating
// one is a programming error, not a wire-format error, and is reported by
// panicking rather than by a returned error, matching spec.md's
// InsufficientCapacity classification.
package field
