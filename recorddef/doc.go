// Package recorddef is the derive facility: it turns a record struct's
// field declarations into read/write logic without per-variant boilerplate.
//
// Go has no compile-time derive macros, so this is the reflective
// equivalent spec.md §9 explicitly sanctions: a static descriptor table
// built once per struct type from `stdf:"..."` tags via reflect.Type, never
// from inspecting the values being decoded. The pattern mirrors how
// encoding/json builds and caches its field tables — reflection cost is
// paid once per type, not once per record.
//
// A field tag has the shape:
//
//	stdf:"<kind>[,default=<literal>][,lenfrom=<OtherFieldName>]"
//
// <kind> is one of the lower-case wire kind names (u1, i1, u2, u4, u4e, u8,
// i2, i4, i8, r4, r8, b1, c1, n1, cn, bn, dn, vn) or one of the array kinds
// (n1array, u1array, u2array, r4array, cnarray, vnarray) used by the
// count-prefixed array fields in PGR, PLR, RDR, SDR, MPR, FTR and GDR.
// lenfrom names a prior U1/U2 field of the same struct whose decoded value
// is the element count.
package recorddef
