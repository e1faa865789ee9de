// Package errs defines the sentinel error values shared across the stdf
// module. Callers use errors.Is against these values rather than matching on
// error strings.
package errs

import "errors"

var (
	// ErrInsufficientBytes is returned by a primitive read when fewer bytes
	// remain in the slice than the field requires.
	ErrInsufficientBytes = errors.New("stdf: insufficient bytes")

	// ErrInsufficientCapacity names the taxonomy's write-past-capacity kind.
	// No primitive write in this module returns it: the xbuf.Buffer they
	// append to grows as needed, and an oversized Cn/Bn payload panics
	// instead, since it is a programming error in the caller, not a
	// wire-format condition.
	ErrInsufficientCapacity = errors.New("stdf: insufficient capacity")

	// ErrBadInput marks a semantic violation such as an unrecognized Vn tag.
	// (A FAR whose length matches neither byte order is reported by
	// DetectEndian as ErrNotSTDF.) Wrap it with
	// fmt.Errorf("%w: reason", ErrBadInput) to add detail.
	ErrBadInput = errors.New("stdf: bad input")

	// ErrNotSTDF is returned when endian detection fails to recognize the
	// stream as an STDF file.
	ErrNotSTDF = errors.New("stdf: not an STDF file")

	// ErrMismatch is returned by PartCount when the number of PIR and PRR
	// records in the index differ.
	ErrMismatch = errors.New("stdf: PIR/PRR count mismatch")

	// ErrMissingPartRecords is returned by PartCount when the index has no
	// PIR or no PRR entries at all.
	ErrMissingPartRecords = errors.New("stdf: no part records present")

	// ErrMalformedRecord signals that a record's payload ended mid-field, or
	// ended before a mandatory field with no declared default. The record
	// package converts this into an Invalid record rather than propagating it.
	ErrMalformedRecord = errors.New("stdf: malformed record payload")
)
