// Package index builds a random-access index of an STDF byte stream in a
// single pass, keyed by (type, subtype), without decoding any payload.
package index

import (
	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/internal/diag"
	"github.com/nrht/stdf/record"
	"github.com/nrht/stdf/stdfio"
)

// Entry is one indexed record: its header, the absolute byte offset of the
// header's first byte in the source data, and a zero-copy view of its
// payload.
type Entry struct {
	Header  record.Header
	Offset  int
	Payload []byte
}

// Index is the result of a single pass over a file: every record's entry,
// grouped by (type, subtype). It is built once and read many times; treat
// it as immutable.
type Index struct {
	ByTypeSub map[[2]uint8][]Entry
	All       []Entry
}

// Build scans data once, recording every record's offset. A header that
// cannot be fully read, or a declared payload that would run past the end
// of data, ends the scan cleanly — the index reflects everything read
// before that point, not an error. Unrecognized (type, subtype) pairs are
// indexed the same as any other.
func Build(data []byte, eng endian.EndianEngine) *Index {
	idx := &Index{ByTypeSub: make(map[[2]uint8][]Entry)}

	for raw := range stdfio.Records(data, eng) {
		e := Entry{Header: raw.Header, Offset: raw.Offset, Payload: raw.Payload}

		key := [2]uint8{raw.Header.Type, raw.Header.Subtype}
		idx.ByTypeSub[key] = append(idx.ByTypeSub[key], e)
		idx.All = append(idx.All, e)
	}

	diag.Debugf("index: built %d entries across %d (type,subtype) pairs", len(idx.All), len(idx.ByTypeSub))

	return idx
}

// Entries returns the indexed entries for one (type, subtype) pair, or nil
// if none were present.
func (idx *Index) Entries(typ, subtype uint8) []Entry {
	return idx.ByTypeSub[[2]uint8{typ, subtype}]
}

// Count returns the number of indexed records for one (type, subtype) pair.
func (idx *Index) Count(typ, subtype uint8) int {
	return len(idx.ByTypeSub[[2]uint8{typ, subtype}])
}
