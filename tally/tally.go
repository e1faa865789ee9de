// Package tally derives summary statistics — record counts, part counts,
// and pass/fail yield — from an index plus targeted decoding of only the
// records each statistic needs.
package tally

import (
	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/index"
	"github.com/nrht/stdf/record"
)

const (
	partFlgFail    = 0x08
	partFlgUnknown = 0x10
)

// RecordCounts returns the number of indexed records for every (type,
// subtype) pair present in idx, keyed by the catalogued name (or "UNKNOWN"
// for any uncatalogued pair, all summed together).
func RecordCounts(idx *index.Index) map[string]int {
	counts := make(map[string]int, len(idx.ByTypeSub))

	for ts, entries := range idx.ByTypeSub {
		name := record.Lookup(ts[0], ts[1])
		if name == "???" {
			name = "UNKNOWN"
		}

		counts[name] += len(entries)
	}

	return counts
}

// PartCount returns the number of parts tested, equal to the number of PIR
// records. It fails with errs.ErrMismatch if the PIR and PRR counts differ,
// and errs.ErrMissingPartRecords if either count is zero.
func PartCount(idx *index.Index) (int, error) {
	pirCount := idx.Count(5, 10)
	prrCount := idx.Count(5, 20)

	if pirCount == 0 || prrCount == 0 {
		return 0, errs.ErrMissingPartRecords
	}

	if pirCount != prrCount {
		return 0, errs.ErrMismatch
	}

	return pirCount, nil
}

// Yield decodes every indexed PRR and classifies it by the low bits of
// PART_FLG: bit 0x08 or 0x10 set means fail or unknown respectively;
// neither set means pass. Records with the unknown bit set are excluded
// from both pass and fail counts.
func Yield(idx *index.Index, eng endian.EndianEngine) (pass, fail int) {
	for _, e := range idx.Entries(5, 20) {
		rec := record.DecodeAt(5, 20, e.Payload, eng)

		prr, ok := rec.(*record.PRR)
		if !ok {
			continue
		}

		flg := prr.PartFlg
		if flg&partFlgUnknown != 0 {
			continue
		}

		if flg&partFlgFail != 0 {
			fail++
		} else {
			pass++
		}
	}

	return pass, fail
}
