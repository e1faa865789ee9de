// Package stdfio frames an STDF byte stream into headers and payload
// slices, and detects the byte order the stream was written in.
package stdfio

import (
	"iter"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/diag"
	"github.com/nrht/stdf/record"
)

// DetectEndian inspects the first record, which must be a FAR (type=0,
// sub=10), and decides which of the two interpretations of its 2-byte
// length field yields the expected value of 2. A file under 6 bytes (header
// plus the minimum FAR payload) or one whose first record is not a FAR
// reports errs.ErrNotSTDF, not an I/O error — this is a pure function of
// the first 6 bytes.
func DetectEndian(data []byte) (endian.EndianEngine, error) {
	if len(data) < 6 {
		return nil, errs.ErrNotSTDF
	}

	if data[2] != 0 || data[3] != 10 {
		return nil, errs.ErrNotSTDF
	}

	if leLen := uint16(data[0]) | uint16(data[1])<<8; leLen == 2 {
		eng := endian.GetLittleEndianEngine()
		logNativeMatch(eng)

		return eng, nil
	}

	if beLen := uint16(data[0])<<8 | uint16(data[1]); beLen == 2 {
		eng := endian.GetBigEndianEngine()
		logNativeMatch(eng)

		return eng, nil
	}

	return nil, errs.ErrNotSTDF
}

// logNativeMatch traces whether the detected file byte order matches the
// host's native order. A mismatch means every multi-byte field the rest of
// the read path decodes takes the byte-swapping path rather than a native
// load, which is worth surfacing when diagnostics are enabled.
func logNativeMatch(eng endian.EndianEngine) {
	if endian.CompareNativeEndian(eng) {
		diag.Debugf("stdfio: file byte order matches host (native %s)", nativeOrderName())
		return
	}

	diag.Debugf("stdfio: file byte order differs from host (native %s), decoding will byte-swap", nativeOrderName())
}

func nativeOrderName() string {
	if endian.IsNativeLittleEndian() {
		return "little-endian"
	}

	return "big-endian"
}

// RawRecord is an unclassified record: its 4-byte header plus a zero-copy
// view of its payload.
type RawRecord struct {
	Header  record.Header
	Offset  int
	Payload []byte
}

// Records lazily frames data into a sequence of RawRecord. Framing stops
// cleanly, without error, the moment fewer than 4 bytes remain for a header
// or the declared payload would run past the end of data — a truncated
// tail is tolerated, not reported. The sequence is finite and not
// restartable once exhausted; callers may stop early by breaking out of
// the range loop.
func Records(data []byte, eng endian.EndianEngine) iter.Seq[RawRecord] {
	return func(yield func(RawRecord) bool) {
		offset := 0

		for offset+4 <= len(data) {
			length := eng.Uint16(data[offset : offset+2])
			typ := data[offset+2]
			sub := data[offset+3]

			payloadStart := offset + 4
			payloadEnd := payloadStart + int(length)

			if payloadEnd > len(data) {
				diag.Warnf("stdfio: truncated payload at offset %d (declared %d bytes, %d available), stopping scan", offset, length, len(data)-payloadStart)
				return
			}

			rec := RawRecord{
				Header:  record.Header{Len: length, Type: typ, Subtype: sub},
				Offset:  offset,
				Payload: data[payloadStart:payloadEnd],
			}

			if !yield(rec) {
				return
			}

			offset = payloadEnd
		}

		if offset < len(data) {
			diag.Warnf("stdfio: %d trailing bytes too short for a header, stopping scan", len(data)-offset)
		}
	}
}

// Decode classifies every raw record in data into its catalogued variant
// (or Unknown/Invalid), lazily. This is the convenience path for callers
// that want typed records directly rather than raw frames plus a manual
// DecodeAt call.
func Decode(data []byte, eng endian.EndianEngine) iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for raw := range Records(data, eng) {
			if !yield(record.DecodeAt(raw.Header.Type, raw.Header.Subtype, raw.Payload, eng)) {
				return
			}
		}
	}
}
