// Package record defines the closed set of STDF V4 record variants, the
// (type, subtype) catalogue that names them, and the DecodeAt/Encode entry
// points used to move between a catalogued payload and its Go value.
//
// Per-field layout is declared once, in struct tags, and driven through the
// recorddef derive facility rather than hand-written per record. What lives
// here is the dispatch: which Go type corresponds to which (type, subtype)
// pair, and the Unknown/Invalid fallbacks for everything else.
package record

import (
	"reflect"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/internal/xbuf"
	"github.com/nrht/stdf/recorddef"
)

// Record is implemented by every catalogued variant plus Unknown and
// Invalid. It reports the identity a reader needs without forcing a type
// switch for that alone.
type Record interface {
	RecordName() string
	RecordType() uint8
	RecordSubtype() uint8
}

// Header is the 4-byte record header shared by every STDF record: payload
// length followed by the (type, subtype) pair that selects its shape.
type Header struct {
	Len     uint16
	Type    uint8
	Subtype uint8
}

type catalogueEntry struct {
	name    string
	newFunc func() Record
}

var catalogue = map[[2]uint8]catalogueEntry{
	{0, 10}:  {"FAR", func() Record { return &FAR{} }},
	{0, 20}:  {"ATR", func() Record { return &ATR{} }},
	{1, 10}:  {"MIR", func() Record { return &MIR{} }},
	{1, 20}:  {"MRR", func() Record { return &MRR{} }},
	{1, 30}:  {"PCR", func() Record { return &PCR{} }},
	{1, 40}:  {"HBR", func() Record { return &HBR{} }},
	{1, 50}:  {"SBR", func() Record { return &SBR{} }},
	{1, 60}:  {"PMR", func() Record { return &PMR{} }},
	{1, 62}:  {"PGR", func() Record { return &PGR{} }},
	{1, 63}:  {"PLR", func() Record { return &PLR{} }},
	{1, 70}:  {"RDR", func() Record { return &RDR{} }},
	{1, 80}:  {"SDR", func() Record { return &SDR{} }},
	{2, 10}:  {"WIR", func() Record { return &WIR{} }},
	{2, 20}:  {"WRR", func() Record { return &WRR{} }},
	{2, 30}:  {"WCR", func() Record { return &WCR{} }},
	{5, 10}:  {"PIR", func() Record { return &PIR{} }},
	{5, 20}:  {"PRR", func() Record { return &PRR{} }},
	{10, 30}: {"TSR", func() Record { return &TSR{} }},
	{15, 10}: {"PTR", func() Record { return &PTR{} }},
	{15, 15}: {"MPR", func() Record { return &MPR{} }},
	{15, 20}: {"FTR", func() Record { return &FTR{} }},
	{20, 10}: {"BPS", func() Record { return &BPS{} }},
	{20, 20}: {"EPS", func() Record { return &EPS{} }},
	{50, 10}: {"GDR", func() Record { return &GDR{} }},
	{50, 30}: {"DTR", func() Record { return &DTR{} }},
}

var nameToTypeSub = func() map[string][2]uint8 {
	m := make(map[string][2]uint8, len(catalogue))
	for ts, entry := range catalogue {
		m[entry.name] = ts
	}

	return m
}()

// Lookup is spec.md §4.3's name(type, sub) -> string: total over every
// (type, subtype) pair, returning the registered name or the literal "???"
// for an unrecognized pair. This is not an error condition — the caller
// decides whether to represent an unrecognized pair as Unknown.
func Lookup(typ, subtype uint8) string {
	entry, ok := catalogue[[2]uint8{typ, subtype}]
	if !ok {
		return "???"
	}

	return entry.name
}

// TypeSubtypeFor is spec.md §4.3's parse(name) -> (type, sub): total over
// every name, returning (0, 0) for a name that is not in the catalogue.
func TypeSubtypeFor(name string) (typ, subtype uint8) {
	ts, ok := nameToTypeSub[name]
	if !ok {
		return 0, 0
	}

	return ts[0], ts[1]
}

// Unknown represents a syntactically well-formed record (valid 4-byte
// header, payload present) whose (type, subtype) is not in the catalogue.
// Its raw payload is retained verbatim, zero-copy.
type Unknown struct {
	Type_    uint8
	Subtype_ uint8
	Payload  []byte
}

func (u *Unknown) RecordName() string   { return "UNKNOWN" }
func (u *Unknown) RecordType() uint8    { return u.Type_ }
func (u *Unknown) RecordSubtype() uint8 { return u.Subtype_ }

// Invalid represents a record whose header was parsed but whose payload
// could not be decoded per the catalogued shape: a mandatory field with no
// default was missing, or a field ended mid-read. The raw payload is kept
// for diagnostics.
type Invalid struct {
	Type_    uint8
	Subtype_ uint8
	Payload  []byte
	Err      error
}

func (i *Invalid) RecordName() string   { return "INVALID" }
func (i *Invalid) RecordType() uint8    { return i.Type_ }
func (i *Invalid) RecordSubtype() uint8 { return i.Subtype_ }

// DecodeAt decodes a single record payload of the given (type, subtype)
// using the endianness in eng. The returned Record is Unknown if the pair
// is not catalogued, or Invalid if catalogued but the payload could not be
// decoded per its declared shape.
func DecodeAt(typ, subtype uint8, payload []byte, eng endian.EndianEngine) Record {
	entry, ok := catalogue[[2]uint8{typ, subtype}]
	if !ok {
		return &Unknown{Type_: typ, Subtype_: subtype, Payload: payload}
	}

	rec := entry.newFunc()

	rv := reflect.ValueOf(rec).Elem()
	if err := recorddef.Decode(rv, payload, eng); err != nil {
		return &Invalid{Type_: typ, Subtype_: subtype, Payload: payload, Err: err}
	}

	return rec
}

// Encode appends rec's payload bytes (header excluded) to buf using the
// endianness in eng. rec must be one of the catalogued pointer types, not
// Unknown or Invalid — those have no declared shape to encode.
func Encode(rec Record, buf *xbuf.Buffer, eng endian.EndianEngine) {
	rv := reflect.ValueOf(rec).Elem()
	recorddef.Encode(rv, buf, eng)
}
