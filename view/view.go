// Package view renders decoded records as deterministic, human-readable
// text. There is no round-trip obligation: this is a display format, not a
// wire format, and is stable only within a release.
package view

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/nrht/stdf/field"
	"github.com/nrht/stdf/record"
	"github.com/nrht/stdf/recorddef"
)

const (
	// GlyphMissingNumeric replaces a sentinel "missing" numeric value
	// (I2::MIN, U4::MAX) in rendered output.
	GlyphMissingNumeric = "∅" // ∅
	// GlyphMissingText replaces an empty Cn/Bn/Dn value in rendered output.
	GlyphMissingText = "—" // —

	partFlgFail     = 0x08
	partFlgUnknown  = 0x10
	partFlgAbnormal = 0x04
)

// Render renders any catalogued record, or Unknown/Invalid, as one line of
// "NAME field=value ..." text.
func Render(rec record.Record) string {
	switch r := rec.(type) {
	case *record.Unknown:
		return fmt.Sprintf("UNKNOWN(%d,%d) payload=%d bytes", r.RecordType(), r.RecordSubtype(), len(r.Payload))
	case *record.Invalid:
		return fmt.Sprintf("INVALID(%d,%d) %s payload=%d bytes", r.RecordType(), r.RecordSubtype(), r.Err, len(r.Payload))
	case *record.PRR:
		return renderPRR(r)
	default:
		return renderGeneric(rec)
	}
}

func renderGeneric(rec record.Record) string {
	rv := reflect.ValueOf(rec).Elem()
	d := recorddef.Describe(rv.Type())

	var sb strings.Builder

	sb.WriteString(rec.RecordName())

	for _, fd := range d.Fields {
		sb.WriteByte(' ')
		sb.WriteString(fd.Name)
		sb.WriteByte('=')
		sb.WriteString(renderValue(rv.Field(fd.Index)))
	}

	return sb.String()
}

func renderPRR(r *record.PRR) string {
	rv := reflect.ValueOf(r).Elem()
	d := recorddef.Describe(rv.Type())

	var sb strings.Builder

	sb.WriteString("PRR")

	for _, fd := range d.Fields {
		sb.WriteByte(' ')
		sb.WriteString(fd.Name)
		sb.WriteByte('=')

		if fd.Name == "PartFlg" {
			sb.WriteString(fmt.Sprintf("0x%02x(%s)", r.PartFlg, describePartFlg(r.PartFlg)))
			continue
		}

		sb.WriteString(renderValue(rv.Field(fd.Index)))
	}

	return sb.String()
}

// describePartFlg decodes PART_FLG into PASS/FAIL/? plus an "Abnormal end
// of testing" note when bit 0x04 is set, per the PRR bitfield contract.
func describePartFlg(flg byte) string {
	var status string

	switch {
	case flg&partFlgUnknown != 0:
		status = "?"
	case flg&partFlgFail != 0:
		status = "FAIL"
	default:
		status = "PASS"
	}

	if flg&partFlgAbnormal != 0 {
		status += ", Abnormal end of testing"
	}

	return status
}

func renderValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return GlyphMissingText
		}

		return v.String()
	case reflect.Int16:
		if v.Int() == math.MinInt16 {
			return GlyphMissingNumeric
		}

		return fmt.Sprintf("%d", v.Int())
	case reflect.Uint16:
		if v.Uint() == math.MaxUint16 {
			return GlyphMissingNumeric
		}

		return fmt.Sprintf("%d", v.Uint())
	case reflect.Uint32:
		if v.Uint() == math.MaxUint32 {
			return GlyphMissingNumeric
		}

		return fmt.Sprintf("%d", v.Uint())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			if v.Len() == 0 {
				return GlyphMissingText
			}

			return fmt.Sprintf("%x", v.Bytes())
		}

		return renderSlice(v)
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return GlyphMissingNumeric
		}

		return fmt.Sprintf("%g", f)
	case reflect.Struct:
		if vn, ok := v.Interface().(field.Vn); ok {
			return renderVn(vn)
		}

		return fmt.Sprintf("%v", v.Interface())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func renderSlice(v reflect.Value) string {
	if v.Len() == 0 {
		return "[]"
	}

	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = renderValue(v.Index(i))
	}

	return "[" + strings.Join(parts, ",") + "]"
}

func renderVn(v field.Vn) string {
	switch v.Kind {
	case field.VnPad:
		return "pad"
	case field.VnU1, field.VnN1:
		return fmt.Sprintf("%d", v.U1)
	case field.VnU2:
		return fmt.Sprintf("%d", v.U2)
	case field.VnU4:
		return fmt.Sprintf("%d", v.U4)
	case field.VnI1:
		return fmt.Sprintf("%d", v.I1)
	case field.VnI2:
		return fmt.Sprintf("%d", v.I2)
	case field.VnI4:
		return fmt.Sprintf("%d", v.I4)
	case field.VnR4:
		return fmt.Sprintf("%g", v.R4)
	case field.VnR8:
		return fmt.Sprintf("%g", v.R8)
	case field.VnCn:
		if v.Cn == "" {
			return GlyphMissingText
		}

		return v.Cn
	case field.VnBn, field.VnDn:
		if len(v.Bn) == 0 && len(v.Dn) == 0 {
			return GlyphMissingText
		}

		return fmt.Sprintf("%x", append(v.Bn, v.Dn...))
	default:
		return "?"
	}
}
