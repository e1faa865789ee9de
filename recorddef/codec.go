package recorddef

import (
	"reflect"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/field"
	"github.com/nrht/stdf/internal/xbuf"
)

// Decode fills rv (the addressable Elem of a record struct pointer) from
// data using rv's cached Descriptor. Fields are read in declaration order.
// When data runs out exactly at a field boundary, that field and every
// field after it take their declared default; a field with no default in
// that position, or a read that fails mid-field, yields
// errs.ErrMalformedRecord — the record package turns that into an Invalid
// record rather than propagating the error further.
func Decode(rv reflect.Value, data []byte, eng endian.EndianEngine) error {
	d := Describe(rv.Type())

	offset := 0
	for _, fd := range d.Fields {
		if offset >= len(data) {
			if !fd.HasDefault {
				return errs.ErrMalformedRecord
			}

			applyDefault(rv, fd)

			continue
		}

		next, err := decodeField(rv, fd, data, offset, eng)
		if err != nil {
			return errs.ErrMalformedRecord
		}

		offset = next
	}

	return nil
}

// Encode appends every declared field of rv to buf in declaration order.
// Unlike Decode, Encode never consults defaults: it writes whatever value
// is currently held in the struct, which the caller is responsible for
// having set (directly, or via a prior Decode).
func Encode(rv reflect.Value, buf *xbuf.Buffer, eng endian.EndianEngine) {
	d := Describe(rv.Type())

	for _, fd := range d.Fields {
		encodeField(rv, fd, buf, eng)
	}
}

func decodeField(rv reflect.Value, fd FieldDesc, data []byte, offset int, eng endian.EndianEngine) (int, error) {
	fv := rv.Field(fd.Index)

	switch fd.Kind {
	case KindB1:
		v, n, err := field.ReadB1(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindC1:
		v, n, err := field.ReadC1(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindU1:
		v, n, err := field.ReadU1(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindN1:
		v, n, err := field.ReadN1(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindI1:
		v, n, err := field.ReadI1(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetInt(int64(v))

		return n, nil
	case KindU2:
		v, n, err := field.ReadU2(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindU4, KindU4E:
		v, n, err := field.ReadU4(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetUint(uint64(v))

		return n, nil
	case KindU8:
		v, n, err := field.ReadU8(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetUint(v)

		return n, nil
	case KindI2:
		v, n, err := field.ReadI2(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetInt(int64(v))

		return n, nil
	case KindI4:
		v, n, err := field.ReadI4(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetInt(int64(v))

		return n, nil
	case KindI8:
		v, n, err := field.ReadI8(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetInt(v)

		return n, nil
	case KindR4:
		v, n, err := field.ReadR4(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetFloat(float64(v))

		return n, nil
	case KindR8:
		v, n, err := field.ReadR8(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetFloat(v)

		return n, nil
	case KindCn:
		v, n, err := field.ReadCn(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetString(v)

		return n, nil
	case KindBn:
		v, n, err := field.ReadBn(data, offset)
		if err != nil {
			return offset, err
		}

		fv.SetBytes(v)

		return n, nil
	case KindDn:
		v, n, err := field.ReadDn(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.SetBytes(v)

		return n, nil
	case KindVn:
		v, n, err := field.ReadVn(data, offset, eng)
		if err != nil {
			return offset, err
		}

		fv.Set(reflect.ValueOf(v))

		return n, nil
	case KindU1Array, KindN1Array, KindU2Array, KindR4Array, KindCnArray, KindVnArray:
		count := int(lenFieldValue(rv, fd))
		return decodeArray(fv, fd.Kind, data, offset, eng, count)
	default:
		panic("recorddef: unhandled kind in decodeField")
	}
}

func decodeArray(fv reflect.Value, kind Kind, data []byte, offset int, eng endian.EndianEngine, count int) (int, error) {
	switch kind {
	case KindU1Array:
		out := make([]uint8, count)

		for i := range out {
			v, n, err := field.ReadU1(data, offset)
			if err != nil {
				return offset, err
			}

			out[i] = v
			offset = n
		}

		fv.Set(reflect.ValueOf(out))

		return offset, nil
	case KindN1Array:
		out, n, err := field.ReadN1Array(data, offset, count)
		if err != nil {
			return offset, err
		}

		fv.Set(reflect.ValueOf(out))

		return n, nil
	case KindU2Array:
		out := make([]uint16, count)

		for i := range out {
			v, n, err := field.ReadU2(data, offset, eng)
			if err != nil {
				return offset, err
			}

			out[i] = v
			offset = n
		}

		fv.Set(reflect.ValueOf(out))

		return offset, nil
	case KindR4Array:
		out := make([]float32, count)

		for i := range out {
			v, n, err := field.ReadR4(data, offset, eng)
			if err != nil {
				return offset, err
			}

			out[i] = v
			offset = n
		}

		fv.Set(reflect.ValueOf(out))

		return offset, nil
	case KindCnArray:
		out := make([]string, count)

		for i := range out {
			v, n, err := field.ReadCn(data, offset)
			if err != nil {
				return offset, err
			}

			out[i] = v
			offset = n
		}

		fv.Set(reflect.ValueOf(out))

		return offset, nil
	case KindVnArray:
		out := make([]field.Vn, count)

		for i := range out {
			v, n, err := field.ReadVn(data, offset, eng)
			if err != nil {
				return offset, err
			}

			out[i] = v
			offset = n
		}

		fv.Set(reflect.ValueOf(out))

		return offset, nil
	default:
		panic("recorddef: unhandled array kind in decodeArray")
	}
}

func encodeField(rv reflect.Value, fd FieldDesc, buf *xbuf.Buffer, eng endian.EndianEngine) {
	fv := rv.Field(fd.Index)

	switch fd.Kind {
	case KindB1:
		field.WriteB1(buf, byte(fv.Uint()))
	case KindC1:
		field.WriteC1(buf, byte(fv.Uint()))
	case KindU1:
		field.WriteU1(buf, uint8(fv.Uint()))
	case KindN1:
		field.WriteN1(buf, uint8(fv.Uint()))
	case KindI1:
		field.WriteI1(buf, int8(fv.Int()))
	case KindU2:
		field.WriteU2(buf, uint16(fv.Uint()), eng)
	case KindU4, KindU4E:
		field.WriteU4(buf, uint32(fv.Uint()), eng)
	case KindU8:
		field.WriteU8(buf, fv.Uint(), eng)
	case KindI2:
		field.WriteI2(buf, int16(fv.Int()), eng)
	case KindI4:
		field.WriteI4(buf, int32(fv.Int()), eng)
	case KindI8:
		field.WriteI8(buf, fv.Int(), eng)
	case KindR4:
		field.WriteR4(buf, float32(fv.Float()), eng)
	case KindR8:
		field.WriteR8(buf, fv.Float(), eng)
	case KindCn:
		field.WriteCn(buf, fv.String())
	case KindBn:
		field.WriteBn(buf, fv.Bytes())
	case KindDn:
		b := fv.Bytes()
		field.WriteDn(buf, len(b)*8, b, eng)
	case KindVn:
		field.WriteVn(buf, fv.Interface().(field.Vn), eng)
	case KindU1Array:
		out := fv.Interface().([]uint8)
		for _, v := range out {
			field.WriteU1(buf, v)
		}
	case KindN1Array:
		field.WriteN1Array(buf, fv.Interface().([]uint8))
	case KindU2Array:
		out := fv.Interface().([]uint16)
		for _, v := range out {
			field.WriteU2(buf, v, eng)
		}
	case KindR4Array:
		out := fv.Interface().([]float32)
		for _, v := range out {
			field.WriteR4(buf, v, eng)
		}
	case KindCnArray:
		out := fv.Interface().([]string)
		for _, v := range out {
			field.WriteCn(buf, v)
		}
	case KindVnArray:
		out := fv.Interface().([]field.Vn)
		for _, v := range out {
			field.WriteVn(buf, v, eng)
		}
	default:
		panic("recorddef: unhandled kind in encodeField")
	}
}

// lenFieldValue reads the already-decoded element-count field that governs
// an array field, as an unsigned integer regardless of its concrete Go kind
// (uint8 or uint16 in practice).
func lenFieldValue(rv reflect.Value, fd FieldDesc) uint64 {
	return rv.Field(fd.LenFieldIndex).Uint()
}

// applyDefault sets fv to its declared default when the payload ended
// before the field began. Array fields take count copies of the per-element
// default, where count is the value of the already-decoded length field:
// the length field's value governs the array's shape even when the array's
// own bytes were never present.
func applyDefault(rv reflect.Value, fd FieldDesc) {
	fv := rv.Field(fd.Index)

	switch fd.Kind {
	case KindU1Array, KindN1Array:
		count := int(lenFieldValue(rv, fd))
		elem := uint8(0)

		if fd.Default != nil {
			elem = fd.Default.(uint8)
		}

		out := make([]uint8, count)
		for i := range out {
			out[i] = elem
		}

		fv.Set(reflect.ValueOf(out))
	case KindU2Array:
		count := int(lenFieldValue(rv, fd))
		elem := uint16(0)

		if fd.Default != nil {
			elem = fd.Default.(uint16)
		}

		out := make([]uint16, count)
		for i := range out {
			out[i] = elem
		}

		fv.Set(reflect.ValueOf(out))
	case KindR4Array:
		count := int(lenFieldValue(rv, fd))

		out := make([]float32, count)
		fv.Set(reflect.ValueOf(out))
	case KindCnArray:
		count := int(lenFieldValue(rv, fd))
		elem := ""

		if fd.Default != nil {
			elem = fd.Default.(string)
		}

		out := make([]string, count)
		for i := range out {
			out[i] = elem
		}

		fv.Set(reflect.ValueOf(out))
	case KindVnArray:
		count := int(lenFieldValue(rv, fd))
		fv.Set(reflect.ValueOf(make([]field.Vn, count)))
	case KindCn:
		s := ""
		if fd.Default != nil {
			s = fd.Default.(string)
		}

		fv.SetString(s)
	case KindBn, KindDn:
		fv.Set(reflect.Zero(fv.Type()))
	case KindVn:
		fv.Set(reflect.Zero(fv.Type()))
	case KindB1, KindC1, KindU1, KindN1:
		if fd.Default != nil {
			fv.SetUint(uint64(fd.Default.(uint8)))
		}
	case KindI1:
		if fd.Default != nil {
			fv.SetInt(int64(fd.Default.(int8)))
		}
	case KindU2:
		if fd.Default != nil {
			fv.SetUint(uint64(fd.Default.(uint16)))
		}
	case KindU4, KindU4E:
		if fd.Default != nil {
			fv.SetUint(uint64(fd.Default.(uint32)))
		}
	case KindU8:
		if fd.Default != nil {
			fv.SetUint(fd.Default.(uint64))
		}
	case KindI2:
		if fd.Default != nil {
			fv.SetInt(int64(fd.Default.(int16)))
		}
	case KindI4:
		if fd.Default != nil {
			fv.SetInt(int64(fd.Default.(int32)))
		}
	case KindI8:
		if fd.Default != nil {
			fv.SetInt(fd.Default.(int64))
		}
	case KindR4:
		if fd.Default != nil {
			fv.SetFloat(float64(fd.Default.(float32)))
		}
	case KindR8:
		if fd.Default != nil {
			fv.SetFloat(fd.Default.(float64))
		}
	default:
		panic("recorddef: unhandled kind in applyDefault")
	}
}
