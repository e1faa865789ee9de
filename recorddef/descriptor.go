package recorddef

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Kind identifies the wire shape of a declared field.
type Kind uint8

const (
	KindB1 Kind = iota
	KindC1
	KindU1
	KindI1
	KindN1
	KindU2
	KindU4
	KindU4E
	KindU8
	KindI2
	KindI4
	KindI8
	KindR4
	KindR8
	KindCn
	KindBn
	KindDn
	KindVn

	KindU1Array
	KindU2Array
	KindN1Array
	KindR4Array
	KindCnArray
	KindVnArray
)

// FieldDesc describes one declared field of a record struct.
type FieldDesc struct {
	Name          string
	Index         int
	Kind          Kind
	HasDefault    bool
	Default       any // scalar default, or per-element default for array kinds
	LenFieldName  string
	LenFieldIndex int // -1 when Kind is not an array kind
}

// Descriptor is the cached, per-type field table.
type Descriptor struct {
	Type   reflect.Type
	Fields []FieldDesc
}

var cache sync.Map // reflect.Type -> *Descriptor

// Describe returns the field descriptor table for t, building and caching
// it on first use. t must be a struct type (not a pointer).
func Describe(t reflect.Type) *Descriptor {
	if cached, ok := cache.Load(t); ok {
		return cached.(*Descriptor)
	}

	d := build(t)
	actual, _ := cache.LoadOrStore(t, d)

	return actual.(*Descriptor)
}

func build(t reflect.Type) *Descriptor {
	if t.Kind() != reflect.Struct {
		panic("recorddef: " + t.String() + " is not a struct")
	}

	d := &Descriptor{Type: t}

	nameToIndex := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		nameToIndex[t.Field(i).Name] = i
	}

	for i := range t.NumField() {
		sf := t.Field(i)

		tag, ok := sf.Tag.Lookup("stdf")
		if !ok {
			continue
		}

		fd := parseTag(sf.Name, i, tag)
		if fd.LenFieldName != "" {
			idx, ok := nameToIndex[fd.LenFieldName]
			if !ok {
				panic(fmt.Sprintf("recorddef: %s.%s: lenfrom field %q not found", t.Name(), sf.Name, fd.LenFieldName))
			}

			fd.LenFieldIndex = idx
		} else {
			fd.LenFieldIndex = -1
		}

		d.Fields = append(d.Fields, fd)
	}

	return d
}

func parseTag(name string, index int, tag string) FieldDesc {
	parts := strings.Split(tag, ",")
	fd := FieldDesc{Name: name, Index: index, Kind: parseKind(parts[0])}

	for _, p := range parts[1:] {
		switch {
		case p == "default=":
			fd.HasDefault = true
			fd.Default = defaultZeroValue(fd.Kind)
		case strings.HasPrefix(p, "default="):
			fd.HasDefault = true
			fd.Default = parseDefault(fd.Kind, strings.TrimPrefix(p, "default="))
		case strings.HasPrefix(p, "lenfrom="):
			fd.LenFieldName = strings.TrimPrefix(p, "lenfrom=")
		default:
			panic("recorddef: unrecognized tag option " + p)
		}
	}

	return fd
}

func parseKind(s string) Kind {
	switch s {
	case "b1":
		return KindB1
	case "c1":
		return KindC1
	case "u1":
		return KindU1
	case "i1":
		return KindI1
	case "n1":
		return KindN1
	case "u2":
		return KindU2
	case "u4":
		return KindU4
	case "u4e":
		return KindU4E
	case "u8":
		return KindU8
	case "i2":
		return KindI2
	case "i4":
		return KindI4
	case "i8":
		return KindI8
	case "r4":
		return KindR4
	case "r8":
		return KindR8
	case "cn":
		return KindCn
	case "bn":
		return KindBn
	case "dn":
		return KindDn
	case "vn":
		return KindVn
	case "u1array":
		return KindU1Array
	case "u2array":
		return KindU2Array
	case "n1array":
		return KindN1Array
	case "r4array":
		return KindR4Array
	case "cnarray":
		return KindCnArray
	case "vnarray":
		return KindVnArray
	default:
		panic("recorddef: unrecognized field kind " + s)
	}
}

func defaultZeroValue(k Kind) any {
	switch k {
	case KindCn:
		return ""
	case KindBn, KindDn:
		return []byte(nil)
	default:
		return nil
	}
}

func parseDefault(k Kind, lit string) any {
	switch k {
	case KindB1, KindU1, KindN1:
		n, err := strconv.ParseUint(lit, 10, 8)
		mustNoErr(err)

		return uint8(n)
	case KindC1:
		if len(lit) != 1 {
			panic("recorddef: c1 default must be a single character, got " + lit)
		}

		return lit[0]
	case KindI1:
		n, err := strconv.ParseInt(lit, 10, 8)
		mustNoErr(err)

		return int8(n)
	case KindU2:
		n, err := strconv.ParseUint(lit, 10, 16)
		mustNoErr(err)

		return uint16(n)
	case KindU4, KindU4E:
		n, err := strconv.ParseUint(lit, 10, 32)
		mustNoErr(err)

		return uint32(n)
	case KindU8:
		n, err := strconv.ParseUint(lit, 10, 64)
		mustNoErr(err)

		return n
	case KindI2:
		n, err := strconv.ParseInt(lit, 10, 16)
		mustNoErr(err)

		return int16(n)
	case KindI4:
		n, err := strconv.ParseInt(lit, 10, 32)
		mustNoErr(err)

		return int32(n)
	case KindI8:
		n, err := strconv.ParseInt(lit, 10, 64)
		mustNoErr(err)

		return n
	case KindR4:
		return float32(parseFloatLiteral(lit))
	case KindR8:
		return parseFloatLiteral(lit)
	case KindCn:
		return lit
	case KindU2Array:
		n, err := strconv.ParseUint(lit, 10, 16)
		mustNoErr(err)

		return uint16(n)
	case KindU1Array:
		n, err := strconv.ParseUint(lit, 10, 8)
		mustNoErr(err)

		return uint8(n)
	case KindCnArray:
		return lit
	default:
		panic("recorddef: default not supported for this kind")
	}
}

func parseFloatLiteral(lit string) float64 {
	if lit == "nan" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(lit, 64)
	mustNoErr(err)

	return f
}

func mustNoErr(err error) {
	if err != nil {
		panic("recorddef: " + err.Error())
	}
}
