package recorddef

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/field"
	"github.com/nrht/stdf/internal/xbuf"
)

// sample mirrors the shape of a typical STDF record: a mix of mandatory
// scalars, scalars with defaults, and a length-bound array whose elements
// carry their own default.
type sample struct {
	HeadNum uint8   `stdf:"u1"`
	SiteNum uint8   `stdf:"u1"`
	ModeCod byte    `stdf:"c1,default= "`
	BurnTim uint16  `stdf:"u2,default=65535"`
	Result  float32 `stdf:"r4,default=nan"`
	GrpCnt  uint16  `stdf:"u2"`
	GrpIndx []uint16 `stdf:"u2array,lenfrom=GrpCnt"`
	GrpMode []uint16 `stdf:"u2array,lenfrom=GrpCnt,default=0"`
	LotID   string  `stdf:"cn,default="`
	Comment string  `stdf:"cn,default="`
}

func encodeSample(t *testing.T, v sample) []byte {
	t.Helper()

	buf := xbuf.New(0)
	Encode(reflect.ValueOf(&v).Elem(), buf, endian.GetBigEndianEngine())

	return buf.Bytes()
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	in := sample{
		HeadNum: 1,
		SiteNum: 3,
		ModeCod: 'P',
		BurnTim: 100,
		Result:  1.5,
		GrpCnt:  2,
		GrpIndx: []uint16{10, 20},
		GrpMode: []uint16{1, 2},
		LotID:   "LOT7",
		Comment: "hi",
	}

	data := encodeSample(t, in)

	var out sample
	err := Decode(reflect.ValueOf(&out).Elem(), data, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeAppliesTrailingDefaults(t *testing.T) {
	// Truncate right after GrpCnt: GrpIndx is mandatory (no default) so it
	// would normally fail, but here we also supply enough bytes for it and
	// cut only after that, leaving everything from LotID onward to default.
	full := encodeSample(t, sample{
		HeadNum: 9,
		SiteNum: 9,
		ModeCod: 'X',
		BurnTim: 1,
		Result:  2,
		GrpCnt:  1,
		GrpIndx: []uint16{7},
		GrpMode: []uint16{0},
		LotID:   "ignored",
		Comment: "ignored",
	})

	// Compute the byte offset where GrpMode ends: HeadNum(1)+SiteNum(1)+
	// ModeCod(1)+BurnTim(2)+Result(4)+GrpCnt(2)+GrpIndx(2)+GrpMode(2) = 15.
	truncated := full[:15]

	var out sample
	err := Decode(reflect.ValueOf(&out).Elem(), truncated, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint8(9), out.HeadNum)
	require.Equal(t, []uint16{7}, out.GrpIndx)
	require.Equal(t, []uint16{0}, out.GrpMode)
	require.Equal(t, "", out.LotID)
	require.Equal(t, "", out.Comment)
}

func TestDecodeMissingMandatoryFieldIsMalformed(t *testing.T) {
	full := encodeSample(t, sample{GrpCnt: 1, GrpIndx: []uint16{7}, GrpMode: []uint16{0}})
	// Offsets: HeadNum(1)+SiteNum(1)+ModeCod(1)+BurnTim(2)+Result(4)+GrpCnt(2)
	// = 11. Cutting there lands exactly before GrpIndx, which has no
	// default, so decoding must report the record as malformed.
	truncated := full[:11]

	var out sample
	err := Decode(reflect.ValueOf(&out).Elem(), truncated, endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrMalformedRecord)
}

func TestDecodeMidFieldTruncationIsMalformed(t *testing.T) {
	full := encodeSample(t, sample{GrpCnt: 1, GrpIndx: []uint16{7}, GrpMode: []uint16{0}})
	// Result occupies bytes 5..9; cutting at 7 leaves it half-present, which
	// must be malformed even though Result declares a default, because the
	// payload ended inside the field rather than before it.
	truncated := full[:7]

	var out sample
	err := Decode(reflect.ValueOf(&out).Elem(), truncated, endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrMalformedRecord)
}

func TestVnFieldRoundTrip(t *testing.T) {
	type withVn struct {
		Tag field.Vn `stdf:"vn"`
	}

	v := withVn{Tag: field.Vn{Kind: field.VnU2, U2: 42}}

	buf := xbuf.New(0)
	Encode(reflect.ValueOf(&v).Elem(), buf, endian.GetBigEndianEngine())

	var out withVn
	err := Decode(reflect.ValueOf(&out).Elem(), buf.Bytes(), endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, v, out)
}
