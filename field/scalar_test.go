package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/internal/xbuf"
)

func TestReadWriteSingleByteTypes(t *testing.T) {
	v, n, err := ReadU1([]byte{0xa5}, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0xa5), v)
	require.Equal(t, 1, n)

	iv, _, err := ReadI1([]byte{0xff}, 0)
	require.NoError(t, err)
	require.Equal(t, int8(-1), iv)

	buf := xbuf.New(0)
	WriteU1(buf, 0x5a)
	require.Equal(t, []byte{0x5a}, buf.Bytes())
}

func TestReadMultiByteBothEndian(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}

	be, _, err := ReadU4(data, 0, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), be)

	le, _, err := ReadU4(data, 0, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(0xefbeadde), le)
}

func TestReadInsufficientBytes(t *testing.T) {
	_, _, err := ReadU4([]byte{0x01, 0x02}, 0, endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrInsufficientBytes)
}

func TestR4RoundTripNaN(t *testing.T) {
	nan := math.Float32frombits(0x7fc00000)

	buf := xbuf.New(0)
	WriteR4(buf, nan, endian.GetBigEndianEngine())

	got, _, err := ReadR4(buf.Bytes(), 0, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, math.Float32bits(nan), math.Float32bits(got), "NaN bit pattern must round-trip exactly")
}

func TestU2WriteReadRoundTrip(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	buf := xbuf.New(0)
	WriteU2(buf, 0xdead, eng)

	got, n, err := ReadU2(buf.Bytes(), 0, eng)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, uint16(0xdead), got)
}
