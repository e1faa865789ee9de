package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/internal/xbuf"
)

func TestReadCnHelloThenEmpty(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0x00}

	v, next, err := ReadCn(data, 0)
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	empty, _, err := ReadCn(data, next)
	require.NoError(t, err)
	require.Equal(t, "", empty)
}

func TestWriteCnRoundTrip(t *testing.T) {
	buf := xbuf.New(0)
	WriteCn(buf, "hello")
	WriteCn(buf, "")

	require.Equal(t, []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0x00}, buf.Bytes())
}

func TestReadBn(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}

	v, next, err := ReadBn(data, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), v)
	require.Equal(t, len(data), next)
}

func TestDnReadRoundsBitLengthUpToBytes(t *testing.T) {
	// d_len = 13 bits -> ceil(13/8) = 2 bytes, matching data exactly.
	data := []byte{0x00, 0x0d, 0x68, 0x65}

	v, next, err := ReadDn(data, 0, endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, []byte{0x68, 0x65}, v)
	require.Equal(t, len(data), next)
}

func TestDnWriteClampsDeclaredBitLength(t *testing.T) {
	buf := xbuf.New(0)
	// Declaring 13 bits but only supplying 1 byte of payload: the encoder
	// must clamp the stored bit length down to 8*len(payload) = 8.
	WriteDn(buf, 13, []byte{0xa5}, endian.GetBigEndianEngine())

	out := buf.Bytes()
	require.Equal(t, []byte{0x00, 0x08, 0xa5}, out)
}

func TestDnRoundTripFullBytes(t *testing.T) {
	eng := endian.GetBigEndianEngine()
	buf := xbuf.New(0)
	payload := []byte{0x68, 0x65}
	WriteDn(buf, 16, payload, eng)

	v, _, err := ReadDn(buf.Bytes(), 0, eng)
	require.NoError(t, err)
	require.Equal(t, payload, v)
}
