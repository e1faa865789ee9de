package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/internal/xbuf"
)

func TestN1ArrayEvenCount(t *testing.T) {
	// 4 nibbles packed low-first into 2 bytes: [0x5,0xA, 0x1,0x2]
	data := []byte{0xA5, 0x21}

	got, next, err := ReadN1Array(data, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 2, next)
	require.Equal(t, []uint8{0x5, 0xA, 0x1, 0x2}, got)
}

func TestN1ArrayOddCountUpperNibbleIgnored(t *testing.T) {
	// 3 nibbles: byte0 low=0x5 high=0xA, byte1 low=0x1 (high nibble unused)
	data := []byte{0xA5, 0x01}

	got, next, err := ReadN1Array(data, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 2, next)
	require.Equal(t, []uint8{0x5, 0xA, 0x1}, got)
}

func TestN1ArrayWriteOddCountZeroesUpperNibble(t *testing.T) {
	buf := xbuf.New(0)
	WriteN1Array(buf, []uint8{0x5, 0xA, 0x1})

	out := buf.Bytes()
	require.Equal(t, []byte{0xA5, 0x01}, out, "upper nibble of final byte must be zero for odd counts")
}

func TestN1ArrayRoundTripEven(t *testing.T) {
	values := []uint8{0x1, 0x2, 0x3, 0x4, 0x5, 0x6}

	buf := xbuf.New(0)
	WriteN1Array(buf, values)

	got, next, err := ReadN1Array(buf.Bytes(), 0, len(values))
	require.NoError(t, err)
	require.Equal(t, buf.Len(), next)
	require.Equal(t, values, got)
}
