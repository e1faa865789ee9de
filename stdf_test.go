package stdf_test

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf"
	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/internal/xbuf"
	"github.com/nrht/stdf/record"
)

func buildLittleEndianFile(t *testing.T) []byte {
	t.Helper()

	eng := endian.GetLittleEndianEngine()
	buf := xbuf.New(0)

	writeRecord := func(rec record.Record) {
		payload := xbuf.New(0)
		record.Encode(rec, payload, eng)

		header := xbuf.New(0)
		header.Append([]byte{byte(payload.Len()), byte(payload.Len() >> 8), rec.RecordType(), rec.RecordSubtype()})
		header.Append(payload.Bytes())
		buf.Append(header.Bytes())
	}

	writeRecord(&record.FAR{CpuType: 2, StdfVer: 4})
	writeRecord(&record.PIR{HeadNum: 1, SiteNum: 1})
	writeRecord(&record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x00, NumTest: 10, HardBin: 1, SoftBin: 1, XCoord: -1, YCoord: -1, TestT: 5, PartID: "P1"})
	writeRecord(&record.PIR{HeadNum: 1, SiteNum: 2})
	writeRecord(&record.PRR{HeadNum: 1, SiteNum: 2, PartFlg: 0x08, NumTest: 10, HardBin: 2, SoftBin: 2, XCoord: -1, YCoord: -1, TestT: 5, PartID: "P2"})

	return buf.Bytes()
}

func TestOpenDetectsEndianAndDecodesRecords(t *testing.T) {
	data := buildLittleEndianFile(t)

	f, err := stdf.Open(data)
	require.NoError(t, err)

	var names []string
	for rec := range f.Records() {
		names = append(names, rec.RecordName())
	}

	require.Equal(t, []string{"FAR", "PIR", "PRR", "PIR", "PRR"}, names)
}

func TestFileTallyAPIs(t *testing.T) {
	data := buildLittleEndianFile(t)

	f, err := stdf.Open(data, stdf.WithDiagnostics(log.DebugLevel))
	require.NoError(t, err)

	counts := f.RecordCounts()
	require.Equal(t, 1, counts["FAR"])
	require.Equal(t, 2, counts["PIR"])
	require.Equal(t, 2, counts["PRR"])

	n, err := f.PartCount()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	pass, fail := f.Yield()
	require.Equal(t, 1, pass)
	require.Equal(t, 1, fail)
}

func TestOpenRejectsNonSTDF(t *testing.T) {
	_, err := stdf.Open([]byte{0x00, 0x02, 0xAA, 0x55})
	require.Error(t, err)
}
