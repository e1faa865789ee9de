package index_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/index"
	"github.com/nrht/stdf/internal/xbuf"
	"github.com/nrht/stdf/record"
)

func buildFile(t *testing.T, eng endian.EndianEngine, recs ...record.Record) []byte {
	t.Helper()

	buf := xbuf.New(0)
	for _, rec := range recs {
		payload := xbuf.New(0)
		record.Encode(rec, payload, eng)

		buf.Append([]byte{byte(payload.Len()), byte(payload.Len() >> 8), rec.RecordType(), rec.RecordSubtype()})
		buf.Append(payload.Bytes())
	}

	return buf.Bytes()
}

func TestBuildGroupsByTypeSubtype(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng,
		&record.FAR{CpuType: 2, StdfVer: 4},
		&record.PIR{HeadNum: 1, SiteNum: 1},
		&record.PIR{HeadNum: 1, SiteNum: 2},
	)

	idx := index.Build(data, eng)

	require.Len(t, idx.All, 3)
	require.Equal(t, 1, idx.Count(0, 10))
	require.Equal(t, 2, idx.Count(5, 10))
	require.Equal(t, 0, idx.Count(99, 99))

	entries := idx.Entries(5, 10)
	require.Len(t, entries, 2)
	require.Equal(t, 6, entries[0].Offset)
	require.Less(t, entries[0].Offset, entries[1].Offset)
}

func TestEntriesNilForAbsentPair(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng, &record.FAR{CpuType: 2, StdfVer: 4})

	idx := index.Build(data, eng)
	require.Nil(t, idx.Entries(1, 10))
}

func TestBuildStopsCleanlyOnTruncatedTail(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng, &record.FAR{CpuType: 2, StdfVer: 4})
	data = append(data, 0x00, 0x01)

	idx := index.Build(data, eng)

	require.Len(t, idx.All, 1)
	require.Equal(t, 1, idx.Count(0, 10))
}
