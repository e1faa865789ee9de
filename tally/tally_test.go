package tally_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/errs"
	"github.com/nrht/stdf/index"
	"github.com/nrht/stdf/internal/xbuf"
	"github.com/nrht/stdf/record"
	"github.com/nrht/stdf/tally"
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

func TestRecordCounts(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng,
		&record.FAR{CpuType: 2, StdfVer: 4},
		&record.PIR{HeadNum: 1, SiteNum: 1},
		&record.PIR{HeadNum: 1, SiteNum: 2},
	)

	idx := index.Build(data, eng)
	counts := tally.RecordCounts(idx)

	require.Equal(t, 1, counts["FAR"])
	require.Equal(t, 2, counts["PIR"])
	require.Equal(t, 0, counts["PRR"])
}

func TestRecordCountsGroupsUncatalogedAsUnknown(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	buf := xbuf.New(0)
	buf.Append([]byte{0x00, 0x00, 99, 1})
	buf.Append([]byte{0x00, 0x00, 99, 2})

	idx := index.Build(buf.Bytes(), eng)
	counts := tally.RecordCounts(idx)

	require.Equal(t, 2, counts["UNKNOWN"])
}

func TestPartCountMatching(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng,
		&record.PIR{HeadNum: 1, SiteNum: 1},
		&record.PRR{HeadNum: 1, SiteNum: 1},
		&record.PIR{HeadNum: 1, SiteNum: 2},
		&record.PRR{HeadNum: 1, SiteNum: 2},
	)

	idx := index.Build(data, eng)

	n, err := tally.PartCount(idx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPartCountMissingRecords(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng, &record.FAR{CpuType: 2, StdfVer: 4})

	idx := index.Build(data, eng)

	_, err := tally.PartCount(idx)
	require.ErrorIs(t, err, errs.ErrMissingPartRecords)
}

func TestPartCountMismatch(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng,
		&record.PIR{HeadNum: 1, SiteNum: 1},
		&record.PIR{HeadNum: 1, SiteNum: 2},
		&record.PRR{HeadNum: 1, SiteNum: 1},
	)

	idx := index.Build(data, eng)

	_, err := tally.PartCount(idx)
	require.ErrorIs(t, err, errs.ErrMismatch)
}

// TestYieldPartFlgBits exercises spec.md §8's PART_FLG scenarios: bit 0x08
// is fail, bit 0x10 is unknown (excluded from both pass and fail), bit 0x04
// is an "abnormal end of testing" annotation that does not change
// classification, and neither 0x08 nor 0x10 set is pass.
func TestYieldPartFlgBits(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	data := buildFile(t, eng,
		&record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x00}, // pass
		&record.PRR{HeadNum: 1, SiteNum: 2, PartFlg: 0x08}, // fail
		&record.PRR{HeadNum: 1, SiteNum: 3, PartFlg: 0x10}, // unknown, excluded
		&record.PRR{HeadNum: 1, SiteNum: 4, PartFlg: 0x04}, // pass, abnormal end
	)

	idx := index.Build(data, eng)
	pass, fail := tally.Yield(idx, eng)

	require.Equal(t, 2, pass)
	require.Equal(t, 1, fail)
}
