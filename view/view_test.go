package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/record"
	"github.com/nrht/stdf/view"
)

func TestRenderGenericRecord(t *testing.T) {
	rec := &record.FAR{CpuType: 2, StdfVer: 4}
	require.Equal(t, "FAR CpuType=2 StdfVer=4", view.Render(rec))
}

func TestRenderUnknown(t *testing.T) {
	rec := &record.Unknown{Type_: 99, Subtype_: 1, Payload: []byte{1, 2, 3}}
	require.Equal(t, "UNKNOWN(99,1) payload=3 bytes", view.Render(rec))
}

func TestRenderInvalid(t *testing.T) {
	rec := record.DecodeAt(5, 10, []byte{1}, endian.GetBigEndianEngine())
	out := view.Render(rec)
	require.Contains(t, out, "INVALID(5,10)")
}

func TestRenderPRRDescribesPartFlg(t *testing.T) {
	pass := &record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x00, PartID: "P1"}
	require.Contains(t, view.Render(pass), "PartFlg=0x00(PASS)")

	fail := &record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x08, PartID: "P1"}
	require.Contains(t, view.Render(fail), "PartFlg=0x08(FAIL)")

	unknown := &record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x10, PartID: "P1"}
	require.Contains(t, view.Render(unknown), "PartFlg=0x10(?)")

	abnormal := &record.PRR{HeadNum: 1, SiteNum: 1, PartFlg: 0x04, PartID: "P1"}
	require.Contains(t, view.Render(abnormal), "PartFlg=0x04(PASS, Abnormal end of testing)")
}

func TestRenderPRRMissingSentinelsAsGlyphs(t *testing.T) {
	rec := &record.PRR{
		HeadNum: 1,
		SiteNum: 1,
		PartFlg: 0x00,
		SoftBin: 65535,
		XCoord:  -32768,
		PartID:  "",
	}

	out := view.Render(rec)
	require.Contains(t, out, "SoftBin=∅")
	require.Contains(t, out, "XCoord=∅")
	require.Contains(t, out, "PartID=—")
}

func TestRenderMIRMissingBurnTimSentinel(t *testing.T) {
	rec := &record.MIR{BurnTim: 65535}
	require.Contains(t, view.Render(rec), "BurnTim=∅")
}
