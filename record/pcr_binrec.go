package record

// PCR is the Part Count Record, summarizing part counts for one test site
// (or the whole lot, when HEAD_NUM/SITE_NUM are both 255).
type PCR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteNum uint8  `stdf:"u1"`
	PartCnt uint32 `stdf:"u4"`
	RtstCnt uint32 `stdf:"u4,default=4294967295"`
	AbrtCnt uint32 `stdf:"u4,default=4294967295"`
	GoodCnt uint32 `stdf:"u4,default=4294967295"`
	FuncCnt uint32 `stdf:"u4,default=4294967295"`
}

func (r *PCR) RecordName() string   { return "PCR" }
func (r *PCR) RecordType() uint8    { return 1 }
func (r *PCR) RecordSubtype() uint8 { return 30 }

// HBR is the Hardware Bin Record: one per hardware bin actually used.
type HBR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteNum uint8  `stdf:"u1"`
	HbinNum uint16 `stdf:"u2"`
	HbinCnt uint32 `stdf:"u4"`
	HbinPf  byte   `stdf:"c1,default= "`
	HbinNam string `stdf:"cn,default="`
}

func (r *HBR) RecordName() string   { return "HBR" }
func (r *HBR) RecordType() uint8    { return 1 }
func (r *HBR) RecordSubtype() uint8 { return 40 }

// SBR is the Software Bin Record: the HBR shape, for software bins.
type SBR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteNum uint8  `stdf:"u1"`
	SbinNum uint16 `stdf:"u2"`
	SbinCnt uint32 `stdf:"u4"`
	SbinPf  byte   `stdf:"c1,default= "`
	SbinNam string `stdf:"cn,default="`
}

func (r *SBR) RecordName() string   { return "SBR" }
func (r *SBR) RecordType() uint8    { return 1 }
func (r *SBR) RecordSubtype() uint8 { return 50 }
