package record

// PIR is the Part Information Record, marking the start of testing for one
// part.
type PIR struct {
	HeadNum uint8 `stdf:"u1"`
	SiteNum uint8 `stdf:"u1"`
}

func (r *PIR) RecordName() string   { return "PIR" }
func (r *PIR) RecordType() uint8    { return 5 }
func (r *PIR) RecordSubtype() uint8 { return 10 }

// PRR is the Part Results Record, marking the end of testing for one part.
// PartFlg's bits decode into pass/fail status; see package tally.
type PRR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteNum uint8  `stdf:"u1"`
	PartFlg byte   `stdf:"b1"`
	NumTest uint16 `stdf:"u2"`
	HardBin uint16 `stdf:"u2"`
	SoftBin uint16 `stdf:"u2,default=65535"`
	XCoord  int16  `stdf:"i2,default=-32768"`
	YCoord  int16  `stdf:"i2,default=-32768"`
	TestT   uint32 `stdf:"u4,default=0"`
	PartID  string `stdf:"cn,default="`
	PartTxt string `stdf:"cn,default="`
	PartFix []byte `stdf:"bn,default="`
}

func (r *PRR) RecordName() string   { return "PRR" }
func (r *PRR) RecordType() uint8    { return 5 }
func (r *PRR) RecordSubtype() uint8 { return 20 }
