package record

// FTR is the Functional Test Record: vector-pattern test results for one
// part.
type FTR struct {
	TestNum uint32   `stdf:"u4"`
	HeadNum uint8    `stdf:"u1"`
	SiteNum uint8    `stdf:"u1"`
	TestFlg byte     `stdf:"b1"`
	OptFlag byte     `stdf:"b1,default=0"`
	CyclCnt uint32   `stdf:"u4,default=0"`
	RelVadr uint32   `stdf:"u4,default=0"`
	ReptCnt uint32   `stdf:"u4,default=0"`
	NumFail uint32   `stdf:"u4,default=0"`
	XfailAd int32    `stdf:"i4,default=0"`
	YfailAd int32    `stdf:"i4,default=0"`
	VectOff int16    `stdf:"i2,default=0"`
	RtnICnt uint16   `stdf:"u2,default=0"`
	PgmICnt uint16   `stdf:"u2,default=0"`
	RtnIndx []uint16 `stdf:"u2array,lenfrom=RtnICnt"`
	RtnStat []uint8  `stdf:"n1array,lenfrom=RtnICnt"`
	PgmIndx []uint16 `stdf:"u2array,lenfrom=PgmICnt"`
	PgmStat []uint8  `stdf:"n1array,lenfrom=PgmICnt"`
	FailPin []byte   `stdf:"dn,default="`
	VectNam string   `stdf:"cn,default="`
	TimeSet string   `stdf:"cn,default="`
	OpCode  string   `stdf:"cn,default="`
	TestTxt string   `stdf:"cn,default="`
	AlarmID string   `stdf:"cn,default="`
	ProgTxt string   `stdf:"cn,default="`
	RsltTxt string   `stdf:"cn,default="`
	PatgNum uint8    `stdf:"u1,default=255"`
	SpinMap []byte   `stdf:"dn,default="`
}

func (r *FTR) RecordName() string   { return "FTR" }
func (r *FTR) RecordType() uint8    { return 15 }
func (r *FTR) RecordSubtype() uint8 { return 20 }
