package record

// TSR is the Test Synopsis Record, summarizing execution counts for one
// test across the whole lot (or one site).
type TSR struct {
	HeadNum uint8   `stdf:"u1"`
	SiteNum uint8   `stdf:"u1"`
	TestTyp byte    `stdf:"c1,default= "`
	TestNum uint32  `stdf:"u4"`
	ExecCnt uint32  `stdf:"u4,default=4294967295"`
	FailCnt uint32  `stdf:"u4,default=4294967295"`
	AlrmCnt uint32  `stdf:"u4,default=4294967295"`
	TestNam string  `stdf:"cn,default="`
	SeqName string  `stdf:"cn,default="`
	TestLbl string  `stdf:"cn,default="`
	OptFlag byte    `stdf:"b1,default=0"`
	TestTim float32 `stdf:"r4,default=0"`
	TestMin float32 `stdf:"r4,default=0"`
	TestMax float32 `stdf:"r4,default=0"`
	TstSums float32 `stdf:"r4,default=0"`
	TstSqrs float32 `stdf:"r4,default=0"`
}

func (r *TSR) RecordName() string   { return "TSR" }
func (r *TSR) RecordType() uint8    { return 10 }
func (r *TSR) RecordSubtype() uint8 { return 30 }
