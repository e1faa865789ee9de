package record

// MPR is the Multiple-Result Parametric Record: a vector measurement
// (e.g. one value per pin) against one test number, for one part.
type MPR struct {
	TestNum uint32    `stdf:"u4"`
	HeadNum uint8     `stdf:"u1"`
	SiteNum uint8     `stdf:"u1"`
	TestFlg byte      `stdf:"b1"`
	ParmFlg byte      `stdf:"b1"`
	RtnICnt uint16    `stdf:"u2"`
	RsltCnt uint16    `stdf:"u2"`
	RtnStat []uint8   `stdf:"n1array,lenfrom=RtnICnt"`
	RtnRslt []float32 `stdf:"r4array,lenfrom=RsltCnt"`
	TestTxt string    `stdf:"cn,default="`
	AlarmID string    `stdf:"cn,default="`
	OptFlag byte      `stdf:"b1,default=0"`
	ResScal int8      `stdf:"i1,default=0"`
	LlmScal int8      `stdf:"i1,default=0"`
	HlmScal int8      `stdf:"i1,default=0"`
	LoLimit float32   `stdf:"r4,default=0"`
	HiLimit float32   `stdf:"r4,default=0"`
	StartIn float32   `stdf:"r4,default=0"`
	IncrIn  float32   `stdf:"r4,default=0"`
	RtnIndx []uint16  `stdf:"u2array,lenfrom=RtnICnt,default=0"`
	Units   string    `stdf:"cn,default="`
	UnitsIn string    `stdf:"cn,default="`
	CResfmt string    `stdf:"cn,default="`
	CLlmfmt string    `stdf:"cn,default="`
	CHlmfmt string    `stdf:"cn,default="`
	LoSpec  float32   `stdf:"r4,default=0"`
	HiSpec  float32   `stdf:"r4,default=0"`
}

func (r *MPR) RecordName() string   { return "MPR" }
func (r *MPR) RecordType() uint8    { return 15 }
func (r *MPR) RecordSubtype() uint8 { return 15 }
