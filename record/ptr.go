package record

// PTR is the Parametric Test Record: one scalar measurement against one
// test number, for one part.
type PTR struct {
	TestNum uint32  `stdf:"u4"`
	HeadNum uint8   `stdf:"u1"`
	SiteNum uint8   `stdf:"u1"`
	TestFlg byte    `stdf:"b1"`
	ParmFlg byte    `stdf:"b1"`
	Result  float32 `stdf:"r4,default=nan"`
	TestTxt string  `stdf:"cn,default="`
	AlarmID string  `stdf:"cn,default="`
	OptFlag byte    `stdf:"b1,default=0"`
	ResScal int8    `stdf:"i1,default=0"`
	LlmScal int8    `stdf:"i1,default=0"`
	HlmScal int8    `stdf:"i1,default=0"`
	LoLimit float32 `stdf:"r4,default=0"`
	HiLimit float32 `stdf:"r4,default=0"`
	Units   string  `stdf:"cn,default="`
	CResfmt string  `stdf:"cn,default="`
	CLlmfmt string  `stdf:"cn,default="`
	CHlmfmt string  `stdf:"cn,default="`
	LoSpec  float32 `stdf:"r4,default=0"`
	HiSpec  float32 `stdf:"r4,default=0"`
}

func (r *PTR) RecordName() string   { return "PTR" }
func (r *PTR) RecordType() uint8    { return 15 }
func (r *PTR) RecordSubtype() uint8 { return 10 }
