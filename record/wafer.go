package record

// WIR is the Wafer Information Record, marking the start of testing for one
// wafer.
type WIR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteGrp uint8  `stdf:"u1,default=255"`
	StartT  uint32 `stdf:"u4e"`
	WaferID string `stdf:"cn,default="`
}

func (r *WIR) RecordName() string   { return "WIR" }
func (r *WIR) RecordType() uint8    { return 2 }
func (r *WIR) RecordSubtype() uint8 { return 10 }

// WRR is the Wafer Results Record, marking the end of testing for one
// wafer.
type WRR struct {
	HeadNum uint8  `stdf:"u1"`
	SiteGrp uint8  `stdf:"u1,default=255"`
	FinishT uint32 `stdf:"u4e"`
	PartCnt uint32 `stdf:"u4"`
	RtstCnt uint32 `stdf:"u4,default=4294967295"`
	AbrtCnt uint32 `stdf:"u4,default=4294967295"`
	GoodCnt uint32 `stdf:"u4,default=4294967295"`
	FuncCnt uint32 `stdf:"u4,default=4294967295"`
	WaferID string `stdf:"cn,default="`
	FabwfID string `stdf:"cn,default="`
	FrameID string `stdf:"cn,default="`
	MaskID  string `stdf:"cn,default="`
	UsrDesc string `stdf:"cn,default="`
	ExcDesc string `stdf:"cn,default="`
}

func (r *WRR) RecordName() string   { return "WRR" }
func (r *WRR) RecordType() uint8    { return 2 }
func (r *WRR) RecordSubtype() uint8 { return 20 }

// WCR is the Wafer Configuration Record, describing wafer geometry shared
// by all wafers in the lot.
type WCR struct {
	WafrSiz float32 `stdf:"r4,default=0"`
	DieHt   float32 `stdf:"r4,default=0"`
	DieWid  float32 `stdf:"r4,default=0"`
	WfUnits uint8   `stdf:"u1,default=0"`
	WfFlat  byte    `stdf:"c1,default= "`
	CenterX int16   `stdf:"i2,default=-32768"`
	CenterY int16   `stdf:"i2,default=-32768"`
	PosX    byte    `stdf:"c1,default= "`
	PosY    byte    `stdf:"c1,default= "`
}

func (r *WCR) RecordName() string   { return "WCR" }
func (r *WCR) RecordType() uint8    { return 2 }
func (r *WCR) RecordSubtype() uint8 { return 30 }
