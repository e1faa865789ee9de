package record

// FAR is the File Attributes Record, always the first record in a file. Its
// header's length field (2) is what stdfio uses to detect the file's byte
// order.
type FAR struct {
	CpuType uint8 `stdf:"u1"`
	StdfVer uint8 `stdf:"u1"`
}

func (r *FAR) RecordName() string   { return "FAR" }
func (r *FAR) RecordType() uint8    { return 0 }
func (r *FAR) RecordSubtype() uint8 { return 10 }

// ATR is the Audit Trail Record, one per data-transformation step applied
// to the file after generation.
type ATR struct {
	ModTim  uint32 `stdf:"u4e,default=0"`
	CmdLine string `stdf:"cn,default="`
}

func (r *ATR) RecordName() string   { return "ATR" }
func (r *ATR) RecordType() uint8    { return 0 }
func (r *ATR) RecordSubtype() uint8 { return 20 }
