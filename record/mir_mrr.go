package record

// MIR is the Master Information Record, one per file, describing the lot
// under test.
type MIR struct {
	SetupT   uint32 `stdf:"u4e"`
	StartT   uint32 `stdf:"u4e"`
	StatNum  uint8  `stdf:"u1"`
	ModeCod  byte   `stdf:"c1,default= "`
	RtstCod  byte   `stdf:"c1,default= "`
	ProtCod  byte   `stdf:"c1,default= "`
	BurnTim  uint16 `stdf:"u2,default=65535"`
	CmodCod  byte   `stdf:"c1,default= "`
	LotID    string `stdf:"cn"`
	PartTyp  string `stdf:"cn"`
	NodeNam  string `stdf:"cn"`
	TstrTyp  string `stdf:"cn"`
	JobNam   string `stdf:"cn"`
	JobRev   string `stdf:"cn,default="`
	SblotID  string `stdf:"cn,default="`
	OperNam  string `stdf:"cn,default="`
	ExecTyp  string `stdf:"cn,default="`
	ExecVer  string `stdf:"cn,default="`
	TestCod  string `stdf:"cn,default="`
	TstTemp  string `stdf:"cn,default="`
	UserTxt  string `stdf:"cn,default="`
	AuxFile  string `stdf:"cn,default="`
	PkgTyp   string `stdf:"cn,default="`
	FamlyID  string `stdf:"cn,default="`
	DateCod  string `stdf:"cn,default="`
	FacilID  string `stdf:"cn,default="`
	FloorID  string `stdf:"cn,default="`
	ProcID   string `stdf:"cn,default="`
	OperFrq  string `stdf:"cn,default="`
	SpecNam  string `stdf:"cn,default="`
	SpecVer  string `stdf:"cn,default="`
	FlowID   string `stdf:"cn,default="`
	SetupID  string `stdf:"cn,default="`
	DsgnRev  string `stdf:"cn,default="`
	EngID    string `stdf:"cn,default="`
	RomCod   string `stdf:"cn,default="`
	SerlNum  string `stdf:"cn,default="`
	SuprNam  string `stdf:"cn,default="`
}

func (r *MIR) RecordName() string   { return "MIR" }
func (r *MIR) RecordType() uint8    { return 1 }
func (r *MIR) RecordSubtype() uint8 { return 10 }

// MRR is the Master Results Record, one per file, marking the end of
// testing.
type MRR struct {
	FinishT uint32 `stdf:"u4e"`
	DispCod byte   `stdf:"c1,default= "`
	UsrDesc string `stdf:"cn,default="`
	ExcDesc string `stdf:"cn,default="`
}

func (r *MRR) RecordName() string   { return "MRR" }
func (r *MRR) RecordType() uint8    { return 1 }
func (r *MRR) RecordSubtype() uint8 { return 20 }
