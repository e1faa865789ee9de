package record

// PMR is the Pin Map Record, associating a physical/logical channel with a
// test-system pin index.
type PMR struct {
	PmrIndx uint16 `stdf:"u2"`
	ChanTyp uint16 `stdf:"u2,default=0"`
	ChanNam string `stdf:"cn,default="`
	PhyNam  string `stdf:"cn,default="`
	LogNam  string `stdf:"cn,default="`
	HeadNum uint8  `stdf:"u1,default=1"`
	SiteNum uint8  `stdf:"u1,default=1"`
}

func (r *PMR) RecordName() string   { return "PMR" }
func (r *PMR) RecordType() uint8    { return 1 }
func (r *PMR) RecordSubtype() uint8 { return 60 }

// PGR is the Pin Group Record, naming a group of PMR indexes.
type PGR struct {
	GrpIndx uint16   `stdf:"u2"`
	GrpNam  string   `stdf:"cn,default="`
	IndxCnt uint16   `stdf:"u2"`
	PmrIndx []uint16 `stdf:"u2array,lenfrom=IndxCnt"`
}

func (r *PGR) RecordName() string   { return "PGR" }
func (r *PGR) RecordType() uint8    { return 1 }
func (r *PGR) RecordSubtype() uint8 { return 62 }

// PLR is the Pin List Record, describing how to display a group of pins.
type PLR struct {
	GrpCnt  uint16   `stdf:"u2"`
	GrpIndx []uint16 `stdf:"u2array,lenfrom=GrpCnt"`
	GrpMode []uint16 `stdf:"u2array,lenfrom=GrpCnt,default=0"`
	GrpRadx []uint8  `stdf:"u1array,lenfrom=GrpCnt,default=0"`
	PgmChar []string `stdf:"cnarray,lenfrom=GrpCnt,default="`
	RtnChar []string `stdf:"cnarray,lenfrom=GrpCnt,default="`
	PgmChal []string `stdf:"cnarray,lenfrom=GrpCnt,default="`
	RtnChal []string `stdf:"cnarray,lenfrom=GrpCnt,default="`
}

func (r *PLR) RecordName() string   { return "PLR" }
func (r *PLR) RecordType() uint8    { return 1 }
func (r *PLR) RecordSubtype() uint8 { return 63 }
