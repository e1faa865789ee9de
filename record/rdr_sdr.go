package record

// RDR is the Retest Data Record, listing bins that were retested across the
// whole lot.
type RDR struct {
	NumBins uint16   `stdf:"u2"`
	RtstBin []uint16 `stdf:"u2array,lenfrom=NumBins"`
}

func (r *RDR) RecordName() string   { return "RDR" }
func (r *RDR) RecordType() uint8    { return 1 }
func (r *RDR) RecordSubtype() uint8 { return 70 }

// SDR is the Site Description Record, describing the hardware at one test
// site group.
type SDR struct {
	HeadNum uint8   `stdf:"u1"`
	SiteGrp uint8   `stdf:"u1"`
	SiteCnt uint8   `stdf:"u1"`
	SiteNum []uint8 `stdf:"u1array,lenfrom=SiteCnt"`
	HandTyp string  `stdf:"cn,default="`
	HandID  string  `stdf:"cn,default="`
	CardTyp string  `stdf:"cn,default="`
	CardID  string  `stdf:"cn,default="`
	LoadTyp string  `stdf:"cn,default="`
	LoadID  string  `stdf:"cn,default="`
	DibTyp  string  `stdf:"cn,default="`
	DibID   string  `stdf:"cn,default="`
	CablTyp string  `stdf:"cn,default="`
	CablID  string  `stdf:"cn,default="`
	ContTyp string  `stdf:"cn,default="`
	ContID  string  `stdf:"cn,default="`
	LasrTyp string  `stdf:"cn,default="`
	LasrID  string  `stdf:"cn,default="`
	ExtrTyp string  `stdf:"cn,default="`
	ExtrID  string  `stdf:"cn,default="`
}

func (r *SDR) RecordName() string   { return "SDR" }
func (r *SDR) RecordType() uint8    { return 1 }
func (r *SDR) RecordSubtype() uint8 { return 80 }
