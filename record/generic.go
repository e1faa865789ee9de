package record

import "github.com/nrht/stdf/field"

// BPS is the Begin Program Section Record, marking entry into a named
// section of the test program.
type BPS struct {
	SeqName string `stdf:"cn,default="`
}

func (r *BPS) RecordName() string   { return "BPS" }
func (r *BPS) RecordType() uint8    { return 20 }
func (r *BPS) RecordSubtype() uint8 { return 10 }

// EPS is the End Program Section Record, marking exit from the section
// opened by the matching BPS. It carries no fields.
type EPS struct{}

func (r *EPS) RecordName() string   { return "EPS" }
func (r *EPS) RecordType() uint8    { return 20 }
func (r *EPS) RecordSubtype() uint8 { return 20 }

// GDR is the Generic Data Record: an arbitrary, tagged-union payload for
// data that does not fit any other record.
type GDR struct {
	FldCnt  uint16     `stdf:"u2"`
	GenData []field.Vn `stdf:"vnarray,lenfrom=FldCnt"`
}

func (r *GDR) RecordName() string   { return "GDR" }
func (r *GDR) RecordType() uint8    { return 50 }
func (r *GDR) RecordSubtype() uint8 { return 10 }

// DTR is the Datalog Text Record: one free-form comment line.
type DTR struct {
	TextDat string `stdf:"cn,default="`
}

func (r *DTR) RecordName() string   { return "DTR" }
func (r *DTR) RecordType() uint8    { return 50 }
func (r *DTR) RecordSubtype() uint8 { return 30 }
