// Package stdf decodes, encodes, and summarizes STDF V4 (Standard Test
// Data Format) files: the binary record stream produced by semiconductor
// test equipment.
//
// This file is the package facade: small wrappers around stdfio, index,
// and tally that let a caller reach the common operations — open a
// file, build its index, get counts and yield — without importing each
// subpackage directly. Anything not covered here (decoding a single record
// at a known offset, rendering one record, encoding a record back to
// bytes) is reached through the subpackages themselves.
package stdf

import (
	"iter"

	"github.com/charmbracelet/log"

	"github.com/nrht/stdf/endian"
	"github.com/nrht/stdf/index"
	"github.com/nrht/stdf/internal/diag"
	"github.com/nrht/stdf/internal/options"
	"github.com/nrht/stdf/record"
	"github.com/nrht/stdf/stdfio"
	"github.com/nrht/stdf/tally"
)

// Config holds the settings an Option mutates. Its fields are unexported:
// callers configure a File only through With* Option constructors.
type Config struct {
	diagLevel    log.Level
	diagEnabled  bool
}

// Option configures a File at Open time, built on the same generic
// functional-option helper the rest of the corpus uses for its codec
// configuration.
type Option = options.Option[*Config]

// WithDiagnostics turns on stdf's internal debug logging at the given
// level. Diagnostics are off by default: the codec never needs to log to
// operate correctly, so this exists purely for callers debugging their own
// integration.
func WithDiagnostics(level log.Level) Option {
	return options.NoError(func(c *Config) {
		c.diagEnabled = true
		c.diagLevel = level
	})
}

// File is an opened STDF byte stream: its bytes and detected endianness.
// It keeps no index; every index-based method scans the bytes again.
type File struct {
	data []byte
	eng  endian.EndianEngine
}

// Open detects data's endianness and wraps it for record access. It does
// not copy data; the returned File's zero-copy record payloads remain
// valid only as long as the caller keeps data unmodified.
func Open(data []byte, opts ...Option) (*File, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.diagEnabled {
		diag.Enable(cfg.diagLevel)
	} else {
		diag.Disable()
	}

	eng, err := stdfio.DetectEndian(data)
	if err != nil {
		return nil, err
	}

	diag.Debugf("stdf: detected endianness, len=%d", len(data))

	return &File{data: data, eng: eng}, nil
}

// Endian returns the file's detected byte order.
func (f *File) Endian() endian.EndianEngine {
	return f.eng
}

// Records lazily decodes every record in the file, in stream order.
func (f *File) Records() iter.Seq[record.Record] {
	return stdfio.Decode(f.data, f.eng)
}

// BuildIndex scans the file once and returns a random-access index keyed
// by (type, subtype).
func (f *File) BuildIndex() *index.Index {
	return index.Build(f.data, f.eng)
}

// RecordCounts builds the file's index and returns per-variant record
// counts. Equivalent to tally.RecordCounts(f.BuildIndex()).
func (f *File) RecordCounts() map[string]int {
	return tally.RecordCounts(f.BuildIndex())
}

// PartCount builds the file's index and returns the number of parts
// tested. Equivalent to tally.PartCount(f.BuildIndex()).
func (f *File) PartCount() (int, error) {
	return tally.PartCount(f.BuildIndex())
}

// Yield builds the file's index and returns pass/fail counts across every
// PRR. Equivalent to tally.Yield(f.BuildIndex(), f.Endian()).
func (f *File) Yield() (pass, fail int) {
	idx := f.BuildIndex()
	return tally.Yield(idx, f.eng)
}

// DetectEndian is the package-level convenience form of stdfio.DetectEndian.
func DetectEndian(data []byte) (endian.EndianEngine, error) {
	return stdfio.DetectEndian(data)
}
