package seqio

import "fmt"

// ParseError is the marker interface for structural parsing and pairing
// errors. Every error carries the source label and the index of the
// record being parsed so callers can locate the offending input.
type ParseError interface {
	error
	IsParseError()
}

func at(file string, record int) string {
	if file == "" {
		return fmt.Sprintf("record %d", record)
	}
	return fmt.Sprintf("%s: record %d", file, record)
}

// FormatError is returned when a line violates the expected sentinel or
// structure for the declared format.
type FormatError struct {
	File   string
	Record int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", at(e.File, e.Record), e.Msg)
}

func (e *FormatError) IsParseError() {}

// TruncatedRecordError is returned when the stream ends in the middle of
// a record.
type TruncatedRecordError struct {
	File   string
	Record int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("%s: stream ended mid-record", at(e.File, e.Record))
}

func (e *TruncatedRecordError) IsParseError() {}

// MalformedRecordError is returned when a FASTQ quality line length does
// not match its sequence line length.
type MalformedRecordError struct {
	File    string
	Record  int
	SeqLen  int
	QualLen int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: quality length %d does not match sequence length %d",
		at(e.File, e.Record), e.QualLen, e.SeqLen)
}

func (e *MalformedRecordError) IsParseError() {}

// UnequalLengthError is returned by the interleaver when one mate stream
// is exhausted before the other. Exhausted names the shorter stream.
type UnequalLengthError struct {
	Exhausted string
	Record    int
}

func (e *UnequalLengthError) Error() string {
	return fmt.Sprintf("record %d: %s stream exhausted before its mate", e.Record, e.Exhausted)
}

func (e *UnequalLengthError) IsParseError() {}

// MateIDMismatchError is returned (in strict mode) when the trimmed
// identifiers of a positional pair differ.
type MateIDMismatchError struct {
	Record int
	R1ID   string
	R2ID   string
}

func (e *MateIDMismatchError) Error() string {
	return fmt.Sprintf("record %d: mate identifiers %q and %q do not match", e.Record, e.R1ID, e.R2ID)
}

func (e *MateIDMismatchError) IsParseError() {}

// MissingQualityError is returned when FASTQ output is requested for a
// record without quality scores.
type MissingQualityError struct {
	Record int
	ID     string
}

func (e *MissingQualityError) Error() string {
	return fmt.Sprintf("record %d (%s): quality scores required for FASTQ output", e.Record, e.ID)
}

func (e *MissingQualityError) IsParseError() {}
