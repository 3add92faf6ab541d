package seqio

import (
	"errors"
	"io"
)

// MateIDMismatch records a positional pair whose trimmed identifiers
// differ. These are diagnostics, not errors, unless strict mode is on.
type MateIDMismatch struct {
	Record int
	R1ID   string
	R2ID   string
}

// Interleaver merges a first-mate and a second-mate FASTQ stream into one
// ordered stream of pairs, strictly by file position. Both streams
// advance in lockstep; an unpaired remainder on either side is an error.
//
// Identifier correspondence beyond mate-suffix trimming is not required:
// mismatches are collected as diagnostics and only fail the stream when
// StrictIDs is set.
type Interleaver struct {
	// StrictIDs makes a mate identifier mismatch fatal.
	StrictIDs bool

	r1, r2     RecordReader
	n          int
	mismatches []MateIDMismatch
}

// NewInterleaver returns an interleaver over the two mate streams.
func NewInterleaver(r1, r2 RecordReader) *Interleaver {
	return &Interleaver{r1: r1, r2: r2}
}

// Next returns the next pair in file order, io.EOF when both streams are
// exhausted, UnequalLengthError when only one is, and
// MateIDMismatchError in strict mode for non-matching identifiers.
func (il *Interleaver) Next() (*PairedRecord, error) {
	rec1, err1 := il.r1.Next()
	rec2, err2 := il.r2.Next()
	il.n++

	switch {
	case err1 == nil && err2 == nil:
		// fall through to pairing
	case isEOF(err1) && isEOF(err2):
		return nil, err1
	case isEOF(err1):
		if err2 != nil {
			return nil, err2
		}
		return nil, &UnequalLengthError{Exhausted: "first-mate", Record: il.n}
	case isEOF(err2):
		if err1 != nil {
			return nil, err1
		}
		return nil, &UnequalLengthError{Exhausted: "second-mate", Record: il.n}
	case err1 != nil:
		return nil, err1
	default:
		return nil, err2
	}

	if id1, id2 := TrimMateSuffix(rec1.ID), TrimMateSuffix(rec2.ID); id1 != id2 {
		if il.StrictIDs {
			return nil, &MateIDMismatchError{Record: il.n, R1ID: rec1.ID, R2ID: rec2.ID}
		}
		il.mismatches = append(il.mismatches, MateIDMismatch{Record: il.n, R1ID: rec1.ID, R2ID: rec2.ID})
	}

	return &PairedRecord{R1: rec1, R2: rec2}, nil
}

// Mismatches returns the identifier mismatches observed so far.
func (il *Interleaver) Mismatches() []MateIDMismatch {
	return il.mismatches
}

// ReadAllPairs exhausts the interleaver. The first error aborts and is
// returned with no pairs.
func ReadAllPairs(il *Interleaver) ([]*PairedRecord, error) {
	var pairs []*PairedRecord
	for {
		pair, err := il.Next()
		if isEOF(err) {
			return pairs, nil
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
