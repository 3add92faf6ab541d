// Package seqio provides FASTQ and FASTA record parsing, mate-pair
// interleaving, and serialization.
//
// Parsers validate the format grammar only: sentinels, record structure,
// and sequence/quality length agreement. Sequence content is not checked
// against any alphabet here; that is a caller concern (see the sequence
// package).
package seqio

import "strings"

// Record is one sequencing read. Qual holds the decoded integer quality
// scores and is nil for FASTA-sourced records; when present its length
// equals the sequence length. Plus preserves the text of the FASTQ
// separator line after its '+' sentinel so that records round-trip
// byte-identically.
type Record struct {
	ID   string
	Seq  string
	Plus string
	Qual []int
}

// Len returns the sequence length.
func (r *Record) Len() int {
	return len(r.Seq)
}

// HasQuality reports whether the record carries quality scores.
func (r *Record) HasQuality() bool {
	return r.Qual != nil
}

// PairedRecord is a mate pair: the two reads originating from the same
// DNA fragment, in file order (R1 first).
type PairedRecord struct {
	R1 *Record
	R2 *Record
}

// BaseID returns the shared identifier of the pair, the R1 identifier
// with its mate suffix stripped.
func (p *PairedRecord) BaseID() string {
	return TrimMateSuffix(p.R1.ID)
}

// TrimMateSuffix strips a recognized mate suffix from a read identifier:
// a trailing "/1" or "/2" (classic Illumina), or a Casava 1.8 comment
// word beginning with "1:" or "2:" after the first space.
func TrimMateSuffix(id string) string {
	if strings.HasSuffix(id, "/1") || strings.HasSuffix(id, "/2") {
		return id[:len(id)-2]
	}
	if i := strings.IndexByte(id, ' '); i >= 0 {
		rest := id[i+1:]
		if strings.HasPrefix(rest, "1:") || strings.HasPrefix(rest, "2:") {
			return id[:i]
		}
	}
	return id
}
