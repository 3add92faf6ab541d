package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dgelleru/fasttools/internal/quality"
)

// Line buffer large enough for long reads; bufio.Scanner's default 64K
// is too small for PacBio/Nanopore-length sequence lines.
const maxLineSize = 1 << 20

// RecordReader is a lazy, finite stream of records. Next returns io.EOF
// after the last record. A reader is not restartable; open a fresh one
// on the same source to parse again.
type RecordReader interface {
	Next() (*Record, error)
}

// FastqReader parses four-line FASTQ records from a stream.
//
// File and Encoding may be set before the first call to Next; File is
// used only to label errors, and Encoding defaults to Sanger.
type FastqReader struct {
	File     string
	Encoding quality.Encoding

	scanner *bufio.Scanner
	n       int
}

// NewFastqReader returns a FASTQ parser over r using the Sanger quality
// encoding.
func NewFastqReader(r io.Reader) *FastqReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &FastqReader{Encoding: quality.Sanger, scanner: scanner}
}

// Next returns the next record, io.EOF at end of stream, or a ParseError
// describing the structural violation.
func (fq *FastqReader) Next() (*Record, error) {
	header, ok, err := scanSkippingBlanks(fq.scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	fq.n++

	if header[0] != '@' {
		return nil, &FormatError{File: fq.File, Record: fq.n,
			Msg: fmt.Sprintf("expected '@' on header line, got %q", preview(header))}
	}

	seq, ok, err := scanLine(fq.scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &TruncatedRecordError{File: fq.File, Record: fq.n}
	}

	plus, ok, err := scanLine(fq.scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &TruncatedRecordError{File: fq.File, Record: fq.n}
	}
	if len(plus) == 0 || plus[0] != '+' {
		return nil, &FormatError{File: fq.File, Record: fq.n,
			Msg: fmt.Sprintf("expected '+' on separator line, got %q", preview(plus))}
	}

	qual, ok, err := scanLine(fq.scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &TruncatedRecordError{File: fq.File, Record: fq.n}
	}
	if len(qual) != len(seq) {
		return nil, &MalformedRecordError{File: fq.File, Record: fq.n,
			SeqLen: len(seq), QualLen: len(qual)}
	}

	scores, err := fq.Encoding.DecodeString(qual)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at(fq.File, fq.n), err)
	}

	return &Record{
		ID:   header[1:],
		Seq:  seq,
		Plus: plus[1:],
		Qual: scores,
	}, nil
}

// FastaReader parses FASTA records from a stream. Each record is an id
// line followed by one or more sequence lines, concatenated until the
// next id line or end of stream. Blank lines between records and between
// sequence lines are tolerated.
type FastaReader struct {
	File string

	scanner *bufio.Scanner
	pending string
	havePending bool
	n       int
}

// NewFastaReader returns a FASTA parser over r.
func NewFastaReader(r io.Reader) *FastaReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &FastaReader{scanner: scanner}
}

// Next returns the next record, io.EOF at end of stream, or a ParseError
// describing the structural violation.
func (fa *FastaReader) Next() (*Record, error) {
	header := fa.pending
	if fa.havePending {
		fa.havePending = false
	} else {
		line, ok, err := scanSkippingBlanks(fa.scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}
		header = line
	}
	fa.n++

	if header[0] != '>' {
		return nil, &FormatError{File: fa.File, Record: fa.n,
			Msg: fmt.Sprintf("expected '>' on header line, got %q", preview(header))}
	}

	var seq strings.Builder
	lines := 0
	for {
		line, ok, err := scanLine(fa.scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			if lines == 0 {
				return nil, &TruncatedRecordError{File: fa.File, Record: fa.n}
			}
			break
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if lines == 0 {
				return nil, &FormatError{File: fa.File, Record: fa.n,
					Msg: "record has no sequence lines"}
			}
			fa.pending = line
			fa.havePending = true
			break
		}
		seq.WriteString(line)
		lines++
	}

	return &Record{ID: header[1:], Seq: seq.String()}, nil
}

// ReadAll exhausts a reader into a record slice. The first parse error
// aborts and is returned with no records.
func ReadAll(r RecordReader) ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func scanLine(scanner *bufio.Scanner) (string, bool, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return strings.TrimSuffix(scanner.Text(), "\r"), true, nil
}

func scanSkippingBlanks(scanner *bufio.Scanner) (string, bool, error) {
	for {
		line, ok, err := scanLine(scanner)
		if err != nil || !ok {
			return "", ok, err
		}
		if len(line) > 0 {
			return line, true, nil
		}
	}
}

func preview(line string) string {
	if len(line) > 20 {
		return line[:20] + "..."
	}
	return line
}
