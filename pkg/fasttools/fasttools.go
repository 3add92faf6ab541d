// Package fasttools provides a high-level API for loading sequencing
// read files into tables, computing per-read derived values, and writing
// them back out.
//
// Example usage:
//
//	tbl, err := fasttools.LoadFastq("Sample1_S1_L001_R1_001.fastq.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tbl.AverageQuality(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.Summarize())
package fasttools

import (
	"errors"
	"io/fs"

	"github.com/dgelleru/fasttools/internal/quality"
	"github.com/dgelleru/fasttools/internal/seqio"
	"github.com/dgelleru/fasttools/internal/sequence"
	"github.com/dgelleru/fasttools/internal/table"
)

// Version is overwritten at build time via
// -ldflags="-X 'github.com/dgelleru/fasttools/pkg/fasttools.Version=v1.2.3'".
var Version = "dev"

// Info returns a version string.
func Info() string {
	return "fasttools " + Version
}

// Re-export types for convenience
type (
	Record         = seqio.Record
	PairedRecord   = seqio.PairedRecord
	FastqReader    = seqio.FastqReader
	FastaReader    = seqio.FastaReader
	Interleaver    = seqio.Interleaver
	MateIDMismatch = seqio.MateIDMismatch
	Encoding       = quality.Encoding
	Table          = table.Table
	Column         = table.Column
	Summary        = table.Summary
	Format         = seqio.Format
)

// Quality encodings
var (
	Sanger  = quality.Sanger
	Phred64 = quality.Phred64
)

// File formats
const (
	FormatUnknown = seqio.FormatUnknown
	FormatFastq   = seqio.FormatFastq
	FormatFasta   = seqio.FormatFasta
)

// LoadFastq parses a FASTQ file (gzip-compressed or plain) into a
// single-read table. The sample label is derived from the filename.
func LoadFastq(path string) (*Table, error) {
	r, err := seqio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fq := seqio.NewFastqReader(r)
	fq.File = path
	return table.FromReader(fq, seqio.SampleName(path))
}

// LoadFasta parses a FASTA file into a single-read table.
func LoadFasta(path string) (*Table, error) {
	r, err := seqio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fa := seqio.NewFastaReader(r)
	fa.File = path
	return table.FromReader(fa, seqio.SampleName(path))
}

// Load parses a file into a table, choosing the parser from the file
// extension.
func Load(path string) (*Table, error) {
	switch seqio.DetectFormat(path) {
	case seqio.FormatFasta:
		return LoadFasta(path)
	default:
		return LoadFastq(path)
	}
}

// LoadPaired parses a first-mate FASTQ file together with its
// second-mate file into a paired table. The mate file is located by
// splicing the second-mate marker into the filename; when the filename
// carries no marker or the mate file does not exist, the file loads as a
// single-read table instead. With strictIDs set, mate identifier
// mismatches abort the load.
func LoadPaired(path string, strictIDs bool) (*Table, error) {
	matePath, ok := seqio.MateFilename(path)
	if !ok {
		return LoadFastq(path)
	}

	r1, err := seqio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r1.Close()

	r2, err := seqio.OpenReader(matePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fq := seqio.NewFastqReader(r1)
			fq.File = path
			return table.FromReader(fq, seqio.SampleName(path))
		}
		return nil, err
	}
	defer r2.Close()

	fq1 := seqio.NewFastqReader(r1)
	fq1.File = path
	fq2 := seqio.NewFastqReader(r2)
	fq2.File = matePath

	il := seqio.NewInterleaver(fq1, fq2)
	il.StrictIDs = strictIDs
	return table.FromInterleaver(il, seqio.SampleName(path))
}

// WriteFastq writes a table to a FASTQ file (gzip-compressed when the
// path ends in ".gz"). Paired tables are written interleaved; use
// WriteMateFiles for two-file output. The output appears at path only if
// the whole write succeeds.
func WriteFastq(path string, t *Table) error {
	w, err := seqio.CreateWriter(path)
	if err != nil {
		return err
	}

	if t.Paired() {
		err = seqio.WriteInterleaved(w, t.Pairs(), quality.Sanger)
	} else {
		err = seqio.WriteFastq(w, t.Records(0), quality.Sanger)
	}
	if err != nil {
		_ = w.Discard()
		return err
	}
	return w.Close()
}

// WriteMateFiles writes a paired table as two mate files. r1Path must
// carry a first-mate marker; the second-mate path is derived from it.
func WriteMateFiles(r1Path string, t *Table) error {
	r2Path, ok := seqio.MateFilename(r1Path)
	if !ok {
		return errors.New("output path carries no recognized mate marker")
	}

	for mate, path := range [2]string{r1Path, r2Path} {
		w, err := seqio.CreateWriter(path)
		if err != nil {
			return err
		}
		if err := seqio.WriteFastq(w, t.Records(mate), quality.Sanger); err != nil {
			_ = w.Discard()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}

// WriteFasta writes a table's sequences to a FASTA file, dropping
// quality. Paired tables interleave mates in row order.
func WriteFasta(path string, t *Table, wrap int) error {
	w, err := seqio.CreateWriter(path)
	if err != nil {
		return err
	}

	records := t.Records(0)
	if t.Paired() {
		interleaved := make([]*Record, 0, 2*t.Len())
		for i := 0; i < t.Len(); i++ {
			row := t.Row(i)
			interleaved = append(interleaved, row.R1, row.R2)
		}
		records = interleaved
	}

	if err := seqio.WriteFasta(w, records, wrap); err != nil {
		_ = w.Discard()
		return err
	}
	return w.Close()
}

// Per-record transforms, re-exported for API consumers.

// GCFraction returns the GC fraction of a sequence.
func GCFraction(seq string) float64 {
	return sequence.GCFraction(seq)
}

// ReverseComplement returns the IUPAC reverse complement of a sequence.
func ReverseComplement(seq string) string {
	return sequence.ReverseComplement(seq)
}

// Translate translates a sequence in frame 0.
func Translate(seq string) string {
	return sequence.Translate(seq)
}

// Transcribe converts DNA to RNA.
func Transcribe(seq string) string {
	return sequence.Transcribe(seq)
}

// ValidateSequence checks a sequence against the IUPAC alphabet.
func ValidateSequence(seq string) error {
	return sequence.Validate(seq)
}

// DecodeQuality decodes a quality line with the named encoding
// ("phred33" or "phred64"); an empty name means phred33.
func DecodeQuality(encoded, encodingName string) ([]int, error) {
	enc := quality.Sanger
	if encodingName != "" {
		named, ok := quality.ByName(encodingName)
		if !ok {
			return nil, errors.New("unknown encoding, use 'phred33' or 'phred64'")
		}
		enc = named
	}
	return enc.DecodeString(encoded)
}

// AverageQuality decodes a quality line and returns its mean score.
func AverageQuality(encoded, encodingName string) (float64, error) {
	scores, err := DecodeQuality(encoded, encodingName)
	if err != nil {
		return 0, err
	}
	return quality.Average(scores), nil
}

// SampleName derives a sample label from a read filename.
func SampleName(path string) string {
	return seqio.SampleName(path)
}

// DetectFormat reports the read format a filename's extension implies.
func DetectFormat(path string) Format {
	return seqio.DetectFormat(path)
}
