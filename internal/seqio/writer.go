package seqio

import (
	"fmt"
	"io"

	"github.com/dgelleru/fasttools/internal/quality"
)

// WriteFastq serializes records as four-line FASTQ, re-encoding quality
// scores with the given encoding. Records parsed by FastqReader write
// back byte-identically (the separator line content is preserved).
// A record without quality scores fails with MissingQualityError before
// any of its lines are written.
func WriteFastq(w io.Writer, records []*Record, encoding quality.Encoding) error {
	for i, rec := range records {
		if !rec.HasQuality() {
			return &MissingQualityError{Record: i + 1, ID: rec.ID}
		}
		qual, err := encoding.EncodeScores(rec.Qual)
		if err != nil {
			return fmt.Errorf("%s: %w", at("", i+1), err)
		}
		if _, err := fmt.Fprintf(w, "@%s\n%s\n+%s\n%s\n", rec.ID, rec.Seq, rec.Plus, qual); err != nil {
			return err
		}
	}
	return nil
}

// WriteFasta serializes records as FASTA. A wrap width of zero or less
// writes each sequence on a single line; otherwise sequence lines wrap
// at the given width.
func WriteFasta(w io.Writer, records []*Record, wrap int) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.ID); err != nil {
			return err
		}
		if wrap <= 0 {
			if _, err := fmt.Fprintf(w, "%s\n", rec.Seq); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < len(rec.Seq); i += wrap {
			end := i + wrap
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[i:end]); err != nil {
				return err
			}
		}
		if len(rec.Seq) == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteInterleaved serializes mate pairs as a single FASTQ stream, R1
// then R2 for each pair, matching the interleaved layout the original
// paired ingest produces.
func WriteInterleaved(w io.Writer, pairs []*PairedRecord, encoding quality.Encoding) error {
	for i, pair := range pairs {
		if err := WriteFastq(w, []*Record{pair.R1, pair.R2}, encoding); err != nil {
			if merr, ok := err.(*MissingQualityError); ok {
				merr.Record = i + 1
			}
			return err
		}
	}
	return nil
}
