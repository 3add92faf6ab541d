// Package table provides the in-memory tabular representation of a
// parsed read file: one row per read or read pair, plus lazily computed
// derived columns.
//
// A table is built exactly once from a completed parse pass and its row
// set never changes afterwards. Derived columns form a closed set; each
// is populated in full by one transform method, so a column is always
// either absent or total across all rows. Transform methods are
// idempotent and recompute from the immutable source fields only, which
// makes concurrent recomputation race-free.
package table

import (
	"fmt"

	"github.com/exascience/pargo/parallel"

	"github.com/dgelleru/fasttools/internal/quality"
	"github.com/dgelleru/fasttools/internal/sequence"
	"github.com/dgelleru/fasttools/internal/seqio"
)

// Derived column names, as exposed by Columns.
const (
	ColAvgQuality        = "avg_quality"
	ColGCFraction        = "gc_fraction"
	ColReverseComplement = "reverse_complement"
	ColAminoAcid         = "amino_acid"
)

// Row is one table row: a single read, or a mate pair when the table is
// paired.
type Row struct {
	R1 *seqio.Record
	R2 *seqio.Record
}

// Mate returns the record for mate index 0 (R1) or 1 (R2).
func (r Row) Mate(mate int) *seqio.Record {
	if mate == 0 {
		return r.R1
	}
	return r.R2
}

// Table is an ordered, immutable collection of rows with derived-column
// storage. Derived columns are indexed [mate][row]; single-read tables
// use mate index 0 only.
type Table struct {
	sample string
	paired bool
	rows   []Row

	avgQuality [][]float64
	gcFraction [][]float64
	revComp    [][]string
	aminoAcid  [][]string
}

// FromRecords builds a single-read table.
func FromRecords(records []*seqio.Record, sample string) *Table {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{R1: rec}
	}
	return &Table{sample: sample, rows: rows}
}

// FromPairs builds a paired table.
func FromPairs(pairs []*seqio.PairedRecord, sample string) *Table {
	rows := make([]Row, len(pairs))
	for i, pair := range pairs {
		rows[i] = Row{R1: pair.R1, R2: pair.R2}
	}
	return &Table{sample: sample, paired: true, rows: rows}
}

// FromReader exhausts a record stream into a single-read table. A parse
// failure anywhere aborts construction: no table is returned.
func FromReader(r seqio.RecordReader, sample string) (*Table, error) {
	records, err := seqio.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromRecords(records, sample), nil
}

// FromInterleaver exhausts a mate-pair stream into a paired table. A
// parse or pairing failure anywhere aborts construction.
func FromInterleaver(il *seqio.Interleaver, sample string) (*Table, error) {
	pairs, err := seqio.ReadAllPairs(il)
	if err != nil {
		return nil, err
	}
	return FromPairs(pairs, sample), nil
}

// Sample returns the sample label derived from the source filename.
func (t *Table) Sample() string {
	return t.sample
}

// Paired reports whether rows are mate pairs.
func (t *Table) Paired() bool {
	return t.paired
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i. Rows and their records must not be mutated.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Mates returns the number of mates per row: 2 for paired tables, 1
// otherwise.
func (t *Table) Mates() int {
	if t.paired {
		return 2
	}
	return 1
}

// Records collects the records of one mate in row order, for
// serialization.
func (t *Table) Records(mate int) []*seqio.Record {
	records := make([]*seqio.Record, len(t.rows))
	for i, row := range t.rows {
		records[i] = row.Mate(mate)
	}
	return records
}

// Pairs collects the rows of a paired table as mate pairs.
func (t *Table) Pairs() []*seqio.PairedRecord {
	pairs := make([]*seqio.PairedRecord, len(t.rows))
	for i, row := range t.rows {
		pairs[i] = &seqio.PairedRecord{R1: row.R1, R2: row.R2}
	}
	return pairs
}

// HasQuality reports whether every record in the table carries quality
// scores.
func (t *Table) HasQuality() bool {
	for _, row := range t.rows {
		for mate := 0; mate < t.Mates(); mate++ {
			if !row.Mate(mate).HasQuality() {
				return false
			}
		}
	}
	return true
}

// NoQualityDataError is returned when average quality is requested for a
// table containing rows without quality scores.
type NoQualityDataError struct {
	Record int
	ID     string
}

func (e *NoQualityDataError) Error() string {
	return fmt.Sprintf("record %d (%s) has no quality data", e.Record, e.ID)
}

// AverageQuality populates the avg_quality column: the arithmetic mean
// of each record's quality scores. The whole operation fails with
// NoQualityDataError if any row lacks quality (e.g. a FASTA-sourced
// table); the column stays absent in that case.
func (t *Table) AverageQuality() error {
	for i, row := range t.rows {
		for mate := 0; mate < t.Mates(); mate++ {
			if !row.Mate(mate).HasQuality() {
				return &NoQualityDataError{Record: i + 1, ID: row.Mate(mate).ID}
			}
		}
	}

	cols := t.newFloatColumns()
	t.eachRow(func(mate, i int) {
		cols[mate][i] = quality.Average(t.rows[i].Mate(mate).Qual)
	})
	t.avgQuality = cols
	return nil
}

// GCFraction populates the gc_fraction column.
func (t *Table) GCFraction() {
	cols := t.newFloatColumns()
	t.eachRow(func(mate, i int) {
		cols[mate][i] = sequence.GCFraction(t.rows[i].Mate(mate).Seq)
	})
	t.gcFraction = cols
}

// ReverseComplement populates the reverse_complement column.
func (t *Table) ReverseComplement() {
	cols := t.newStringColumns()
	t.eachRow(func(mate, i int) {
		cols[mate][i] = sequence.ReverseComplement(t.rows[i].Mate(mate).Seq)
	})
	t.revComp = cols
}

// AminoAcid populates the amino_acid column with the translation of each
// sequence read in frame 0.
func (t *Table) AminoAcid() {
	cols := t.newStringColumns()
	t.eachRow(func(mate, i int) {
		cols[mate][i] = sequence.Translate(t.rows[i].Mate(mate).Seq)
	})
	t.aminoAcid = cols
}

// ComputeAll populates every applicable derived column. The avg_quality
// column is skipped, not failed, for tables without quality data.
func (t *Table) ComputeAll() error {
	t.GCFraction()
	t.ReverseComplement()
	t.AminoAcid()
	if t.HasQuality() {
		return t.AverageQuality()
	}
	return nil
}

// AvgQuality returns the computed avg_quality column for a mate, or nil
// if the column has not been computed.
func (t *Table) AvgQuality(mate int) []float64 {
	return floatColumn(t.avgQuality, mate)
}

// GC returns the computed gc_fraction column for a mate, or nil.
func (t *Table) GC(mate int) []float64 {
	return floatColumn(t.gcFraction, mate)
}

// RevComp returns the computed reverse_complement column for a mate, or
// nil.
func (t *Table) RevComp(mate int) []string {
	return stringColumn(t.revComp, mate)
}

// AminoAcids returns the computed amino_acid column for a mate, or nil.
func (t *Table) AminoAcids(mate int) []string {
	return stringColumn(t.aminoAcid, mate)
}

// eachRow runs fn for every (mate, row) slot, parallelized across rows.
// Slots are disjoint per row, so writes into pre-sized column slices
// need no synchronization.
func (t *Table) eachRow(fn func(mate, i int)) {
	mates := t.Mates()
	parallel.Range(0, len(t.rows), 0, func(low, high int) {
		for i := low; i < high; i++ {
			for mate := 0; mate < mates; mate++ {
				fn(mate, i)
			}
		}
	})
}

func (t *Table) newFloatColumns() [][]float64 {
	cols := make([][]float64, t.Mates())
	for mate := range cols {
		cols[mate] = make([]float64, len(t.rows))
	}
	return cols
}

func (t *Table) newStringColumns() [][]string {
	cols := make([][]string, t.Mates())
	for mate := range cols {
		cols[mate] = make([]string, len(t.rows))
	}
	return cols
}

func floatColumn(cols [][]float64, mate int) []float64 {
	if cols == nil || mate >= len(cols) {
		return nil
	}
	return cols[mate]
}

func stringColumn(cols [][]string, mate int) []string {
	if cols == nil || mate >= len(cols) {
		return nil
	}
	return cols[mate]
}
