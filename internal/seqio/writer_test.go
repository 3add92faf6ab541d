package seqio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgelleru/fasttools/internal/quality"
)

// Parsing a well-formed FASTQ file and writing it back must be
// byte-identical, including separator line content.
func TestFastqRoundTrip(t *testing.T) {
	input := "@read1 1:N:0:ACGT\nACGTN\n+\nII5!K\n@read2 1:N:0:ACGT\nGG\n+read2\n!K\n"

	records, err := ReadAll(NewFastqReader(strings.NewReader(input)))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteFastq(&out, records, quality.Sanger))
	assert.Equal(t, input, out.String())
}

func TestWriteFastqMissingQuality(t *testing.T) {
	records := []*Record{
		{ID: "read1", Seq: "ACGT", Qual: []int{40, 40, 40, 40}},
		{ID: "contig1", Seq: "ACGT"},
	}

	var out bytes.Buffer
	err := WriteFastq(&out, records, quality.Sanger)
	var missing *MissingQualityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 2, missing.Record)
	assert.Equal(t, "contig1", missing.ID)
}

func TestWriteFasta(t *testing.T) {
	records := []*Record{
		{ID: "seq1 desc", Seq: "ACGTGGCC"},
		{ID: "seq2", Seq: "TT"},
	}

	var out bytes.Buffer
	require.NoError(t, WriteFasta(&out, records, 0))
	assert.Equal(t, ">seq1 desc\nACGTGGCC\n>seq2\nTT\n", out.String())
}

func TestWriteFastaWrapped(t *testing.T) {
	records := []*Record{{ID: "seq1", Seq: "ACGTGGCCTT"}}

	var out bytes.Buffer
	require.NoError(t, WriteFasta(&out, records, 4))
	assert.Equal(t, ">seq1\nACGT\nGGCC\nTT\n", out.String())
}

func TestWriteFastaRoundTrip(t *testing.T) {
	records := []*Record{
		{ID: "seq1", Seq: "ACGTGGCCTT"},
		{ID: "seq2", Seq: "AA"},
	}

	var out bytes.Buffer
	require.NoError(t, WriteFasta(&out, records, 4))

	parsed, err := ReadAll(NewFastaReader(&out))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, records[0].Seq, parsed[0].Seq)
	assert.Equal(t, records[1].Seq, parsed[1].Seq)
}

func TestWriteInterleaved(t *testing.T) {
	pairs := []*PairedRecord{
		{
			R1: &Record{ID: "a/1", Seq: "AC", Qual: []int{40, 40}},
			R2: &Record{ID: "a/2", Seq: "GT", Qual: []int{0, 0}},
		},
	}

	var out bytes.Buffer
	require.NoError(t, WriteInterleaved(&out, pairs, quality.Sanger))
	assert.Equal(t, "@a/1\nAC\n+\nII\n@a/2\nGT\n+\n!!\n", out.String())
}

// An interleaved write must re-parse into the same pairs.
func TestInterleavedRoundTrip(t *testing.T) {
	r1 := NewFastqReader(strings.NewReader(fastqOf("a/1", "b/1")))
	r2 := NewFastqReader(strings.NewReader(fastqOf("a/2", "b/2")))
	pairs, err := ReadAllPairs(NewInterleaver(r1, r2))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteInterleaved(&out, pairs, quality.Sanger))

	records, err := ReadAll(NewFastqReader(&out))
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"a/1", "a/2", "b/1", "b/2"},
		[]string{records[0].ID, records[1].ID, records[2].ID, records[3].ID})
}
