package seqio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastqOf(ids ...string) string {
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString("@" + id + "\nACGT\n+\nIIII\n")
	}
	return sb.String()
}

func TestInterleaver(t *testing.T) {
	r1 := NewFastqReader(strings.NewReader(fastqOf("read1/1", "read2/1")))
	r2 := NewFastqReader(strings.NewReader(fastqOf("read1/2", "read2/2")))
	il := NewInterleaver(r1, r2)

	pair, err := il.Next()
	require.NoError(t, err)
	assert.Equal(t, "read1/1", pair.R1.ID)
	assert.Equal(t, "read1/2", pair.R2.ID)
	assert.Equal(t, "read1", pair.BaseID())

	pair, err = il.Next()
	require.NoError(t, err)
	assert.Equal(t, "read2", pair.BaseID())

	_, err = il.Next()
	assert.Equal(t, io.EOF, err)
	assert.Empty(t, il.Mismatches())
}

func TestInterleaverUnequalLength(t *testing.T) {
	tests := []struct {
		name      string
		r1, r2    string
		exhausted string
	}{
		{
			name:      "second mate shorter",
			r1:        fastqOf("a/1", "b/1", "c/1"),
			r2:        fastqOf("a/2", "b/2"),
			exhausted: "second-mate",
		},
		{
			name:      "first mate shorter",
			r1:        fastqOf("a/1"),
			r2:        fastqOf("a/2", "b/2"),
			exhausted: "first-mate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			il := NewInterleaver(
				NewFastqReader(strings.NewReader(tt.r1)),
				NewFastqReader(strings.NewReader(tt.r2)),
			)

			var err error
			for {
				if _, err = il.Next(); err != nil {
					break
				}
			}

			var unequal *UnequalLengthError
			require.ErrorAs(t, err, &unequal)
			assert.Equal(t, tt.exhausted, unequal.Exhausted)
		})
	}
}

func TestInterleaverIDMismatchDiagnostic(t *testing.T) {
	r1 := NewFastqReader(strings.NewReader(fastqOf("a/1", "b/1")))
	r2 := NewFastqReader(strings.NewReader(fastqOf("a/2", "x/2")))
	il := NewInterleaver(r1, r2)

	// Mismatched identifiers still pair by position.
	pairs, err := ReadAllPairs(il)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "b/1", pairs[1].R1.ID)
	assert.Equal(t, "x/2", pairs[1].R2.ID)

	mismatches := il.Mismatches()
	require.Len(t, mismatches, 1)
	assert.Equal(t, 2, mismatches[0].Record)
	assert.Equal(t, "b/1", mismatches[0].R1ID)
	assert.Equal(t, "x/2", mismatches[0].R2ID)
}

func TestInterleaverStrictIDs(t *testing.T) {
	r1 := NewFastqReader(strings.NewReader(fastqOf("a/1", "b/1")))
	r2 := NewFastqReader(strings.NewReader(fastqOf("a/2", "x/2")))
	il := NewInterleaver(r1, r2)
	il.StrictIDs = true

	_, err := il.Next()
	require.NoError(t, err)

	_, err = il.Next()
	var mismatch *MateIDMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Record)
}

func TestInterleaverPropagatesParseErrors(t *testing.T) {
	r1 := NewFastqReader(strings.NewReader(fastqOf("a/1")))
	r2 := NewFastqReader(strings.NewReader("@a/2\nACGT\n+\nIII\n"))
	il := NewInterleaver(r1, r2)

	_, err := il.Next()
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
}
