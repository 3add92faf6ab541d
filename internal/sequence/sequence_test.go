package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCFraction(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"empty", "", 0.0},
		{"all GC", "GCGC", 1.0},
		{"all AT", "ATATAT", 0.0},
		{"mixed half", "ATGC", 0.5},
		{"lowercase", "atgc", 0.5},
		{"all N", "NNNN", 0.0},
		{"N excluded from denominator", "GCNN", 1.0},
		{"other ambiguity codes excluded", "GCRYSW", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GCFraction(tt.seq), 0.0001)
		})
	}
}

func TestATFraction(t *testing.T) {
	assert.InDelta(t, 0.5, ATFraction("ATGC"), 0.0001)
	assert.InDelta(t, 1.0, ATFraction("ATNN"), 0.0001)
	assert.InDelta(t, 0.0, ATFraction(""), 0.0001)
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"empty", "", ""},
		{"self-complementary ACGT", "ACGT", "ACGT"},
		{"self-complementary AATT", "AATT", "AATT"},
		{"with N", "ACGTN", "NACGT"},
		{"lowercase preserved", "acgt", "acgt"},
		{"ambiguity codes", "RYSWKM", "KMWSRY"},
		{"unrecognized passes through", "AC-GT", "AC-GT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseComplement(tt.seq))
		})
	}
}

// Reverse-complementing twice must restore the original for any IUPAC
// sequence.
func TestReverseComplementInvolution(t *testing.T) {
	for _, seq := range []string{"ACGT", "GGGCCCAT", "NNRYacgt", "ACGTNRYSWKMBDHV"} {
		assert.Equal(t, seq, ReverseComplement(ReverseComplement(seq)))
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "TGCA", Reverse("ACGT"))
	assert.Equal(t, "", Reverse(""))
}

func TestTranscribe(t *testing.T) {
	assert.Equal(t, "ACGU", Transcribe("ACGT"))
	assert.Equal(t, "acgu", Transcribe("acgt"))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"empty", "", ""},
		{"two codons", "ATGTTT", "MF"},
		{"trailing base dropped", "ATGTTTA", "MF"},
		{"trailing two bases dropped", "ATGTTTAC", "MF"},
		{"stop codon", "TAA", "*"},
		{"ambiguous codon", "ATGANT", "MX"},
		{"invalid base in codon", "ATG-TT", "MX"},
		{"lowercase", "atgttt", "MF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.seq))
		})
	}
}

func TestCodonPredicates(t *testing.T) {
	assert.True(t, IsStartCodon("ATG"))
	assert.True(t, IsStartCodon("atg"))
	assert.False(t, IsStartCodon("TTG"))

	assert.True(t, IsStopCodon("TAA"))
	assert.True(t, IsStopCodon("TAG"))
	assert.True(t, IsStopCodon("TGA"))
	assert.False(t, IsStopCodon("TGG"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("ACGTN"))
	require.NoError(t, Validate("acgtryswkmbdhvn"))

	err := Validate("ACXGT")
	require.Error(t, err)
	var baseErr *InvalidBaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, 2, baseErr.Position)
	assert.Equal(t, byte('X'), baseErr.Found)
}

func TestIsAmbiguous(t *testing.T) {
	assert.False(t, IsAmbiguous('A'))
	assert.False(t, IsAmbiguous('t'))
	assert.True(t, IsAmbiguous('N'))
	assert.True(t, IsAmbiguous('r'))
	assert.False(t, IsAmbiguous('-'))
}

func TestCount(t *testing.T) {
	counts := Count("AACGTNtr")
	assert.Equal(t, BaseCounts{A: 2, C: 1, G: 1, T: 2, N: 1, Other: 1}, counts)
	assert.Equal(t, 8, counts.Total())
}
