package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		symbol   byte
		want     int
		wantErr  bool
	}{
		{"sanger minimum", Sanger, '!', 0, false},
		{"sanger I is 40", Sanger, 'I', 40, false},
		{"sanger maximum", Sanger, 'K', 42, false},
		{"sanger below range", Sanger, ' ', 0, true},
		{"sanger above range", Sanger, 'L', 0, true},
		{"phred64 minimum", Phred64, '@', 0, false},
		{"phred64 below range", Phred64, '?', 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.encoding.Decode(tt.symbol)

			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &InvalidSymbolError{}, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		score    int
		want     byte
		wantErr  bool
	}{
		{"zero", Sanger, 0, '!', false},
		{"forty", Sanger, 40, 'I', false},
		{"maximum", Sanger, 42, 'K', false},
		{"negative", Sanger, -1, 0, true},
		{"too large", Sanger, 43, 0, true},
		{"phred64 zero", Phred64, 0, '@', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.encoding.Encode(tt.score)

			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &ScoreOutOfRangeError{}, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Encode(Decode(s)) must reproduce every valid symbol exactly.
func TestRoundTripAllSymbols(t *testing.T) {
	for _, encoding := range []Encoding{Sanger, Phred64} {
		for symbol := encoding.MinSymbol(); ; symbol++ {
			score, err := encoding.Decode(symbol)
			require.NoError(t, err)

			back, err := encoding.Encode(score)
			require.NoError(t, err)
			assert.Equal(t, symbol, back)

			if symbol == encoding.MaxSymbol() {
				break
			}
		}
	}
}

func TestDecodeString(t *testing.T) {
	scores, err := Sanger.DecodeString("!I5K")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 40, 20, 42}, scores)

	_, err = Sanger.DecodeString("II II")
	require.Error(t, err)
	var symErr *InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, 2, symErr.Position)
}

func TestEncodeScores(t *testing.T) {
	encoded, err := Sanger.EncodeScores([]int{0, 40, 20, 42})
	require.NoError(t, err)
	assert.Equal(t, "!I5K", encoded)

	_, err = Sanger.EncodeScores([]int{10, 50})
	require.Error(t, err)
	var rangeErr *ScoreOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Position)
}

func TestByName(t *testing.T) {
	enc, ok := ByName("phred64")
	assert.True(t, ok)
	assert.Equal(t, Phred64, enc)

	_, ok = ByName("solexa")
	assert.False(t, ok)
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"empty", nil, 0.0},
		{"single", []int{30}, 30.0},
		{"mixed", []int{10, 20, 30, 40}, 25.0},
		{"fractional mean", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Average(tt.scores), 0.0001)
		})
	}
}

func TestMinMax(t *testing.T) {
	scores := []int{12, 3, 40, 7}
	assert.Equal(t, 3, Min(scores))
	assert.Equal(t, 40, Max(scores))
}

func TestErrorProbability(t *testing.T) {
	assert.InDelta(t, 1.0, ErrorProbability(0), 0.0001)
	assert.InDelta(t, 0.01, ErrorProbability(20), 0.0001)
	assert.InDelta(t, 0.001, ErrorProbability(30), 0.0001)
}
