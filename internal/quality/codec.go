// Package quality provides Phred quality symbol encoding and decoding.
//
// Phred quality scores are logarithmically related to base-calling error
// probabilities:
//
//	Q = -10 * log10(P_error)
//
// In FASTQ files each score is stored as a single printable ASCII
// character. The codec maps symbols to scores and back; the mapping is a
// fixed bijection over the encoding's symbol range, so
// Encode(Decode(s)) == s for every valid symbol s.
package quality

import (
	"fmt"
	"math"
)

// Encoding describes a Phred symbol encoding: the ASCII offset of score
// zero and the highest representable score. Encodings are immutable
// values; the package-level encodings are the only ones in use.
type Encoding struct {
	Name     string
	Offset   int
	MaxScore int
}

var (
	// Sanger is the Phred+33 encoding used by Illumina 1.8+ and assumed
	// for all FASTQ input unless stated otherwise. Symbols run from '!'
	// (score 0) to 'K' (score 42).
	Sanger = Encoding{Name: "phred33", Offset: 33, MaxScore: 42}

	// Phred64 is the legacy Illumina 1.3-1.7 encoding. Symbols run from
	// '@' (score 0) to 'h' (score 40).
	Phred64 = Encoding{Name: "phred64", Offset: 64, MaxScore: 40}
)

// ByName looks up an encoding by its name ("phred33" or "phred64").
func ByName(name string) (Encoding, bool) {
	switch name {
	case Sanger.Name:
		return Sanger, true
	case Phred64.Name:
		return Phred64, true
	}
	return Encoding{}, false
}

// MinSymbol returns the symbol encoding score zero.
func (e Encoding) MinSymbol() byte {
	return byte(e.Offset)
}

// MaxSymbol returns the symbol encoding the highest representable score.
func (e Encoding) MaxSymbol() byte {
	return byte(e.Offset + e.MaxScore)
}

// Decode maps a quality symbol to its integer score. Symbols outside the
// encoding's range fail with InvalidSymbolError.
func (e Encoding) Decode(symbol byte) (int, error) {
	if symbol < e.MinSymbol() || symbol > e.MaxSymbol() {
		return 0, &InvalidSymbolError{Symbol: symbol, Encoding: e.Name, Position: -1}
	}
	return int(symbol) - e.Offset, nil
}

// Encode maps an integer score to its quality symbol. Negative scores and
// scores above MaxScore fail with ScoreOutOfRangeError.
func (e Encoding) Encode(score int) (byte, error) {
	if score < 0 || score > e.MaxScore {
		return 0, &ScoreOutOfRangeError{Score: score, Encoding: e.Name, Position: -1}
	}
	return byte(score + e.Offset), nil
}

// DecodeString decodes a whole quality line into integer scores.
func (e Encoding) DecodeString(encoded string) ([]int, error) {
	scores := make([]int, len(encoded))
	for i := 0; i < len(encoded); i++ {
		symbol := encoded[i]
		if symbol < e.MinSymbol() || symbol > e.MaxSymbol() {
			return nil, &InvalidSymbolError{Symbol: symbol, Encoding: e.Name, Position: i}
		}
		scores[i] = int(symbol) - e.Offset
	}
	return scores, nil
}

// EncodeScores encodes integer scores back into a quality line.
func (e Encoding) EncodeScores(scores []int) (string, error) {
	encoded := make([]byte, len(scores))
	for i, score := range scores {
		if score < 0 || score > e.MaxScore {
			return "", &ScoreOutOfRangeError{Score: score, Encoding: e.Name, Position: i}
		}
		encoded[i] = byte(score + e.Offset)
	}
	return string(encoded), nil
}

// Average returns the arithmetic mean of a score sequence, or 0 for an
// empty sequence.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}

// Min returns the lowest score in a non-empty score sequence.
func Min(scores []int) int {
	min := scores[0]
	for _, score := range scores[1:] {
		if score < min {
			min = score
		}
	}
	return min
}

// Max returns the highest score in a non-empty score sequence.
func Max(scores []int) int {
	max := scores[0]
	for _, score := range scores[1:] {
		if score > max {
			max = score
		}
	}
	return max
}

// ErrorProbability converts a Phred score to its base-calling error
// probability: P_error = 10^(-Q/10).
func ErrorProbability(score int) float64 {
	return math.Pow(10.0, float64(-score)/10.0)
}

// QualityError is the marker interface for codec errors.
type QualityError interface {
	error
	IsQualityError()
}

// InvalidSymbolError is returned when a quality symbol lies outside the
// encoding's printable range. Position is the index within the quality
// line, or -1 for a single-symbol decode.
type InvalidSymbolError struct {
	Symbol   byte
	Encoding string
	Position int
}

func (e *InvalidSymbolError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("invalid %s quality symbol %q at position %d", e.Encoding, e.Symbol, e.Position)
	}
	return fmt.Sprintf("invalid %s quality symbol %q", e.Encoding, e.Symbol)
}

func (e *InvalidSymbolError) IsQualityError() {}

// ScoreOutOfRangeError is returned when a score cannot be represented by
// the encoding. Position is the index within the score sequence, or -1
// for a single-score encode.
type ScoreOutOfRangeError struct {
	Score    int
	Encoding string
	Position int
}

func (e *ScoreOutOfRangeError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s score %d at position %d is out of range", e.Encoding, e.Score, e.Position)
	}
	return fmt.Sprintf("%s score %d is out of range", e.Encoding, e.Score)
}

func (e *ScoreOutOfRangeError) IsQualityError() {}
