// Package sequence provides pure transforms over nucleotide sequences.
//
// Sequences are plain strings over the IUPAC nucleotide alphabet
// (A, C, G, T plus the ambiguity codes), case-insensitive. All functions
// here are pure: they never mutate their input and carry no state, so
// they are safe to run concurrently across the rows of a table.
package sequence

import "strings"

// complementTable maps each base to its IUPAC complement. Bases complement
// pairwise (A<->T, C<->G, R<->Y, K<->M, B<->V, D<->H), the palindromic
// codes (S, W, N) map to themselves, and U is treated as T. Unrecognized
// symbols map to themselves so that reverse-complementing never fails.
var complementTable [256]byte

func init() {
	for i := range complementTable {
		complementTable[i] = byte(i)
	}
	pairs := map[byte]byte{
		'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
		'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
	}
	for base, comp := range pairs {
		complementTable[base] = comp
		complementTable[base+'a'-'A'] = comp + 'a' - 'A'
	}
}

// GCFraction returns the fraction of G and C bases among the called
// bases of a sequence. Ambiguity codes (N and the other IUPAC codes)
// count neither toward the numerator nor the denominator. A sequence
// with no called bases, including the empty sequence, yields 0.
func GCFraction(seq string) float64 {
	gc := 0
	called := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
			called++
		case 'A', 'T', 'a', 't':
			called++
		}
	}
	if called == 0 {
		return 0.0
	}
	return float64(gc) / float64(called)
}

// ATFraction returns the fraction of A and T bases among the called
// bases, with the same conventions as GCFraction.
func ATFraction(seq string) float64 {
	at := 0
	called := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'a', 't':
			at++
			called++
		case 'G', 'C', 'g', 'c':
			called++
		}
	}
	if called == 0 {
		return 0.0
	}
	return float64(at) / float64(called)
}

// ReverseComplement reverses a sequence and complements each base per the
// IUPAC complement rules. Case is preserved and unrecognized symbols pass
// through unchanged.
func ReverseComplement(seq string) string {
	result := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		result[len(seq)-1-i] = complementTable[seq[i]]
	}
	return string(result)
}

// Reverse returns the sequence with its base order reversed.
func Reverse(seq string) string {
	result := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		result[len(seq)-1-i] = seq[i]
	}
	return string(result)
}

// Transcribe converts a DNA sequence to RNA (T -> U), preserving case.
func Transcribe(seq string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'T':
			return 'U'
		case 't':
			return 'u'
		}
		return r
	}, seq)
}

// BaseCounts holds per-base tallies for a sequence. Ambiguity codes other
// than N are counted under Other.
type BaseCounts struct {
	A     int
	C     int
	G     int
	T     int
	N     int
	Other int
}

// Total returns the total number of symbols counted.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.N + bc.Other
}

// Count tallies the bases of a sequence, case-insensitively. U counts as T.
func Count(seq string) BaseCounts {
	counts := BaseCounts{}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'a':
			counts.A++
		case 'C', 'c':
			counts.C++
		case 'G', 'g':
			counts.G++
		case 'T', 't', 'U', 'u':
			counts.T++
		case 'N', 'n':
			counts.N++
		default:
			counts.Other++
		}
	}
	return counts
}
