package sequence

import "fmt"

// iupacBases is the accepted nucleotide alphabet: the four bases, U, and
// the IUPAC ambiguity codes.
var iupacBases = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true,
	'R': true, 'Y': true, 'S': true, 'W': true, 'K': true, 'M': true,
	'B': true, 'D': true, 'H': true, 'V': true, 'N': true,
}

// InvalidBaseError is returned when a sequence contains a symbol outside
// the IUPAC alphabet.
type InvalidBaseError struct {
	Position int
	Found    byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d", e.Found, e.Position)
}

// Validate checks that a sequence contains only IUPAC nucleotide symbols,
// case-insensitively. This is an optional content check for callers at
// the API boundary; the file parsers deliberately do not apply it, since
// the format grammar does not constrain sequence line content.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if !iupacBases[b] {
			return &InvalidBaseError{Position: i, Found: seq[i]}
		}
	}
	return nil
}

// IsAmbiguous reports whether a base is an IUPAC ambiguity code (anything
// valid that is not A, C, G, T or U).
func IsAmbiguous(base byte) bool {
	if base >= 'a' && base <= 'z' {
		base -= 'a' - 'A'
	}
	switch base {
	case 'A', 'C', 'G', 'T', 'U':
		return false
	}
	return iupacBases[base]
}
