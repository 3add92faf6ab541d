package sequence

import "strings"

// UnknownResidue is emitted for codons containing ambiguous or invalid
// bases.
const UnknownResidue = 'X'

// StopResidue is emitted for the three stop codons.
const StopResidue = '*'

// codonTable is the standard genetic code, DNA codon to single-letter
// amino acid.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// TranslateCodon translates one codon to its amino acid. Codons that are
// not exactly three bases long or that contain ambiguous or invalid bases
// yield UnknownResidue; stop codons yield StopResidue.
func TranslateCodon(codon string) byte {
	if len(codon) != 3 {
		return UnknownResidue
	}
	if aa, ok := codonTable[strings.ToUpper(codon)]; ok {
		return aa
	}
	return UnknownResidue
}

// Translate reads a sequence in non-overlapping codons from position 0
// and translates each via the standard genetic code. A trailing partial
// codon of one or two bases is dropped. Translation never fails: codons
// with ambiguous or invalid bases become UnknownResidue.
func Translate(seq string) string {
	residues := make([]byte, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		residues = append(residues, TranslateCodon(seq[i:i+3]))
	}
	return string(residues)
}

// IsStopCodon reports whether a codon is one of TAA, TAG, TGA.
func IsStopCodon(codon string) bool {
	return TranslateCodon(codon) == StopResidue
}

// IsStartCodon reports whether a codon is the start codon ATG.
func IsStartCodon(codon string) bool {
	return strings.ToUpper(codon) == "ATG"
}
