package seqio

import (
	"path/filepath"
	"strings"
)

// Filename conventions are boundary heuristics only: they pick mate
// files and derive sample labels, and never influence how file content
// is parsed.

// Format identifies a file format detected from a filename.
type Format int

const (
	FormatUnknown Format = iota
	FormatFastq
	FormatFasta
)

func (f Format) String() string {
	switch f {
	case FormatFastq:
		return "fastq"
	case FormatFasta:
		return "fasta"
	default:
		return "unknown"
	}
}

// readSegmentTokens are the recognized mate markers in Illumina-style
// filenames, e.g. Sample1_S1_L001_R1_001.fastq.gz.
var readSegmentTokens = []string{"_R1_", "_R2_", "_R1.", "_R2.", "_1.", "_2."}

var sequenceExtensions = []string{".fastq", ".fq", ".fasta", ".fa", ".fna"}

// DetectFormat guesses the format from the file extension, ignoring a
// trailing ".gz".
func DetectFormat(path string) Format {
	name := strings.TrimSuffix(filepath.Base(path), ".gz")
	switch filepath.Ext(name) {
	case ".fastq", ".fq":
		return FormatFastq
	case ".fasta", ".fa", ".fna":
		return FormatFasta
	default:
		return FormatUnknown
	}
}

// SampleName derives a sample label from a filename by truncating at the
// read-segment token; when no token is present, the extensions are
// stripped instead.
func SampleName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".gz")
	for _, token := range readSegmentTokens {
		if i := strings.Index(name, token); i >= 0 {
			return name[:i]
		}
	}
	for _, ext := range sequenceExtensions {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// MateFilename splices the second-mate marker into a first-mate
// filename. The second return value is false when path carries no
// recognized first-mate marker.
func MateFilename(path string) (string, bool) {
	replacements := [][2]string{{"_R1_", "_R2_"}, {"_R1.", "_R2."}, {"_1.", "_2."}}
	for _, rep := range replacements {
		if i := strings.Index(path, rep[0]); i >= 0 {
			return path[:i] + rep[1] + path[i+len(rep[0]):], true
		}
	}
	return "", false
}
