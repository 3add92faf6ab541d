package seqio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"illumina lane name", "Sample1_S1_L001_R1_001.fastq.gz", "Sample1_S1_L001"},
		{"second mate", "Sample1_S1_L001_R2_001.fastq.gz", "Sample1_S1_L001"},
		{"short mate marker", "tumor_R1.fastq.gz", "tumor"},
		{"numeric marker", "tumor_1.fq.gz", "tumor"},
		{"with directory", "data/run3/Sample1_S1_L001_R1_001.fastq.gz", "Sample1_S1_L001"},
		{"no marker fastq", "reads.fastq", "reads"},
		{"no marker fasta gz", "contigs.fasta.gz", "contigs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleName(tt.path))
		})
	}
}

func TestMateFilename(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		want  string
		found bool
	}{
		{"illumina token", "Sample1_S1_L001_R1_001.fastq.gz", "Sample1_S1_L001_R2_001.fastq.gz", true},
		{"short token", "tumor_R1.fastq", "tumor_R2.fastq", true},
		{"numeric token", "tumor_1.fq.gz", "tumor_2.fq.gz", true},
		{"no token", "reads.fastq", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := MateFilename(tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"reads.fastq", FormatFastq},
		{"reads.fq.gz", FormatFastq},
		{"contigs.fasta", FormatFasta},
		{"contigs.fa.gz", FormatFasta},
		{"genome.fna", FormatFasta},
		{"notes.txt", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "fastq", FormatFastq.String())
	assert.Equal(t, "fasta", FormatFasta.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
