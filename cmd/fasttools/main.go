// Command fasttools provides a CLI for read-file parsing and per-record
// transforms.
//
// Usage:
//
//	fasttools [command] [options]
//
// Commands:
//
//	info        Show read-file summary
//	derive      Compute derived columns and emit them as TSV
//	convert     Convert between FASTQ and FASTA
//	interleave  Merge mate files into one interleaved FASTQ
//	gc          Calculate GC fraction of a sequence
//	revcomp     Reverse-complement a sequence
//	translate   Translate a sequence to amino acids
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"

	"github.com/dgelleru/fasttools/pkg/fasttools"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "info":
		infoCmd(os.Args[2:])
	case "derive":
		deriveCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	case "interleave":
		interleaveCmd(os.Args[2:])
	case "gc":
		gcCmd(os.Args[2:])
	case "revcomp":
		revcompCmd(os.Args[2:])
	case "translate":
		translateCmd(os.Args[2:])
	case "version":
		fmt.Println(fasttools.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fasttools - FASTQ/FASTA read-table toolkit

Usage:
  fasttools <command> [options]

Commands:
  info        Show read-file summary
  derive      Compute derived columns and emit them as TSV
  convert     Convert between FASTQ and FASTA
  interleave  Merge mate files into one interleaved FASTQ
  gc          Calculate GC fraction of a sequence
  revcomp     Reverse-complement a sequence
  translate   Translate a sequence to amino acids
  version     Show version information
  help        Show this help message

Use "fasttools <command> -h" for more information about a command.`)
}

// logFileSize prints a file's size to the console log.
func logFileSize(path, label string) {
	fi, err := os.Stat(path)
	if err != nil {
		log.Printf("WARNING: could not get size for file %v", path)
		return
	}
	log.Printf("%s file %s of size %s", label, path, bytefmt.ByteSize(uint64(fi.Size())))
}

func loadTable(path string, paired, strictIDs bool) *fasttools.Table {
	logFileSize(path, "Input")
	var tbl *fasttools.Table
	var err error
	if paired {
		tbl, err = fasttools.LoadPaired(path, strictIDs)
	} else {
		tbl, err = fasttools.Load(path)
	}
	if err != nil {
		log.Fatalf("Error loading %s: %v", path, err)
	}
	return tbl
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "FASTQ/FASTA file to analyze")
	paired := fs.Bool("paired", false, "locate and load the mate file")
	strict := fs.Bool("strict-ids", false, "treat mate identifier mismatches as fatal")
	fs.Parse(args)

	if *file == "" {
		log.Fatal("Error: -file is required")
	}

	summary := loadTable(*file, *paired, *strict).Summarize()
	fmt.Printf("sample:       %s\n", summary.Sample)
	fmt.Printf("paired:       %v\n", summary.Paired)
	fmt.Printf("rows:         %d\n", summary.Rows)
	fmt.Printf("reads:        %d\n", summary.Reads)
	fmt.Printf("mean length:  %.1f\n", summary.MeanLength)
	fmt.Printf("mean GC:      %.1f%%\n", summary.MeanGC*100)
	if summary.HasQuality {
		fmt.Printf("mean quality: %.1f\n", summary.MeanQuality)
	}
}

func deriveCmd(args []string) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	file := fs.String("file", "", "FASTQ/FASTA file to analyze")
	paired := fs.Bool("paired", false, "locate and load the mate file")
	strict := fs.Bool("strict-ids", false, "treat mate identifier mismatches as fatal")
	fs.Parse(args)

	if *file == "" {
		log.Fatal("Error: -file is required")
	}

	tbl := loadTable(*file, *paired, *strict)
	if err := tbl.ComputeAll(); err != nil {
		log.Fatalf("Error computing derived columns: %v", err)
	}

	columns := tbl.Columns()
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	fmt.Println(strings.Join(names, "\t"))

	for row := 0; row < tbl.Len(); row++ {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = fmt.Sprintf("%v", col.Values[row])
		}
		fmt.Println(strings.Join(fields, "\t"))
	}
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	file := fs.String("file", "", "input FASTQ/FASTA file")
	out := fs.String("out", "", "output file; format chosen from its extension")
	wrap := fs.Int("wrap", 0, "FASTA line width (0 = single line)")
	paired := fs.Bool("paired", false, "locate and load the mate file")
	fs.Parse(args)

	if *file == "" || *out == "" {
		log.Fatal("Error: -file and -out are required")
	}

	tbl := loadTable(*file, *paired, false)

	var err error
	if detectOut(*out) == fasttools.FormatFasta {
		err = fasttools.WriteFasta(*out, tbl, *wrap)
	} else {
		err = fasttools.WriteFastq(*out, tbl)
	}
	if err != nil {
		log.Fatalf("Error writing %s: %v", *out, err)
	}
	logFileSize(*out, "Output")
}

func interleaveCmd(args []string) {
	fs := flag.NewFlagSet("interleave", flag.ExitOnError)
	r1 := fs.String("r1", "", "first-mate FASTQ file (mate located automatically)")
	out := fs.String("out", "", "interleaved output FASTQ file")
	strict := fs.Bool("strict-ids", false, "treat mate identifier mismatches as fatal")
	fs.Parse(args)

	if *r1 == "" || *out == "" {
		log.Fatal("Error: -r1 and -out are required")
	}

	tbl := loadTable(*r1, true, *strict)
	if !tbl.Paired() {
		log.Fatalf("Error: no mate file found for %s", *r1)
	}
	if err := fasttools.WriteFastq(*out, tbl); err != nil {
		log.Fatalf("Error writing %s: %v", *out, err)
	}
	logFileSize(*out, "Output")
}

func gcCmd(args []string) {
	fs := flag.NewFlagSet("gc", flag.ExitOnError)
	seq := fs.String("seq", "", "sequence to analyze")
	fs.Parse(args)

	if *seq == "" {
		log.Fatal("Error: -seq is required")
	}
	fmt.Printf("%.4f\n", fasttools.GCFraction(*seq))
}

func revcompCmd(args []string) {
	fs := flag.NewFlagSet("revcomp", flag.ExitOnError)
	seq := fs.String("seq", "", "sequence to reverse-complement")
	fs.Parse(args)

	if *seq == "" {
		log.Fatal("Error: -seq is required")
	}
	fmt.Println(fasttools.ReverseComplement(*seq))
}

func translateCmd(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	seq := fs.String("seq", "", "sequence to translate")
	fs.Parse(args)

	if *seq == "" {
		log.Fatal("Error: -seq is required")
	}
	fmt.Println(fasttools.Translate(*seq))
}

// detectOut picks the output format from the destination extension,
// defaulting to FASTQ when the extension is unrecognized.
func detectOut(path string) fasttools.Format {
	if fasttools.DetectFormat(path) == fasttools.FormatFasta {
		return fasttools.FormatFasta
	}
	return fasttools.FormatFastq
}
