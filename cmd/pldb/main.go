// Command pldb computes the perceived loudness (PLdB) of sonic-boom
// pressure signatures stored as delimited text files.
//
// Usage:
//
//	pldb [flags] signature-file ...
//
// Each file holds two columns: time in milliseconds and pressure in psf.
//
// Examples:
//
//	pldb boom.txt
//	pldb -skip 1 -delimiter , signature.csv
//	pldb -window 400 -pad-front 2 -pad-rear 2 boom.txt
//	pldb -results out/ boom.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-pldb/measure/pldb"
)

func main() {
	padFront := flag.Int("pad-front", 1, "front zero-padding multiplier")
	padRear := flag.Int("pad-rear", 1, "rear zero-padding multiplier")
	windowLen := flag.Int("window", 800, "Hann edge taper half-width in samples")
	skip := flag.Int("skip", 0, "header lines to skip in each input file")
	delimiter := flag.String("delimiter", "", "column delimiter (default: any whitespace)")
	results := flag.String("results", "", "directory for diagnostic tables (disabled when empty)")
	strict := flag.Bool("strict", false, "reject signatures containing NaN or Inf samples")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pldb [flags] signature-file ...\n\n")
		fmt.Fprintf(os.Stderr, "Computes the Stevens Mark VII perceived loudness of pressure signatures.\n")
		fmt.Fprintf(os.Stderr, "Input files hold two columns: time [ms] and pressure [psf].\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pldb boom.txt\n")
		fmt.Fprintf(os.Stderr, "  pldb -skip 1 -delimiter , signature.csv\n")
		fmt.Fprintf(os.Stderr, "  pldb -results out/ boom.txt\n")
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	opts := []pldb.Option{
		pldb.WithPadFront(*padFront),
		pldb.WithPadRear(*padRear),
		pldb.WithWindowLength(*windowLen),
	}
	if *strict {
		opts = append(opts, pldb.WithStrictDomain())
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tSamples\tPLdB\tSones\n")
	fmt.Fprintf(tw, "----\t-------\t----\t-----\n")

	failed := false
	for i, file := range files {
		time, pressure, err := pldb.ReadSignature(file, *skip, *delimiter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", file, err)
			failed = true
			continue
		}

		fileOpts := opts
		if *results != "" {
			dir := *results
			if len(files) > 1 {
				dir = fmt.Sprintf("%s-%d", dir, i)
			}
			fileOpts = append(fileOpts, pldb.WithResultsDir(dir))
		}

		res, err := pldb.Analyze(time, pressure, fileOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: analyzing %s: %v\n", file, err)
			failed = true
			continue
		}

		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\n", file, len(time), res.PLdB, res.TotalSones)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: flushing output: %v\n", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}
