// Command ttest prints a table of numeric observations and the Student's
// t-statistic over its first two columns.
//
// Usage:
//
//	ttest [-t paired|unpaired] [-d delimiter] [-precision n] [-v] FILE
//
// FILE is comma-separated text by default; ".xlsx" files are read as workbooks
// and ".zst", ".s2", ".lz4" or ".gz" files are decompressed first. Defaults come
// from TTEST_TYPE, TTEST_DELIMITER, TTEST_PRECISION, TTEST_VERBOSE,
// TTEST_LOG_LEVEL and TTEST_LOG_FORMAT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/tstat/table"
	"github.com/arloliu/tstat/ttest"
)

// Exit codes.
const (
	exitOK = iota
	exitInvalidArgs
	exitUnknownTestType
	exitNoDataFile
	exitEmptyDataFile
	exitStatisticFailed
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "ERR %v\n", err)
		return exitInvalidArgs
	}

	fs := flag.NewFlagSet("ttest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ttest [options] FILE\n\nOptions:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Type, "t", cfg.Type, "type of test: paired or unpaired")
	fs.StringVar(&cfg.Delimiter, "d", cfg.Delimiter, `field delimiter, a single character or \t`)
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places shown for table values")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print column statistics, degrees of freedom and the table fingerprint")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInvalidArgs
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "ERR %v\n", err)
		return exitInvalidArgs
	}

	logger, err := cfg.newLogger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ERR %v\n", err)
		return exitInvalidArgs
	}

	testType, err := ttest.ParseTestType(cfg.Type)
	if err != nil {
		fmt.Fprintf(stderr, "ERR unrecognised test type %q\n", cfg.Type)
		return exitUnknownTestType
	}

	path := fs.Arg(0)
	if path == "" {
		fmt.Fprintln(stderr, "No data file provided.")
		return exitNoDataFile
	}

	delim, _ := cfg.delimiter()
	data, err := table.LoadFile(path,
		table.WithDelimiter[float64](delim),
		table.WithLogger[float64](logger),
	)
	if err != nil {
		logger.Error("cannot load data file", "path", path, "error", err)
	}
	if err != nil || data.IsEmpty() {
		fmt.Fprintln(stderr, "No data in data file (or data file does not exist or could not be opened).")
		return exitEmptyDataFile
	}

	renderTable(stdout, data, cfg.Precision)

	engine, err := ttest.New(ttest.WithType[float64](testType), ttest.WithData(data))
	if err != nil {
		fmt.Fprintf(stderr, "ERR %v\n", err)
		return exitStatisticFailed
	}
	res, err := engine.Compute()
	if err != nil {
		fmt.Fprintf(stderr, "ERR cannot compute t: %v\n", err)
		return exitStatisticFailed
	}
	logger.Debug("t-test computed",
		"type", res.Type.String(),
		"t", res.T,
		"df", res.DegreesOfFreedom,
		"n1", res.N1,
		"n2", res.N2,
	)

	if cfg.Verbose {
		renderSummary(stdout, data, cfg.Precision)
	}
	renderResult(stdout, res, cfg.Verbose, data.Fingerprint())

	return exitOK
}
