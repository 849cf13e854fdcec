// Package main provides the CLI entry point for xlsxrows.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/spf13/cobra"

	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows"
	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/output"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

type config struct {
	outputPath   string
	pretty       bool
	sheet        string
	sheetIndex   int
	headerRow    int
	includeEmpty bool
	format       string
	charset      string
	sheetsDir    string
	list         bool
	maxSize      int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("xlsxrows", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	rootCmd := &cobra.Command{
		Use:   "xlsxrows [input.xlsx]",
		Short: "Extract header-tagged rows from xlsx workbooks",
		Long: `xlsxrows reads the sheets of an xlsx workbook, tags every cell with
the header of its column and writes the rows as JSON or CSV.
Use "-" to read the workbook from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args[0])
		},
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&cfg.outputPath, "output", "o", "", "Output file path, gzip-compressed when it ends in .gz (default: stdout)")
	fl.BoolVar(&cfg.pretty, "pretty", false, "Pretty-print JSON output")
	fl.StringVar(&cfg.sheet, "sheet", "", "Extract only the sheet with this exact name")
	fl.IntVar(&cfg.sheetIndex, "sheet-index", -1, "Extract only the sheet at this zero-based position")
	fl.IntVar(&cfg.headerRow, "header-row", 0, "Zero-based row holding the column headers")
	fl.BoolVar(&cfg.includeEmpty, "include-empty", false, "Keep empty cells as null values")
	fl.StringVar(&cfg.format, "format", "json", "Output format: json or csv")
	fl.StringVar(&cfg.charset, "charset", "utf-8", "CSV output charset")
	fl.StringVar(&cfg.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	fl.BoolVar(&cfg.list, "list", false, "List sheet names and exit")
	fl.Int64Var(&cfg.maxSize, "max-size", 256<<20, "Refuse inputs larger than this many bytes, before and after gunzip (0: no limit)")
	rootCmd.MarkFlagsMutuallyExclusive("sheet", "sheet-index")

	gfs := flag.NewFlagSet("xlsxrows", flag.ContinueOnError)
	gfs.Var(&verbose, "v", "logging verbosity")
	fl.AddGoFlagSet(gfs)

	return rootCmd
}

func run(cmd *cobra.Command, cfg config, inputPath string) error {
	if cfg.format != "json" && cfg.format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", cfg.format)
	}
	if cfg.format == "csv" && cfg.sheetsDir == "" && cfg.outputPath != "" && !cfg.single() {
		logger.Warn("csv output holds several sheets in one file; consider --sheets-dir")
	}

	r, err := openInput(cmd.InOrStdin(), inputPath, cfg.maxSize)
	if err != nil {
		return err
	}
	r.Logger = logger
	r.MaxSize = cfg.maxSize

	if cfg.list {
		names, err := r.SheetNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	res, err := r.Read(cfg.options())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("extracted", "input", inputPath, "sheets", len(res.Sheets))

	if cfg.sheetsDir != "" {
		if err := writeSheetFiles(res, cfg); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		if cfg.outputPath == "" {
			return nil
		}
	}

	data, err := encode(res, cfg)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if cfg.outputPath != "" {
		if err := output.WriteFile(cfg.outputPath, data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (cfg config) single() bool {
	return cfg.sheet != "" || cfg.sheetIndex >= 0
}

func (cfg config) options() xlsxrows.Options {
	opts := xlsxrows.Options{
		HeaderRow:         cfg.headerRow,
		IncludeEmptyCells: cfg.includeEmpty,
	}
	switch {
	case cfg.sheet != "":
		opts.Sheet = xlsxrows.SheetName(cfg.sheet)
	case cfg.sheetIndex >= 0:
		opts.Sheet = xlsxrows.SheetIndex(cfg.sheetIndex)
	}
	return opts
}

func openInput(stdin io.Reader, path string, maxSize int64) (*xlsxrows.Reader, error) {
	if path == "-" {
		if maxSize > 0 {
			stdin = io.LimitReader(stdin, maxSize+1)
		}
		r, err := xlsxrows.NewReaderFrom(stdin)
		if err != nil {
			return nil, err
		}
		if maxSize > 0 && int64(r.Size()) > maxSize {
			return nil, fmt.Errorf("%w: input exceeds %d bytes", xlsxrows.ErrTooLarge, maxSize)
		}
		return r, nil
	}

	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", xlsxrows.ErrFileNotFound, path)
	} else if err != nil {
		return nil, err
	}
	if maxSize > 0 && fi.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s: %d bytes exceeds %d", xlsxrows.ErrTooLarge, path, fi.Size(), maxSize)
	}
	logger.Debug("open", "path", path, "size", fi.Size())
	return xlsxrows.OpenFile(path)
}

func encode(res *models.Result, cfg config) ([]byte, error) {
	if cfg.format == "json" {
		data, err := output.ToJSON(res, cfg.pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	var buf bytes.Buffer
	for i, sheet := range res.Sheets {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := output.WriteCSV(&buf, sheet, cfg.charset); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writeSheetFiles(res *models.Result, cfg config) error {
	if err := os.MkdirAll(cfg.sheetsDir, 0755); err != nil {
		return err
	}

	for _, sheet := range res.Sheets {
		var data []byte
		var err error
		if cfg.format == "csv" {
			var buf bytes.Buffer
			err = output.WriteCSV(&buf, sheet, cfg.charset)
			data = buf.Bytes()
		} else {
			data, err = output.SheetToJSON(&sheet, cfg.pretty)
		}
		if err != nil {
			return err
		}

		filename := filepath.Join(cfg.sheetsDir, sheetFileName(sheet.Sheet)+"."+cfg.format)
		logger.Debug("write sheet", "sheet", sheet.Sheet, "file", filename)
		if err := output.WriteFile(filename, data); err != nil {
			return err
		}
	}

	return nil
}

// sheetFileName makes a sheet name safe to use as a file name.
func sheetFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}
