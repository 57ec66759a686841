// Command processor runs the normalization pipeline over a directory of
// statement files and writes indicator and statement CSV reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"finlens/internal/config"
	"finlens/internal/exporter"
	"finlens/internal/infrastructure"
	"finlens/internal/pipeline"
)

func main() {
	inDir := flag.String("in", "data/statements", "input directory with statement files (.csv, .txt, .tsv, .xlsx)")
	outDir := flag.String("out", "data/reports", "output directory for CSV reports")
	company := flag.String("company", "", "company identifier to analyze (defaults to the first company in each file)")
	years := flag.Int("years", 0, "limit history to the last N years (0 keeps everything)")
	workers := flag.Int("workers", 4, "number of files processed concurrently")
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *years == 0 {
		*years = cfg.Pipeline.DefaultYears
	}

	files, err := discoverFiles(*inDir)
	if err != nil {
		logger.Error("failed to scan input directory", "dir", *inDir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("no statement files found", "dir", *inDir)
		return
	}
	logger.Info("processing statement files", "count", len(files), "out", *outDir)

	p := pipeline.New(logger, nil, cfg.Pipeline.CacheSize)
	writer := exporter.NewCSVWriter(logger)

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	var failed atomic.Int64
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := processFile(ctx, p, writer, file, *outDir, *company, *years); err != nil {
				logger.Warn("file skipped", "file", filepath.Base(file), "error", err)
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("processing aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("processing complete",
		"processed", int64(len(files))-failed.Load(),
		"failed", failed.Load())
}

func discoverFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".txt", ".tsv", ".xlsx":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func processFile(ctx context.Context, p *pipeline.Pipeline, writer *exporter.CSVWriter, path, outDir, company string, years int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, err := p.Process(ctx, data, pipeline.Options{
		Company:  company,
		Years:    years,
		Workbook: strings.EqualFold(filepath.Ext(path), ".xlsx"),
	})
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	prefix := filepath.Join(outDir, base)

	if err := writer.SaveIndicators(prefix+"_indicators.csv", res.Indicators); err != nil {
		return fmt.Errorf("write indicators: %w", err)
	}
	for kind, table := range res.Statements {
		if len(table.Labels) == 0 {
			continue
		}
		name := fmt.Sprintf("%s_%s.csv", prefix, kind)
		if err := writer.SaveStatement(name, table); err != nil {
			return fmt.Errorf("write %s statement: %w", kind, err)
		}
	}
	return nil
}
