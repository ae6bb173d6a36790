package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"segmap"
	"segmap/config"
	"segmap/detect"
	"segmap/model"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract one PDF, or every PDF in a directory with --all",
		ArgsUsage: "<file.pdf | directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "yaml configuration file",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (overrides the configuration)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "treat the argument as a directory and process every *.pdf in it",
			},
		},
		Action: runExtract,
	}
}

func runExtract(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one input path, got %d", cmd.NArg())
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if out := cmd.String("out"); out != "" {
		cfg.OutputDir = out
	}

	logger, err := prepareLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("prepare logging: %w", err)
	}
	defer logger.Sync()
	log = logger

	input := cmd.Args().First()
	if cmd.Bool("all") {
		return processAll(input, cfg)
	}
	return processFile(input, cfg)
}

// processAll runs every *.pdf in dir through the extractor. One document's
// failure never aborts the batch; failures are aggregated and summarized at
// the end.
func processAll(dir string, cfg config.Config) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files in %s", dir)
	}

	log.Info("batch extraction", zap.Int("files", len(files)), zap.String("dir", dir))
	start := time.Now()

	var failures error
	succeeded := 0
	for i, file := range files {
		log.Info("processing",
			zap.String("file", filepath.Base(file)),
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, len(files))))
		if err := processFile(file, cfg); err != nil {
			log.Error("extraction failed", zap.String("file", filepath.Base(file)), zap.Error(err))
			failures = multierr.Append(failures, fmt.Errorf("%s: %w", filepath.Base(file), err))
			continue
		}
		succeeded++
	}

	log.Info("batch finished",
		zap.Int("succeeded", succeeded),
		zap.Int("failed", len(files)-succeeded),
		zap.Duration("elapsed", time.Since(start)))
	return failures
}

// processFile extracts one document and writes its JSON export. A document
// that yields no segments is reported and skipped without writing a file,
// and without failing the batch.
func processFile(path string, cfg config.Config) error {
	start := time.Now()

	ext := segmap.Open(path).DetectPages(cfg.DetectPages)
	if cfg.Convention != "" {
		ext = ext.ForceConvention(detect.Convention(cfg.Convention))
	}

	segments, warnings, err := ext.Segments()
	if len(warnings) > 0 {
		log.Warn("extraction warnings",
			zap.String("file", filepath.Base(path)),
			zap.String("details", segmap.FormatWarnings(warnings)))
	}
	if err != nil {
		if errors.Is(err, segmap.ErrNoSegments) {
			log.Warn("no segments found, nothing written", zap.String("file", filepath.Base(path)))
			return nil
		}
		return err
	}

	stats := model.Collect(segments)
	log.Info("extracted",
		zap.String("file", filepath.Base(path)),
		zap.Int("segments", stats.Segments),
		zap.Int("simpleElements", stats.SimpleElements),
		zap.Int("groups", stats.Groups),
		zap.Int("groupedElements", stats.GroupedElements),
		zap.Int("withFormat", stats.WithFormat),
		zap.Int("withValue", stats.WithValue),
		zap.Int("withUsage", stats.WithUsage))

	out := outputPath(cfg.OutputDir, path)
	if err := writeJSON(out, segments); err != nil {
		return err
	}
	log.Info("export written", zap.String("path", out), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// outputPath derives the export file name from the input base name, with
// spaces and hyphens replaced by underscores.
func outputPath(dir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	base = strings.NewReplacer(" ", "_", "-", "_").Replace(base)
	return filepath.Join(dir, base+".json")
}

func writeJSON(path string, segments []*model.Segment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := model.EncodeJSON(f, segments); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
