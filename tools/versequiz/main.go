package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type RunnerConfig struct {
	CorpusPath  string
	RefsPath    string
	OutPath     string
	ThemeName   string
	Description string
	Check       bool
	Write       bool
	Strict      bool
}

func main() {
	var cfg RunnerConfig

	root := &cobra.Command{
		Use:   "versequiz",
		Short: "Extract curated KJV verses into a quiz theme dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			result, err := runPipeline(ctx, cfg)
			printSummary(result, err)
			return err
		},
	}

	root.Flags().StringVar(&cfg.CorpusPath, "corpus", "verses/kjv-full.json", "path to the full KJV corpus JSON")
	root.Flags().StringVar(&cfg.RefsPath, "refs", "", "optional reference list file (defaults to the embedded popular-verse list)")
	root.Flags().StringVar(&cfg.OutPath, "out", "build/canonical/top1000_popular_verses.json", "output dataset path")
	root.Flags().StringVar(&cfg.ThemeName, "theme", "", "override the output theme_name")
	root.Flags().StringVar(&cfg.Description, "description", "", "override the output description")
	root.Flags().BoolVar(&cfg.Check, "check", false, "validate only without writing")
	root.Flags().BoolVar(&cfg.Write, "write", false, "write dataset, audit, and reject files")
	root.Flags().BoolVar(&cfg.Strict, "strict", false, "fail when any reference or verse could not be resolved")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPipeline(_ context.Context, cfg RunnerConfig) (PipelineResult, error) {
	start := time.Now()
	metrics := Metrics{}

	if cfg.Check && cfg.Write {
		return PipelineResult{}, fmt.Errorf("--check and --write cannot be combined")
	}

	refs := defaultReferences
	if cfg.RefsPath != "" {
		loaded, err := readReferenceFile(cfg.RefsPath)
		if err != nil {
			return PipelineResult{}, err
		}
		refs = loaded
	}

	corpus, err := LoadCorpus(cfg.CorpusPath)
	if err != nil {
		return PipelineResult{}, err
	}

	theme, warnings := buildDataset(refs, corpus, &metrics)
	if cfg.ThemeName != "" {
		theme.ThemeName = cfg.ThemeName
	}
	if cfg.Description != "" {
		theme.Description = cfg.Description
	}

	result := PipelineResult{
		Theme:    theme,
		Warnings: warnings,
		Metrics:  metrics,
		Started:  start,
		Duration: time.Since(start),
		Strict:   cfg.Strict,
		Wrote:    false,
	}

	if cfg.Strict && len(warnings) > 0 {
		metrics.StrictFailed = true
		result.Metrics = metrics
		if cfg.Write && !cfg.Check {
			_ = writeOutputs(result, cfg.OutPath, true)
			result.Wrote = true
		}
		return result, errors.New("strict mode: unresolved references present")
	}

	if err := writeOutputs(result, cfg.OutPath, cfg.Write && !cfg.Check); err != nil {
		return result, err
	}
	if cfg.Write && !cfg.Check {
		result.Wrote = true
	}

	return result, nil
}

func printSummary(result PipelineResult, runErr error) {
	for _, w := range result.Warnings {
		color.New(color.FgYellow).Println(w.String())
	}
	lines := formatSummaryLines(result)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "❌"):
			color.New(color.FgHiRed).Println(line)
		case strings.HasPrefix(line, "⚠️"):
			color.New(color.FgYellow).Println(line)
		case strings.HasPrefix(line, "✅"):
			color.New(color.FgGreen).Println(line)
		case strings.HasPrefix(line, "🚫"):
			color.New(color.FgRed).Println(line)
		case strings.HasPrefix(line, "✨"):
			color.New(color.FgHiCyan).Println(line)
		default:
			color.New(color.FgWhite).Println(line)
		}
	}
	if runErr != nil {
		color.New(color.FgHiRed).Printf("error: %v\n", runErr)
	}
}
